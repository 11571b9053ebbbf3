package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	internalhttp "github.com/justin-frenzel/formstack-go/internal/http"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// SubmissionsClient implements formstack.SubmissionsClient.
type SubmissionsClient struct {
	httpClient *internalhttp.Client
}

// NewSubmissionsClient creates a new submissions client.
func NewSubmissionsClient(httpClient *internalhttp.Client) *SubmissionsClient {
	return &SubmissionsClient{
		httpClient: httpClient,
	}
}

// List implements formstack.SubmissionsClient.List.
func (c *SubmissionsClient) List(ctx context.Context, formID int64, opts *formstack.ListSubmissionsOptions) (*formstack.SubmissionList, error) {
	err := validateID("form id", formID)
	if err != nil {
		return nil, err
	}

	params, err := listSubmissionsParams(opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "form/"+formatID(formID)+"/submission.json", params)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	var list formstack.SubmissionList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing submissions response: %w", err)
	}

	return &list, nil
}

// Get implements formstack.SubmissionsClient.Get.
func (c *SubmissionsClient) Get(ctx context.Context, submissionID int64, opts *formstack.GetSubmissionOptions) (*formstack.Submission, error) {
	err := validateID("submission id", submissionID)
	if err != nil {
		return nil, err
	}

	params := formstack.NewParams()
	if opts != nil && opts.EncryptionPassword != "" {
		params.Set("encryption_password", opts.EncryptionPassword)
	}

	resp, err := c.httpClient.Get(ctx, "submission/"+formatID(submissionID)+".json", params)
	if err != nil {
		return nil, fmt.Errorf("getting submission: %w", err)
	}

	var submission formstack.Submission

	err = json.Unmarshal(resp.Body, &submission)
	if err != nil {
		return nil, fmt.Errorf("parsing submission response: %w", err)
	}

	return &submission, nil
}

// Create implements formstack.SubmissionsClient.Create.
func (c *SubmissionsClient) Create(ctx context.Context, formID int64, opts *formstack.CreateSubmissionOptions) (*formstack.Submission, error) {
	err := validateID("form id", formID)
	if err != nil {
		return nil, err
	}

	params, err := createSubmissionParams(opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "form/"+formatID(formID)+"/submission.json", params)
	if err != nil {
		return nil, fmt.Errorf("creating submission: %w", err)
	}

	var submission formstack.Submission

	err = json.Unmarshal(resp.Body, &submission)
	if err != nil {
		return nil, fmt.Errorf("parsing submission response: %w", err)
	}

	return &submission, nil
}

// Update implements formstack.SubmissionsClient.Update.
func (c *SubmissionsClient) Update(ctx context.Context, submissionID int64, opts *formstack.UpdateSubmissionOptions) (*formstack.SubmissionResult, error) {
	err := validateID("submission id", submissionID)
	if err != nil {
		return nil, err
	}

	params, err := updateSubmissionParams(opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "submission/"+formatID(submissionID)+".json", params)
	if err != nil {
		return nil, fmt.Errorf("updating submission: %w", err)
	}

	var result formstack.SubmissionResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing submission update response: %w", err)
	}

	return &result, nil
}

// Delete implements formstack.SubmissionsClient.Delete.
func (c *SubmissionsClient) Delete(ctx context.Context, submissionID int64) (*formstack.SubmissionResult, error) {
	err := validateID("submission id", submissionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, "submission/"+formatID(submissionID)+".json", nil)
	if err != nil {
		return nil, fmt.Errorf("deleting submission: %w", err)
	}

	var result formstack.SubmissionResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing submission delete response: %w", err)
	}

	return &result, nil
}

// listSubmissionsParams validates listing options and maps them onto wire
// parameter names. Search filters are positional and 1-based on the wire.
func listSubmissionsParams(opts *formstack.ListSubmissionsOptions) (*formstack.Params, error) {
	params := formstack.NewParams()
	if opts == nil {
		return params, nil
	}

	err := validatePage(opts.Page)
	if err != nil {
		return nil, err
	}

	err = validatePerPage(opts.PerPage)
	if err != nil {
		return nil, err
	}

	err = validateSort(opts.Sort)
	if err != nil {
		return nil, err
	}

	err = validateTimestamp("min_time", opts.MinTime)
	if err != nil {
		return nil, err
	}

	err = validateTimestamp("max_time", opts.MaxTime)
	if err != nil {
		return nil, err
	}

	err = validateFieldPairs("search_field_ids", "search_field_values", opts.SearchFieldIDs, opts.SearchFieldValues)
	if err != nil {
		return nil, err
	}

	applyPaging(params, opts.Page, opts.PerPage)

	if opts.Sort != "" {
		params.Set("sort", string(opts.Sort))
	}

	if opts.MinTime != "" {
		params.Set("min_time", opts.MinTime)
	}

	if opts.MaxTime != "" {
		params.Set("max_time", opts.MaxTime)
	}

	for i, id := range opts.SearchFieldIDs {
		n := strconv.Itoa(i + 1)
		params.SetInt64("search_field_"+n, id)
		params.Set("search_value_"+n, opts.SearchFieldValues[i])
	}

	params.SetBool("data", opts.Data)
	params.SetBool("expand_data", opts.ExpandData)

	if opts.EncryptionPassword != "" {
		params.Set("encryption_password", opts.EncryptionPassword)
	}

	return params, nil
}

// createSubmissionParams validates submission data and maps each field
// value onto its field_<id> wire name.
func createSubmissionParams(opts *formstack.CreateSubmissionOptions) (*formstack.Params, error) {
	params := formstack.NewParams()
	if opts == nil {
		return params, nil
	}

	err := validateFieldPairs("field_ids", "field_values", opts.FieldIDs, opts.FieldValues)
	if err != nil {
		return nil, err
	}

	err = validateTimestamp("timestamp", opts.Timestamp)
	if err != nil {
		return nil, err
	}

	for i, id := range opts.FieldIDs {
		params.Set("field_"+formatID(id), opts.FieldValues[i])
	}

	if opts.Timestamp != "" {
		params.Set("timestamp", opts.Timestamp)
	}

	if opts.IPAddress != "" {
		params.Set("remote_addr", opts.IPAddress)
	}

	if opts.UserAgent != "" {
		params.Set("user_agent", opts.UserAgent)
	}

	if opts.PaymentID != "" {
		params.Set("payment_id", opts.PaymentID)
	}

	params.SetBool("read_only", opts.ReadOnly)

	return params, nil
}

// updateSubmissionParams validates update data; the wire shape matches
// submission creation minus the recording metadata.
func updateSubmissionParams(opts *formstack.UpdateSubmissionOptions) (*formstack.Params, error) {
	params := formstack.NewParams()
	if opts == nil {
		return params, nil
	}

	err := validateFieldPairs("field_ids", "field_values", opts.FieldIDs, opts.FieldValues)
	if err != nil {
		return nil, err
	}

	err = validateTimestamp("timestamp", opts.Timestamp)
	if err != nil {
		return nil, err
	}

	for i, id := range opts.FieldIDs {
		params.Set("field_"+formatID(id), opts.FieldValues[i])
	}

	if opts.Timestamp != "" {
		params.Set("timestamp", opts.Timestamp)
	}

	return params, nil
}
