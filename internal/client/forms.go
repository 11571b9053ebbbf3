package client

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/justin-frenzel/formstack-go/internal/http"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// FormsClient implements formstack.FormsClient.
type FormsClient struct {
	httpClient *internalhttp.Client
}

// NewFormsClient creates a new forms client.
func NewFormsClient(httpClient *internalhttp.Client) *FormsClient {
	return &FormsClient{
		httpClient: httpClient,
	}
}

// List implements formstack.FormsClient.List.
func (c *FormsClient) List(ctx context.Context, opts *formstack.ListFormsOptions) (*formstack.FormList, error) {
	params, err := formListParams(opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "form.json", params)
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}

	var list formstack.FormList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing forms response: %w", err)
	}

	return &list, nil
}

// ListGrouped implements formstack.FormsClient.ListGrouped.
func (c *FormsClient) ListGrouped(ctx context.Context, opts *formstack.ListFormsOptions) (*formstack.GroupedFormList, error) {
	params, err := formListParams(opts)
	if err != nil {
		return nil, err
	}

	params.SetBool("folders", true)

	resp, err := c.httpClient.Get(ctx, "form.json", params)
	if err != nil {
		return nil, fmt.Errorf("listing forms by folder: %w", err)
	}

	var list formstack.GroupedFormList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing grouped forms response: %w", err)
	}

	return &list, nil
}

// Get implements formstack.FormsClient.Get.
func (c *FormsClient) Get(ctx context.Context, formID int64) (*formstack.Form, error) {
	err := validateID("form id", formID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "form/"+formatID(formID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting form: %w", err)
	}

	var form formstack.Form

	err = json.Unmarshal(resp.Body, &form)
	if err != nil {
		return nil, fmt.Errorf("parsing form response: %w", err)
	}

	return &form, nil
}

// Copy implements formstack.FormsClient.Copy.
func (c *FormsClient) Copy(ctx context.Context, formID int64) (*formstack.Form, error) {
	err := validateID("form id", formID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "form/"+formatID(formID)+"/copy", nil)
	if err != nil {
		return nil, fmt.Errorf("copying form: %w", err)
	}

	var form formstack.Form

	err = json.Unmarshal(resp.Body, &form)
	if err != nil {
		return nil, fmt.Errorf("parsing copied form response: %w", err)
	}

	return &form, nil
}

// formListParams validates listing options and maps them onto wire
// parameters.
func formListParams(opts *formstack.ListFormsOptions) (*formstack.Params, error) {
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

	applyPaging(params, opts.Page, opts.PerPage)

	return params, nil
}
