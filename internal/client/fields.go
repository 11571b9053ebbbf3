package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	internalhttp "github.com/justin-frenzel/formstack-go/internal/http"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// FieldsClient implements formstack.FieldsClient.
type FieldsClient struct {
	httpClient *internalhttp.Client
}

// NewFieldsClient creates a new fields client.
func NewFieldsClient(httpClient *internalhttp.Client) *FieldsClient {
	return &FieldsClient{
		httpClient: httpClient,
	}
}

// List implements formstack.FieldsClient.List.
func (c *FieldsClient) List(ctx context.Context, formID int64) ([]formstack.Field, error) {
	err := validateID("form id", formID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "form/"+formatID(formID)+"/field", nil)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	var fields []formstack.Field

	err = json.Unmarshal(resp.Body, &fields)
	if err != nil {
		return nil, fmt.Errorf("parsing fields response: %w", err)
	}

	return fields, nil
}

// Create implements formstack.FieldsClient.Create.
func (c *FieldsClient) Create(ctx context.Context, formID int64, opts *formstack.CreateFieldOptions) (*formstack.Field, error) {
	err := validateID("form id", formID)
	if err != nil {
		return nil, err
	}

	params, err := createFieldParams(opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "form/"+formatID(formID)+"/field", params)
	if err != nil {
		return nil, fmt.Errorf("creating field: %w", err)
	}

	var field formstack.Field

	err = json.Unmarshal(resp.Body, &field)
	if err != nil {
		return nil, fmt.Errorf("parsing field response: %w", err)
	}

	return &field, nil
}

// createFieldParams validates field creation options and maps them onto
// wire parameter names.
func createFieldParams(opts *formstack.CreateFieldOptions) (*formstack.Params, error) {
	if opts == nil {
		return nil, &formstack.ValidationError{Field: "field_type", Reason: "field options are required"}
	}

	if !formstack.ValidFieldType(opts.FieldType) {
		return nil, &formstack.ValidationError{
			Field:  "field_type",
			Reason: fmt.Sprintf("%q is not an accepted field type", opts.FieldType),
		}
	}

	if len(opts.OptionValues) > 0 && len(opts.OptionValues) != len(opts.Options) {
		return nil, &formstack.ValidationError{
			Field: "options_values",
			Reason: fmt.Sprintf("options and options_values must have the same length, got %d and %d",
				len(opts.Options), len(opts.OptionValues)),
		}
	}

	params := formstack.NewParams().Set("field_type", string(opts.FieldType))

	if opts.Label != "" {
		params.Set("label", opts.Label)
	}

	params.SetBool("hide_label", opts.HideLabel)

	if opts.Description != "" {
		params.Set("description", opts.Description)
	}

	if opts.DefaultValue != "" {
		params.Set("default_value", opts.DefaultValue)
	}

	for i, option := range opts.Options {
		params.SetSub("options", strconv.Itoa(i), option)
	}

	for i, value := range opts.OptionValues {
		params.SetSub("options_values", strconv.Itoa(i), value)
	}

	params.SetBool("required", opts.Required)
	params.SetBool("readonly", opts.ReadOnly)
	params.SetBool("hidden", opts.Hidden)
	params.SetBool("uniq", opts.Unique)

	if opts.ColumnSpan > 0 {
		params.SetInt("colspan", opts.ColumnSpan)
	}

	if opts.Position > 0 {
		params.SetInt("sort", opts.Position)
	}

	return params, nil
}
