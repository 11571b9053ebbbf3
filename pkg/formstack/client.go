package formstack

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// FormsClient provides access to form resources.
type FormsClient interface {
	// List retrieves the forms in the account as a flat list.
	List(ctx context.Context, opts *ListFormsOptions) (*FormList, error)
	// ListGrouped retrieves the forms in the account grouped by folder.
	ListGrouped(ctx context.Context, opts *ListFormsOptions) (*GroupedFormList, error)
	// Get retrieves the details of a single form, including its fields.
	Get(ctx context.Context, formID int64) (*Form, error)
	// Copy creates a copy of a form and returns the new form.
	Copy(ctx context.Context, formID int64) (*Form, error)
}

// FieldsClient provides access to form field resources.
type FieldsClient interface {
	// List retrieves all fields of a form.
	List(ctx context.Context, formID int64) ([]Field, error)
	// Create adds a new field to a form.
	Create(ctx context.Context, formID int64, opts *CreateFieldOptions) (*Field, error)
}

// SubmissionsClient provides access to form submission resources.
type SubmissionsClient interface {
	// List retrieves the submissions of a form.
	List(ctx context.Context, formID int64, opts *ListSubmissionsOptions) (*SubmissionList, error)
	// Get retrieves a single submission.
	Get(ctx context.Context, submissionID int64, opts *GetSubmissionOptions) (*Submission, error)
	// Create submits new data to a form.
	Create(ctx context.Context, formID int64, opts *CreateSubmissionOptions) (*Submission, error)
	// Update overwrites the data of an existing submission.
	Update(ctx context.Context, submissionID int64, opts *UpdateSubmissionOptions) (*SubmissionResult, error)
	// Delete removes a submission.
	Delete(ctx context.Context, submissionID int64) (*SubmissionResult, error)
}

// Client is the top-level interface for the Formstack V2 API.
type Client interface {
	Forms() FormsClient
	Fields() FieldsClient
	Submissions() SubmissionsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a formstack.Client.
//
// # Authentication
//
// The following precedence is applied by the concrete client implementation
// (see pkg/fsclient and internal/client):
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. TokenSource: an oauth2.TokenSource queried for a fresh token whenever
//     the cached one expires.
//
// One of the two must be provided; fsclient.New rejects a config with
// neither.
//
// # Endpoint
//
// Host, Port, and BasePath default to the public Formstack API
// (www.formstack.com:443, /api/v2/). Host may carry an explicit http:// or
// https:// scheme, which is mainly useful for pointing the client at a test
// server; without a scheme, https:// is assumed.
//
// # Timeouts
//
// HTTPTimeout defaults to zero, meaning the client itself never gives up on
// a request. Use context deadlines on individual calls to bound them.
type Config struct {
	// AccessToken: OAuth2 access token used as a static Bearer token.
	AccessToken string
	// TokenSource: alternative credential supplier, consulted when
	// AccessToken is empty.
	TokenSource oauth2.TokenSource

	// Host: API host, default "www.formstack.com". May include a scheme.
	Host string
	// Port: API port, default 443. Ignored when Host carries an explicit
	// port or the value is the default for the scheme.
	Port int
	// BasePath: versioned API prefix, default "/api/v2/". Resource methods
	// append relative endpoint suffixes to it.
	BasePath string

	// HTTPTimeout: optional overall timeout per request. Zero means no
	// client-side timeout; rely on context deadlines instead.
	HTTPTimeout time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string

	// RequestInterceptors run before each request is sent, in order.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run after each response is received, in order.
	ResponseInterceptors []ResponseInterceptor
}

// SortDirection orders submission listings.
type SortDirection string

// Accepted sort directions.
const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// FieldType identifies the kind of field that can be added to a form.
type FieldType string

// Field types accepted by the field creation endpoint.
const (
	FieldTypeText       FieldType = "text"
	FieldTypeTextarea   FieldType = "textarea"
	FieldTypeName       FieldType = "name"
	FieldTypeAddress    FieldType = "address"
	FieldTypeEmail      FieldType = "email"
	FieldTypePhone      FieldType = "phone"
	FieldTypeCreditCard FieldType = "creditcard"
	FieldTypeDateTime   FieldType = "datetime"
	FieldTypeFile       FieldType = "file"
	FieldTypeNumber     FieldType = "number"
	FieldTypeSelect     FieldType = "select"
	FieldTypeRadio      FieldType = "radio"
	FieldTypeCheckbox   FieldType = "checkbox"
	FieldTypeMatrix     FieldType = "matrix"
	FieldTypeRichText   FieldType = "richtext"
	FieldTypeEmbed      FieldType = "embed"
	FieldTypeProduct    FieldType = "product"
	FieldTypeSection    FieldType = "section"
)

var validFieldTypes = map[FieldType]struct{}{
	FieldTypeText:       {},
	FieldTypeTextarea:   {},
	FieldTypeName:       {},
	FieldTypeAddress:    {},
	FieldTypeEmail:      {},
	FieldTypePhone:      {},
	FieldTypeCreditCard: {},
	FieldTypeDateTime:   {},
	FieldTypeFile:       {},
	FieldTypeNumber:     {},
	FieldTypeSelect:     {},
	FieldTypeRadio:      {},
	FieldTypeCheckbox:   {},
	FieldTypeMatrix:     {},
	FieldTypeRichText:   {},
	FieldTypeEmbed:      {},
	FieldTypeProduct:    {},
	FieldTypeSection:    {},
}

// ValidFieldType reports whether t is a field type the API accepts.
func ValidFieldType(t FieldType) bool {
	_, ok := validFieldTypes[t]

	return ok
}

// ListFormsOptions controls form listing.
type ListFormsOptions struct {
	// Page: result page to fetch, starting at 1. Nil leaves paging to the
	// server default.
	Page *int
	// PerPage: results per page, between 1 and 100. Nil leaves the page
	// size to the server default.
	PerPage *int
}

// CreateFieldOptions describes a field to add to a form.
type CreateFieldOptions struct {
	// FieldType: required; must be one of the FieldType constants.
	FieldType FieldType
	// Label: display label of the field.
	Label string
	// HideLabel: hides the label on the form.
	HideLabel bool
	// Description: help text shown with the field.
	Description string
	// DefaultValue: value pre-filled into the field.
	DefaultValue string
	// Options: choice labels for select, radio, and checkbox fields.
	Options []string
	// OptionValues: submitted values backing Options; when present it must
	// have the same length as Options.
	OptionValues []string
	// Required: the field must be filled before the form can be submitted.
	Required bool
	// ReadOnly: the field cannot be edited by the person filling the form.
	ReadOnly bool
	// Hidden: the field is not shown on the form.
	Hidden bool
	// Unique: submitted values must be unique across submissions.
	Unique bool
	// ColumnSpan: number of layout columns the field spans.
	ColumnSpan int
	// Position: placement of the field within the form, starting at 1.
	Position int
}

// ListSubmissionsOptions controls submission listing.
type ListSubmissionsOptions struct {
	// Page: result page to fetch, starting at 1.
	Page *int
	// PerPage: results per page, between 1 and 100.
	PerPage *int
	// Sort: submission order by timestamp, SortAscending or SortDescending.
	Sort SortDirection
	// MinTime: lower bound on submission time, canonical
	// "YYYY-MM-DD HH:MM:SS" form.
	MinTime string
	// MaxTime: upper bound on submission time, canonical form.
	MaxTime string
	// SearchFieldIDs: fields to match; paired positionally with
	// SearchFieldValues and required to have the same length.
	SearchFieldIDs []int64
	// SearchFieldValues: values the paired fields must equal.
	SearchFieldValues []string
	// Data: include submission field data in the listing.
	Data bool
	// ExpandData: resolve field IDs in returned data to full field labels.
	ExpandData bool
	// EncryptionPassword: password for forms with encrypted submissions.
	EncryptionPassword string
}

// GetSubmissionOptions controls single-submission reads.
type GetSubmissionOptions struct {
	// EncryptionPassword: password for forms with encrypted submissions.
	EncryptionPassword string
}

// CreateSubmissionOptions describes data submitted to a form.
type CreateSubmissionOptions struct {
	// FieldIDs: fields being filled; paired positionally with FieldValues
	// and required to have the same length.
	FieldIDs []int64
	// FieldValues: values for the paired fields.
	FieldValues []string
	// Timestamp: submission time, canonical "YYYY-MM-DD HH:MM:SS" form.
	// Empty lets the server assign the current time.
	Timestamp string
	// IPAddress: address recorded for the submission.
	IPAddress string
	// UserAgent: user agent recorded for the submission.
	UserAgent string
	// PaymentID: payment reference attached to the submission.
	PaymentID string
	// ReadOnly: marks the submission read-only.
	ReadOnly bool
}

// UpdateSubmissionOptions describes changes to an existing submission.
type UpdateSubmissionOptions struct {
	// FieldIDs: fields being rewritten; paired positionally with
	// FieldValues and required to have the same length.
	FieldIDs []int64
	// FieldValues: new values for the paired fields.
	FieldValues []string
	// Timestamp: replacement submission time, canonical form.
	Timestamp string
}

// IntPtr returns a pointer to v, for use in options structs.
func IntPtr(v int) *int {
	return &v
}
