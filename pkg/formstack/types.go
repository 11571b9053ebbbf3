package formstack

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrInvalidIntValue  = errors.New("value is not an integer")
	ErrInvalidBoolValue = errors.New("value is not a boolean")
)

// Int is an int64 that unmarshals from both JSON numbers and the numeric
// strings the Formstack API produces ("id": "12345").
type Int int64

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" || text == `""` {
		*i = 0

		return nil
	}

	text = strings.Trim(text, `"`)

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidIntValue, text)
	}

	*i = Int(value)

	return nil
}

// Int64 returns the value as a plain int64.
func (i Int) Int64() int64 {
	return int64(i)
}

// Bool is a bool that unmarshals from JSON booleans as well as the "0"/"1"
// and "true"/"false" strings the Formstack API produces.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bool) UnmarshalJSON(data []byte) error {
	text := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch text {
	case "1", "true", "True", "TRUE":
		*b = true
	case "0", "", "false", "False", "FALSE", "null":
		*b = false
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBoolValue, text)
	}

	return nil
}

// Bool returns the value as a plain bool.
func (b Bool) Bool() bool {
	return bool(b)
}

// Form represents a Formstack form.
type Form struct {
	ID                Int             `json:"id"                 yaml:"id"`
	Name              string          `json:"name"               yaml:"name"`
	ViewKey           string          `json:"viewkey"            yaml:"viewkey"`
	Created           string          `json:"created"            yaml:"created"`
	Updated           string          `json:"updated"            yaml:"updated"`
	Deleted           Bool            `json:"deleted"            yaml:"deleted"`
	Inactive          Bool            `json:"inactive"           yaml:"inactive"`
	Encrypted         Bool            `json:"encrypted"          yaml:"encrypted"`
	Folder            Int             `json:"folder"             yaml:"folder"`
	Language          string          `json:"language"           yaml:"language"`
	Timezone          string          `json:"timezone"           yaml:"timezone"`
	Submissions       Int             `json:"submissions"        yaml:"submissions"`
	SubmissionsUnread Int             `json:"submissions_unread" yaml:"submissions_unread"`
	Views             Int             `json:"views"              yaml:"views"`
	URL               string          `json:"url"                yaml:"url"`
	EditURL           string          `json:"edit_url"           yaml:"edit_url"`
	DataURL           string          `json:"data_url"           yaml:"data_url"`
	SummaryURL        string          `json:"summary_url"        yaml:"summary_url"`
	RSSURL            string          `json:"rss_url"            yaml:"rss_url"`
	SubmitButtonTitle string          `json:"submit_button_title" yaml:"submit_button_title"`
	Fields            []Field         `json:"fields,omitempty"   yaml:"fields,omitempty"`
}

// FormList represents the flat form listing response.
type FormList struct {
	Forms []Form `json:"forms" yaml:"forms"`
	Total Int    `json:"total" yaml:"total"`
}

// GroupedFormList represents the form listing response when grouping by
// folder is requested; forms appear under their folder's name.
type GroupedFormList struct {
	Folders map[string][]Form `json:"forms" yaml:"forms"`
	Total   Int               `json:"total" yaml:"total"`
}

// FieldOption is one choice of a select, radio, or checkbox field.
type FieldOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// FieldOptionList wraps []FieldOption. Choice fields return an option array
// while other field types return an empty string in the same position, so
// unmarshalling tolerates both.
type FieldOptionList []FieldOption

// UnmarshalJSON implements json.Unmarshaler.
func (l *FieldOptionList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed[0] != '[' {
		*l = nil

		return nil
	}

	var options []FieldOption

	err := json.Unmarshal(data, &options)
	if err != nil {
		return fmt.Errorf("parsing field options: %w", err)
	}

	*l = options

	return nil
}

// Field represents a field on a form.
type Field struct {
	ID           Int             `json:"id"          yaml:"id"`
	Label        string          `json:"label"       yaml:"label"`
	HideLabel    Bool            `json:"hide_label"  yaml:"hide_label"`
	Description  string          `json:"description" yaml:"description"`
	Name         string          `json:"name"        yaml:"name"`
	Type         FieldType       `json:"type"        yaml:"type"`
	Options      FieldOptionList `json:"options"     yaml:"options"`
	Required     Bool            `json:"required"    yaml:"required"`
	Unique       Bool            `json:"uniq"        yaml:"uniq"`
	Hidden       Bool            `json:"hidden"      yaml:"hidden"`
	ReadOnly     Bool            `json:"readonly"    yaml:"readonly"`
	ColumnSpan   Int             `json:"colspan"     yaml:"colspan"`
	Position     Int             `json:"sort"        yaml:"sort"`
	DefaultValue string          `json:"default"     yaml:"default"`
}

// SubmissionDatum is one field's value within a submission. Value holds the
// raw JSON since simple fields return strings while name and address fields
// return objects; FlatValue is the API's flattened text rendering when
// expanded data was requested.
type SubmissionDatum struct {
	Field     Int             `json:"field"                yaml:"field"`
	Value     json.RawMessage `json:"value"                yaml:"value"`
	FlatValue string          `json:"flat_value,omitempty" yaml:"flat_value,omitempty"`
}

// ValueString returns the datum value as plain text. Object and array
// values are returned as their raw JSON.
func (d *SubmissionDatum) ValueString() string {
	var text string

	err := json.Unmarshal(d.Value, &text)
	if err != nil {
		return string(d.Value)
	}

	return text
}

// Submission represents a single form submission.
type Submission struct {
	ID            Int               `json:"id"             yaml:"id"`
	FormID        Int               `json:"form"           yaml:"form"`
	Timestamp     string            `json:"timestamp"      yaml:"timestamp"`
	UserAgent     string            `json:"user_agent"     yaml:"user_agent"`
	RemoteAddr    string            `json:"remote_addr"    yaml:"remote_addr"`
	PaymentStatus string            `json:"payment_status" yaml:"payment_status"`
	Read          Bool              `json:"read"           yaml:"read"`
	Data          []SubmissionDatum `json:"data,omitempty" yaml:"data,omitempty"`
}

// SubmissionList represents the submission listing response.
type SubmissionList struct {
	Submissions []Submission `json:"submissions" yaml:"submissions"`
	Total       Int          `json:"total"       yaml:"total"`
	Pages       Int          `json:"pages"       yaml:"pages"`
}

// SubmissionResult represents the acknowledgement returned by submission
// update and delete calls.
type SubmissionResult struct {
	ID      Int  `json:"id"      yaml:"id"`
	Success Bool `json:"success" yaml:"success"`
}
