package formstack_test

import (
	"testing"

	"github.com/justin-frenzel/formstack-go/pkg/formstack"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestParams_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *formstack.Params
		expected string
	}{
		{
			name:     "empty",
			params:   formstack.NewParams(),
			expected: "",
		},
		{
			name:     "single scalar",
			params:   formstack.NewParams().Set("page", "2"),
			expected: "page=2",
		},
		{
			name: "scalars keep insertion order",
			params: formstack.NewParams().
				Set("min_time", "2021-01-01 00:00:00").
				Set("per_page", "50").
				Set("sort", "DESC"),
			expected: "min_time=2021-01-01%2000%3A00%3A00&per_page=50&sort=DESC",
		},
		{
			name: "nested mapping expands in inner order",
			params: formstack.NewParams().
				Set("field_type", "select").
				SetSub("options", "0", "Red").
				SetSub("options", "1", "Blue"),
			expected: "field_type=select&options%5B0%5D=Red&options%5B1%5D=Blue",
		},
		{
			name:     "space escapes as percent twenty",
			params:   formstack.NewParams().Set("label", "Full Name"),
			expected: "label=Full%20Name",
		},
		{
			name:     "percent sign escapes",
			params:   formstack.NewParams().Set("discount", "50%"),
			expected: "discount=50%25",
		},
		{
			name:     "reserved characters escape",
			params:   formstack.NewParams().Set("q", "a/b?c#d"),
			expected: "q=a%2Fb%3Fc%23d",
		},
		{
			name:     "separators inside values survive the single pass",
			params:   formstack.NewParams().Set("note", "a=b&c"),
			expected: "note=a=b&c",
		},
		{
			name:     "unreserved characters pass through",
			params:   formstack.NewParams().Set("key", "a-b_c.d~e"),
			expected: "key=a-b_c.d~e",
		},
		{
			name:     "true flag encodes as one",
			params:   formstack.NewParams().SetBool("expand_data", true),
			expected: "expand_data=1",
		},
		{
			name: "false flag omits the key",
			params: formstack.NewParams().
				Set("page", "1").
				SetBool("expand_data", false),
			expected: "page=1",
		},
		{
			name: "replacing a key keeps its position",
			params: formstack.NewParams().
				Set("page", "1").
				Set("per_page", "25").
				Set("page", "3"),
			expected: "page=3&per_page=25",
		},
		{
			name: "integer setters format base ten",
			params: formstack.NewParams().
				SetInt("page", 7).
				SetInt64("search_field_1", 1234567890123),
			expected: "page=7&search_field_1=1234567890123",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.params.Encode())
		})
	}
}

func TestParams_SetSubReplacesInPlace(t *testing.T) {
	t.Parallel()

	params := formstack.NewParams().
		SetSub("options", "0", "Red").
		SetSub("options", "1", "Blue").
		SetSub("options", "0", "Green")

	assert.Equal(t, "options%5B0%5D=Green&options%5B1%5D=Blue", params.Encode())
	assert.Equal(t, 1, params.Len())
}

func TestParams_Empty(t *testing.T) {
	t.Parallel()

	var nilParams *formstack.Params

	assert.True(t, nilParams.Empty())
	assert.True(t, formstack.NewParams().Empty())
	assert.False(t, formstack.NewParams().Set("a", "b").Empty())
}
