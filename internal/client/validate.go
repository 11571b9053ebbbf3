package client

import (
	"fmt"
	"strconv"

	"github.com/justin-frenzel/formstack-go/internal/constants"
	"github.com/justin-frenzel/formstack-go/pkg/formstack"
)

// validateID rejects non-positive resource IDs before any I/O.
func validateID(field string, id int64) error {
	if id <= 0 {
		return &formstack.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be a positive integer, got %d", id),
		}
	}

	return nil
}

// validatePage rejects non-positive page numbers. A nil page leaves paging
// to the server default.
func validatePage(page *int) error {
	if page == nil {
		return nil
	}

	if *page < 1 {
		return &formstack.ValidationError{
			Field:  "page",
			Reason: fmt.Sprintf("must be at least 1, got %d", *page),
		}
	}

	return nil
}

// validatePerPage enforces the API's page size bounds. A nil value leaves
// the page size to the server default.
func validatePerPage(perPage *int) error {
	if perPage == nil {
		return nil
	}

	if *perPage < constants.MinPerPage || *perPage > constants.MaxPerPage {
		return &formstack.ValidationError{
			Field: "per_page",
			Reason: fmt.Sprintf("must be between %d and %d, got %d",
				constants.MinPerPage, constants.MaxPerPage, *perPage),
		}
	}

	return nil
}

// validateSort accepts only the two sort directions the API understands.
// An empty direction leaves ordering to the server default.
func validateSort(sort formstack.SortDirection) error {
	switch sort {
	case "", formstack.SortAscending, formstack.SortDescending:
		return nil
	default:
		return &formstack.ValidationError{
			Field:  "sort",
			Reason: fmt.Sprintf("must be %s or %s, got %q", formstack.SortAscending, formstack.SortDescending, sort),
		}
	}
}

// validateFieldPairs checks the positional id/value pairing used by
// submission writes and search filters: equal lengths, positive IDs.
func validateFieldPairs(idsField, valuesField string, ids []int64, values []string) error {
	if len(ids) != len(values) {
		return &formstack.ValidationError{
			Field: idsField,
			Reason: fmt.Sprintf("%s and %s must have the same length, got %d and %d",
				idsField, valuesField, len(ids), len(values)),
		}
	}

	for _, id := range ids {
		err := validateID(idsField, id)
		if err != nil {
			return err
		}
	}

	return nil
}

// validateTimestamp applies both date checks to a non-empty timestamp
// argument: parseable to a post-epoch instant and canonically shaped.
func validateTimestamp(field, text string) error {
	if text == "" {
		return nil
	}

	err := formstack.ValidateTimestamp(text)
	if err != nil {
		return &formstack.ValidationError{Field: field, Reason: err.Error()}
	}

	return nil
}

// applyPaging copies validated page and per-page values onto params.
func applyPaging(params *formstack.Params, page, perPage *int) {
	if page != nil {
		params.SetInt("page", *page)
	}

	if perPage != nil {
		params.SetInt("per_page", *perPage)
	}
}

// formatID renders a resource ID for use in an endpoint path.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
