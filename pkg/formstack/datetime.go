package formstack

import (
	"fmt"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

// canonicalTimestamp matches "YYYY-MM-DD HH:MM:SS" with 1-2 digit month,
// day, hour, minute, and second components.
var canonicalTimestamp = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2} \d{1,2}:\d{1,2}:\d{1,2}$`)

// ParseToEpochSeconds parses a date-time string into seconds since the Unix
// epoch. It accepts anything the underlying general date parser understands;
// zone-less input is interpreted as UTC. Instants at or before the epoch are
// rejected.
func ParseToEpochSeconds(text string) (int64, error) {
	parsed, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}

	secs := parsed.Unix()
	if secs <= 0 {
		return 0, fmt.Errorf("%w: %q is not after the epoch", ErrInvalidTimestamp, text)
	}

	return secs, nil
}

// MatchesCanonicalFormat reports whether text has the exact
// "YYYY-MM-DD HH:MM:SS" shape the API expects. Each of the month, day,
// hour, minute, and second components may be one or two digits.
func MatchesCanonicalFormat(text string) bool {
	return canonicalTimestamp.MatchString(text)
}

// ValidateTimestamp applies both checks resource methods require of a
// timestamp argument: the text must parse to a post-epoch instant and must
// be in the canonical format.
func ValidateTimestamp(text string) error {
	_, err := ParseToEpochSeconds(text)
	if err != nil {
		return err
	}

	if !MatchesCanonicalFormat(text) {
		return fmt.Errorf("%w: %q is not in YYYY-MM-DD HH:MM:SS form", ErrInvalidTimestamp, text)
	}

	return nil
}
