package judge

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// OutputsMatch compares produced output against expected output.
// Present values are trimmed and every internal whitespace run (newlines
// included) collapses to a single space before an exact comparison, so
// "0 1" matches "0   1\n" but never "1 0". A nil value only ever matches
// another nil: present-vs-absent is a mismatch.
func OutputsMatch(actual, expected *string) bool {
	if actual == nil || expected == nil {
		return actual == expected
	}
	return normalize(*actual) == normalize(*expected)
}

func normalize(s string) string {
	return whitespaceRuns.ReplaceAllString(strings.TrimSpace(s), " ")
}
