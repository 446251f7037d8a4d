package record

import (
	"strconv"
	"strings"
)

// Check is the shared validation predicate. It evaluates borrowed views of
// a candidate name and score and reports whether they form a valid record,
// returning the parsed score on success.
//
// The checks run in order and short-circuit on the first failure: trim name,
// trim score, parse score, range check. Neither trimming nor parsing copies
// the input.
func Check(name, score string) (int, bool) {
	if strings.TrimSpace(name) == "" {
		return 0, false
	}
	return ParseScore(strings.TrimSpace(score))
}

// ParseScore parses a trimmed score view as a base-10 integer and checks it
// against the valid range. An empty view, any non-numeric character, a value
// outside [MinScore, MaxScore], and overflow beyond the int range all fail
// identically.
func ParseScore(view string) (int, bool) {
	if view == "" {
		return 0, false
	}
	n, err := strconv.Atoi(view)
	if err != nil || n < MinScore || n > MaxScore {
		return 0, false
	}
	return n, true
}

// TrimmedName returns the borrowed trimmed view of a raw name.
func TrimmedName(r RawRecord) string { return strings.TrimSpace(r.Name) }

// TrimmedScore returns the borrowed trimmed view of a raw score.
func TrimmedScore(r RawRecord) string { return strings.TrimSpace(r.Score) }
