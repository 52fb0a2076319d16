// Package workload builds request queues for the engine: it parses delimited
// track lists, generates random queues, and loads scenario files.
package workload

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a malformed token in a track list.
// Position is the zero-based index of the token among non-empty tokens.
type ParseError struct {
	Token    string
	Position int
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("request %d: %q is not an integer track", e.Position, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// isDelimiter reports whether r separates tracks: commas, semicolons and whitespace.
func isDelimiter(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// ParseRequests parses a delimited list of track numbers such as
// "98, 183, 37" or "98 183;37". Empty input yields an empty queue.
// Range checks against the disk size are left to the engine.
func ParseRequests(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, isDelimiter)
	reqs := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Token: f, Position: i, Err: err}
		}
		reqs = append(reqs, v)
	}
	return reqs, nil
}

// FormatRequests renders a queue as "98, 183, 37".
func FormatRequests(reqs []int) string {
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ", ")
}
