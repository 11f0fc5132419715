package timerange

import "fmt"

// FormatError indicates that a timestamp-ranges literal could not be
// parsed into (start, end) pairs.
type FormatError struct {
	Literal string
	Reason  string
}

func (e *FormatError) Error() string {
	if e.Literal == "" {
		return fmt.Sprintf("invalid timestamp ranges: %s", e.Reason)
	}
	return fmt.Sprintf("invalid timestamp ranges %q: %s", e.Literal, e.Reason)
}

// RangeError indicates that a parsed range is out of bounds: negative
// start, inverted, or extending past the video duration. Index is
// 1-based, matching the order the user supplied.
type RangeError struct {
	Index  int
	Range  Range
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range %d %s: %s", e.Index, e.Range, e.Reason)
}
