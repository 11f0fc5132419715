// Package timerange provides parsing and validation of timestamp ranges
// used to cut clips from a source video.
//
// Ranges are supplied as a literal like "[(0,10), (20,30), (45,60)]".
// Order is significant: it defines the concatenation order of the output.
// Overlapping or unsorted ranges are allowed and are neither merged nor
// reordered.
package timerange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Range is a (start, end) pair in seconds.
//
// Start and End use float64 to preserve fractional seconds, which is
// critical for precise cut points and audio sync.
type Range struct {
	Start float64
	End   float64
}

// Duration returns the length of the range in seconds.
func (r Range) Duration() float64 {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("(%g, %g)", r.Start, r.End)
}

// tuplePattern matches a "(start,end)" tuple with integer or float values,
// including forms like ".5". A leading minus sign is accepted here so that
// negative starts surface as a RangeError during validation rather than a
// parse failure.
var tuplePattern = regexp.MustCompile(`\(\s*(-?(?:[0-9]+\.?[0-9]*|\.[0-9]+))\s*,\s*(-?(?:[0-9]+\.?[0-9]*|\.[0-9]+))\s*\)`)

// ParseRanges parses a timestamp-ranges literal like "[(0,10), (20,30)]"
// into an ordered slice of Range values, preserving input order.
//
// Returns a *FormatError if the literal is malformed: missing brackets,
// empty sequence, non-numeric values, or a tuple that does not consist of
// exactly two numbers. No bounds checking is performed here; use
// ValidateRanges once the video duration is known.
func ParseRanges(literal string) ([]Range, error) {
	trimmed := strings.TrimSpace(literal)

	if trimmed == "" {
		return nil, &FormatError{Literal: literal, Reason: "timestamp ranges cannot be empty"}
	}

	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil, &FormatError{
			Literal: literal,
			Reason:  "timestamp ranges must be enclosed in square brackets: [(start,end), ...]",
		}
	}

	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return nil, &FormatError{
			Literal: literal,
			Reason:  "at least one timestamp range must be provided inside brackets",
		}
	}

	matches := tuplePattern.FindAllStringSubmatch(inner, -1)
	if len(matches) == 0 {
		return nil, &FormatError{
			Literal: literal,
			Reason:  "use [(start,end), (start,end), ...] with valid numbers",
		}
	}

	// Every opening parenthesis must correspond to a well-formed tuple.
	// A mismatch means a tuple was malformed: unbalanced parentheses,
	// a non-numeric value, or not exactly two elements.
	if len(matches) != strings.Count(inner, "(") {
		return nil, &FormatError{
			Literal: literal,
			Reason:  "each range must be in format (start,end) with exactly two numbers",
		}
	}

	ranges := make([]Range, 0, len(matches))
	for _, m := range matches {
		start, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, &FormatError{Literal: literal, Reason: fmt.Sprintf("invalid start time %q", m[1])}
		}
		end, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, &FormatError{Literal: literal, Reason: fmt.Sprintf("invalid end time %q", m[2])}
		}
		ranges = append(ranges, Range{Start: start, End: end})
	}

	return ranges, nil
}

// ValidateRanges checks every range, in order, against the video duration.
//
// Per-range checks:
//  1. start >= 0
//  2. start < end
//  3. end <= duration
//
// Validation is all-or-nothing: the first failing range aborts with a
// *RangeError carrying its 1-based index, regardless of how many other
// ranges are valid.
func ValidateRanges(ranges []Range, duration float64) error {
	for i, r := range ranges {
		if r.Start < 0 {
			return &RangeError{Index: i + 1, Range: r, Reason: "start time cannot be negative"}
		}
		if r.Start >= r.End {
			return &RangeError{Index: i + 1, Range: r, Reason: "start time must be less than end time"}
		}
		if r.End > duration {
			return &RangeError{
				Index:  i + 1,
				Range:  r,
				Reason: fmt.Sprintf("end time exceeds video duration (%.2fs)", duration),
			}
		}
	}
	return nil
}

// TotalDuration returns the sum of all range lengths in seconds. This is
// the expected duration of the combined output.
func TotalDuration(ranges []Range) float64 {
	total := 0.0
	for _, r := range ranges {
		total += r.Duration()
	}
	return total
}
