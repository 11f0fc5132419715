package timerange

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRanges_Valid(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		expected []Range
	}{
		{
			name:     "single range",
			literal:  "[(0,10)]",
			expected: []Range{{0, 10}},
		},
		{
			name:     "multiple ranges",
			literal:  "[(0,10), (20,30), (45,60)]",
			expected: []Range{{0, 10}, {20, 30}, {45, 60}},
		},
		{
			name:     "float values",
			literal:  "[(0.5,10.25), (20.1,30.9)]",
			expected: []Range{{0.5, 10.25}, {20.1, 30.9}},
		},
		{
			name:     "leading dot floats",
			literal:  "[(.5,1)]",
			expected: []Range{{0.5, 1}},
		},
		{
			name:     "extra whitespace",
			literal:  "  [ ( 0 , 10 ) ,  ( 20 , 30 ) ]  ",
			expected: []Range{{0, 10}, {20, 30}},
		},
		{
			name:     "unsorted order preserved",
			literal:  "[(20,30), (0,10)]",
			expected: []Range{{20, 30}, {0, 10}},
		},
		{
			name:     "overlapping ranges allowed",
			literal:  "[(0,15), (10,20)]",
			expected: []Range{{0, 15}, {10, 20}},
		},
		{
			name:     "negative start parses (rejected later by validation)",
			literal:  "[(-5,10)]",
			expected: []Range{{-5, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges, err := ParseRanges(tt.literal)
			if err != nil {
				t.Fatalf("ParseRanges(%q) returned error: %v", tt.literal, err)
			}
			if len(ranges) != len(tt.expected) {
				t.Fatalf("Expected %d ranges, got %d", len(tt.expected), len(ranges))
			}
			for i, r := range ranges {
				if r != tt.expected[i] {
					t.Errorf("Range %d: expected %v, got %v", i, tt.expected[i], r)
				}
			}
		})
	}
}

func TestParseRanges_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		literal    string
		wantReason string
	}{
		{"empty string", "", "cannot be empty"},
		{"whitespace only", "   ", "cannot be empty"},
		{"missing brackets", "(0,10)", "square brackets"},
		{"missing closing bracket", "[(0,10)", "square brackets"},
		{"empty brackets", "[]", "at least one timestamp range"},
		{"non-numeric values", "[(a,b)]", "valid numbers"},
		{"unbalanced parentheses", "[(0,10), (20,30]", "exactly two numbers"},
		{"three elements in tuple", "[(0,10,20)]", "valid numbers"},
		{"single element in tuple", "[(10)]", "valid numbers"},
		{"partial non-numeric tuple", "[(0,10), (x,30)]", "exactly two numbers"},
		{"bare dot", "[(.,10)]", "valid numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRanges(tt.literal)
			if err == nil {
				t.Fatalf("Expected error for %q", tt.literal)
			}

			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("Expected *FormatError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("Expected error containing %q, got %q", tt.wantReason, err.Error())
			}
		})
	}
}

func TestValidateRanges(t *testing.T) {
	duration := 100.0

	tests := []struct {
		name       string
		ranges     []Range
		wantIndex  int // 0 = no error expected
		wantReason string
	}{
		{
			name:   "all valid",
			ranges: []Range{{0, 10}, {50, 60}},
		},
		{
			name:   "end equal to duration is valid",
			ranges: []Range{{90, 100}},
		},
		{
			name:   "unsorted and overlapping are valid",
			ranges: []Range{{50, 80}, {0, 60}},
		},
		{
			name:       "negative start",
			ranges:     []Range{{-1, 10}},
			wantIndex:  1,
			wantReason: "start time cannot be negative",
		},
		{
			name:       "inverted range",
			ranges:     []Range{{10, 5}},
			wantIndex:  1,
			wantReason: "start time must be less than end time",
		},
		{
			name:       "zero-length range",
			ranges:     []Range{{10, 10}},
			wantIndex:  1,
			wantReason: "start time must be less than end time",
		},
		{
			name:       "end exceeds duration",
			ranges:     []Range{{90, 110}},
			wantIndex:  1,
			wantReason: "end time exceeds video duration",
		},
		{
			name:       "first invalid aborts despite later valid ranges",
			ranges:     []Range{{10, 5}, {0, 10}, {20, 30}},
			wantIndex:  1,
			wantReason: "start time must be less than end time",
		},
		{
			name:       "invalid range after valid ones is still reported",
			ranges:     []Range{{0, 10}, {20, 30}, {95, 120}},
			wantIndex:  3,
			wantReason: "end time exceeds video duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRanges(tt.ranges, duration)

			if tt.wantIndex == 0 {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Expected error but got none")
			}

			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("Expected *RangeError, got %T: %v", err, err)
			}
			if rangeErr.Index != tt.wantIndex {
				t.Errorf("Expected failing index %d, got %d", tt.wantIndex, rangeErr.Index)
			}
			if !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("Expected error containing %q, got %q", tt.wantReason, err.Error())
			}
		})
	}
}

func TestTotalDuration(t *testing.T) {
	tests := []struct {
		name     string
		ranges   []Range
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []Range{{0, 10}}, 10},
		{"multiple", []Range{{0, 10}, {50, 60}}, 20},
		{"fractional", []Range{{0.5, 2.75}}, 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalDuration(tt.ranges); got != tt.expected {
				t.Errorf("TotalDuration() = %g; want %g", got, tt.expected)
			}
		})
	}
}
