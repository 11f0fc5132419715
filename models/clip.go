// Package models provides core data structures for the clip pipeline.
package models

import (
	"fmt"
	"strings"
)

// Clip represents one sub-range of the source video to be extracted.
//
// Clips are created from the user's validated timestamp ranges. Index
// records the position in the input sequence, which defines the
// concatenation order of the output.
//
// Note: Start and End use float64 to preserve fractional seconds, which
// is critical for precise cut points and audio sync.
type Clip struct {
	Index      int     `json:"index"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	SourcePath string  `json:"source_path"`
}

// NewClip creates a new Clip with validation.
//
// Returns an error if the clip parameters are invalid:
//   - SourcePath cannot be empty or whitespace-only
//   - Index must be at least 1
//   - Start must be less than End
func NewClip(index int, start, end float64, sourcePath string) (*Clip, error) {
	c := &Clip{
		Index:      index,
		Start:      start,
		End:        end,
		SourcePath: sourcePath,
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid clip: %w", err)
	}
	return c, nil
}

// Validate checks if the Clip has valid data.
func (c *Clip) Validate() error {
	if strings.TrimSpace(c.SourcePath) == "" {
		return fmt.Errorf("source_path cannot be empty")
	}

	if c.Index < 1 {
		return fmt.Errorf("index must be at least 1")
	}

	if c.Start >= c.End {
		return fmt.Errorf("start must be less than end")
	}

	return nil
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	return c.End - c.Start
}
