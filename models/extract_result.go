package models

import (
	"fmt"
	"strings"
)

// ExtractResult represents the outcome of extracting a single clip.
//
// It enforces logical consistency: successful results must have an
// output path and no error, while failed results must have an error.
//
// Use NewExtractResultSuccess or NewExtractResultFailure to create
// validated instances.
type ExtractResult struct {
	Index      int    `json:"index"`
	OutputPath string `json:"output_path"`
	Success    bool   `json:"success"`
	Err        error  `json:"-"`
}

// NewExtractResultSuccess creates a successful ExtractResult with validation.
//
// Returns an error if outputPath is empty or whitespace-only.
func NewExtractResultSuccess(index int, outputPath string) (*ExtractResult, error) {
	er := &ExtractResult{
		Index:      index,
		OutputPath: outputPath,
		Success:    true,
	}
	if err := er.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extract result: %w", err)
	}
	return er, nil
}

// NewExtractResultFailure creates a failed ExtractResult carrying the
// extraction error.
func NewExtractResultFailure(index int, extractErr error) *ExtractResult {
	return &ExtractResult{
		Index:   index,
		Success: false,
		Err:     extractErr,
	}
}

// Validate checks the internal consistency of the result.
func (er *ExtractResult) Validate() error {
	if er.Success {
		if strings.TrimSpace(er.OutputPath) == "" {
			return fmt.Errorf("successful result must have an output path")
		}
		if er.Err != nil {
			return fmt.Errorf("successful result cannot carry an error")
		}
		return nil
	}

	if er.Err == nil {
		return fmt.Errorf("failed result must carry an error")
	}
	return nil
}
