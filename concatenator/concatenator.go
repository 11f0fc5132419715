// Package concatenator merges extracted clips into a single output file
// using ffmpeg's concat demuxer.
package concatenator

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"clipsplit/models"
)

// Concatenator handles merging extracted clips into a final output file.
//
// Combination is all-or-nothing: any failed or missing clip aborts, and
// clips are joined strictly in input order.
type Concatenator struct{}

// NewConcatenator creates a new concatenator
func NewConcatenator() *Concatenator {
	return &Concatenator{}
}

// Concatenate merges extracted clips into a final output file.
//
// The results must be in input order with 1-based gapless indexes; clips
// are stream-copied into the output, so no re-encoding happens here.
func (c *Concatenator) Concatenate(ctx context.Context, results []*models.ExtractResult, finalOutputPath string) error {
	if err := c.validateResults(results); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Create concat file for ffmpeg
	concatFilePath, err := c.createConcatFile(results)
	if err != nil {
		return fmt.Errorf("failed to create concat file: %w", err)
	}
	defer os.Remove(concatFilePath) // Clean up concat file after use

	// Run ffmpeg concat
	if err := c.runConcat(ctx, concatFilePath, finalOutputPath); err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}

	return nil
}

// validateResults confirms every clip succeeded, exists on disk, and that
// the sequence is gapless and in order.
func (c *Concatenator) validateResults(results []*models.ExtractResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no clips provided")
	}

	for i, result := range results {
		if !result.Success || result.OutputPath == "" {
			return fmt.Errorf("clip %d was not extracted successfully: %v", result.Index, result.Err)
		}
		if _, err := os.Stat(result.OutputPath); err != nil {
			return fmt.Errorf("clip %d output missing: %w", result.Index, err)
		}
		if result.Index != i+1 {
			return fmt.Errorf("clip order broken: expected index %d at position %d, got %d", i+1, i, result.Index)
		}
	}

	return nil
}

// createConcatFile creates a text file listing all clip paths for ffmpeg's
// concat demuxer.
// Format: file '/path/to/clip_001.mp4'
//
//	file '/path/to/clip_002.mp4'
func (c *Concatenator) createConcatFile(results []*models.ExtractResult) (string, error) {
	tmpFile, err := os.CreateTemp("", "concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmpFile.Close()

	for _, result := range results {
		// Use absolute path and escape single quotes
		absPath, err := filepath.Abs(result.OutputPath)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path for %s: %w", result.OutputPath, err)
		}

		escapedPath := strings.ReplaceAll(absPath, "'", "'\\''")

		line := fmt.Sprintf("file '%s'\n", escapedPath)
		if _, err := tmpFile.WriteString(line); err != nil {
			return "", fmt.Errorf("failed to write to concat file: %w", err)
		}
	}

	return tmpFile.Name(), nil
}

// runConcat executes the ffmpeg concat operation
func (c *Concatenator) runConcat(ctx context.Context, concatFilePath, outputPath string) error {
	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", concatFilePath,
		"-c", "copy", // Copy without re-encoding
		"-y", // Overwrite output file
		outputPath,
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	// Capture output for error reporting
	output, err := cmd.CombinedOutput()
	if err != nil {
		// Cancellation kills the subprocess; surface the context error
		// instead of "signal: killed".
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("ffmpeg error: %w\nOutput: %s", err, string(output))
	}

	// Verify output file was created
	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("output file not created: %w", err)
	}

	return nil
}

// ConcatenateSimple is a convenience function for concatenating clip
// files that are already known to exist, in slice order.
func ConcatenateSimple(ctx context.Context, clipPaths []string, outputPath string) error {
	results := make([]*models.ExtractResult, len(clipPaths))
	for i, path := range clipPaths {
		result, err := models.NewExtractResultSuccess(i+1, path)
		if err != nil {
			return fmt.Errorf("invalid clip path at position %d: %w", i, err)
		}
		results[i] = result
	}

	return NewConcatenator().Concatenate(ctx, results, outputPath)
}
