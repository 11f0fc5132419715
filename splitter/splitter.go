// Package splitter implements the clip extraction pipeline: validate the
// input, cut each requested range from the source video, and concatenate
// the cuts, in input order, into a single output file.
package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"clipsplit/config"
	"clipsplit/internal/timeutil"
	"clipsplit/timerange"
)

// Splitter runs the extract-and-combine pipeline.
type Splitter struct {
	cfg    *config.Config
	engine Engine
}

// New creates a Splitter backed by the ffmpeg engine
func New(cfg *config.Config) *Splitter {
	return NewWithEngine(cfg, NewFFmpegEngine(cfg))
}

// NewWithEngine creates a Splitter with a custom engine. Used by tests.
func NewWithEngine(cfg *config.Config, engine Engine) *Splitter {
	return &Splitter{cfg: cfg, engine: engine}
}

// Split extracts every range from inputPath, in order, and combines the
// clips into a single video at outputPath. It returns the absolute output
// path, confirmed to exist, on success.
//
// The pipeline is strictly linear and all-or-nothing: the ranges are
// validated against the video duration before any extraction, and the
// first failure of any step aborts the whole run. The opened video handle
// is released on every exit path.
//
// Error kinds:
//   - *timerange.FormatError for an empty range sequence
//   - fs.ErrNotExist (wrapped) for a missing input file or output directory
//   - *timerange.RangeError for an out-of-bounds range
//   - *ProcessingError for extraction/concatenation failures
func (s *Splitter) Split(ctx context.Context, inputPath string, ranges []timerange.Range, outputPath string) (string, error) {
	if len(ranges) == 0 {
		return "", &timerange.FormatError{Reason: "at least one timestamp range must be provided"}
	}

	if err := validateInputPath(inputPath); err != nil {
		return "", err
	}

	absOutput, err := validateOutputPath(outputPath)
	if err != nil {
		return "", err
	}

	if s.cfg.Verbose {
		fmt.Printf("Loading video: %s\n", inputPath)
	}

	video, err := s.engine.Open(ctx, inputPath)
	if err != nil {
		return "", &ProcessingError{Stage: "opening video", Err: err}
	}
	defer video.Close()

	duration := video.Duration()
	if s.cfg.Verbose {
		fmt.Printf("Video duration: %.2fs (%s)\n", duration, timeutil.FormatClock(duration))
	}

	// All-or-nothing: every range must be in bounds before any extraction
	if err := timerange.ValidateRanges(ranges, duration); err != nil {
		return "", err
	}

	clips := make([]ClipHandle, 0, len(ranges))
	defer func() {
		for _, c := range clips {
			c.Close()
		}
	}()

	for i, r := range ranges {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if s.cfg.Verbose {
			fmt.Printf("Extracting clip %d: %.2fs to %.2fs\n", i+1, r.Start, r.End)
		}

		c, err := video.Subclip(ctx, i+1, r)
		if err != nil {
			// A cancelled context kills the extraction; report the
			// cancellation, not the killed subprocess.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			return "", &ProcessingError{Stage: fmt.Sprintf("extracting clip %d", i+1), Err: err}
		}
		clips = append(clips, c)
	}

	if s.cfg.Verbose {
		fmt.Printf("Combining %d clips into %s\n", len(clips), absOutput)
	}

	if err := video.Concatenate(ctx, clips, absOutput); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", &ProcessingError{Stage: "combining clips", Err: err}
	}

	if _, err := os.Stat(absOutput); err != nil {
		return "", &ProcessingError{Stage: "writing output", Err: err}
	}

	return absOutput, nil
}

// validateInputPath checks that the input video exists, is a regular
// file, and is not empty. Missing files wrap fs.ErrNotExist.
func validateInputPath(inputPath string) error {
	if inputPath == "" {
		return fmt.Errorf("input video path cannot be empty")
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input video file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path is a directory, not a video file: %s", inputPath)
	}
	if info.Size() == 0 {
		return fmt.Errorf("input video file is empty: %s", inputPath)
	}

	return nil
}

// validateOutputPath checks that the output's parent directory exists and
// returns the absolute output path.
func validateOutputPath(outputPath string) (string, error) {
	if outputPath == "" {
		return "", fmt.Errorf("output video path cannot be empty")
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	if _, err := os.Stat(filepath.Dir(absOutput)); err != nil {
		return "", fmt.Errorf("output directory: %w", err)
	}

	return absOutput, nil
}
