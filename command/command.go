// Package command provides the core Command interface for building and
// executing FFmpeg commands.
//
// The clip extraction builder implements this interface, which supports
// command building (generating FFmpeg argument arrays), blocking
// execution, and preview (dry run) without executing.
package command

import "context"

// Command represents an FFmpeg command that can be built, executed, or previewed.
type Command interface {
	// BuildArgs constructs and returns the FFmpeg command arguments as a slice.
	// The returned slice is suitable for exec.Command("ffmpeg", args...).
	//
	// Example return value:
	//   ["-ss", "00:00:00.00", "-to", "00:00:30.00", "-i", "input.mp4", "-c:v", "libx264", "output.mp4"]
	BuildArgs() []string

	// Run executes the FFmpeg command and blocks until it completes.
	// The context cancels the subprocess when done.
	//
	// Returns an error if the command fails to execute or returns a
	// non-zero exit code; the error includes captured FFmpeg output.
	Run(ctx context.Context) error

	// DryRun returns the FFmpeg command as a string without executing it.
	// Useful for debugging, logging, or generating scripts.
	DryRun() (string, error)

	// GetInputPath returns the primary input file path for this command.
	GetInputPath() string

	// GetOutputPath returns the output file path for this command.
	GetOutputPath() string
}
