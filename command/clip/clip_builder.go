// Package clip builds FFmpeg commands that extract a single sub-range of
// a source video into its own file.
package clip

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"clipsplit/command"
	"clipsplit/internal/timeutil"
	"clipsplit/models"
)

var _ command.Command = (*ClipBuilder)(nil)

// ClipBuilder builds the FFmpeg command for extracting one clip.
//
// The clip is re-encoded rather than stream-copied so that arbitrary cut
// points are frame accurate and all extracted clips share identical
// codec parameters, which the concat demuxer requires.
type ClipBuilder struct {
	clip       *models.Clip
	outputPath string

	// Video encoding settings
	videoCodec   string
	videoBitrate string
	crf          int
	preset       string

	// Audio encoding settings
	audioCodec   string
	audioBitrate string

	extraArgs []string
}

// NewClipBuilder creates a new clip extraction command builder
func NewClipBuilder(c *models.Clip, outputPath string) *ClipBuilder {
	return &ClipBuilder{
		clip:       c,
		outputPath: outputPath,
		videoCodec: "libx264",
		crf:        23,
		preset:     "medium",
		audioCodec: "aac",
		extraArgs:  []string{},
	}
}

// SetVideoCodec sets the video codec (e.g., "libx264", "libx265")
func (b *ClipBuilder) SetVideoCodec(codec string) *ClipBuilder {
	b.videoCodec = codec
	return b
}

// SetVideoBitrate sets the video bitrate (e.g., "5M", "1500k").
// When set, it is used instead of CRF.
func (b *ClipBuilder) SetVideoBitrate(bitrate string) *ClipBuilder {
	b.videoBitrate = bitrate
	return b
}

// SetCRF sets the Constant Rate Factor (0-51, lower is better quality)
func (b *ClipBuilder) SetCRF(crf int) *ClipBuilder {
	b.crf = crf
	return b
}

// SetPreset sets the encoding preset (ultrafast, fast, medium, slow, veryslow)
func (b *ClipBuilder) SetPreset(preset string) *ClipBuilder {
	b.preset = preset
	return b
}

// SetAudioCodec sets the audio codec (e.g., "aac", "libopus")
func (b *ClipBuilder) SetAudioCodec(codec string) *ClipBuilder {
	b.audioCodec = codec
	return b
}

// SetAudioBitrate sets the audio bitrate (e.g., "128k")
func (b *ClipBuilder) SetAudioBitrate(bitrate string) *ClipBuilder {
	b.audioBitrate = bitrate
	return b
}

// AddExtraArgs adds custom ffmpeg arguments
func (b *ClipBuilder) AddExtraArgs(args ...string) *ClipBuilder {
	b.extraArgs = append(b.extraArgs, args...)
	return b
}

// BuildArgs constructs the ffmpeg arguments for clip extraction.
//
// -ss before -i selects the input seek point; -to bounds the read. Both
// use HH:MM:SS.MS form for fractional-second precision.
func (b *ClipBuilder) BuildArgs() []string {
	args := []string{
		"-ss", timeutil.FormatSeconds(b.clip.Start),
		"-to", timeutil.FormatSeconds(b.clip.End),
		"-i", b.clip.SourcePath,
	}

	// Video codec
	args = append(args, "-c:v", b.videoCodec)

	if b.videoBitrate != "" {
		args = append(args, "-b:v", b.videoBitrate)
	} else if b.crf >= 0 && b.crf <= 51 {
		args = append(args, "-crf", fmt.Sprintf("%d", b.crf))
	}

	if b.preset != "" {
		args = append(args, "-preset", b.preset)
	}

	// Audio codec
	args = append(args, "-c:a", b.audioCodec)
	if b.audioBitrate != "" {
		args = append(args, "-b:a", b.audioBitrate)
	}

	args = append(args, b.extraArgs...)

	// Overwrite output
	args = append(args, "-y", b.outputPath)

	return args
}

// Run executes the clip extraction command
func (b *ClipBuilder) Run(ctx context.Context) error {
	args := b.BuildArgs()
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		// Cancellation kills the subprocess; surface the context error
		// instead of "signal: killed".
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("ffmpeg failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// DryRun returns the command that would be executed without running it
func (b *ClipBuilder) DryRun() (string, error) {
	args := b.BuildArgs()
	return "ffmpeg " + strings.Join(args, " "), nil
}

// GetInputPath returns the input file path
func (b *ClipBuilder) GetInputPath() string {
	return b.clip.SourcePath
}

// GetOutputPath returns the output file path
func (b *ClipBuilder) GetOutputPath() string {
	return b.outputPath
}
