package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"clipsplit/command"
	clipcmd "clipsplit/command/clip"
	"clipsplit/concatenator"
	"clipsplit/config"
	"clipsplit/ffprobe"
	"clipsplit/models"
	"clipsplit/timerange"
)

// Engine opens source videos. It is the seam between the pipeline and
// the external multimedia tooling, so tests can substitute a fake.
type Engine interface {
	Open(ctx context.Context, path string) (VideoHandle, error)
}

// VideoHandle is an opened reference to a source video. It owns a
// temporary workspace for extracted clips; Close must be called on every
// exit path to release it.
type VideoHandle interface {
	// Duration returns the total video duration in seconds.
	Duration() float64

	// Subclip extracts the given range into the workspace. index is the
	// 1-based position in the user's sequence and defines concatenation
	// order.
	Subclip(ctx context.Context, index int, r timerange.Range) (ClipHandle, error)

	// Concatenate joins the clips, in slice order, into outputPath.
	Concatenate(ctx context.Context, clips []ClipHandle, outputPath string) error

	// Close releases the workspace and any held resources.
	Close() error
}

// ClipHandle is a transient extracted sub-range of a source video.
type ClipHandle interface {
	Path() string
	Close() error
}

// FFmpegEngine implements Engine on top of the ffmpeg and ffprobe
// command-line tools.
type FFmpegEngine struct {
	cfg *config.Config
}

// NewFFmpegEngine creates an engine using the given encoding settings
func NewFFmpegEngine(cfg *config.Config) *FFmpegEngine {
	return &FFmpegEngine{cfg: cfg}
}

// Open probes the video and creates a temporary workspace for clips.
func (e *FFmpegEngine) Open(ctx context.Context, path string) (VideoHandle, error) {
	probeResult, err := ffprobe.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("media analysis failed: %w", err)
	}

	duration, err := probeResult.GetDuration()
	if err != nil {
		return nil, fmt.Errorf("failed to get media duration: %w", err)
	}

	if len(probeResult.GetVideoStreams()) == 0 && len(probeResult.GetAudioStreams()) == 0 {
		return nil, fmt.Errorf("no audio or video streams found in input file")
	}

	workDir, err := os.MkdirTemp("", "clipsplit-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &ffmpegVideo{
		sourcePath: path,
		duration:   duration,
		workDir:    workDir,
		cfg:        e.cfg,
	}, nil
}

// ffmpegVideo is the ffmpeg-backed VideoHandle. Extracted clips live in
// workDir until Close.
type ffmpegVideo struct {
	sourcePath string
	duration   float64
	workDir    string
	cfg        *config.Config
}

func (v *ffmpegVideo) Duration() float64 {
	return v.duration
}

func (v *ffmpegVideo) Subclip(ctx context.Context, index int, r timerange.Range) (ClipHandle, error) {
	c, err := models.NewClip(index, r.Start, r.End, v.sourcePath)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(v.workDir, fmt.Sprintf("clip_%03d.%s", index, v.cfg.Container))

	builder := clipcmd.NewClipBuilder(c, outPath)
	builder.SetVideoCodec(v.cfg.Video.Codec).
		SetCRF(v.cfg.Video.CRF).
		SetPreset(v.cfg.Video.Preset).
		SetAudioCodec(v.cfg.Audio.Codec).
		SetAudioBitrate(v.cfg.Audio.Bitrate)

	if v.cfg.Video.Bitrate != "" {
		builder.SetVideoBitrate(v.cfg.Video.Bitrate)
	}

	var extract command.Command = builder
	if v.cfg.Verbose {
		if preview, err := extract.DryRun(); err == nil {
			fmt.Printf("  %s\n", preview)
		}
	}

	if err := extract.Run(ctx); err != nil {
		return nil, err
	}

	if _, err := os.Stat(outPath); err != nil {
		return nil, fmt.Errorf("extracted clip not created: %w", err)
	}

	return &ffmpegClip{path: outPath}, nil
}

func (v *ffmpegVideo) Concatenate(ctx context.Context, clips []ClipHandle, outputPath string) error {
	results := make([]*models.ExtractResult, len(clips))
	for i, c := range clips {
		result, err := models.NewExtractResultSuccess(i+1, c.Path())
		if err != nil {
			return err
		}
		results[i] = result
	}

	return concatenator.NewConcatenator().Concatenate(ctx, results, outputPath)
}

// Close removes the clip workspace unless keep_temp is set.
func (v *ffmpegVideo) Close() error {
	if v.cfg.KeepTemp {
		fmt.Printf("Keeping temporary clips in: %s\n", v.workDir)
		return nil
	}
	return os.RemoveAll(v.workDir)
}

// ffmpegClip is a clip file inside the video's workspace. Its lifetime is
// bound to the workspace, so Close holds no per-clip state to release.
type ffmpegClip struct {
	path string
}

func (c *ffmpegClip) Path() string {
	return c.path
}

func (c *ffmpegClip) Close() error {
	return nil
}
