// Package cmd wires the command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clipsplit/config"
	"clipsplit/deps"
	"clipsplit/internal/timeutil"
	"clipsplit/splitter"
	"clipsplit/timerange"
)

var (
	configPath string

	videoCodec   string
	videoCRF     int
	videoPreset  string
	videoBitrate string
	audioCodec   string
	audioBitrate string
	container    string

	keepTemp bool
	dryRun   bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "clipsplit <input-video> <timestamp-ranges> <output-video>",
	Short: "Extract and combine clips from a video",
	Long: `clipsplit cuts the given timestamp ranges out of one input video and
concatenates them, in the order given, into a single output video.

Ranges are written as a list of (start, end) pairs in seconds:

  clipsplit lecture.mp4 "[(0, 90), (600, 720.5)]" highlights.mp4

Requires ffmpeg and ffprobe on PATH (run "clipsplit doctor" to check).`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0], args[1], args[2])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./clipsplit.yaml)")

	rootCmd.Flags().StringVar(&videoCodec, "video-codec", "", "Video codec for extracted clips (e.g., libx264, libx265)")
	rootCmd.Flags().IntVar(&videoCRF, "video-crf", 0, "Video quality, 0-51, lower is better")
	rootCmd.Flags().StringVar(&videoPreset, "video-preset", "", "Encoder preset (e.g., fast, medium, slow)")
	rootCmd.Flags().StringVar(&videoBitrate, "video-bitrate", "", "Video bitrate (e.g., 5M); overrides CRF")
	rootCmd.Flags().StringVar(&audioCodec, "audio-codec", "", "Audio codec for extracted clips (e.g., aac, libopus)")
	rootCmd.Flags().StringVar(&audioBitrate, "audio-bitrate", "", "Audio bitrate (e.g., 128k)")
	rootCmd.Flags().StringVar(&container, "container", "", "Container format for intermediate clips (e.g., mp4, mkv)")

	rootCmd.Flags().BoolVar(&keepTemp, "keep-temp", false, "Keep the temporary clip files after combining")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would run without invoking ffmpeg")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show per-clip progress")
}

func run(cmd *cobra.Command, inputPath, rangesLiteral, outputPath string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ranges, err := timerange.ParseRanges(rangesLiteral)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		printPlan(cfg, inputPath, ranges, outputPath)
		return nil
	}

	if errs := deps.CheckAll(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "❌ Missing dependency: %v\n", err)
		}
		return fmt.Errorf("missing required dependencies")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	finalPath, err := splitter.New(cfg).Split(ctx, inputPath, ranges, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Combined video saved as: %s\n", finalPath)
	return nil
}

// loadConfig resolves the effective configuration: defaults, then the YAML
// config file, then any flags the user set on this invocation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("video-codec") {
		cfg.Video.Codec = videoCodec
	}
	if flags.Changed("video-crf") {
		cfg.Video.CRF = videoCRF
	}
	if flags.Changed("video-preset") {
		cfg.Video.Preset = videoPreset
	}
	if flags.Changed("video-bitrate") {
		cfg.Video.Bitrate = videoBitrate
	}
	if flags.Changed("audio-codec") {
		cfg.Audio.Codec = audioCodec
	}
	if flags.Changed("audio-bitrate") {
		cfg.Audio.Bitrate = audioBitrate
	}
	if flags.Changed("container") {
		cfg.Container = container
	}
	if flags.Changed("keep-temp") {
		cfg.KeepTemp = keepTemp
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// printPlan describes the run without touching ffmpeg.
func printPlan(cfg *config.Config, inputPath string, ranges []timerange.Range, outputPath string) {
	fmt.Println("Dry run - no files will be written")
	fmt.Printf("  Input:     %s\n", inputPath)
	fmt.Printf("  Output:    %s\n", outputPath)
	fmt.Printf("  Video:     %s (crf %d, preset %s)\n", cfg.Video.Codec, cfg.Video.CRF, cfg.Video.Preset)
	if cfg.Video.Bitrate != "" {
		fmt.Printf("  Bitrate:   %s\n", cfg.Video.Bitrate)
	}
	fmt.Printf("  Audio:     %s @ %s\n", cfg.Audio.Codec, cfg.Audio.Bitrate)
	fmt.Printf("  Clips:     %d\n", len(ranges))
	for i, r := range ranges {
		fmt.Printf("    %d. %s -> %s (%.2fs)\n", i+1,
			timeutil.FormatClock(r.Start), timeutil.FormatClock(r.End), r.Duration())
	}
	fmt.Printf("  Total:     %.2fs\n", timerange.TotalDuration(ranges))
}

// Execute runs the root command, reporting errors in a form that names
// what went wrong rather than dumping a bare error chain.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(exitCode(err))
	}
}

func reportError(err error) {
	var formatErr *timerange.FormatError
	var rangeErr *timerange.RangeError
	var procErr *splitter.ProcessingError

	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "⚠️ Cancelled")
	case errors.As(err, &formatErr):
		fmt.Fprintf(os.Stderr, "❌ Invalid input: %v\n", err)
	case errors.As(err, &rangeErr):
		fmt.Fprintf(os.Stderr, "❌ Invalid range: %v\n", err)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(os.Stderr, "❌ File not found: %v\n", err)
	case errors.As(err, &procErr):
		fmt.Fprintf(os.Stderr, "❌ Processing error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
}

func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
