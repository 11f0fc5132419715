package config

// Config holds all clip extraction and encoding options
type Config struct {
	// Audio settings
	Audio AudioConfig `yaml:"audio"`

	// Video settings
	Video VideoConfig `yaml:"video"`

	// Container format for intermediate clip files. The final output
	// format is dictated by the output file extension (ffmpeg's
	// format-detection convention).
	Container string `yaml:"container"` // e.g., "mp4", "mkv", "mov"

	// Behavioral flags
	KeepTemp bool `yaml:"keep_temp"` // Keep temporary clip files after combining
	Verbose  bool `yaml:"verbose"`   // Show detailed logs
	DryRun   bool `yaml:"dry_run"`   // Show config and ranges without processing
}

// AudioConfig holds audio encoding settings for extracted clips
type AudioConfig struct {
	Codec   string `yaml:"codec"`   // e.g., "aac", "libopus", "libmp3lame"
	Bitrate string `yaml:"bitrate"` // e.g., "128k", "192k", "320k"
}

// VideoConfig holds video encoding settings for extracted clips
type VideoConfig struct {
	Codec   string `yaml:"codec"`   // e.g., "libx264", "libx265", "libvpx-vp9"
	CRF     int    `yaml:"crf"`     // Constant Rate Factor (0-51, lower = better quality)
	Preset  string `yaml:"preset"`  // e.g., "ultrafast", "medium", "slow", "veryslow"
	Bitrate string `yaml:"bitrate"` // e.g., "5M", "10M" (alternative to CRF, empty = use CRF)
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Audio defaults (AAC: broadly compatible)
		Audio: AudioConfig{
			Codec:   "aac",
			Bitrate: "128k",
		},

		// Video defaults (H.264: broadly compatible)
		Video: VideoConfig{
			Codec:   "libx264",
			CRF:     23,       // Quality (0-51, lower = better)
			Preset:  "medium", // Balanced speed/compression
			Bitrate: "",       // Use CRF instead
		},

		Container: "mp4",

		// Behavioral defaults
		KeepTemp: false,
		Verbose:  false,
		DryRun:   false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	copy.Audio = c.Audio
	copy.Video = c.Video
	return &copy
}

// VideoCodecValues returns recognized video codec values
func VideoCodecValues() []string {
	return []string{"libx264", "libx265", "libvpx-vp9", "libsvtav1", "mpeg4"}
}

// AudioCodecValues returns recognized audio codec values
func AudioCodecValues() []string {
	return []string{"aac", "libopus", "libmp3lame", "libvorbis", "ac3"}
}

// ContainerValues returns recognized container formats
func ContainerValues() []string {
	return []string{"mp4", "mkv", "mov", "webm", "avi"}
}

// IsValidVideoCodec checks if the video codec is recognized
func IsValidVideoCodec(codec string) bool {
	for _, valid := range VideoCodecValues() {
		if codec == valid {
			return true
		}
	}
	return false
}

// IsValidAudioCodec checks if the audio codec is recognized
func IsValidAudioCodec(codec string) bool {
	for _, valid := range AudioCodecValues() {
		if codec == valid {
			return true
		}
	}
	return false
}

// IsValidContainer checks if the container format is recognized
func IsValidContainer(container string) bool {
	for _, valid := range ContainerValues() {
		if container == valid {
			return true
		}
	}
	return false
}
