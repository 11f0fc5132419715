package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Validate audio config
	if err := c.Audio.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("audio config: %v", err))
	}

	// Validate video config
	if err := c.Video.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("video config: %v", err))
	}

	// Validate container format
	if !IsValidContainer(c.Container) {
		errors = append(errors, fmt.Sprintf("invalid container '%s', must be one of: %s",
			c.Container, strings.Join(ContainerValues(), ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks if audio configuration is valid
func (ac *AudioConfig) Validate() error {
	var errors []string

	if ac.Codec == "" {
		errors = append(errors, "codec is required")
	} else if !IsValidAudioCodec(ac.Codec) {
		errors = append(errors, fmt.Sprintf("unrecognized codec '%s', must be one of: %s",
			ac.Codec, strings.Join(AudioCodecValues(), ", ")))
	}

	if ac.Bitrate == "" {
		errors = append(errors, "bitrate is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if video configuration is valid
func (vc *VideoConfig) Validate() error {
	var errors []string

	if vc.Codec == "" {
		errors = append(errors, "codec is required")
	} else if !IsValidVideoCodec(vc.Codec) {
		errors = append(errors, fmt.Sprintf("unrecognized codec '%s', must be one of: %s",
			vc.Codec, strings.Join(VideoCodecValues(), ", ")))
	}

	// CRF validation (if using CRF mode)
	if vc.CRF < 0 || vc.CRF > 51 {
		errors = append(errors, "CRF must be between 0 and 51")
	}

	if vc.Preset == "" {
		errors = append(errors, "preset is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}
