// Package deps checks that required external binaries are available.
package deps

import (
	"fmt"
	"os/exec"
)

const (
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckFfmpeg checks if ffmpeg is installed and available in PATH
func CheckFfmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return &DependencyError{
			Name:       "ffmpeg",
			InstallURL: FfmpegInstallURL,
		}
	}
	return nil
}

// CheckFfprobe checks if ffprobe is installed and available in PATH
func CheckFfprobe() error {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return &DependencyError{
			Name:       "ffprobe",
			InstallURL: FfmpegInstallURL,
		}
	}
	return nil
}

// CheckAll checks all dependencies and returns a slice of errors for missing ones
func CheckAll() []error {
	var errors []error

	if err := CheckFfmpeg(); err != nil {
		errors = append(errors, err)
	}

	if err := CheckFfprobe(); err != nil {
		errors = append(errors, err)
	}

	return errors
}
