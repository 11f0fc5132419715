package deps

import (
	"strings"
	"testing"
)

func TestDependencyErrorMessage(t *testing.T) {
	err := &DependencyError{
		Name:       "ffmpeg",
		InstallURL: FfmpegInstallURL,
	}

	msg := err.Error()
	if !strings.Contains(msg, "ffmpeg") {
		t.Errorf("Expected error message to name the binary, got %q", msg)
	}
	if !strings.Contains(msg, FfmpegInstallURL) {
		t.Errorf("Expected error message to include install URL, got %q", msg)
	}
}

func TestCheckAllCollectsErrors(t *testing.T) {
	// With a scrubbed PATH both checks must fail.
	t.Setenv("PATH", "")

	errs := CheckAll()
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors with empty PATH, got %d", len(errs))
	}

	for _, err := range errs {
		if _, ok := err.(*DependencyError); !ok {
			t.Errorf("Expected *DependencyError, got %T", err)
		}
	}
}
