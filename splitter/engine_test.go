package splitter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipsplit/config"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read captured output: %v", err)
	}
	return string(out)
}

func newTestWorkspace(t *testing.T) string {
	t.Helper()
	workDir := t.TempDir()
	clipPath := filepath.Join(workDir, "clip_001.mp4")
	if err := os.WriteFile(clipPath, []byte("clip"), 0644); err != nil {
		t.Fatalf("Failed to create clip file: %v", err)
	}
	return workDir
}

func TestFFmpegVideoClose_RemovesWorkspace(t *testing.T) {
	workDir := newTestWorkspace(t)
	video := &ffmpegVideo{workDir: workDir, cfg: config.DefaultConfig()}

	if err := video.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := os.Stat(workDir); err == nil {
		t.Error("Workspace should be removed on close")
	}
}

func TestFFmpegVideoClose_KeepTemp(t *testing.T) {
	workDir := newTestWorkspace(t)
	cfg := config.DefaultConfig()
	cfg.KeepTemp = true
	video := &ffmpegVideo{workDir: workDir, cfg: cfg}

	out := captureStdout(t, func() {
		if err := video.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})

	if _, err := os.Stat(workDir); err != nil {
		t.Errorf("Workspace should survive close with keep_temp: %v", err)
	}
	// The user has to be told where the kept clips live
	if !strings.Contains(out, workDir) {
		t.Errorf("Expected workspace path in output, got %q", out)
	}
}
