package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipsplit.yaml")

	content := `
video:
  codec: libx265
  crf: 28
  preset: slow
audio:
  codec: libopus
  bitrate: 192k
container: mkv
keep_temp: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Video.Codec != "libx265" {
		t.Errorf("Expected video codec 'libx265', got %s", cfg.Video.Codec)
	}
	if cfg.Video.CRF != 28 {
		t.Errorf("Expected CRF 28, got %d", cfg.Video.CRF)
	}
	if cfg.Audio.Codec != "libopus" {
		t.Errorf("Expected audio codec 'libopus', got %s", cfg.Audio.Codec)
	}
	if cfg.Container != "mkv" {
		t.Errorf("Expected container 'mkv', got %s", cfg.Container)
	}
	if !cfg.KeepTemp {
		t.Error("Expected keep_temp to be true")
	}

	// Fields absent from the file keep their defaults
	if cfg.Audio.Bitrate != "192k" {
		t.Errorf("Expected audio bitrate '192k', got %s", cfg.Audio.Bitrate)
	}
	if cfg.Verbose {
		t.Error("Expected verbose to keep default false")
	}
}

func TestLoadConfigFile_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	content := `
video:
  crf: 18
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Video.CRF != 18 {
		t.Errorf("Expected CRF 18, got %d", cfg.Video.CRF)
	}
	if cfg.Video.Codec != "libx264" {
		t.Errorf("Expected default codec 'libx264', got %s", cfg.Video.Codec)
	}
}

func TestLoadConfigFile_NotFound(t *testing.T) {
	_, err := LoadConfigFile("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")

	if err := os.WriteFile(path, []byte("video: [not: valid"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadConfigFile(path)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestSaveAndReloadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Video.Codec = "libvpx-vp9"
	cfg.Container = "webm"

	if err := SaveConfigFile(cfg, path); err != nil {
		t.Fatalf("SaveConfigFile failed: %v", err)
	}

	reloaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if reloaded.Video.Codec != "libvpx-vp9" {
		t.Errorf("Expected video codec 'libvpx-vp9', got %s", reloaded.Video.Codec)
	}
	if reloaded.Container != "webm" {
		t.Errorf("Expected container 'webm', got %s", reloaded.Container)
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	// Run from a temp dir so no clipsplit.yaml is picked up
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(orig)

	t.Setenv("HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Video.Codec != "libx264" {
		t.Errorf("Expected default config, got video codec %s", cfg.Video.Codec)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explicit.yaml")

	if err := os.WriteFile(path, []byte("container: mov\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Container != "mov" {
		t.Errorf("Expected container 'mov', got %s", cfg.Container)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load("/nonexistent/clipsplit.yaml")
	if err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}
