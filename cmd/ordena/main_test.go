package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAppliesFileLogLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ordena.yaml"), []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug logging to be enabled from ordena.yaml")
	}
}
