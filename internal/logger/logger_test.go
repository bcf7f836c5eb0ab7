package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	t.Run("creates log directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := Init(dir, false); err != nil {
			t.Fatalf("Init() returned unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
			t.Errorf("log directory not created: %v", err)
		}
		if Logger == nil {
			t.Error("Logger is nil after Init")
		}
	})

	t.Run("logging before init is a no-op", func(t *testing.T) {
		Logger = nil
		// Must not panic.
		Debug("debug", "k", "v")
		Info("info")
		Warn("warn")
		Error("error")
	})
}
