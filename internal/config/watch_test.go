package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("player:\n  walk_speed: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	w, err := Watch(configPath)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(configPath, []byte("player:\n  walk_speed: 7.5\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite test config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates:
			if cfg.Player.WalkSpeed == 7.5 {
				return
			}
		case err := <-w.Errors:
			t.Logf("watcher error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reloaded config")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	w, err := Watch(configPath)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to write unrelated file: %v", err)
	}

	select {
	case cfg := <-w.Updates:
		t.Errorf("unexpected reload: %+v", cfg.Player)
	case <-time.After(3 * reloadSettle):
	}
}

func TestWatchCloseTwice(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	w, err := Watch(configPath)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
