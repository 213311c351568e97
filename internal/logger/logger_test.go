package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// initFile points the logger at a fresh file with console output off.
func initFile(t *testing.T, lvl string, cfg FileConfig) string {
	t.Helper()
	if cfg.Path == "" {
		cfg.Path = filepath.Join(t.TempDir(), "vanguard.log")
	}
	if err := InitWithFileConfig(lvl, cfg, false); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	t.Cleanup(func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
		level.SetLevel(parseLevel("info"))
	})
	return cfg.Path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestRotationKeepsBackups(t *testing.T) {
	dir := t.TempDir()
	initFile(t, "debug", FileConfig{
		Path:       filepath.Join(dir, "frames.log"),
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	})

	// ~4MB of output against a 1MB limit.
	payload := strings.Repeat("z", 240)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("tick %d %s", i, payload)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var rotated int
	for _, e := range entries {
		name := e.Name()
		if name == "frames.log" || !strings.HasPrefix(name, "frames-") {
			continue
		}
		rotated++
		if !strings.HasSuffix(name, ".log") {
			t.Errorf("rotated file %s lost its extension", name)
		}
	}
	if rotated == 0 {
		t.Errorf("no rotated files in %v", entries)
	}
}

func TestLevelFiltering(t *testing.T) {
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	cases := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
		"bogus": 1,
	}

	for lvl, first := range cases {
		t.Run(lvl, func(t *testing.T) {
			path := initFile(t, lvl, FileConfig{MaxSizeMB: 1})

			Log.Debug("sample")
			Info("sample")
			Log.Warn("sample")
			Error("sample")

			out := readLog(t, path)
			for i, name := range all {
				if got, want := strings.Contains(out, name), i >= first; got != want {
					t.Errorf("%s present = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestSetLevelRetunesNamedLoggers(t *testing.T) {
	path := initFile(t, "info", FileConfig{MaxSizeMB: 1})
	lockon := Named("lockon")

	lockon.Debug("hidden target")
	SetLevel("debug")
	lockon.Debug("visible target", zap.String("target", "slime"))

	if got := Level(); got != "debug" {
		t.Errorf("Level() = %q, want debug", got)
	}

	out := readLog(t, path)
	if strings.Contains(out, "hidden target") {
		t.Error("debug entry written before the level was lowered")
	}
	if !strings.Contains(out, "visible target") || !strings.Contains(out, "slime") {
		t.Errorf("missing debug entry after SetLevel: %q", out)
	}
	if !strings.Contains(out, "lockon") {
		t.Errorf("missing component name: %q", out)
	}
	if !strings.Contains(out, "log level changed") {
		t.Errorf("missing level change notice: %q", out)
	}
}

func TestSetLevelSameLevelIsQuiet(t *testing.T) {
	path := initFile(t, "warn", FileConfig{MaxSizeMB: 1})

	SetLevel("warn")
	Log.Warn("still here")

	out := readLog(t, path)
	if strings.Contains(out, "log level changed") {
		t.Errorf("unexpected notice for an unchanged level: %q", out)
	}
	if !strings.Contains(out, "still here") {
		t.Errorf("missing warn entry: %q", out)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("vanguard.log")
	want := FileConfig{Path: "vanguard.log", MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if got != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", got, want)
	}
}

func TestNopBeforeInit(t *testing.T) {
	saved := Log
	defer func() { Log = saved; Sugar = saved.Sugar() }()

	Log = zap.NewNop()
	Sugar = Log.Sugar()

	// Must not panic without Init.
	Log.Debug("dropped")
	Named("player").Info("dropped")
	SetLevel("error")
	SetLevel("info")
	Sync()
}
