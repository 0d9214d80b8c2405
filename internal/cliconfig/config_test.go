package cliconfig

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadParsesJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"input_dir":"/data/heightmaps","epsilon":75,"workers":4}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InputDir != "/data/heightmaps" || cfg.Epsilon != 75 || cfg.Workers != 4 {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.json"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestResolveFlagsOverrideConfig(t *testing.T) {
	cfg := Config{InputDir: "/from/config", Epsilon: 10}
	cfg.Resolve(Flags{InputDir: "/from/flag", Epsilon: 99})

	if cfg.InputDir != "/from/flag" {
		t.Errorf("InputDir = %q, want flag override", cfg.InputDir)
	}
	if cfg.Epsilon != 99 {
		t.Errorf("Epsilon = %v, want flag override", cfg.Epsilon)
	}
}

func TestResolveFillsDefaults(t *testing.T) {
	cfg := Config{InputDir: "/data"}
	cfg.Resolve(Flags{})

	if cfg.OutputDir != filepath.Join("/data", "rtin-out") {
		t.Errorf("OutputDir = %q, want /data/rtin-out", cfg.OutputDir)
	}
	if cfg.Epsilon != 50 {
		t.Errorf("Epsilon default = %v, want 50", cfg.Epsilon)
	}
	if cfg.PreviewSize != 512 {
		t.Errorf("PreviewSize default = %v, want 512", cfg.PreviewSize)
	}
	if cfg.Supersample != 2 {
		t.Errorf("Supersample default = %v, want 2", cfg.Supersample)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers default = %v, want %v", cfg.Workers, runtime.NumCPU())
	}
}

func TestResolveRelativeOutputDirJoinsInput(t *testing.T) {
	cfg := Config{InputDir: "/data", OutputDir: "previews"}
	cfg.Resolve(Flags{})

	want := filepath.Join("/data", "previews")
	if cfg.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want)
	}
}

func TestResolveDetectsInputDirWhenEmpty(t *testing.T) {
	cfg := Config{}
	cfg.Resolve(Flags{})

	if cfg.InputDir == "" {
		t.Error("expected a non-empty auto-detected InputDir")
	}
}
