// Package cliconfig resolves RTIN tool configuration from an optional JSON
// file layered under CLI flag overrides, the way the teacher's render tools
// resolve paths and render settings.
package cliconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and preprocessing settings for the
// batch and preview CLI tools.
type Config struct {
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	Epsilon     float64 `json:"epsilon"`
	PreviewSize int     `json:"preview_size"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	NoCache     bool    `json:"no_cache"`
}

// Load reads a JSON config file and returns Config. Fields not set in the
// file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cliconfig: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cliconfig: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir    string
	OutputDir   string
	Epsilon     float64
	PreviewSize int
	Workers     int
	NoCache     bool
}

// Resolve fills in any empty fields with auto-detected defaults. CLI flags
// take priority over the loaded config file when set to a non-zero value.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Epsilon > 0 {
		c.Epsilon = flags.Epsilon
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.NoCache {
		c.NoCache = true
	}

	if c.InputDir == "" {
		c.InputDir = detectInputDir()
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "rtin-out")
	} else if !filepath.IsAbs(c.OutputDir) && c.InputDir != "" {
		c.OutputDir = filepath.Join(c.InputDir, c.OutputDir)
	}

	if c.Epsilon <= 0 {
		c.Epsilon = 50
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// detectInputDir falls back to the current working directory; unlike the
// render tools this package is descended from, there's no fixed data
// layout to search for, so there's nothing smarter to try.
func detectInputDir() string {
	cwd, _ := os.Getwd()
	return cwd
}
