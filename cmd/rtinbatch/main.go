// Command rtinbatch preprocesses every heightmap under a directory tree
// using a worker pool and writes a JSON manifest of the results.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rtinmesh/internal/batchpre"
	"rtinmesh/internal/cliconfig"
)

var heightmapExt = map[string]bool{
	".png": true, ".tif": true, ".tiff": true, ".tga": true,
}

func main() {
	configFile := flag.String("config", "", "path to config.json")
	inputDir := flag.String("input", "", "directory to scan for heightmaps (default: auto-detect)")
	outputDir := flag.String("output", "", "directory for manifest.json and previews (default: <input>/rtin-out)")
	epsilon := flag.Float64("epsilon", 0, "maximum vertical error threshold (default: 50)")
	workers := flag.Int("workers", 0, "number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "process only the first N heightmaps found")
	previews := flag.Bool("previews", false, "also render a shaded WebP preview for each heightmap")

	flag.Parse()

	var cfg cliconfig.Config
	if *configFile != "" {
		var err error
		cfg, err = cliconfig.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(cliconfig.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Epsilon:   *epsilon,
		Workers:   *workers,
	})

	paths, err := findHeightmaps(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", cfg.InputDir, err)
		os.Exit(1)
	}
	if *testN > 0 && *testN < len(paths) {
		paths = paths[:*testN]
	}
	if len(paths) == 0 {
		fmt.Println("No heightmaps found.")
		os.Exit(0)
	}

	fmt.Printf("RTIN batch preprocessor\n")
	fmt.Printf("Heightmaps: %d, Workers: %d, Epsilon: %g\n", len(paths), cfg.Workers, cfg.Epsilon)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batchpre.Config{
		OutputDir: cfg.OutputDir,
		Epsilon:   float32(cfg.Epsilon),
		Workers:   cfg.Workers,
	}
	if *previews {
		batchCfg.PreviewSize = cfg.PreviewSize
		batchCfg.Supersample = cfg.Supersample
	}

	results := batchpre.Run(batchCfg, paths)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batchpre.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Preprocessed: %d/%d\n", success, len(paths))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Path, e.Error)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: mkdir output: %v\n", err)
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batchpre.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func findHeightmaps(root string) ([]string, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if heightmapExt[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
