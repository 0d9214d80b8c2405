// Package batchpre drives RTIN preprocessing across a directory of
// heightmap images with a worker pool, the way the teacher's item-render
// batch tool drives BMD rendering across an item list.
package batchpre

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"rtinmesh/internal/preview"

	rtin "rtinmesh"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Epsilon     float32
	Workers     int
	PreviewSize int // 0 disables preview rendering
	Supersample int
}

// Result holds the outcome of preprocessing one heightmap file.
type Result struct {
	Path      string
	GridSize  int
	Triangles int
	Preview   string
	Success   bool
	Error     string
}

// Run preprocesses every path in paths using a worker pool, reporting
// periodic throughput to stdout the way a long batch job should.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f heightmaps/sec\n", p, total, rate)
				}
			}
		}
	}()

	pathChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pathChan {
				results[idx] = processPath(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		pathChan <- i
	}
	close(pathChan)

	wg.Wait()
	close(done)

	return results
}

func processPath(cfg Config, path string) Result {
	data, err := rtin.Preprocess(path)
	if err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	mesh := rtin.Mesh(data, cfg.Epsilon)

	result := Result{
		Path:      path,
		GridSize:  data.GridSize,
		Triangles: len(mesh.Indices) / 3,
		Success:   true,
	}

	if cfg.PreviewSize > 0 {
		previewPath, err := writePreview(cfg, path, mesh)
		if err != nil {
			result.Error = fmt.Sprintf("preview: %v", err)
			return result
		}
		result.Preview = previewPath
	}

	return result
}

func writePreview(cfg Config, sourcePath string, mesh rtin.MeshData) (string, error) {
	img := preview.Render(mesh, preview.Options{
		Size:        cfg.PreviewSize,
		Supersample: cfg.Supersample,
	})

	name := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath)) + ".webp"
	outPath := filepath.Join(cfg.OutputDir, name)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	return outPath, nil
}
