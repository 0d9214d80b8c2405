package rtin

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeHeightmapPNG(t *testing.T, path string, side int) {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetGray16(x, y, color.Gray16{Y: uint16((x*53 + y*29) % 65536)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestPreprocessWritesAndReusesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hm.png")
	writeHeightmapPNG(t, path, 9)

	first, err := Preprocess(path)
	if err != nil {
		t.Fatalf("first Preprocess: %v", err)
	}

	ccPath := cachePath(path)
	if _, err := os.Stat(ccPath); err != nil {
		t.Fatalf("expected a cache file at %s: %v", ccPath, err)
	}

	second, err := Preprocess(path)
	if err != nil {
		t.Fatalf("second Preprocess: %v", err)
	}

	if first.GridSize != second.GridSize || len(first.Triangles) != len(second.Triangles) {
		t.Fatalf("cached and recomputed data disagree: %+v vs %+v", first, second)
	}
	for i := range first.Triangles {
		if first.Triangles[i] != second.Triangles[i] {
			t.Fatalf("triangle %d differs between cache write and cache read", i)
		}
	}
}

func TestPreprocessRejectsNonSquare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hm.png")

	img := image.NewGray16(image.Rect(0, 0, 9, 5))
	f, _ := os.Create(path)
	png.Encode(f, img)
	f.Close()

	_, err := Preprocess(path)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v, want ErrInvalidShape", err)
	}
}

func TestPreprocessBytesSkipsCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hm.png")
	writeHeightmapPNG(t, path, 5)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if _, err := PreprocessBytes(raw); err != nil {
		t.Fatalf("PreprocessBytes: %v", err)
	}

	if _, err := os.Stat(cachePath(path)); err == nil {
		t.Fatal("PreprocessBytes should not write a cache file")
	}
}

func TestLoadMesh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hm.png")
	writeHeightmapPNG(t, path, 9)

	mesh, err := LoadMesh(path, 50)
	if err != nil {
		t.Fatalf("LoadMesh: %v", err)
	}
	if len(mesh.Indices) == 0 {
		t.Fatal("expected a non-empty mesh")
	}
	if len(mesh.Indices)%3 != 0 {
		t.Fatalf("indices length %d not a multiple of 3", len(mesh.Indices))
	}
}
