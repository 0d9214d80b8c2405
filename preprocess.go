package rtin

import (
	"errors"
	"fmt"
	"log"
	"os"

	"rtinmesh/internal/heightmap"
)

// Preprocess loads the image at path, validates it, consults the on-disk
// cache, and returns the RTIN hierarchy. If no valid cache entry exists it
// computes one and writes it back to a side-car ".rtin" file; write
// failures are logged and otherwise ignored, since the in-memory result is
// authoritative regardless.
func Preprocess(path string) (*RtinData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rtin: read %s: %w", path, err)
	}

	gridSize, grid, err := heightmap.Decode16(raw)
	if err != nil {
		return nil, translateDecodeErr(err)
	}

	ccPath := cachePath(path)
	if cached, ok := loadCacheFile(ccPath, gridSize); ok {
		return cached, nil
	}

	data := buildHierarchy(gridSize, grid)

	if err := writeCacheFile(ccPath, data); err != nil {
		log.Printf("rtin: cache write for %s: %v", path, err)
	}

	return data, nil
}

// PreprocessBytes is like Preprocess but decodes an in-memory image blob
// and never consults or writes the on-disk cache.
func PreprocessBytes(data []byte) (*RtinData, error) {
	gridSize, grid, err := heightmap.Decode16(data)
	if err != nil {
		return nil, translateDecodeErr(err)
	}
	return buildHierarchy(gridSize, grid), nil
}

// LoadMesh is a convenience wrapper combining Preprocess and Mesh.
func LoadMesh(path string, eps float32) (MeshData, error) {
	data, err := Preprocess(path)
	if err != nil {
		return MeshData{}, err
	}
	return Mesh(data, eps), nil
}

func translateDecodeErr(err error) error {
	switch {
	case errors.Is(err, heightmap.ErrInvalidShape):
		return fmt.Errorf("%v: %w", err, ErrInvalidShape)
	case errors.Is(err, heightmap.ErrInvalidSize):
		return fmt.Errorf("%v: %w", err, ErrInvalidSize)
	default:
		return fmt.Errorf("%v: %w", err, ErrImageDecode)
	}
}
