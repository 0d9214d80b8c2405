package rtin

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

var cacheMagic = [4]byte{'R', 'T', 'N', '1'}

const cacheVersion uint32 = 1

// cachePath derives the side-car cache path for a source image path by
// replacing its extension with ".rtin".
func cachePath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + ".rtin"
}

// encodeCache serializes data into the on-disk cache format: a magic tag,
// format version, grid size, height extrema, triangle count, and one
// record per triangle (error plus nine vertex floats). All fields are
// little-endian.
func encodeCache(data *RtinData) []byte {
	n := len(data.Triangles)
	size := 4 + 4 + 4 + 2 + 2 + 4 + n*(4+9*4)
	buf := make([]byte, size)

	off := 0
	copy(buf[off:], cacheMagic[:])
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], cacheVersion)
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], uint32(data.GridSize))
	off += 4
	binary.LittleEndian.PutUint16(buf[off:], data.MinHeight)
	off += 2
	binary.LittleEndian.PutUint16(buf[off:], data.MaxHeight)
	off += 2
	binary.LittleEndian.PutUint32(buf[off:], uint32(n))
	off += 4

	for _, t := range data.Triangles {
		off = putF32(buf, off, t.Error)
		off = putF32(buf, off, t.Vertices.A.X)
		off = putF32(buf, off, t.Vertices.A.Y)
		off = putF32(buf, off, t.Vertices.A.Z)
		off = putF32(buf, off, t.Vertices.B.X)
		off = putF32(buf, off, t.Vertices.B.Y)
		off = putF32(buf, off, t.Vertices.B.Z)
		off = putF32(buf, off, t.Vertices.C.X)
		off = putF32(buf, off, t.Vertices.C.Y)
		off = putF32(buf, off, t.Vertices.C.Z)
	}

	return buf
}

func putF32(buf []byte, off int, v float32) int {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	return off + 4
}

// decodeCache parses the on-disk cache format. Any malformed or truncated
// input, or a version/magic mismatch, is reported as an error — the caller
// treats this as a cache miss, never as a user-visible failure.
func decodeCache(buf []byte) (*RtinData, error) {
	if len(buf) < 20 {
		return nil, fmt.Errorf("rtin: cache truncated header")
	}
	if [4]byte(buf[0:4]) != cacheMagic {
		return nil, fmt.Errorf("rtin: cache bad magic")
	}
	off := 4
	version := binary.LittleEndian.Uint32(buf[off:])
	off += 4
	if version != cacheVersion {
		return nil, fmt.Errorf("rtin: cache version %d unsupported", version)
	}
	gridSize := int(binary.LittleEndian.Uint32(buf[off:]))
	off += 4
	minHeight := binary.LittleEndian.Uint16(buf[off:])
	off += 2
	maxHeight := binary.LittleEndian.Uint16(buf[off:])
	off += 2
	n := int(binary.LittleEndian.Uint32(buf[off:]))
	off += 4

	want := off + n*(4+9*4)
	if want != len(buf) {
		return nil, fmt.Errorf("rtin: cache size mismatch: want %d bytes, have %d", want, len(buf))
	}

	triangles := make([]RtinTriangle, n)
	for i := range triangles {
		var t RtinTriangle
		t.Error, off = getF32(buf, off)
		t.Vertices.A.X, off = getF32(buf, off)
		t.Vertices.A.Y, off = getF32(buf, off)
		t.Vertices.A.Z, off = getF32(buf, off)
		t.Vertices.B.X, off = getF32(buf, off)
		t.Vertices.B.Y, off = getF32(buf, off)
		t.Vertices.B.Z, off = getF32(buf, off)
		t.Vertices.C.X, off = getF32(buf, off)
		t.Vertices.C.Y, off = getF32(buf, off)
		t.Vertices.C.Z, off = getF32(buf, off)
		triangles[i] = t
	}

	return &RtinData{
		GridSize:  gridSize,
		MinHeight: minHeight,
		MaxHeight: maxHeight,
		Triangles: triangles,
	}, nil
}

func getF32(buf []byte, off int) (float32, int) {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])), off + 4
}

// loadCacheFile reads and decodes the cache file at path. A missing file,
// a read error, or a decode error are all treated identically: cache miss.
func loadCacheFile(path string, wantGridSize int) (*RtinData, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	data, err := decodeCache(raw)
	if err != nil {
		return nil, false
	}
	if data.GridSize != wantGridSize {
		return nil, false
	}
	return data, true
}

// writeCacheFile writes data to path atomically: it writes to a temp file
// in the same directory and renames it into place, so a crash or failed
// write never leaves a cache file that later decodes as valid-but-wrong.
func writeCacheFile(path string, data *RtinData) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rtin-tmp-*")
	if err != nil {
		return fmt.Errorf("rtin: create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(encodeCache(data))
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rtin: write cache: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rtin: close cache: %w", closeErr)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rtin: rename cache into place: %w", err)
	}
	return nil
}
