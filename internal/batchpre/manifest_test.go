package batchpre

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	results := []Result{
		{Path: "a.png", GridSize: 9, Triangles: 40, Preview: "a.webp", Success: true},
		{Path: "b.png", Success: false, Error: "heightmap: decode: bad magic"},
	}

	if err := WriteManifest(path, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var entries []ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Path != "a.png" || entries[0].GridSize != 9 || entries[0].Triangles != 40 || !entries[0].Success {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Path != "b.png" || entries[1].Success || entries[1].Error == "" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}
