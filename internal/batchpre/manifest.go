package batchpre

import (
	"encoding/json"
	"os"
)

// ManifestEntry records the outcome of preprocessing one heightmap file.
type ManifestEntry struct {
	Path      string `json:"path"`
	GridSize  int    `json:"grid_size,omitempty"`
	Triangles int    `json:"triangles,omitempty"`
	Preview   string `json:"preview,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// WriteManifest writes a JSON summary of a batch run to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Path:      r.Path,
			GridSize:  r.GridSize,
			Triangles: r.Triangles,
			Preview:   r.Preview,
			Success:   r.Success,
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
