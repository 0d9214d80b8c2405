package rtin

// Mesh extracts an indexed triangle mesh from data at error threshold eps.
// The emitted set is the shallowest triangles whose error is within eps (or
// which are leaves); see selectTriangles. Vertices are deduplicated by
// lattice position, keyed by y*GridSize+x.
func Mesh(data *RtinData, eps float32) MeshData {
	selected := selectTriangles(data, eps)

	out := MeshData{
		Vertices: make([]Vec3, 0, len(selected)*3),
		Indices:  make([]uint32, 0, len(selected)*3),
	}

	seen := make(map[int]uint32, len(selected)*3)
	gridSize := data.GridSize

	for _, idx := range selected {
		tri := data.Triangles[idx].Vertices
		for _, v := range [3]Vec3{tri.A, tri.B, tri.C} {
			key := int(v.Y)*gridSize + int(v.X)
			pos, ok := seen[key]
			if !ok {
				pos = uint32(len(out.Vertices))
				out.Vertices = append(out.Vertices, v)
				seen[key] = pos
			}
			out.Indices = append(out.Indices, pos)
		}
	}

	return out
}

// WireframeIndices expands the triangle index list into a line list (two
// indices per edge, three edges per triangle) for wireframe rendering.
func (m MeshData) WireframeIndices() []uint32 {
	out := make([]uint32, 0, len(m.Indices)*2)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		out = append(out, a, b, b, c, c, a)
	}
	return out
}
