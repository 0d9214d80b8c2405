// Package rtin implements a Right-Triangulated Irregular Network (RTIN)
// preprocessor and mesh extractor for square power-of-two-plus-one
// heightmaps.
//
// A heightmap is processed once into an [RtinData] hierarchy: a complete
// binary tree of triangles built by recursive hypotenuse bisection, each
// node carrying the maximum vertical error of approximating the true
// surface with that triangle. A [MeshData] — an indexed, deduplicated
// triangle list whose per-triangle error is bounded by a threshold — is
// then extracted from the hierarchy on demand.
//
// # Quick start
//
//	data, err := rtin.Preprocess("heightmaps/canyon.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	mesh := rtin.Mesh(data, 50.0)
//
// [RtinData] is expensive to compute but cheap to cache: Preprocess writes
// a side-car ".rtin" file next to the source image and reuses it on
// subsequent calls. [MeshData] is cheap to derive and is not cached.
//
// Image decoding is delegated to the internal/heightmap adapter, which
// treats any square 16-bit (or upsampled 8-bit) greyscale image as a byte
// source — PNG, TIFF, and TGA are registered by default.
package rtin
