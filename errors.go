package rtin

import "errors"

// Sentinel errors returned by Preprocess and PreprocessBytes. Callers should
// compare with errors.Is, since they are always wrapped with the heightmap
// decoder's own error message.
var (
	// ErrInvalidShape is returned when a heightmap's width and height differ.
	ErrInvalidShape = errors.New("rtin: heightmap is not square")

	// ErrInvalidSize is returned when a heightmap's side length minus one is
	// not a power of two, or the side length is smaller than 3.
	ErrInvalidSize = errors.New("rtin: heightmap side length must be 2^k+1, k>=1")

	// ErrImageDecode is returned when the underlying image codec cannot
	// decode the supplied bytes at all.
	ErrImageDecode = errors.New("rtin: failed to decode heightmap image")
)
