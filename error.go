package rtin

import (
	"runtime"
	"sync"
)

// parallelThreshold is the smallest triangle count at which buildHierarchy
// fans error computation out across worker goroutines. Below it, the
// goroutine/channel overhead isn't worth paying.
const parallelThreshold = 4096

// numTriangles returns the size of the complete binary tree of triangles
// for a heightmap of side gridSize, including the root sentinel.
func numTriangles(gridSize int) int {
	side := gridSize - 1
	return 2 * side * side
}

// heightExtrema scans the heightmap once and returns the minimum and
// maximum raw sample values.
func heightExtrema(h []uint16) (min, max uint16) {
	min, max = 65535, 0
	for _, v := range h {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// buildHierarchy computes the full RTIN error hierarchy for a gridSize x
// gridSize heightmap h (row-major, h[y*gridSize+x]).
//
// This is the hot path: one bounding-box scan per non-sentinel triangle,
// no per-triangle heap allocation; the pre-sized Triangles slice is the only
// allocation that grows with the grid.
func buildHierarchy(gridSize int, h []uint16) *RtinData {
	n := numTriangles(gridSize)
	min, max := heightExtrema(h)

	data := &RtinData{
		GridSize:  gridSize,
		MinHeight: min,
		MaxHeight: max,
		Triangles: make([]RtinTriangle, n),
	}

	if n < parallelThreshold {
		for i := 1; i < n; i++ {
			data.Triangles[i] = buildTriangle(i, gridSize, h)
		}
		return data
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n-1 {
		workers = n - 1
	}
	indexChan := make(chan int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexChan {
				data.Triangles[i] = buildTriangle(i, gridSize, h)
			}
		}()
	}
	for i := 1; i < n; i++ {
		indexChan <- i
	}
	close(indexChan)
	wg.Wait()

	return data
}

// buildTriangle computes the vertices and error for triangle index i.
func buildTriangle(i, gridSize int, h []uint16) RtinTriangle {
	a, b, c := coords(labelOf(i), gridSize)

	az := h[a.Y*gridSize+a.X]
	bz := h[b.Y*gridSize+b.X]
	cz := h[c.Y*gridSize+c.X]

	ax, ay := float32(a.X), float32(a.Y)
	bx, by := float32(b.X), float32(b.Y)
	cx, cy := float32(c.X), float32(c.Y)
	azf, bzf, czf := float32(az), float32(bz), float32(cz)

	v0x, v0y := bx-ax, by-ay // v0 = b - a
	v1x, v1y := cx-ax, cy-ay // v1 = c - a

	d00 := v0x*v0x + v0y*v0y
	d01 := v0x*v1x + v0y*v1y
	d11 := v1x*v1x + v1y*v1y

	invDenom := 1.0 / (d00*d11 - d01*d01)

	minX, maxX := minMaxInt(a.X, b.X, c.X)
	minY, maxY := minMaxInt(a.Y, b.Y, c.Y)

	var maxErr float32
	for y := minY; y <= maxY; y++ {
		py := float32(y)
		v2y := py - ay
		for x := minX; x <= maxX; x++ {
			px := float32(x)
			v2x := px - ax

			d20 := v2x*v0x + v2y*v0y
			d21 := v2x*v1x + v2y*v1y

			v := (d11*d20 - d01*d21) * invDenom
			if v < 0 {
				continue
			}
			w := (d00*d21 - d01*d20) * invDenom
			if w < 0 {
				continue
			}
			u := 1.0 - v - w
			if u < 0 {
				continue
			}

			interpolated := azf*u + bzf*v + czf*w
			trueHeight := float32(h[y*gridSize+x])
			errAt := interpolated - trueHeight
			if errAt < 0 {
				errAt = -errAt
			}
			if errAt > maxErr {
				maxErr = errAt
			}
		}
	}

	return RtinTriangle{
		Error: maxErr,
		Vertices: Triangle3{
			A: Vec3{X: ax, Y: ay, Z: azf / 65535},
			B: Vec3{X: bx, Y: by, Z: bzf / 65535},
			C: Vec3{X: cx, Y: cy, Z: czf / 65535},
		},
	}
}

func minMaxInt(a, b, c int) (min, max int) {
	min, max = a, a
	for _, v := range [2]int{b, c} {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
