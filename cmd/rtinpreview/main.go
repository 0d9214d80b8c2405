// Command rtinpreview preprocesses a heightmap, extracts its thresholded
// mesh, and renders a shaded WebP preview.
package main

import (
	"flag"
	"fmt"
	"os"

	"rtinmesh/internal/preview"

	rtin "rtinmesh"

	"github.com/HugoSmits86/nativewebp"
)

func main() {
	epsilon := flag.Float64("epsilon", 50, "maximum vertical error threshold")
	size := flag.Int("size", 512, "output image side length in pixels")
	supersample := flag.Int("supersample", 2, "rasterize at size*supersample before downsampling")
	out := flag.String("out", "", "output WebP path (default: <heightmap>.preview.webp)")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rtinpreview [flags] <heightmap.png>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := rtin.Preprocess(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtinpreview: %v\n", err)
		os.Exit(1)
	}
	mesh := rtin.Mesh(data, float32(*epsilon))

	img := preview.Render(mesh, preview.Options{
		Size:        *size,
		Supersample: *supersample,
		Ramp:        nil,
	})

	outPath := *out
	if outPath == "" {
		outPath = path + ".preview.webp"
	}

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtinpreview: create %s: %v\n", outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		fmt.Fprintf(os.Stderr, "rtinpreview: encode: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("mesh:    %d vertices, %d triangles\n", len(mesh.Vertices), len(mesh.Indices)/3)
	fmt.Printf("preview: %s\n", outPath)
}
