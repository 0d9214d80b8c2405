// Command rtinpre preprocesses a single heightmap into its RTIN error
// hierarchy and prints a summary (or writes the extracted mesh to OBJ).
package main

import (
	"flag"
	"fmt"
	"os"

	rtin "rtinmesh"
)

func main() {
	epsilon := flag.Float64("epsilon", 50, "maximum vertical error threshold")
	objOut := flag.String("obj", "", "write the thresholded mesh as Wavefront OBJ to this path")
	noCache := flag.Bool("no-cache", false, "ignore and do not write the on-disk .rtin cache")
	wireframe := flag.Bool("wireframe", false, "write the OBJ as edge lines instead of filled faces")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rtinpre [flags] <heightmap.png>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := preprocess(path, *noCache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtinpre: %v\n", err)
		os.Exit(1)
	}

	mesh := rtin.Mesh(data, float32(*epsilon))

	fmt.Printf("grid size:     %d\n", data.GridSize)
	fmt.Printf("height range:  [%d, %d]\n", data.MinHeight, data.MaxHeight)
	fmt.Printf("triangle tree: %d nodes\n", data.NumTriangles())
	fmt.Printf("epsilon:       %g\n", *epsilon)
	fmt.Printf("mesh:          %d vertices, %d triangles\n", len(mesh.Vertices), len(mesh.Indices)/3)

	if *objOut != "" {
		if err := writeOBJ(*objOut, mesh, *wireframe); err != nil {
			fmt.Fprintf(os.Stderr, "rtinpre: write obj: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("obj:           %s\n", *objOut)
	}
}

func preprocess(path string, noCache bool) (*rtin.RtinData, error) {
	if noCache {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return rtin.PreprocessBytes(raw)
	}
	return rtin.Preprocess(path)
}

func writeOBJ(path string, mesh rtin.MeshData, wireframe bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, v := range mesh.Vertices {
		if _, err := fmt.Fprintf(f, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}

	if wireframe {
		lines := mesh.WireframeIndices()
		for i := 0; i+1 < len(lines); i += 2 {
			if _, err := fmt.Fprintf(f, "l %d %d\n", lines[i]+1, lines[i+1]+1); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		if _, err := fmt.Fprintf(f, "f %d %d %d\n", a, b, c); err != nil {
			return err
		}
	}
	return nil
}
