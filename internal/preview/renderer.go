package preview

import (
	"image"
	"math"

	"rtinmesh/internal/geom"

	rtin "rtinmesh"
)

// Options controls terrain preview rendering.
type Options struct {
	Size        int // output image side length, in pixels
	Supersample int // rasterize at Size*Supersample then downsample; 1 disables
	Ramp        *image.NRGBA
}

// DefaultOptions returns a 512px preview rendered at 2x supersampling.
func DefaultOptions() Options {
	return Options{Size: 512, Supersample: 2, Ramp: defaultRamp()}
}

// Render rasterizes mesh into an orthographic top-down-tilted view and
// returns the resulting image, antialiased via supersample+downsample.
func Render(mesh rtin.MeshData, opt Options) *image.NRGBA {
	if opt.Supersample < 1 {
		opt.Supersample = 1
	}
	renderSize := opt.Size * opt.Supersample
	if len(mesh.Vertices) == 0 || len(mesh.Indices) < 3 {
		return image.NewNRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	}
	indices := mesh.Indices
	vertices := make([]geom.Vec3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		vertices[i] = geom.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
	}

	minV, maxV := boundingBox(vertices)
	center := minV.Add(maxV).Scale(0.5)
	span := math.Max(maxV[0]-minV[0], maxV[1]-minV[1])
	if span < 1e-6 {
		span = 1e-6
	}

	eye := center.Add(geom.Vec3{0, -span * 0.9, span * 0.9})
	view := geom.LookAt(eye, center, geom.Vec3{0, 0, 1})

	halfExtent := span * 0.62
	proj := geom.Orthographic(-halfExtent, halfExtent, -halfExtent, halfExtent, -span*4, span*4)
	viewProj := geom.Mat4Mul(proj, view)
	screen := float64(renderSize)

	px := make([]float64, len(vertices))
	py := make([]float64, len(vertices))
	pz := make([]float64, len(vertices))
	for i, v := range vertices {
		clip := viewProj.MulPoint(v)
		px[i] = (clip[0]*0.5 + 0.5) * screen
		py[i] = (1 - (clip[1]*0.5 + 0.5)) * screen
		pz[i] = -clip[2]
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()
	ramp := opt.Ramp
	if ramp == nil {
		ramp = defaultRamp()
	}

	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		a, b, c := vertices[i0], vertices[i1], vertices[i2]
		n := geom.TriangleNormal(a, b, c)
		meanHeight := (a[2] + b[2] + c[2]) / 3
		r, g, bl, al := SampleRamp(ramp, meanHeight)
		RasterizeTerrain(fb, px, py, pz, [3]int{int(i0), int(i1), int(i2)}, n[0], n[1], n[2], r, g, bl, al, &lc)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)

	return Downsample(img, opt.Size)
}

func boundingBox(vertices []geom.Vec3) (min, max geom.Vec3) {
	min = vertices[0]
	max = vertices[0]
	for _, v := range vertices[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}

// defaultRamp builds a small elevation gradient (deep green lowlands through
// tan midlands to snow-white peaks) as a 1-pixel-tall NRGBA strip, matching
// the format SampleRamp expects.
func defaultRamp() *image.NRGBA {
	stops := [][4]uint8{
		{36, 74, 48, 255},
		{92, 122, 62, 255},
		{168, 150, 97, 255},
		{214, 198, 160, 255},
		{255, 255, 255, 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, len(stops), 1))
	for i, s := range stops {
		off := img.PixOffset(i, 0)
		img.Pix[off] = s[0]
		img.Pix[off+1] = s[1]
		img.Pix[off+2] = s[2]
		img.Pix[off+3] = s[3]
	}
	return img
}
