package preview

import (
	"math"

	"rtinmesh/internal/geom"
)

// LightConfig holds precomputed lighting parameters for the top-down
// terrain preview: a directional key light plus a rim light and a sky/
// ground hemisphere fill, matching the look of a shaded relief map.
type LightConfig struct {
	LightDir geom.Vec3
	RimDir   geom.Vec3
	ViewDir  geom.Vec3
	HalfMain geom.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// DefaultLightConfig returns lighting tuned for a high, slightly-off-axis
// sun over terrain viewed from above. Mesh Z is the up axis (normalized
// height), X/Y are the grid plane.
func DefaultLightConfig() LightConfig {
	lightDir := geom.Vec3{0.35, 0.40, 0.85}.Normalize()
	rimDir := geom.Vec3{-0.50, -0.60, 0.20}.Normalize()
	viewDir := geom.Vec3{0, -0.15, -1}.Normalize()

	halfMain := lightDir.Sub(viewDir).Normalize()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		ViewDir:  viewDir,
		HalfMain: halfMain,
		Ambient:  0.45,
		Hemi:     0.35,
		Direct:   1.20,
		Rim:      0.25,
		SpecInt:   0.12,
		SpecPow:   8.0,
		Exposure:  1.0,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal geom.Vec3) float64 {
	ndlMain := math.Max(normal.Dot(lc.LightDir), 0)
	ndlRim := math.Max(normal.Dot(lc.RimDir), 0)

	hemi := (normal[2]+1.0)*0.5
	hemiLight := hemi * lc.Hemi

	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value, clamping
// the result to at most 1.
func ACESTonemap(x float64) float64 {
	v := (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
	if v > 1 {
		return 1
	}
	return v
}

// srgbToLinear is a precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}
