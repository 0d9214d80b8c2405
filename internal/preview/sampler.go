package preview

import "image"

// SampleRamp performs a linear lookup along the middle row of a horizontal
// color ramp image at normalized position t in [0, 1], clamped at the
// edges. The preview
// renderer uses this to map normalized triangle height to a terrain color
// (e.g. a blue-green-brown-white elevation gradient) instead of UV texture
// mapping, since RTIN meshes carry no texture coordinates.
func SampleRamp(ramp *image.NRGBA, t float64) (r, g, b, a uint8) {
	w := ramp.Rect.Dx()
	if w == 1 {
		return sampleRampTexel(ramp, 0)
	}

	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	fx := t * float64(w-1)
	x0 := int(fx)
	x1 := x0 + 1
	if x1 >= w {
		x1 = w - 1
	}
	dx := fx - float64(x0)

	r0, g0, b0, a0 := sampleRampTexel(ramp, x0)
	r1, g1, b1, a1 := sampleRampTexel(ramp, x1)

	lerp := func(v0, v1 uint8) uint8 {
		return uint8(float64(v0)*(1-dx) + float64(v1)*dx + 0.5)
	}
	return lerp(r0, r1), lerp(g0, g1), lerp(b0, b1), lerp(a0, a1)
}

func sampleRampTexel(ramp *image.NRGBA, x int) (r, g, b, a uint8) {
	y := ramp.Rect.Dy() / 2
	i := ramp.PixOffset(ramp.Rect.Min.X+x, ramp.Rect.Min.Y+y)
	pix := ramp.Pix
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}
