package preview

import "math"

// RasterizeTerrain rasterizes one screen-space triangle into fb, flat-shaded
// by its face normal and colored by a height ramp sampled at the triangle's
// mean normalized elevation (t0+t1+t2)/3 — a terrain mesh has no texture
// coordinates, so color comes from height instead of UVs.
//
// px, py, pz are screen-space position arrays (pz used for the z-test);
// nx, ny, nz is the one face normal shared by all three vertices (the
// RTIN mesh carries flat per-triangle geometry, so there is no vertex
// normal to interpolate); rampR/G/B/A is the terrain color already looked
// up by the caller from the triangle's mean normalized elevation.
//
// This is the hot path: zero allocation in the pixel loop.
func RasterizeTerrain(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	nx, ny, nz float64,
	rampR, rampG, rampB, rampA uint8,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	ndlMain := math.Max(nx*lc.LightDir[0]+ny*lc.LightDir[1]+nz*lc.LightDir[2], 0)
	ndlRim := math.Max(nx*lc.RimDir[0]+ny*lc.RimDir[1]+nz*lc.RimDir[2], 0)
	hemi := (nz + 1.0) * 0.5
	hemiLight := hemi * lc.Hemi
	ndh := nx*lc.HalfMain[0] + ny*lc.HalfMain[1] + nz*lc.HalfMain[2]
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt
	shade := lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec

	size := fb.Width
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= size {
		maxX = size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= size {
		maxY = size - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	exposure := lc.Exposure
	invGamma := lc.InvGamma

	lr := srgbToLinear[rampR]
	lg := srgbToLinear[rampG]
	lb := srgbToLinear[rampB]

	sr := lr * shade * exposure
	sg := lg * shade * exposure
	sb := lb * shade * exposure

	tr := math.Pow(ACESTonemap(sr), invGamma)
	tg := math.Pow(ACESTonemap(sg), invGamma)
	tb := math.Pow(ACESTonemap(sb), invGamma)

	fr := clamp8(tr * 255)
	fg := clamp8(tg * 255)
	fb2 := clamp8(tb * 255)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = fr
			fb.Color[pxIdx+1] = fg
			fb.Color[pxIdx+2] = fb2
			fb.Color[pxIdx+3] = rampA
		}
	}
}
