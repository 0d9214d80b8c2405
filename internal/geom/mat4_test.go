package geom

import "testing"

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	got := Mat4Mul(m, Mat4Identity())
	if got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}

	got = Mat4Mul(Mat4Identity(), m)
	if got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMat4IdentityIsIdentity(t *testing.T) {
	if !Mat4Identity().IsIdentity() {
		t.Error("Mat4Identity() should report IsIdentity() == true")
	}
	m := Mat4Identity()
	m[0] = 2
	if m.IsIdentity() {
		t.Error("a perturbed identity matrix should not report IsIdentity() == true")
	}
}

func TestMulPointTranslation(t *testing.T) {
	m := Mat4{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	}
	got := m.MulPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("MulPoint = %v, want %v", got, want)
	}
}

func TestMulDirIgnoresTranslation(t *testing.T) {
	m := Mat4{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	}
	got := m.MulDir(Vec3{1, 2, 3})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("MulDir = %v, want %v", got, want)
	}
}

func TestLookAtPlacesTargetOnNegativeZ(t *testing.T) {
	eye := Vec3{0, 0, 5}
	target := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	view := LookAt(eye, target, up)
	got := view.MulPoint(target)

	if !approxEqual(got[2], -5, 1e-9) {
		t.Errorf("view-space target z = %v, want -5", got[2])
	}
	if !approxEqual(got[0], 0, 1e-9) || !approxEqual(got[1], 0, 1e-9) {
		t.Errorf("view-space target xy = (%v, %v), want (0, 0)", got[0], got[1])
	}
}

func TestOrthographicMapsBoxToClipSpace(t *testing.T) {
	proj := Orthographic(-10, 10, -10, 10, -10, 10)

	center := proj.MulPoint(Vec3{0, 0, 0})
	if !approxEqual(center[0], 0, 1e-9) || !approxEqual(center[1], 0, 1e-9) || !approxEqual(center[2], 0, 1e-9) {
		t.Errorf("center maps to %v, want origin", center)
	}

	corner := proj.MulPoint(Vec3{10, 10, -10})
	if !approxEqual(corner[0], 1, 1e-9) || !approxEqual(corner[1], 1, 1e-9) || !approxEqual(corner[2], 1, 1e-9) {
		t.Errorf("far corner maps to %v, want (1, 1, 1)", corner)
	}
}
