package math3d

import (
	"math"
	"testing"
)

func TestMat4TranslatePoint(t *testing.T) {
	m := Translate(V3(1, 2, 3))

	if got := m.MulVec3(V3(1, 1, 1)); got != V3(2, 3, 4) {
		t.Errorf("MulVec3 = %v, want (2, 3, 4)", got)
	}
	// Directions ignore translation.
	if got := m.MulVec3Dir(V3(1, 1, 1)); got != V3(1, 1, 1) {
		t.Errorf("MulVec3Dir = %v, want (1, 1, 1)", got)
	}
}

func TestMat4Rotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x quarter turn", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"y quarter turn", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		{"z quarter turn", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
		{"axis matches RotateY", Rotate(Up(), math.Pi/2), V3(0, 0, 1), V3(1, 0, 0)},
		{"euler y only", RotateEuler(0, math.Pi/2, 0), V3(0, 0, 1), V3(1, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.MulVec3(tc.in)
			if !got.ApproxEqual(tc.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMat4RotateEulerOrder(t *testing.T) {
	x, y, z := 0.3, -0.7, 1.1
	want := RotateY(y).MulVec3(RotateX(x).MulVec3(RotateZ(z).MulVec3(V3(1, 2, 3))))
	got := RotateEuler(x, y, z).MulVec3(V3(1, 2, 3))
	if !got.ApproxEqual(want, 1e-9) {
		t.Errorf("RotateEuler = %v, want %v", got, want)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Translate(V3(1, -2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 3, 4)))
	inv := m.Inverse()

	p := V3(0.25, -7, 4)
	if got := inv.MulVec3(m.MulVec3(p)); !got.ApproxEqual(p, 1e-9) {
		t.Errorf("inverse round trip = %v, want %v", got, p)
	}

	id := m.Mul(inv)
	for i := range id {
		if math.Abs(id[i]-Identity()[i]) > 1e-9 {
			t.Fatalf("m * m⁻¹ = %v, want identity", id)
		}
	}
}

func TestMat4InverseSingular(t *testing.T) {
	if got := Scale(V3(1, 0, 1)).Inverse(); got != Identity() {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestMat4Determinant(t *testing.T) {
	if d := Scale(V3(2, 3, 4)).Determinant(); d != 24 {
		t.Errorf("Determinant = %v, want 24", d)
	}
	if d := RotateZ(1.3).Determinant(); math.Abs(d-1) > 1e-12 {
		t.Errorf("rotation determinant = %v, want 1", d)
	}
}

func TestMat4GetSet(t *testing.T) {
	m := Identity()
	m.Set(0, 3, 7)
	if m.Get(0, 3) != 7 {
		t.Errorf("Get(0, 3) = %v, want 7", m.Get(0, 3))
	}
	if m.Translation() != V3(7, 0, 0) {
		t.Errorf("Translation = %v, want (7, 0, 0)", m.Translation())
	}

	m.SetTranslation(V3(1, 2, 3))
	if m.MulVec3(Zero3()) != V3(1, 2, 3) {
		t.Errorf("SetTranslation did not move the origin")
	}
	if m.Transpose().Get(3, 0) != 1 {
		t.Errorf("Transpose did not move translation to the bottom row")
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := V3(0, 0, 10)
	view := LookAt(eye, Zero3(), Up())

	if got := view.MulVec3(eye); !got.ApproxEqual(Zero3(), 1e-9) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	// Target lies straight down -Z in view space.
	if got := view.MulVec3(Zero3()); !got.ApproxEqual(V3(0, 0, -10), 1e-9) {
		t.Errorf("target in view space = %v, want (0, 0, -10)", got)
	}
}
