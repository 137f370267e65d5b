package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformVec3Translate(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestTransformVec3Scale(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{2, 6, 12}
	if got != want {
		t.Errorf("TransformVec3 with scale: got %v, want %v", got, want)
	}
}

func TestTRSIdentity(t *testing.T) {
	m := TRS(Vec3{}, QuatIdentity(), One)
	if m != Identity() {
		t.Errorf("TRS(0, identity, 1) = %v, want identity", m)
	}
}

func TestTRSOrder(t *testing.T) {
	// Scale X by 2, rotate 90 degrees about Y, then move up by 1.
	rot := QuatFromAxisAngle(Up, float32(math.Pi/2))
	m := TRS(Vec3{0, 1, 0}, rot, Vec3{2, 1, 1})

	// (1,0,0) -> (2,0,0) -> (0,0,-2) -> (0,1,-2)
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{0, 1, -2}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("TRS order: got %v, want %v", got, want)
	}
}

func TestTRSMatchesQuatRotate(t *testing.T) {
	rot := QuatFromEuler(Vec3{0.3, -1.2, 0.7})
	pos := Vec3{4, -2, 9}
	scale := Vec3{1.5, 0.5, 3}
	p := Vec3{-1, 1, 1}

	got := TRS(pos, rot, scale).TransformVec3(p)
	want := rot.Rotate(p.Mul(scale)).Add(pos)
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("TRS: got %v, want %v", got, want)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
