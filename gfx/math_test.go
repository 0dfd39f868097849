package gfx

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-4 }

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestMat4MulPointTRS(t *testing.T) {
	m := Mat4Mul(Mat4Translate(V3(-1, -2, -3)), Mat4Scale(V3(5, 5, 5)))
	p := Mat4MulPoint(m, V3(1, 1, 1))
	if p != V3(4, 3, 2) {
		t.Fatalf("TRS*p\nhave %v\nwant %v", p, V3(4, 3, 2))
	}
	d := Mat4MulDir(m, V3(1, 0, 0))
	if d != V3(5, 0, 0) {
		t.Fatalf("TRS*d\nhave %v\nwant %v", d, V3(5, 0, 0))
	}
}

func TestRotateRightHanded(t *testing.T) {
	half := float32(math.Pi / 2)
	for _, tc := range []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"X", Mat4RotateX(half), V3(0, 1, 0), V3(0, 0, 1)},
		{"Y", Mat4RotateY(half), V3(0, 0, 1), V3(1, 0, 0)},
		{"Z", Mat4RotateZ(half), V3(1, 0, 0), V3(0, 1, 0)},
	} {
		got := Mat4MulDir(tc.m, tc.in)
		if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) || !near(got.Z, tc.want.Z) {
			t.Fatalf("Rotate%s\nhave %v\nwant %v", tc.name, got, tc.want)
		}
	}
}

func TestEulerOrderXYZ(t *testing.T) {
	e := Euler{X: 0.3, Y: -0.7, Z: 1.1}
	want := Mat4Mul(Mat4Mul(Mat4RotateX(e.X), Mat4RotateY(e.Y)), Mat4RotateZ(e.Z))
	got := e.Matrix()
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("Euler.Matrix[%d]\nhave %v\nwant %v", i, got[i], want[i])
		}
	}
	if (Euler{}).Matrix() != Mat4Identity() {
		t.Fatal("zero Euler should be the identity")
	}
}

func TestNormalize(t *testing.T) {
	if n := Normalize(V3(0, 0, -2)); n != V3(0, 0, -1) {
		t.Fatalf("Normalize\nhave %v\nwant [0 0 -1]", n)
	}
	if n := Normalize(Vec3{}); n != (Vec3{}) {
		t.Fatalf("Normalize(0)\nhave %v\nwant zero", n)
	}
	if c := Cross(V3(0, 0, -1), V3(0, 1, 0)); c != V3(1, 0, 0) {
		t.Fatalf("Cross\nhave %v\nwant [1 0 0]", c)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Mat4Perspective(float32(70*math.Pi/180), 4.0/3, 1, 1000)
	for _, tc := range []struct {
		z, want float32
	}{
		{-1, -1},
		{-1000, 1},
	} {
		v := Mat4MulV4(p, Vec4{Z: tc.z, W: 1})
		if got := v.Z / v.W; !near(got, tc.want) {
			t.Fatalf("ndc z at %v\nhave %v\nwant %v", tc.z, got, tc.want)
		}
	}
}
