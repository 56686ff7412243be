package math

import (
	gomath "math"
	"testing"
)

const rotEps = 1e-5

func vecNear(a, b Vec3) bool {
	return gomath.Abs(float64(a.X-b.X)) < rotEps &&
		gomath.Abs(float64(a.Y-b.Y)) < rotEps &&
		gomath.Abs(float64(a.Z-b.Z)) < rotEps
}

func TestRadians(t *testing.T) {
	got := Radians(180)
	want := float32(gomath.Pi)
	if gomath.Abs(float64(got-want)) > rotEps {
		t.Errorf("Radians(180) = %v, want %v", got, want)
	}
}

func TestRotateEulerSingleAxis(t *testing.T) {
	tests := []struct {
		name   string
		angles Vec3
		in     Vec3
		want   Vec3
	}{
		{"Y90", Vec3{0, Radians(90), 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"X90", Vec3{Radians(90), 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"Z90", Vec3{0, 0, Radians(90)}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.RotateEuler(tc.angles)
			if !vecNear(got, tc.want) {
				t.Errorf("RotateEuler(%v) = %v, want %v", tc.angles, got, tc.want)
			}
		})
	}
}

// The composition order is Y, then X, then Z. Rotating (1,0,0) by 90
// degrees on both Y and X lands on +Y only if Y is applied first.
func TestRotateEulerOrder(t *testing.T) {
	got := Vec3{1, 0, 0}.RotateEuler(Vec3{Radians(90), Radians(90), 0})
	want := Vec3{0, 1, 0}
	if !vecNear(got, want) {
		t.Errorf("RotateEuler order mismatch: got %v, want %v", got, want)
	}
}

func TestRotateEulerFullTurn(t *testing.T) {
	in := Vec3{0.3, -1.2, 2.5}
	got := in.RotateEuler(Vec3{2 * gomath.Pi, 2 * gomath.Pi, 2 * gomath.Pi})
	if !vecNear(got, in) {
		t.Errorf("full turn moved vertex: got %v, want %v", got, in)
	}
}

func TestRotateAll(t *testing.T) {
	vs := []Vec3{{1, 0, 0}, {0, 1, 0}}
	RotateAll(Vec3{0, 0, Radians(90)}, vs)
	if !vecNear(vs[0], Vec3{0, 1, 0}) || !vecNear(vs[1], Vec3{-1, 0, 0}) {
		t.Errorf("RotateAll result = %v", vs)
	}
}

func TestTranslateAll(t *testing.T) {
	vs := []Vec3{{1, 1, 1}, {2, 2, 2}}
	TranslateAll(Vec3{-1, 0, 1}, vs)
	if vs[0] != (Vec3{0, 1, 2}) || vs[1] != (Vec3{1, 2, 3}) {
		t.Errorf("TranslateAll result = %v", vs)
	}
}
