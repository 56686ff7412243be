package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (math.Pi / 180.0)
}

// RotateEuler rotates v by the given Euler angles (radians), composing the
// axis rotations in a fixed order: Y first, then X on the Y-rotated Z, then
// Z on the Y-rotated X and X-rotated Y. The order is not commutative and
// must not be changed. Intermediates are computed in float64 and narrowed
// on assignment.
func (v Vec3) RotateEuler(angles Vec3) Vec3 {
	cx, sx := math.Cos(float64(angles.X)), math.Sin(float64(angles.X))
	cy, sy := math.Cos(float64(angles.Y)), math.Sin(float64(angles.Y))
	cz, sz := math.Cos(float64(angles.Z)), math.Sin(float64(angles.Z))

	x := float64(v.X)
	y := float64(v.Y)
	z := float64(v.Z)

	// around Y
	x1 := x*cy + z*sy
	z1 := -x*sy + z*cy

	// around X, using the Y-rotated Z
	y2 := y*cx - z1*sx
	z2 := y*sx + z1*cx

	// around Z, using the Y-rotated X and X-rotated Y
	x3 := x1*cz - y2*sz
	y3 := x1*sz + y2*cz

	return Vec3{float32(x3), float32(y3), float32(z2)}
}

// RotateAll applies RotateEuler to every vertex in place.
func RotateAll(angles Vec3, vertices []Vec3) {
	for i := range vertices {
		vertices[i] = vertices[i].RotateEuler(angles)
	}
}

// TranslateAll adds offset to every vertex in place.
func TranslateAll(offset Vec3, vertices []Vec3) {
	for i := range vertices {
		vertices[i] = vertices[i].Add(offset)
	}
}
