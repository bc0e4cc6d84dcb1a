package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Flatten zeroes the vertical component of v.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// FlattenNormalize zeroes the vertical component and renormalizes.
// Returns the zero vector when the flattened input has no length.
func FlattenNormalize(v mgl64.Vec3) mgl64.Vec3 {
	flat := Flatten(v)
	if flat.LenSqr() < 1e-12 {
		return mgl64.Vec3{}
	}
	return flat.Normalize()
}

// HorizontalLenSqr returns the squared length of v on the XZ plane.
func HorizontalLenSqr(v mgl64.Vec3) float64 {
	return v.X()*v.X() + v.Z()*v.Z()
}
