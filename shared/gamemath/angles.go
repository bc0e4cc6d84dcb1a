package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WrapAngle normalizes degrees into (-180, 180].
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// MoveTowardAngle rotates current toward target by at most maxDelta,
// all in degrees, taking the shorter way around.
func MoveTowardAngle(current, target, maxDelta float64) float64 {
	delta := WrapAngle(target - current)
	if math.Abs(delta) <= maxDelta {
		return current + delta
	}
	if delta < 0 {
		maxDelta = -maxDelta
	}
	return WrapAngle(current + maxDelta)
}

// YawFromDirection returns the yaw in degrees that faces dir on the XZ
// plane. Zero yaw faces +Z; positive yaw turns toward +X.
func YawFromDirection(dir mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z()))
}

// DirectionFromYaw returns the unit XZ direction for a yaw in degrees.
func DirectionFromYaw(yawDeg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(yawDeg)
	return mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
