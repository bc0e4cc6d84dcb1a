// Package gamemath provides movement math shared between the motion
// systems and the collision host. It has no dependencies on ebitengine
// or donburi, only plain math.
package gamemath

import "github.com/go-gl/mathgl/mgl64"

// SmoothDamp advances current toward target with a critically damped
// spring. smoothTime is roughly the time to cover 63% of the remaining
// distance; velocity carries state between calls and must be fed back
// in on the next tick. The approximation is stable for any dt > 0.
func SmoothDamp(current, target, velocity, smoothTime, dt float64) (float64, float64) {
	if smoothTime < 1e-4 {
		smoothTime = 1e-4
	}
	omega := 2.0 / smoothTime

	x := omega * dt
	decay := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	// Clamp overshoot: the approximation can cross the target when the
	// incoming velocity was already pointed at it.
	if (target-current > 0) == (out > target) {
		out = target
		velocity = 0
	}
	return out, velocity
}

// SmoothDampVec3 applies SmoothDamp per component.
func SmoothDampVec3(current, target, velocity mgl64.Vec3, smoothTime, dt float64) (mgl64.Vec3, mgl64.Vec3) {
	var out mgl64.Vec3
	for i := 0; i < 3; i++ {
		out[i], velocity[i] = SmoothDamp(current[i], target[i], velocity[i], smoothTime, dt)
	}
	return out, velocity
}
