package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/strider/config"
)

// OrbitCameraData holds the orbit camera rig state. Yaw accumulates
// unbounded; Pitch is clamped by the camera system every frame.
type OrbitCameraData struct {
	Yaw   float64 // degrees
	Pitch float64 // degrees, clamped to ±cfg.Camera.VerticalLimit

	Distance   float64
	BackOffset mgl64.Vec3 // camera-local offset of length Distance

	Position mgl64.Vec3 // resolved world position after obstruction
}

// SetDistance updates the orbit distance, clamping to the configured
// positive floor, and recomputes the back offset immediately. Safe to
// call at any time.
func (c *OrbitCameraData) SetDistance(distance float64) {
	if distance < cfg.Camera.MinDistance {
		distance = cfg.Camera.MinDistance
	}
	c.Distance = distance
	c.BackOffset = mgl64.Vec3{0, 0, -distance}
}

// Orientation returns the rig rotation, yaw around Y then pitch.
func (c *OrbitCameraData) Orientation() mgl64.Quat {
	return mgl64.AnglesToQuat(mgl64.DegToRad(c.Yaw), mgl64.DegToRad(c.Pitch), 0, mgl64.YXZ)
}

// Forward returns the camera's world-space view direction.
func (c *OrbitCameraData) Forward() mgl64.Vec3 {
	return c.Orientation().Rotate(mgl64.Vec3{0, 0, 1})
}

var OrbitCamera = donburi.NewComponentType[OrbitCameraData]()
