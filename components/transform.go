package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/shared/gamemath"
)

// TransformData holds a character's world position and facing.
// Characters stay upright, so facing is a single yaw angle in degrees.
type TransformData struct {
	Position mgl64.Vec3
	Yaw      float64
}

// Forward returns the unit vector the character is facing on the XZ plane.
func (t *TransformData) Forward() mgl64.Vec3 {
	return gamemath.DirectionFromYaw(t.Yaw)
}

// Right returns the unit vector to the character's right on the XZ plane.
func (t *TransformData) Right() mgl64.Vec3 {
	return gamemath.DirectionFromYaw(t.Yaw + 90)
}

// ToLocal projects a world-space vector onto the character's right and
// forward axes. Used for directional animation blending.
func (t *TransformData) ToLocal(v mgl64.Vec3) (x, y float64) {
	return t.Right().Dot(v), t.Forward().Dot(v)
}

var Transform = donburi.NewComponentType[TransformData]()
