package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MovementHost performs the collision-swept move for a character. The
// motion system hands it a world-space displacement once per tick and
// trusts the returned position and ground report. Grounded is always
// the post-move state.
type MovementHost interface {
	Move(pos, delta mgl64.Vec3) (resolved mgl64.Vec3, grounded bool)
}

// CameraProbe checks the straight segment from the focus point to the
// desired camera position against obstructions carrying any of the
// mask tags. When blocked it returns the first obstruction point and
// true.
type CameraProbe interface {
	Cast(from, to mgl64.Vec3, mask []string) (hit mgl64.Vec3, blocked bool)
}

// HostData carries the injected collaborators. The shipped binary
// wires the collision package here; tests substitute fakes.
type HostData struct {
	Mover MovementHost
	Probe CameraProbe
}

var Host = donburi.NewComponentType[HostData]()
