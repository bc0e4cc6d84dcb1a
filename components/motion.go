package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MotionData is the character movement state, mutated exclusively by
// the motion system. Other systems read it or go through the narrow
// entry points in the systems package.
type MotionData struct {
	VerticalVelocity float64

	// Intent is the camera-relative desired direction, vertical
	// component zeroed. SmoothedDir chases it through a critically
	// damped spring; SmoothVelocity is the spring's state.
	Intent         mgl64.Vec3
	SmoothedDir    mgl64.Vec3
	SmoothVelocity mgl64.Vec3

	Running bool
	Focused bool

	// Rolling suspends normal movement, rotation and animation
	// handling. RollTimer is only meaningful while Rolling.
	Rolling   bool
	RollTimer float64
	RollDir   mgl64.Vec3

	// Grounded is the host's report from the last committed move.
	Grounded bool

	// AirTime counts consecutive airborne seconds; PrevAirTime holds
	// the length of the airborne stretch that ended on the most recent
	// landing and is zeroed once the landing has been classified.
	AirTime     float64
	PrevAirTime float64

	// Disabled is set when a required collaborator was missing at
	// spawn. The motion systems skip disabled entities entirely.
	Disabled bool

	// Animation-timed cue latches.
	Footstep  CueLatch
	RollSound CueLatch
}

var Motion = donburi.NewComponentType[MotionData]()
