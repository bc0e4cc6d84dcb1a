package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
)

// UpdateRotation turns the character toward its movement direction, or
// toward the camera's flattened forward while focused. Facing is left
// untouched when neither mode applies, and rolling frames skip
// rotation entirely.
func UpdateRotation(e *ecs.ECS) {
	components.Motion.Each(e.World, func(entry *donburi.Entry) {
		motion := components.Motion.Get(entry)
		if motion.Disabled || motion.Rolling {
			return
		}

		transform := components.Transform.Get(entry)
		maxDelta := cfg.Motion.RotationSpeed * cfg.C.TickDuration()

		if motion.Focused {
			camEntry, ok := components.OrbitCamera.First(e.World)
			if !ok {
				// No camera: focus lock degrades to no rotation.
				return
			}
			cam := components.OrbitCamera.Get(camEntry)
			forward := gamemath.FlattenNormalize(cam.Forward())
			if forward.LenSqr() == 0 {
				return
			}
			transform.Yaw = gamemath.MoveTowardAngle(transform.Yaw, gamemath.YawFromDirection(forward), maxDelta)
			return
		}

		if gamemath.HorizontalLenSqr(motion.SmoothedDir) > 0.001 {
			target := gamemath.YawFromDirection(motion.SmoothedDir)
			transform.Yaw = gamemath.MoveTowardAngle(transform.Yaw, target, maxDelta)
		}
	})
}
