package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
)

// Animation-timed callback surface. The presentation layer invokes the
// Handle* entry points at animation-authored timestamps; they may land
// on several consecutive frames, so each cue goes through a latch that
// fires at most once per Arm/Disarm cycle. All entry points are safe
// to call at any time and no-ops when their preconditions fail.

// HandleFootstep arms the footstep cue. Ignored while airborne.
func HandleFootstep(e *ecs.ECS) {
	motion := firstMotion(e)
	if motion == nil || !motion.Grounded {
		return
	}
	motion.Footstep.Arm()
}

// StopFootstep rearms the footstep cue for the next animation cycle.
func StopFootstep(e *ecs.ECS) {
	if motion := firstMotion(e); motion != nil {
		motion.Footstep.Disarm()
	}
}

// HandleRollSound arms the roll-impact cue. Ignored when not rolling.
func HandleRollSound(e *ecs.ECS) {
	motion := firstMotion(e)
	if motion == nil || !motion.Rolling {
		return
	}
	motion.RollSound.Arm()
}

// StopRolling ends a roll early and resets the roll cue. The roll
// animation's exit event calls this; a no-op when not rolling.
func StopRolling(e *ecs.ECS) {
	motion := firstMotion(e)
	if motion == nil || !motion.Rolling {
		return
	}
	motion.Rolling = false
	motion.RollTimer = 0
	motion.RollSound.Disarm()
}

func firstMotion(e *ecs.ECS) *components.MotionData {
	entry, ok := components.Motion.First(e.World)
	if !ok {
		return nil
	}
	motion := components.Motion.Get(entry)
	if motion.Disabled {
		return nil
	}
	return motion
}
