package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// UpdateSignals maps motion state to the named animation parameters
// and fires any armed audio cue latches. Runs after movement so the
// parameters describe the committed frame. Rolling frames emit only
// roll-specific cues.
func UpdateSignals(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	snapshot := components.Input.Get(inputEntry).Snapshot()

	components.Motion.Each(e.World, func(entry *donburi.Entry) {
		motion := components.Motion.Get(entry)
		if motion.Disabled {
			return
		}
		signals := components.Signals.Get(entry)
		transform := components.Transform.Get(entry)

		if motion.Rolling {
			signals.State = cfg.StateRolling
			if motion.RollSound.TryFire() {
				PlaySFX(e, cfg.SoundRollImpact)
			}
			return
		}

		signals.Grounded = motion.Grounded
		signals.Moving = snapshot.MoveAxis.Len() > 0
		signals.Running = motion.Running
		signals.MovementSpeed = motion.SmoothedDir.Len()
		signals.LocalX, signals.LocalY = transform.ToLocal(motion.SmoothedDir)
		signals.Falling = motion.AirTime >= cfg.Motion.FallAnimDelay && motion.VerticalVelocity < -0.1
		signals.State = classifyState(motion, signals)

		if motion.Footstep.TryFire() {
			PlaySFX(e, cfg.SoundFootstep)
		}
		if motion.RollSound.TryFire() {
			PlaySFX(e, cfg.SoundRollImpact)
		}
	})
}

func classifyState(motion *components.MotionData, signals *components.SignalData) cfg.StateID {
	switch {
	case signals.Falling:
		return cfg.StateFalling
	case !motion.Grounded:
		return cfg.StateJumping
	case signals.Moving:
		return cfg.StateRunning
	default:
		return cfg.StateIdle
	}
}
