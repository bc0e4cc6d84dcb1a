package systems

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
)

// UpdateMotion runs the per-tick character movement state machine:
// ground bookkeeping, falling-loop gating, roll entry and integration,
// then the normal grounded/run/jump path. It is the sole writer of
// MotionData.
func UpdateMotion(e *ecs.ECS) {
	components.Motion.Each(e.World, func(entry *donburi.Entry) {
		updateSingleMotion(e, entry)
	})
}

func updateSingleMotion(e *ecs.ECS, entry *donburi.Entry) {
	motion := components.Motion.Get(entry)
	if motion.Disabled {
		return
	}

	host := components.Host.Get(entry)
	transform := components.Transform.Get(entry)
	signals := components.Signals.Get(entry)

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		log.Printf("motion: no input provider in world, disabling character")
		motion.Disabled = true
		return
	}
	snapshot := components.Input.Get(inputEntry).Snapshot()

	dt := cfg.C.TickDuration()

	// Air-time bookkeeping. PrevAirTime collapses back to zero on the
	// second grounded frame, so landing classification below can only
	// fire on the frame contact was first reported.
	if motion.Grounded {
		motion.PrevAirTime = motion.AirTime
		motion.AirTime = 0
	} else {
		motion.AirTime += dt
	}
	motion.Focused = snapshot.FocusHeld

	// Falling-loop gating runs every frame, before any roll
	// short-circuit, so the loop always cuts on ground contact.
	audioData := GetOrCreateAudio(e)
	if motion.Grounded {
		audioData.FallingLoop = cfg.SoundNone
	} else if motion.AirTime > cfg.Motion.FallSoundDelay {
		audioData.FallingLoop = cfg.Sound.FallingLoop
	}

	// Gentle landing. The hard case is the recovery roll below.
	if motion.Grounded && !motion.Rolling &&
		motion.PrevAirTime > cfg.Motion.SoftLandingMin && motion.PrevAirTime < cfg.Motion.HardLandingMin {
		PlaySFX(e, cfg.SoundLandSoft)
		TriggerLandingFlash(e, 0.15)
	}

	// Roll entry, in priority order: a player request beats the
	// automatic landing-recovery roll.
	if snapshot.RollPressed && motion.Grounded && !motion.Rolling {
		beginRoll(motion, transform, signals)
	} else if motion.Grounded && !motion.Rolling && motion.PrevAirTime >= cfg.Motion.HardLandingMin {
		beginRoll(motion, transform, signals)
		PlaySFX(e, cfg.SoundLandHard)
		TriggerLandingFlash(e, 0.45)
		// Zeroed immediately so the same landing cannot re-trigger.
		motion.PrevAirTime = 0
	}

	if motion.Rolling {
		updateRoll(motion, transform, host, dt)
		return
	}

	// Run toggle; forced off once both raw input and intent die out.
	if snapshot.RunToggled {
		motion.Running = !motion.Running
	}
	if snapshot.MoveAxis.Len() == 0 && gamemath.HorizontalLenSqr(motion.Intent) == 0 {
		motion.Running = false
	}

	speed := cfg.Motion.WalkSpeed
	if motion.Running {
		speed *= cfg.Motion.RunMultiplier
	}

	// Intent is only steerable while grounded; airborne frames keep
	// the direction they left the ground with.
	if motion.Grounded {
		if motion.VerticalVelocity < 0 {
			motion.VerticalVelocity = 0
		}
		motion.Intent = moveIntent(e, transform, snapshot.MoveAxis)
	}

	if snapshot.JumpPressed && motion.Grounded {
		// v0 for the configured apex height; multiplier and gravity
		// are both negative, so the product is positive.
		motion.VerticalVelocity = math.Sqrt(cfg.Motion.JumpHeight * cfg.Motion.JumpMultiplier * cfg.Motion.Gravity)
		// Mask the jump's ground-separation frames from falling
		// detection and the landing thresholds.
		motion.AirTime -= cfg.Motion.JumpAirTimeDeduction
		signals.PushTrigger(cfg.TriggerJump)
		PlaySFX(e, randomJumpSound())
	}

	motion.SmoothedDir, motion.SmoothVelocity = gamemath.SmoothDampVec3(
		motion.SmoothedDir, motion.Intent, motion.SmoothVelocity, cfg.Motion.SmoothTime, dt)

	motion.VerticalVelocity += cfg.Motion.Gravity * dt

	delta := motion.SmoothedDir.Mul(speed)
	delta[1] += motion.VerticalVelocity
	commitMove(motion, transform, host, delta.Mul(dt))
}

// beginRoll captures the roll direction and suspends normal handling.
// Both the player-requested and the landing-recovery paths enter here.
func beginRoll(motion *components.MotionData, transform *components.TransformData, signals *components.SignalData) {
	dir := gamemath.FlattenNormalize(motion.SmoothedDir)
	if gamemath.HorizontalLenSqr(motion.SmoothedDir) <= 0.001 {
		dir = transform.Forward()
	}
	motion.RollDir = dir
	motion.Rolling = true
	motion.RollTimer = cfg.Motion.RollDuration
	signals.PushTrigger(cfg.TriggerRoll)
}

// updateRoll integrates the roll displacement. Nothing else runs on a
// rolling frame.
func updateRoll(motion *components.MotionData, transform *components.TransformData, host *components.HostData, dt float64) {
	motion.VerticalVelocity += cfg.Motion.Gravity * dt

	delta := motion.RollDir.Mul(cfg.Motion.WalkSpeed * cfg.Motion.RollSpeedMultiplier)
	delta[1] += motion.VerticalVelocity
	commitMove(motion, transform, host, delta.Mul(dt))

	motion.RollTimer -= dt
	if motion.RollTimer <= 0 {
		motion.Rolling = false
		motion.RollTimer = 0
	}
}

// moveIntent converts the 2D move axis into a world-space direction
// relative to the camera, or to the character itself when no camera
// exists. Vertical component is always zero.
func moveIntent(e *ecs.ECS, transform *components.TransformData, axis mgl64.Vec2) mgl64.Vec3 {
	forward := transform.Forward()
	right := transform.Right()

	if camEntry, ok := components.OrbitCamera.First(e.World); ok {
		cam := components.OrbitCamera.Get(camEntry)
		forward = gamemath.FlattenNormalize(cam.Forward())
		right = gamemath.DirectionFromYaw(gamemath.YawFromDirection(forward) + 90)
	} else {
		warnNoCameraOnce()
	}

	return forward.Mul(axis.Y()).Add(right.Mul(axis.X()))
}

// commitMove hands the displacement to the movement host and stores
// the resolved position plus its post-move ground report for the next
// tick's decisions.
func commitMove(motion *components.MotionData, transform *components.TransformData, host *components.HostData, delta mgl64.Vec3) {
	pos, grounded := host.Mover.Move(transform.Position, delta)
	transform.Position = pos
	motion.Grounded = grounded
}

var warnedNoCamera bool

func warnNoCameraOnce() {
	if warnedNoCamera {
		return
	}
	warnedNoCamera = true
	log.Printf("motion: no camera in world, movement falls back to self-relative axes")
}
