package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems/factory"
)

// fakeMover resolves moves against a flat ground plane at groundY and
// records the last displacement it was handed.
type fakeMover struct {
	groundY   float64
	lastDelta mgl64.Vec3
	moves     int
}

func (m *fakeMover) Move(pos, delta mgl64.Vec3) (mgl64.Vec3, bool) {
	m.lastDelta = delta
	m.moves++

	next := pos.Add(delta)
	grounded := false
	if delta.Y() <= 0 && next.Y() <= m.groundY {
		next[1] = m.groundY
		grounded = true
	}
	return next, grounded
}

type fakeProbe struct {
	hit     mgl64.Vec3
	blocked bool
}

func (p *fakeProbe) Cast(from, to mgl64.Vec3, mask []string) (mgl64.Vec3, bool) {
	if p.blocked {
		return p.hit, true
	}
	return to, false
}

func newMotionWorld(t *testing.T) (*ecs.ECS, *donburi.Entry, *fakeMover) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateInput(e)
	mover := &fakeMover{}
	player := factory.CreatePlayer(e, mover, &fakeProbe{}, mgl64.Vec3{})
	return e, player, mover
}

func press(e *ecs.ECS, action cfg.ActionID) {
	entry, _ := components.Input.First(e.World)
	input := components.Input.Get(entry)
	input.Previous[action] = input.Current[action]
	input.Current[action] = true
}

func release(e *ecs.ECS, action cfg.ActionID) {
	entry, _ := components.Input.First(e.World)
	input := components.Input.Get(entry)
	input.Previous[action] = input.Current[action]
	input.Current[action] = false
}

func setMoveAxis(e *ecs.ECS, axis mgl64.Vec2) {
	entry, _ := components.Input.First(e.World)
	components.Input.Get(entry).MoveAxis = axis
}

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func containsSound(sounds []cfg.SoundID, want cfg.SoundID) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}

func TestJumpRequiresGround(t *testing.T) {
	e, player, _ := newMotionWorld(t)
	motion := components.Motion.Get(player)
	dt := cfg.C.TickDuration()

	press(e, cfg.ActionJump)
	UpdateMotion(e)

	// v0 for the configured apex, minus one tick of gravity already
	// integrated on the jump frame.
	v0 := math.Sqrt(cfg.Motion.JumpHeight * cfg.Motion.JumpMultiplier * cfg.Motion.Gravity)
	want := v0 + cfg.Motion.Gravity*dt
	if math.Abs(motion.VerticalVelocity-want) > 1e-9 {
		t.Fatalf("jump velocity = %f, want %f", motion.VerticalVelocity, want)
	}
	if math.Abs(v0-7.672) > 0.001 {
		t.Fatalf("takeoff velocity %f drifted from expected 7.672", v0)
	}

	// A second press while airborne must be ignored.
	release(e, cfg.ActionJump)
	UpdateMotion(e)
	vBefore := motion.VerticalVelocity
	press(e, cfg.ActionJump)
	UpdateMotion(e)
	want = vBefore + cfg.Motion.Gravity*dt
	if math.Abs(motion.VerticalVelocity-want) > 1e-9 {
		t.Fatalf("airborne jump press changed velocity: got %f, want %f", motion.VerticalVelocity, want)
	}
}

func TestJumpMasksAirTime(t *testing.T) {
	e, player, _ := newMotionWorld(t)
	motion := components.Motion.Get(player)

	press(e, cfg.ActionJump)
	UpdateMotion(e)

	if math.Abs(motion.AirTime - -cfg.Motion.JumpAirTimeDeduction) > 1e-9 {
		t.Fatalf("air time after jump = %f, want %f", motion.AirTime, -cfg.Motion.JumpAirTimeDeduction)
	}
	signals := components.Signals.Get(player)
	if len(signals.Triggers) != 1 || signals.Triggers[0] != cfg.TriggerJump {
		t.Fatalf("expected a single jump trigger, got %v", signals.Triggers)
	}
}

func TestRunSpeedDisplacement(t *testing.T) {
	e, player, mover := newMotionWorld(t)
	motion := components.Motion.Get(player)
	dt := cfg.C.TickDuration()

	setMoveAxis(e, mgl64.Vec2{0, 1})
	// Converged smoothing state: intent already reached.
	motion.Intent = mgl64.Vec3{0, 0, 1}
	motion.SmoothedDir = mgl64.Vec3{0, 0, 1}

	press(e, cfg.ActionRunToggle)
	UpdateMotion(e)

	wantSpeed := cfg.Motion.WalkSpeed * cfg.Motion.RunMultiplier
	got := math.Hypot(mover.lastDelta.X(), mover.lastDelta.Z()) / dt
	if math.Abs(got-wantSpeed) > 1e-9 {
		t.Fatalf("run displacement speed = %f, want %f", got, wantSpeed)
	}
}

func TestRunCancelsWhenInputAndIntentDie(t *testing.T) {
	e, player, _ := newMotionWorld(t)
	motion := components.Motion.Get(player)

	setMoveAxis(e, mgl64.Vec2{0, 1})
	press(e, cfg.ActionRunToggle)
	UpdateMotion(e)
	if !motion.Running {
		t.Fatalf("run toggle should enable running")
	}

	// Axis released but residual intent keeps the run alive for the
	// frame it is still non-zero.
	release(e, cfg.ActionRunToggle)
	setMoveAxis(e, mgl64.Vec2{})
	UpdateMotion(e)
	if !motion.Running {
		t.Fatalf("running should persist while intent is non-zero")
	}

	UpdateMotion(e)
	if motion.Running {
		t.Fatalf("running should cancel once input and intent are both zero")
	}
}

func TestManualRollLifecycle(t *testing.T) {
	e, player, mover := newMotionWorld(t)
	motion := components.Motion.Get(player)
	dt := cfg.C.TickDuration()

	motion.SmoothedDir = mgl64.Vec3{0, 0, 1}
	press(e, cfg.ActionRoll)
	UpdateMotion(e)

	if !motion.Rolling {
		t.Fatalf("roll press on the ground should start a roll")
	}
	wantSpeed := cfg.Motion.WalkSpeed * cfg.Motion.RollSpeedMultiplier
	got := math.Hypot(mover.lastDelta.X(), mover.lastDelta.Z()) / dt
	if math.Abs(got-wantSpeed) > 1e-9 {
		t.Fatalf("roll displacement speed = %f, want %f", got, wantSpeed)
	}

	release(e, cfg.ActionRoll)
	frames := 1
	for motion.Rolling && frames < 200 {
		UpdateMotion(e)
		frames++
	}

	want := int(math.Ceil(cfg.Motion.RollDuration / dt))
	if frames < want-1 || frames > want+1 {
		t.Fatalf("roll lasted %d frames, want about %d", frames, want)
	}
}

func TestRollIgnoredWhileAirborneOrRolling(t *testing.T) {
	e, player, _ := newMotionWorld(t)
	motion := components.Motion.Get(player)

	motion.Grounded = false
	press(e, cfg.ActionRoll)
	UpdateMotion(e)
	if motion.Rolling {
		t.Fatalf("airborne roll press must be ignored")
	}

	motion.Grounded = true
	release(e, cfg.ActionRoll)
	press(e, cfg.ActionRoll)
	UpdateMotion(e)
	if !motion.Rolling {
		t.Fatalf("grounded roll press should roll")
	}
	timer := motion.RollTimer

	release(e, cfg.ActionRoll)
	press(e, cfg.ActionRoll)
	UpdateMotion(e)
	if motion.RollTimer >= timer {
		t.Fatalf("roll press during a roll must not restart the timer")
	}
}

func TestLandingClassification(t *testing.T) {
	cases := []struct {
		name     string
		airTime  float64
		wantRoll bool
		want     cfg.SoundID
	}{
		{"short_drop_silent", 0.2, false, cfg.SoundNone},
		{"gentle_landing", 0.6, false, cfg.SoundLandSoft},
		{"hard_landing_rolls", 1.4, true, cfg.SoundLandHard},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, player, _ := newMotionWorld(t)
			motion := components.Motion.Get(player)

			// Contact frame: the host reported ground after a fall of
			// airTime seconds.
			motion.Grounded = true
			motion.AirTime = c.airTime
			UpdateMotion(e)

			if motion.Rolling != c.wantRoll {
				t.Fatalf("rolling = %v, want %v", motion.Rolling, c.wantRoll)
			}
			sounds := pendingSounds(e)
			if c.want == cfg.SoundNone {
				if containsSound(sounds, cfg.SoundLandSoft) || containsSound(sounds, cfg.SoundLandHard) {
					t.Fatalf("short drop should be silent, got %v", sounds)
				}
			} else if !containsSound(sounds, c.want) {
				t.Fatalf("expected %v in pending sounds %v", c.want, sounds)
			}

			if c.wantRoll {
				if motion.PrevAirTime != 0 {
					t.Fatalf("hard landing must clear PrevAirTime immediately, got %f", motion.PrevAirTime)
				}
				// The following grounded frames must not re-classify.
				UpdateMotion(e)
				UpdateMotion(e)
				if n := countSound(pendingSounds(e), cfg.SoundLandHard); n != 1 {
					t.Fatalf("hard landing fired %d times, want 1", n)
				}
			}
		})
	}
}

func countSound(sounds []cfg.SoundID, want cfg.SoundID) int {
	n := 0
	for _, s := range sounds {
		if s == want {
			n++
		}
	}
	return n
}

func TestFallingLoopGating(t *testing.T) {
	e, player, mover := newMotionWorld(t)
	motion := components.Motion.Get(player)
	mover.groundY = -1000

	motion.Grounded = false
	for i := 0; i < 70; i++ {
		UpdateMotion(e)
	}
	if got := GetOrCreateAudio(e).FallingLoop; got != cfg.Sound.FallingLoop {
		t.Fatalf("falling loop not requested after delay, got %v", got)
	}

	// Ground contact cuts the loop even though a recovery roll starts
	// on the same frame.
	motion.Grounded = true
	UpdateMotion(e)
	if !motion.Rolling {
		t.Fatalf("long fall should trigger the recovery roll")
	}
	if got := GetOrCreateAudio(e).FallingLoop; got != cfg.SoundNone {
		t.Fatalf("falling loop should stop on contact, got %v", got)
	}
}

func TestMissingInputDisablesMotion(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	mover := &fakeMover{}
	player := factory.CreatePlayer(e, mover, nil, mgl64.Vec3{})

	motion := components.Motion.Get(player)
	if !motion.Disabled {
		t.Fatalf("spawning without an input provider should disable motion")
	}

	UpdateMotion(e)
	if mover.moves != 0 {
		t.Fatalf("disabled motion must never move the host")
	}
}

func TestGroundedZeroesResidualFall(t *testing.T) {
	e, player, _ := newMotionWorld(t)
	motion := components.Motion.Get(player)

	motion.Grounded = true
	motion.VerticalVelocity = -12
	UpdateMotion(e)

	// Only this tick's gravity remains; the residual fall speed from
	// before contact is gone.
	want := cfg.Motion.Gravity * cfg.C.TickDuration()
	if math.Abs(motion.VerticalVelocity-want) > 1e-9 {
		t.Fatalf("vertical velocity = %f, want %f", motion.VerticalVelocity, want)
	}
}
