package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/strider/config"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for
// all actions plus the analog axes read this frame. The input system
// owns the buffers: it swaps them exactly once per tick, before any
// consumer runs, so every consumer observes the same edge values.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	MoveAxis  mgl64.Vec2 // merged WASD/stick move input, unit square
	LookDelta mgl64.Vec2 // mouse/right-stick look delta for this frame
}

// Action computes the temporal state of an action by comparing frames.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[id],
		JustPressed:  i.Current[id] && !i.Previous[id],
		JustReleased: !i.Current[id] && i.Previous[id],
	}
}

// Snapshot is the per-frame input view consumed by the motion systems.
// Edge fields are true only on the frame the underlying event fired;
// the input system alone clears them on the next buffer swap.
type Snapshot struct {
	MoveAxis    mgl64.Vec2
	JumpPressed bool // edge
	RollPressed bool // edge
	RunToggled  bool // edge
	FocusHeld   bool
}

// Snapshot derives the frame's snapshot. Read-only for callers.
func (i *InputData) Snapshot() Snapshot {
	return Snapshot{
		MoveAxis:    i.MoveAxis,
		JumpPressed: i.Action(cfg.ActionJump).JustPressed,
		RollPressed: i.Action(cfg.ActionRoll).JustPressed,
		RunToggled:  i.Action(cfg.ActionRunToggle).JustPressed,
		FocusHeld:   i.Action(cfg.ActionFocus).Pressed,
	}
}

var Input = donburi.NewComponentType[InputData]()
