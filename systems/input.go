package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Previous cursor position for mouse-delta look
var lastCursorX, lastCursorY int
var cursorSeen bool

// UpdateInput polls raw devices into the input component. It owns the
// edge double-buffer: the swap here is the single per-tick reset of
// one-frame flags, so every later system sees identical values.
// Must run BEFORE UpdateMotion in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.MoveAxis = readMoveAxis(input)
	input.LookDelta = readLookDelta()
}

// readMoveAxis merges digital bindings with the left analog stick and
// clamps the result into the unit disc.
func readMoveAxis(input *components.InputData) mgl64.Vec2 {
	var axis mgl64.Vec2
	if input.Current[cfg.ActionMoveRight] {
		axis[0] += 1
	}
	if input.Current[cfg.ActionMoveLeft] {
		axis[0] -= 1
	}
	if input.Current[cfg.ActionMoveForward] {
		axis[1] += 1
	}
	if input.Current[cfg.ActionMoveBack] {
		axis[1] -= 1
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(x, y) > cfg.Input.AnalogDeadzone {
			axis[0] += x
			axis[1] += y
		}
	}

	if axis.Len() > 1 {
		axis = axis.Normalize()
	}
	return axis
}

// readLookDelta merges the mouse delta with the right analog stick.
func readLookDelta() mgl64.Vec2 {
	cx, cy := ebiten.CursorPosition()
	var look mgl64.Vec2
	if cursorSeen {
		look[0] = float64(cx - lastCursorX)
		look[1] = float64(cy - lastCursorY)
	}
	lastCursorX, lastCursorY = cx, cy
	cursorSeen = true

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(x, y) > cfg.Input.AnalogDeadzone {
			// Stick look is rate-based; scale to a mouse-like delta.
			look[0] += x * 8
			look[1] += y * 8
		}
	}
	return look
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
