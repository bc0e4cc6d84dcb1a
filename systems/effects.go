package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

const flashDuration = 0.35

// TriggerLandingFlash starts a brief white overlay fade. Strength is
// the starting alpha in [0,1]; a new flash replaces any running one.
func TriggerLandingFlash(e *ecs.ECS, strength float32) {
	flash := getOrCreateFlash(e)
	if strength > 1 {
		strength = 1
	}
	flash.Tween = gween.New(strength, 0, flashDuration, ease.OutQuad)
	flash.Alpha = strength
}

// UpdateFlash advances the active flash tween.
func UpdateFlash(e *ecs.ECS) {
	entry, ok := components.Flash.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(entry)
	if flash.Tween == nil {
		return
	}

	alpha, finished := flash.Tween.Update(float32(cfg.C.TickDuration()))
	flash.Alpha = alpha
	if finished {
		flash.Tween = nil
		flash.Alpha = 0
	}
}

// DrawFlash renders the overlay on top of the world.
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Flash.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(entry)
	if flash.Alpha <= 0 {
		return
	}

	a := flash.Alpha
	overlay := color.RGBA{
		R: uint8(255 * a),
		G: uint8(255 * a),
		B: uint8(255 * a),
		A: uint8(255 * a),
	}
	vector.DrawFilledRect(screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		overlay, false)
}

func getOrCreateFlash(e *ecs.ECS) *components.FlashData {
	entry, ok := components.Flash.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Flash))
	}
	return components.Flash.Get(entry)
}
