package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/tags"
)

var (
	floorColor    = color.RGBA{34, 38, 46, 255}
	wallColor     = color.RGBA{120, 126, 140, 255}
	platformColor = color.RGBA{70, 96, 82, 255}
	playerColor   = color.RGBA{235, 200, 80, 255}
	facingColor   = color.RGBA{255, 255, 255, 255}
	cameraColor   = color.RGBA{90, 160, 230, 255}
)

// DrawArena renders a top-down schematic of the arena: walls and
// platforms as rectangles, the player as a disc with a facing line,
// the camera as a small marker. X maps right, Z maps down.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	arena := components.Level.Get(levelEntry).Arena

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	// Fit the arena into the screen with a margin, preserving aspect.
	margin := 20.0
	scale := (sw - 2*margin) / arena.Width
	if s := (sh - 2*margin) / arena.Depth; s < scale {
		scale = s
	}
	originX := (sw - arena.Width*scale) / 2
	originZ := (sh - arena.Depth*scale) / 2

	vector.DrawFilledRect(screen,
		float32(originX), float32(originZ),
		float32(arena.Width*scale), float32(arena.Depth*scale),
		floorColor, false)

	for _, box := range arena.Platforms {
		drawBox(screen, box.X, box.Z, box.W, box.D, originX, originZ, scale, platformColor)
	}
	for _, box := range arena.Walls {
		drawBox(screen, box.X, box.Z, box.W, box.D, originX, originZ, scale, wallColor)
	}

	drawCameraMarker(e, screen, originX, originZ, scale)
	drawPlayerMarker(e, screen, originX, originZ, scale)
}

func drawBox(screen *ebiten.Image, x, z, w, d, originX, originZ, scale float64, c color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(originX+x*scale), float32(originZ+z*scale),
		float32(w*scale), float32(d*scale),
		c, false)
}

func drawPlayerMarker(e *ecs.ECS, screen *ebiten.Image, originX, originZ, scale float64) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	transform := components.Transform.Get(playerEntry)

	px := float32(originX + transform.Position.X()*scale)
	pz := float32(originZ + transform.Position.Z()*scale)
	radius := float32(0.3 * scale)
	if radius < 3 {
		radius = 3
	}

	vector.DrawFilledCircle(screen, px, pz, radius, playerColor, true)

	// Facing line, one meter long.
	forward := transform.Forward()
	vector.StrokeLine(screen,
		px, pz,
		px+float32(forward.X()*scale), pz+float32(forward.Z()*scale),
		2, facingColor, true)
}

func drawCameraMarker(e *ecs.ECS, screen *ebiten.Image, originX, originZ, scale float64) {
	camEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.OrbitCamera.Get(camEntry)

	cx := float32(originX + cam.Position.X()*scale)
	cz := float32(originZ + cam.Position.Z()*scale)
	vector.DrawFilledRect(screen, cx-3, cz-3, 6, 6, cameraColor, false)
}
