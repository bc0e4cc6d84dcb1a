package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/automoto/strider/tags"
)

var hudTextColor = color.RGBA{220, 220, 220, 255}

// UpdateDebug flips the HUD on the toggle key.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if input.Action(cfg.ActionToggleHUD).JustPressed {
		settings := GetOrCreateSettingsMenu(e)
		settings.ShowHUD = !settings.ShowHUD
	}
}

// DrawHUD renders the character and camera state readout in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.ShowHUD {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	motion := components.Motion.Get(playerEntry)
	transform := components.Transform.Get(playerEntry)
	signals := components.Signals.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("state: %s", signals.State),
		fmt.Sprintf("pos: %.2f %.2f %.2f", transform.Position.X(), transform.Position.Y(), transform.Position.Z()),
		fmt.Sprintf("yaw: %.1f", transform.Yaw),
		fmt.Sprintf("speed: %.2f", signals.MovementSpeed),
		fmt.Sprintf("local axes: %.2f %.2f", signals.LocalX, signals.LocalY),
		fmt.Sprintf("vvel: %.2f", motion.VerticalVelocity),
		fmt.Sprintf("air: %.2f (prev %.2f)", motion.AirTime, motion.PrevAirTime),
		fmt.Sprintf("grounded: %v  running: %v  falling: %v", signals.Grounded, signals.Running, signals.Falling),
	}

	if camEntry, ok := tags.Camera.First(e.World); ok {
		cam := components.OrbitCamera.Get(camEntry)
		lines = append(lines,
			fmt.Sprintf("cam: yaw %.1f pitch %.1f dist %.2f", cam.Yaw, cam.Pitch, cam.Distance))
	}

	fontFace := fonts.HUDSmall.Get()
	for i, line := range lines {
		text.Draw(screen, line, fontFace, 10, 20+i*14, hudTextColor)
	}
}
