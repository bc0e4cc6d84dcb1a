package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

var (
	settingsBackground    = color.RGBA{10, 10, 16, 230}
	settingsTitleColor    = color.RGBA{255, 255, 255, 255}
	settingsNormalColor   = color.RGBA{170, 170, 180, 255}
	settingsSelectedColor = color.RGBA{235, 200, 80, 255}
)

// UpdateSettingsMenu handles opening the overlay, navigation and value
// changes. While open it owns the move/jump actions, so gameplay
// systems must be gated behind IsSettingsOpen.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	input := getOrCreateInput(e)

	if input.Action(cfg.ActionToggleSettings).JustPressed {
		if settings.IsOpen {
			closeSettings(settings)
		} else {
			settings.IsOpen = true
			settings.SelectedOption = components.SettingsOptSensitivity
		}
		return
	}

	if !settings.IsOpen {
		return
	}

	if input.Action(cfg.ActionMoveForward).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions)
	}
	if input.Action(cfg.ActionMoveBack).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions)
	}

	if input.Action(cfg.ActionMoveLeft).JustPressed {
		adjustSettingsValue(e, settings, -1)
	}
	if input.Action(cfg.ActionMoveRight).JustPressed {
		adjustSettingsValue(e, settings, +1)
	}

	if input.Action(cfg.ActionJump).JustPressed {
		switch settings.SelectedOption {
		case components.SettingsOptInvertY:
			adjustSettingsValue(e, settings, +1)
		case components.SettingsOptBack:
			closeSettings(settings)
		}
	}
}

// IsSettingsOpen reports whether the overlay is consuming input.
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}

// WithGameplayChecks wraps a system so it does not run while the
// settings overlay owns the input.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}
		system(e)
	}
}

func adjustSettingsValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptSensitivity:
		s.Sensitivity = stepValue(s.Sensitivity, cfg.SettingsMenu.SensitivitySteps, direction)
		cfg.Camera.Sensitivity = s.Sensitivity

	case components.SettingsOptInvertY:
		s.InvertY = !s.InvertY
		cfg.Camera.InvertY = s.InvertY

	case components.SettingsOptSFXVolume:
		s.SFXVolume = stepValue(s.SFXVolume, cfg.SettingsMenu.VolumeSteps, direction)
		SetSFXVolume(e, s.SFXVolume)
		// Preview so the new level is audible immediately.
		PlaySFX(e, cfg.SoundFootstep)
	}
}

// stepValue moves to the neighbouring entry of steps closest to the
// current value, clamping at both ends.
func stepValue(current float64, steps []float64, direction int) float64 {
	closest := 0
	minDiff := -1.0
	for i, step := range steps {
		diff := current - step
		if diff < 0 {
			diff = -diff
		}
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
			closest = i
		}
	}

	next := closest + direction
	if next < 0 {
		next = 0
	}
	if next >= len(steps) {
		next = len(steps) - 1
	}
	return steps[next]
}

func closeSettings(s *components.SettingsMenuData) {
	s.IsOpen = false
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the overlay on top of everything else.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), settingsBackground, false)

	titleFont := fonts.Title.Get()
	fontFace := fonts.HUD.Get()

	title := "SETTINGS"
	titleX := int(width/2) - len(title)*8
	text.Draw(screen, title, titleFont, titleX, 60, settingsTitleColor)

	itemHeight := 30.0
	startY := height/2 - float64(numSettingsOptions)*itemHeight/2

	for opt := components.SettingsOptSensitivity; opt <= components.SettingsOptBack; opt++ {
		y := int(startY + float64(opt)*itemHeight)

		textColor := settingsNormalColor
		if opt == settings.SelectedOption {
			textColor = settingsSelectedColor
		}

		label, value := settingsOptionDisplay(settings, opt)
		text.Draw(screen, label, fontFace, int(width/2)-130, y, textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+60, y, textColor)
		}
	}

	hint := "W/S select   A/D change   Space confirm   Esc close"
	hintFont := fonts.HUDSmall.Get()
	text.Draw(screen, hint, hintFont, int(width/2)-150, int(height)-20, settingsNormalColor)
}

func settingsOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptSensitivity:
		return "Look Sensitivity", fmt.Sprintf("%.0f", s.Sensitivity)
	case components.SettingsOptInvertY:
		if s.InvertY {
			return "Invert Look Y", "On"
		}
		return "Invert Look Y", "Off"
	case components.SettingsOptSFXVolume:
		return "SFX Volume", fmt.Sprintf("%.0f%%", s.SFXVolume*100)
	case components.SettingsOptBack:
		return "Back", ""
	}
	return "", ""
}

// GetOrCreateSettingsMenu returns the singleton settings component,
// seeding its live values from the current configuration.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(entry, components.SettingsMenuData{
			Sensitivity: cfg.Camera.Sensitivity,
			InvertY:     cfg.Camera.InvertY,
			SFXVolume:   GetSFXVolume(),
			ShowHUD:     cfg.Debug.ShowHUD,
		})
	}
	return components.SettingsMenu.Get(entry)
}
