package components

import "github.com/yohamta/donburi"

type SettingsMenuOption int

const (
	SettingsOptSensitivity SettingsMenuOption = iota
	SettingsOptInvertY
	SettingsOptSFXVolume
	SettingsOptBack
)

// SettingsMenuData is the singleton holding overlay state plus the
// live values the options edit. ShowHUD rides along here because the
// debug HUD toggle shares the same lifetime.
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsMenuOption

	Sensitivity float64
	InvertY     bool
	SFXVolume   float64

	ShowHUD bool
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
