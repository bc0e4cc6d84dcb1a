package config

// SettingsMenuConfig drives the in-game settings overlay.
type SettingsMenuConfig struct {
	// Discrete values the volume options step through.
	VolumeSteps []float64
	// Discrete look sensitivities, matching CameraConfig.Sensitivity.
	SensitivitySteps []float64
}

var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:      []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		SensitivitySteps: []float64{60, 90, 120, 150, 180, 220, 260, 320, 400},
	}
}
