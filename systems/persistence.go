package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// SavedSettings is the settings payload stored on disk.
type SavedSettings struct {
	SFXVolume   float64 `json:"sfxVolume"`
	Sensitivity float64 `json:"sensitivity"`
	InvertY     bool    `json:"invertY"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store. Failure is non-fatal: the
// game runs with defaults and settings simply do not persist.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads saved settings from disk. Returns nil when no
// settings were stored yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings writes the settings payload to disk.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the live values from the settings menu.
func SaveCurrentSettings(s *components.SettingsMenuData) {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:   s.SFXVolume,
		Sensitivity: s.Sensitivity,
		InvertY:     s.InvertY,
	})
}

// ApplySavedSettingsGlobal applies loaded settings to the global
// configuration before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Camera.Sensitivity = saved.Sensitivity
	cfg.Camera.InvertY = saved.InvertY
	globalSFXVolume = saved.SFXVolume
}

// ApplySavedSettings applies loaded settings inside a running scene.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Camera.Sensitivity = saved.Sensitivity
	cfg.Camera.InvertY = saved.InvertY
	SetSFXVolume(e, saved.SFXVolume)
}
