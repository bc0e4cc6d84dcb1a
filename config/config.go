package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MotionConfig contains all character movement tunables.
// Units are meters and seconds; gravity and the jump multiplier are
// negative so that their product under the jump square root is positive.
type MotionConfig struct {
	WalkSpeed     float64 `yaml:"walkSpeed"`
	RunMultiplier float64 `yaml:"runMultiplier"`

	// Jump
	JumpHeight     float64 `yaml:"jumpHeight"`
	JumpMultiplier float64 `yaml:"jumpMultiplier"`
	Gravity        float64 `yaml:"gravity"`

	// Roll
	RollDuration        float64 `yaml:"rollDuration"`
	RollSpeedMultiplier float64 `yaml:"rollSpeedMultiplier"`

	// Direction smoothing and facing
	SmoothTime    float64 `yaml:"smoothTime"`    // spring-damper time constant
	RotationSpeed float64 `yaml:"rotationSpeed"` // degrees per second

	// Airborne classification
	FallSoundDelay       float64 `yaml:"fallSoundDelay"` // seconds airborne before the falling loop starts
	FallAnimDelay        float64 `yaml:"fallAnimDelay"`  // seconds airborne before the falling flag raises
	JumpAirTimeDeduction float64 `yaml:"jumpAirTimeDeduction"`
	SoftLandingMin       float64 `yaml:"softLandingMin"` // air time above which landing plays the soft impact
	HardLandingMin       float64 `yaml:"hardLandingMin"` // air time at which landing forces a recovery roll
}

// CameraConfig contains orbit camera tunables.
type CameraConfig struct {
	Sensitivity    float64 `yaml:"sensitivity"`
	InvertY        bool    `yaml:"invertY"`
	VerticalOffset float64 `yaml:"verticalOffset"`
	Distance       float64 `yaml:"distance"`
	VerticalLimit  float64 `yaml:"verticalLimit"` // pitch clamp, degrees
	MinDistance    float64 `yaml:"minDistance"`

	// Tags an obstruction probe hit must carry to pull the camera in.
	CollisionMask []string `yaml:"collisionMask"`
}

// LookNormalization divides raw look input before sensitivity is applied.
// Fixed, not designer-facing: it only exists so Sensitivity stays in a
// human-friendly range.
const LookNormalization = 100.0

// Config holds general application configuration.
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	ShowHUD bool // Start with the debug HUD visible
}

// TickDuration returns the fixed simulation step in seconds.
func (c *Config) TickDuration() float64 {
	return 1.0 / float64(c.TickRate)
}

// Global configuration instances
var C *Config
var Motion MotionConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    960,
		Height:   540,
		TickRate: 60,
	}

	Motion = MotionConfig{
		WalkSpeed:     7.0,
		RunMultiplier: 1.5,

		JumpHeight:     1.0,
		JumpMultiplier: -3.0,
		Gravity:        -19.62,

		RollDuration:        0.9,
		RollSpeedMultiplier: 1.25,

		SmoothTime:    0.12,
		RotationSpeed: 720.0,

		FallSoundDelay:       0.3,
		FallAnimDelay:        0.15,
		JumpAirTimeDeduction: 0.5,
		SoftLandingMin:       0.4,
		HardLandingMin:       1.0,
	}

	Camera = CameraConfig{
		Sensitivity:    180.0,
		InvertY:        false,
		VerticalOffset: 1.6,
		Distance:       4.0,
		VerticalLimit:  60.0,
		MinDistance:    0.1,
		CollisionMask:  []string{"wall"},
	}
}

// fileOverrides mirrors the tunable sections of an optional YAML config
// file. Absent sections keep the compiled-in defaults.
type fileOverrides struct {
	Motion *MotionConfig `yaml:"motion"`
	Camera *CameraConfig `yaml:"camera"`
}

// LoadFile applies YAML overrides from path onto the defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// Unmarshal points each section at the live globals so partial
	// files only touch the keys they name.
	overrides := fileOverrides{Motion: &Motion, Camera: &Camera}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
