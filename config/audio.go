package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump1
	SoundJump2
	SoundJump3
	SoundFootstep
	SoundRollImpact
	// Landing sounds
	SoundLandSoft
	SoundLandHard
	// Continuous loops
	SoundFallingWind
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64

	// JumpVariants are picked from at random on each jump.
	JumpVariants []SoundID

	// FallingLoop identifies the looping clip started after the
	// configured airborne delay and stopped on ground contact.
	FallingLoop SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump1:       "audio/sfx/jump_01.wav",
			SoundJump2:       "audio/sfx/jump_02.wav",
			SoundJump3:       "audio/sfx/jump_03.wav",
			SoundFootstep:    "audio/sfx/footstep.wav",
			SoundRollImpact:  "audio/sfx/roll_impact.wav",
			SoundLandSoft:    "audio/sfx/land_soft.wav",
			SoundLandHard:    "audio/sfx/land_hard.wav",
			SoundFallingWind: "audio/sfx/falling_wind.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFootstep:    0.6,
			SoundFallingWind: 0.8,
		},
		JumpVariants: []SoundID{SoundJump1, SoundJump2, SoundJump3},
		FallingLoop:  SoundFallingWind,
	}
}
