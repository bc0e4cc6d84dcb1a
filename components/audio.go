package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/strider/config"
)

// AudioData stores global audio state (singleton component). Systems
// queue SFX and request the falling loop here; the audio system owns
// the actual players.
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID

	// FallingLoop is the loop the signal emitter wants playing this
	// frame; SoundNone means silence. The audio system compares clip
	// identity before stopping anything.
	FallingLoop cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
