package systems

import (
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once

	// The falling loop has a dedicated player; fallingKey records
	// which clip it is playing so an unrelated sound is never stopped.
	fallingPlayer *audio.Player
	fallingKey    cfg.SoundID
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		_ = globalAudioLoader.PreloadSFX(path)
	}
}

// UpdateAudio drains the pending SFX queue and reconciles the falling
// loop with what the motion system requested this frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	updateFallingLoop(audioData.FallingLoop)
}

// updateFallingLoop starts or stops the looping clip. The clip
// identity check keeps a retuned falling loop from cutting a clip that
// belongs to a different request.
func updateFallingLoop(want cfg.SoundID) {
	if want == fallingKey {
		return
	}

	if fallingPlayer != nil {
		_ = fallingPlayer.Close()
		fallingPlayer = nil
	}
	fallingKey = cfg.SoundNone

	if want == cfg.SoundNone {
		return
	}
	path, ok := cfg.Sound.SFXPaths[want]
	if !ok {
		return
	}
	player, err := globalAudioLoader.LoadLoop(path)
	if err != nil {
		return
	}
	player.SetVolume(effectiveVolume(want))
	player.Play()
	fallingPlayer = player
	fallingKey = want
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	player.SetVolume(effectiveVolume(soundID))
	player.Play()
}

func effectiveVolume(soundID cfg.SoundID) float64 {
	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	return volume
}

// randomJumpSound picks one of the configured jump cue variants.
func randomJumpSound() cfg.SoundID {
	variants := cfg.Sound.JumpVariants
	if len(variants) == 0 {
		return cfg.SoundNone
	}
	return variants[rand.Intn(len(variants))]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	if fallingPlayer != nil {
		fallingPlayer.SetVolume(effectiveVolume(fallingKey))
	}
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
