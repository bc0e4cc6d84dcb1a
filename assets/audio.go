package assets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a
// player. Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	data, err := assetFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read audio file %s: %w", path, err)
	}

	decoded, err := l.decode(path, data)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

func (l *AudioLoader) decode(path string, data []byte) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg %s: %w", path, err)
		}
		decoded, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("read decoded audio %s: %w", path, err)
		}
		return decoded, nil

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav %s: %w", path, err)
		}
		decoded, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("read decoded audio %s: %w", path, err)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("unsupported audio format %s", ext)
	}
}

// LoadSFX returns a fresh one-shot player for a cached clip.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[path]), nil
}

// LoadLoop returns a player that repeats the clip forever. Used for
// the continuous falling wind.
func (l *AudioLoader) LoadLoop(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	data := l.sfxCache[path]
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("create loop player %s: %w", path, err)
	}
	return player, nil
}
