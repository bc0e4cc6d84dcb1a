package factory

import (
	"fmt"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/collision"
	"github.com/automoto/strider/components"
	"github.com/automoto/strider/shared/leveldata"
)

// LoadArena parses the embedded arena map, builds the collision space
// for it and registers the level entity the renderers read.
func LoadArena(e *ecs.ECS, tmxPath string) (*collision.Space, error) {
	arena, err := leveldata.LoadArena(assets.FS(), tmxPath)
	if err != nil {
		return nil, fmt.Errorf("loading arena %s: %w", tmxPath, err)
	}

	level := e.World.Entry(e.World.Create(components.Level))
	components.Level.SetValue(level, components.LevelData{Arena: arena})

	return collision.NewSpace(arena), nil
}
