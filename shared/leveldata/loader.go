package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file into an Arena. Pixel coordinates are
// converted to meters using the map's tile width, so a 32px tile is
// one meter. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scale := 1.0 / float64(levelMap.TileWidth)
	arena := &Arena{
		Width: float64(levelMap.Width*levelMap.TileWidth) * scale,
		Depth: float64(levelMap.Height*levelMap.TileHeight) * scale,
	}
	// Default spawn: arena center, overridden by the Spawn group.
	arena.Spawn = Spawn{X: arena.Width / 2, Z: arena.Depth / 2}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				arena.Walls = append(arena.Walls, Box{
					X: o.X * scale,
					Z: o.Y * scale,
					W: o.Width * scale,
					D: o.Height * scale,
				})
			}
		case "Platforms":
			for _, o := range og.Objects {
				h := o.Properties.GetInt("height")
				if h <= 0 {
					return nil, fmt.Errorf("platform %q in %s has no positive height property", o.Name, tmxPath)
				}
				arena.Platforms = append(arena.Platforms, Box{
					X:      o.X * scale,
					Z:      o.Y * scale,
					W:      o.Width * scale,
					D:      o.Height * scale,
					Height: float64(h),
				})
			}
		case "Spawn":
			for _, o := range og.Objects {
				arena.Spawn = Spawn{X: o.X * scale, Z: o.Y * scale}
			}
		}
	}

	if len(arena.Walls) == 0 {
		return nil, fmt.Errorf("arena %s has no Walls object group", tmxPath)
	}
	return arena, nil
}
