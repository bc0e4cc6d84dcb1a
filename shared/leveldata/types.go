// Package leveldata provides TMX arena parsing for the collision host.
// It has no dependencies on ebitengine, donburi, or resolv, only plain
// data types.
package leveldata

// Arena holds the collision-relevant data parsed from a TMX level:
// the walkable ground plane plus walls and raised platforms, all in
// meters on the XZ plane.
type Arena struct {
	Width float64 // X extent
	Depth float64 // Z extent

	Walls     []Box
	Platforms []Box

	Spawn Spawn
}

// Box is an axis-aligned footprint on the ground plane. Walls ignore
// Height (they block at any altitude); platforms are walkable slabs
// whose top sits at Height meters.
type Box struct {
	X, Z   float64 // min corner
	W, D   float64 // extent along X and Z
	Height float64
}

// Contains reports whether the point (x, z) lies inside the footprint.
func (b Box) Contains(x, z float64) bool {
	return x >= b.X && x < b.X+b.W && z >= b.Z && z < b.Z+b.D
}

// Spawn is the player start location on the ground plane.
type Spawn struct {
	X, Z float64
}
