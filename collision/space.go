// Package collision is the demo movement host: a resolv-backed wall
// space over a flat ground plane with raised platforms. It implements
// the MovementHost and CameraProbe contracts consumed by the motion
// and camera systems.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"

	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/tags"
)

const (
	// Character footprint half-extent on the XZ plane.
	halfExtent = 0.3
	// Ledges lower than this are stepped onto without a jump.
	stepHeight = 0.3
	// Camera probe march step.
	probeStep = 0.05
)

// Space wraps an arena in a resolv collision space.
type Space struct {
	arena  *leveldata.Arena
	space  *resolv.Space
	player *resolv.Object
}

// NewSpace builds the collision space for an arena.
func NewSpace(arena *leveldata.Arena) *Space {
	space := resolv.NewSpace(int(arena.Width)+1, int(arena.Depth)+1, 1, 1)

	for _, wall := range arena.Walls {
		obj := resolv.NewObject(wall.X, wall.Z, wall.W, wall.D, tags.ResolvWall)
		obj.Data = math.Inf(1)
		space.Add(obj)
	}
	for _, platform := range arena.Platforms {
		obj := resolv.NewObject(platform.X, platform.Z, platform.W, platform.D, tags.ResolvPlatform)
		obj.Data = platform.Height
		space.Add(obj)
	}

	player := resolv.NewObject(arena.Spawn.X-halfExtent, arena.Spawn.Z-halfExtent, 2*halfExtent, 2*halfExtent)
	space.Add(player)

	return &Space{arena: arena, space: space, player: player}
}

// Arena returns the parsed level this space was built from.
func (s *Space) Arena() *leveldata.Arena {
	return s.arena
}

// SpawnPosition returns the player start in world space.
func (s *Space) SpawnPosition() mgl64.Vec3 {
	return mgl64.Vec3{s.arena.Spawn.X, s.GroundHeight(s.arena.Spawn.X, s.arena.Spawn.Z), s.arena.Spawn.Z}
}

// Move resolves a world-space displacement against walls and platform
// sides, then settles the vertical axis onto the ground plane. The
// returned grounded flag is the post-move state.
func (s *Space) Move(pos, delta mgl64.Vec3) (mgl64.Vec3, bool) {
	feet := pos.Y()
	s.player.X = pos.X() - halfExtent
	s.player.Y = pos.Z() - halfExtent
	s.player.Update()

	dx := s.resolveAxis(delta.X(), 0, feet)
	s.player.X += dx
	s.player.Update()

	dz := s.resolveAxis(0, delta.Z(), feet)
	s.player.Y += dz
	s.player.Update()

	x := s.player.X + halfExtent
	z := s.player.Y + halfExtent

	ground := s.GroundHeight(x, z)
	y := pos.Y() + delta.Y()
	grounded := false
	if delta.Y() <= 0 && y <= ground {
		y = ground
		grounded = true
	}

	return mgl64.Vec3{x, y, z}, grounded
}

// resolveAxis clamps a single-axis displacement against blocking
// geometry, sliding along anything the feet clear.
func (s *Space) resolveAxis(dx, dz, feet float64) float64 {
	move := dx
	vertical := dx == 0
	if vertical {
		move = dz
	}
	if move == 0 {
		return 0
	}

	check := s.player.Check(dx, dz, tags.ResolvWall, tags.ResolvPlatform)
	if check == nil {
		return move
	}

	for _, obj := range check.Objects {
		if !s.blocks(obj, feet) {
			continue
		}
		contact := check.ContactWithObject(obj)
		if vertical {
			return contact.Y()
		}
		return contact.X()
	}
	return move
}

// blocks reports whether an object stops horizontal movement for a
// character whose feet are at the given height. Walls always block;
// platform sides block only when the top is above step range.
func (s *Space) blocks(obj *resolv.Object, feet float64) bool {
	top, ok := obj.Data.(float64)
	if !ok {
		return false // the player object itself
	}
	return feet+stepHeight < top
}

// GroundHeight returns the walkable height under a point: the tallest
// platform containing it, else the ground plane at zero.
func (s *Space) GroundHeight(x, z float64) float64 {
	height := 0.0
	for _, platform := range s.arena.Platforms {
		if platform.Contains(x, z) && platform.Height > height {
			height = platform.Height
		}
	}
	return height
}

// Cast marches the straight segment from the focus point toward the
// desired camera position and returns the last unobstructed sample
// when something carrying a mask tag is in the way.
func (s *Space) Cast(from, to mgl64.Vec3, mask []string) (mgl64.Vec3, bool) {
	span := to.Sub(from)
	dist := span.Len()
	if dist == 0 {
		return to, false
	}
	dir := span.Mul(1 / dist)

	for t := probeStep; t <= dist; t += probeStep {
		p := from.Add(dir.Mul(t))
		if s.obstructedAt(p, mask) {
			return from.Add(dir.Mul(t - probeStep)), true
		}
	}
	return to, false
}

func (s *Space) obstructedAt(p mgl64.Vec3, mask []string) bool {
	for _, tag := range mask {
		switch tag {
		case tags.ResolvWall:
			for _, wall := range s.arena.Walls {
				if wall.Contains(p.X(), p.Z()) {
					return true
				}
			}
		case tags.ResolvPlatform:
			for _, platform := range s.arena.Platforms {
				if platform.Contains(p.X(), p.Z()) && p.Y() < platform.Height {
					return true
				}
			}
		}
	}
	return false
}
