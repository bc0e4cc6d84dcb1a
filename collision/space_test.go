package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/tags"
)

func testArena() *leveldata.Arena {
	return &leveldata.Arena{
		Width: 20,
		Depth: 20,
		Walls: []leveldata.Box{
			{X: 10, Z: 0, W: 1, D: 20}, // vertical wall splitting the arena
		},
		Platforms: []leveldata.Box{
			{X: 2, Z: 2, W: 4, D: 4, Height: 2},    // tall slab
			{X: 2, Z: 14, W: 4, D: 4, Height: 0.2}, // step-up ledge
		},
		Spawn: leveldata.Spawn{X: 5, Z: 10},
	}
}

func TestMoveStopsAtWall(t *testing.T) {
	s := NewSpace(testArena())

	pos := mgl64.Vec3{8, 0, 10}
	next, grounded := s.Move(pos, mgl64.Vec3{5, 0, 0})

	if !grounded {
		t.Fatalf("flat ground move should stay grounded")
	}
	if next.X() >= 10 {
		t.Fatalf("wall at x=10 should stop the move, ended at %f", next.X())
	}
	if next.X() <= pos.X() {
		t.Fatalf("move should still cover the free distance, ended at %f", next.X())
	}
	if next.Z() != pos.Z() {
		t.Fatalf("x-axis move changed z: %f", next.Z())
	}
}

func TestMoveUnobstructed(t *testing.T) {
	s := NewSpace(testArena())

	next, grounded := s.Move(mgl64.Vec3{5, 0, 10}, mgl64.Vec3{1, 0, 1})
	want := mgl64.Vec3{6, 0, 11}
	if next.Sub(want).Len() > 1e-9 {
		t.Fatalf("ended at %v, want %v", next, want)
	}
	if !grounded {
		t.Fatalf("should remain grounded on the plane")
	}
}

func TestTallPlatformBlocksFromGround(t *testing.T) {
	s := NewSpace(testArena())

	// Feet on the ground plane: a 2m slab is a wall.
	next, _ := s.Move(mgl64.Vec3{1, 0, 4}, mgl64.Vec3{3, 0, 0})
	if next.X() >= 2 {
		t.Fatalf("tall platform side should block, ended at %f", next.X())
	}

	// Low ledge is inside step range and is walked onto.
	next, grounded := s.Move(mgl64.Vec3{1, 0, 16}, mgl64.Vec3{2, 0, 0})
	if next.X() != 3 {
		t.Fatalf("step-up ledge should not block, ended at %f", next.X())
	}
	if !grounded || next.Y() != 0.2 {
		t.Fatalf("feet should settle on the ledge top: grounded=%v y=%f", grounded, next.Y())
	}
}

func TestFallOntoPlatformTop(t *testing.T) {
	s := NewSpace(testArena())

	// Descending over the tall slab lands on its top.
	next, grounded := s.Move(mgl64.Vec3{4, 2.5, 4}, mgl64.Vec3{0, -1, 0})
	if !grounded || next.Y() != 2 {
		t.Fatalf("expected landing on slab top: grounded=%v y=%f", grounded, next.Y())
	}

	// Still above it: airborne.
	next, grounded = s.Move(mgl64.Vec3{4, 5, 4}, mgl64.Vec3{0, -1, 0})
	if grounded || next.Y() != 4 {
		t.Fatalf("expected free fall: grounded=%v y=%f", grounded, next.Y())
	}
}

func TestWalkOffPlatformEdge(t *testing.T) {
	s := NewSpace(testArena())

	// Leaving the slab horizontally keeps the old height and reports
	// airborne: gravity brings the character down on later ticks.
	next, grounded := s.Move(mgl64.Vec3{5.5, 2, 4}, mgl64.Vec3{1.5, 0, 0})
	if grounded {
		t.Fatalf("walking off a ledge should go airborne")
	}
	if next.Y() != 2 {
		t.Fatalf("height should carry over the edge, got %f", next.Y())
	}
}

func TestCastHitsWall(t *testing.T) {
	s := NewSpace(testArena())

	from := mgl64.Vec3{8, 1.6, 10}
	to := mgl64.Vec3{13, 1.6, 10}
	hit, blocked := s.Cast(from, to, []string{tags.ResolvWall})

	if !blocked {
		t.Fatalf("segment through the wall should be blocked")
	}
	if hit.X() >= 10 || hit.X() < from.X() {
		t.Fatalf("hit point %v should be between the origin and the wall face", hit)
	}
	if math.Abs(hit.Y()-1.6) > 1e-9 || math.Abs(hit.Z()-10) > 1e-9 {
		t.Fatalf("hit point off the segment: %v", hit)
	}
}

func TestCastClearSegment(t *testing.T) {
	s := NewSpace(testArena())

	to := mgl64.Vec3{9, 1.6, 12}
	hit, blocked := s.Cast(mgl64.Vec3{8, 1.6, 10}, to, []string{tags.ResolvWall})
	if blocked {
		t.Fatalf("clear segment reported blocked at %v", hit)
	}
	if hit != to {
		t.Fatalf("clear cast should return the destination, got %v", hit)
	}
}

func TestCastAbovePlatformIsClear(t *testing.T) {
	s := NewSpace(testArena())

	// The camera above a 2m slab is not obstructed by it.
	from := mgl64.Vec3{4, 3, 1}
	to := mgl64.Vec3{4, 3, 7}
	if _, blocked := s.Cast(from, to, []string{tags.ResolvWall, tags.ResolvPlatform}); blocked {
		t.Fatalf("segment above the platform should be clear")
	}

	// Below the top it is.
	from[1], to[1] = 1, 1
	if _, blocked := s.Cast(from, to, []string{tags.ResolvWall, tags.ResolvPlatform}); !blocked {
		t.Fatalf("segment through the platform side should be blocked")
	}
}

func TestSpawnPosition(t *testing.T) {
	s := NewSpace(testArena())
	got := s.SpawnPosition()
	want := mgl64.Vec3{5, 0, 10}
	if got != want {
		t.Fatalf("spawn = %v, want %v", got, want)
	}
}
