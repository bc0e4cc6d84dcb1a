package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems/factory"
)

func setLookDelta(e *ecs.ECS, look mgl64.Vec2) {
	entry, _ := components.Input.First(e.World)
	components.Input.Get(entry).LookDelta = look
}

func TestCameraPitchClamp(t *testing.T) {
	e, _, _ := newMotionWorld(t)
	camera := factory.CreateCamera(e)
	cam := components.OrbitCamera.Get(camera)

	setLookDelta(e, mgl64.Vec2{0, 1000})
	UpdateOrbitCamera(e)
	if cam.Pitch != cfg.Camera.VerticalLimit {
		t.Fatalf("pitch = %f, want clamped to %f", cam.Pitch, cfg.Camera.VerticalLimit)
	}

	setLookDelta(e, mgl64.Vec2{0, -2000})
	UpdateOrbitCamera(e)
	if cam.Pitch != -cfg.Camera.VerticalLimit {
		t.Fatalf("pitch = %f, want clamped to %f", cam.Pitch, -cfg.Camera.VerticalLimit)
	}
}

func TestCameraYawUnbounded(t *testing.T) {
	e, _, _ := newMotionWorld(t)
	camera := factory.CreateCamera(e)
	cam := components.OrbitCamera.Get(camera)

	scale := cfg.Camera.Sensitivity / cfg.LookNormalization
	setLookDelta(e, mgl64.Vec2{100, 0})
	for i := 0; i < 5; i++ {
		UpdateOrbitCamera(e)
	}

	want := 5 * 100 * scale
	if math.Abs(cam.Yaw-want) > 1e-9 {
		t.Fatalf("yaw should accumulate without wrapping: got %f, want %f", cam.Yaw, want)
	}
}

func TestCameraRestPosition(t *testing.T) {
	e, player, _ := newMotionWorld(t)
	camera := factory.CreateCamera(e)
	cam := components.OrbitCamera.Get(camera)

	transform := components.Transform.Get(player)
	transform.Position = mgl64.Vec3{3, 0, 5}

	UpdateOrbitCamera(e)

	want := mgl64.Vec3{3, cfg.Camera.VerticalOffset, 5 - cfg.Camera.Distance}
	if cam.Position.Sub(want).Len() > 1e-9 {
		t.Fatalf("rest position = %v, want %v", cam.Position, want)
	}
}

func TestCameraObstructionSnap(t *testing.T) {
	e, player, _ := newMotionWorld(t)
	camera := factory.CreateCamera(e)
	cam := components.OrbitCamera.Get(camera)

	hit := mgl64.Vec3{0, 1.6, -1.2}
	host := components.Host.Get(player)
	host.Probe = &fakeProbe{hit: hit, blocked: true}

	UpdateOrbitCamera(e)

	if cam.Position != hit {
		t.Fatalf("camera should snap to the obstruction point %v, got %v", hit, cam.Position)
	}
}

func TestCameraDistanceFloor(t *testing.T) {
	var cam components.OrbitCameraData
	cam.SetDistance(-5)
	if cam.Distance != cfg.Camera.MinDistance {
		t.Fatalf("distance = %f, want floor %f", cam.Distance, cfg.Camera.MinDistance)
	}
	want := mgl64.Vec3{0, 0, -cfg.Camera.MinDistance}
	if cam.BackOffset != want {
		t.Fatalf("back offset = %v, want %v", cam.BackOffset, want)
	}
}
