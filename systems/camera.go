package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/tags"
)

// UpdateOrbitCamera accumulates look input into the rig orientation,
// then resolves the camera position against the obstruction probe.
// Runs after the character's move has been committed for the frame;
// rotation is always applied before position resolution.
func UpdateOrbitCamera(e *ecs.ECS) {
	camEntry, ok := components.OrbitCamera.First(e.World)
	if !ok {
		return
	}
	cam := components.OrbitCamera.Get(camEntry)

	if inputEntry, ok := components.Input.First(e.World); ok {
		look := components.Input.Get(inputEntry).LookDelta
		scale := cfg.Camera.Sensitivity / cfg.LookNormalization

		cam.Yaw += look.X() * scale
		pitchDelta := look.Y() * scale
		if cfg.Camera.InvertY {
			pitchDelta = -pitchDelta
		}
		cam.Pitch = gamemath.Clamp(cam.Pitch+pitchDelta, -cfg.Camera.VerticalLimit, cfg.Camera.VerticalLimit)
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	transform := components.Transform.Get(playerEntry)

	focus := transform.Position.Add(mgl64.Vec3{0, cfg.Camera.VerticalOffset, 0})
	desired := focus.Add(cam.Orientation().Rotate(cam.BackOffset))

	if playerEntry.HasComponent(components.Host) {
		host := components.Host.Get(playerEntry)
		if host.Probe != nil {
			// Snap exactly to the first obstruction point. No easing on
			// the pull-in so the camera can never end a frame clipped.
			if hit, blocked := host.Probe.Cast(focus, desired, cfg.Camera.CollisionMask); blocked {
				cam.Position = hit
				return
			}
		}
	}
	cam.Position = desired
}
