package factory

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
)

// CreatePlayer spawns the character at pos with its collaborators
// injected. Missing required collaborators (movement host, input
// provider) are fatal for the component: it spawns disabled with a
// diagnostic instead of operating on nil state.
func CreatePlayer(e *ecs.ECS, mover components.MovementHost, probe components.CameraProbe, pos mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Yaw:      0,
	})

	motion := components.MotionData{Grounded: true}
	if mover == nil {
		log.Printf("factory: player has no movement host, disabling motion for this session")
		motion.Disabled = true
	}
	if _, ok := components.Input.First(e.World); !ok {
		log.Printf("factory: player has no input provider, disabling motion for this session")
		motion.Disabled = true
	}
	components.Motion.SetValue(player, motion)

	components.Host.SetValue(player, components.HostData{Mover: mover, Probe: probe})
	components.Signals.SetValue(player, components.SignalData{})

	return player
}

// CreateInput spawns the singleton input entity. Must exist before
// CreatePlayer so the wiring check passes.
func CreateInput(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Input.First(e.World)
	if ok {
		return entry
	}
	return e.World.Entry(e.World.Create(components.Input))
}
