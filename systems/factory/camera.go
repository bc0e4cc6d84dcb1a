package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
)

// CreateCamera spawns the orbit camera rig with the configured
// distance. SetDistance runs here so the back offset is valid before
// the first frame.
func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)

	data := components.OrbitCameraData{}
	data.SetDistance(cfg.Camera.Distance)
	components.OrbitCamera.SetValue(camera, data)

	return camera
}
