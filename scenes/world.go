package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
)

// ArenaScene runs the playable arena: character, orbit camera, audio
// and the debug overlays.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewArenaScene creates the arena scene.
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Input runs first so every system in the tick sees the same
	// edge-derived snapshot.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettingsMenu)
	e.AddSystem(systems.UpdateDebug)

	// Simulation order matters: motion writes the pose, signals read
	// it, rotation turns the body, then the camera follows.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateMotion))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSignals))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRotation))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateOrbitCamera))
	e.AddSystem(systems.UpdateFlash)

	// Audio runs last so cues queued anywhere this tick play together.
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawFlash)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	e.AddRenderer(cfg.LayerHUD, systems.DrawSettingsMenu)

	as.ecs = e

	space, err := factory.LoadArena(e, "levels/arena.tmx")
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}

	factory.CreateInput(e)
	factory.CreateCamera(e)
	factory.CreatePlayer(e, space, space, space.SpawnPosition())
}
