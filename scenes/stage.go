package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/systems"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StageScene is one round: the characters on a stage until one falls off.
type StageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        string
	once         sync.Once
}

// NewStageScene creates a round on the named stage
func NewStageScene(sc SceneChanger, level string) *StageScene {
	if level == "" {
		level = cfg.Stage.DefaultLevel
	}
	return &StageScene{sceneChanger: sc, level: level}
}

func (ss *StageScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *StageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *StageScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	createStageScene := func() interface{} {
		ss.teardown()
		return NewStageScene(ss.sceneChanger, ss.level)
	}
	createMenuScene := func() interface{} {
		ss.teardown()
		return NewMenuSceneAt(ss.sceneChanger, ss.level)
	}

	// Order matters: platforms move before characters probe them, and the
	// game-over flow sees this tick's result.
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateFloatingPlatforms)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCharacters)
	ecs.AddSystem(systems.NewUpdateGameOver(ss.sceneChanger, createStageScene, createMenuScene))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	ss.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(ss.ecs, ss.level)
	stage := components.Level.Get(level).CurrentLevel
	ss.level = stage.Name

	factory.CreateStage(ss.ecs, stage)

	spaceEntry, objects := factory.CreateSpace(ss.ecs, stage)
	factory.CreatePlatforms(ss.ecs, stage, objects)

	space := components.Space.Get(spaceEntry).Space
	factory.CreateCharacters(ss.ecs, cfg.Roster, stage, space)
}

// teardown releases the ground probe before the scene is replaced.
func (ss *StageScene) teardown() {
	if entry, ok := components.Solids.First(ss.ecs.World); ok {
		components.Solids.Get(entry).Close()
	}
}
