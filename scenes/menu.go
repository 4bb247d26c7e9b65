package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/assets"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/systems"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	level        string
	once         sync.Once
}

// NewMenuScene creates a new menu scene with the default level highlighted
func NewMenuScene(sc SceneChanger) *MenuScene {
	return NewMenuSceneAt(sc, cfg.Stage.DefaultLevel)
}

// NewMenuSceneAt creates a menu scene with the given level highlighted
func NewMenuSceneAt(sc SceneChanger, level string) *MenuScene {
	return &MenuScene{sceneChanger: sc, level: level}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.menuUI.Update()
}

// QuitRequested reports whether the player chose to leave the game.
func (ms *MenuScene) QuitRequested() bool {
	if ms.ecs == nil {
		return false
	}
	return systems.GetOrCreateMenu(ms.ecs).Quit
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	systems.PreloadAllSFX()

	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createStageScene := func(level string) interface{} {
		return NewStageScene(ms.sceneChanger, level)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettings)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createStageScene))

	_, names := assets.MustLoadStages(cfg.Stage.LevelsDir)
	menu := systems.GetOrCreateMenu(ms.ecs)
	systems.InitMenu(menu, names, ms.level)

	settings := systems.GetOrCreateSettings(ms.ecs)
	ms.menuUI = ui.NewMenuUI(
		menu,
		settings.Muted,
		settings.Fullscreen,
		func() { menu.Start = true },
		func() { menu.Quit = true },
		func() bool { return systems.ToggleMute(ms.ecs) },
		func() bool { return systems.ToggleFullscreen(ms.ecs) },
	)
}
