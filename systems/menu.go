package systems

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the title menu system. Enter starts the highlighted
// stage and Esc quits, in addition to the buttons of the menu UI.
func NewUpdateMenu(sceneChanger SceneChanger, createStageScene func(level string) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			menu.Start = true
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			menu.Quit = true
		}

		if menu.Start && !menu.Quit {
			PlaySFX(e, cfg.SoundMenuSelect)
			menu.Start = false
			sceneChanger.ChangeScene(createStageScene(menu.SelectedLevel()))
		}
	}
}

// InitMenu fills the level list and highlights the given level if present.
func InitMenu(menu *components.MenuData, names []string, current string) {
	menu.LevelNames = names
	menu.LevelIndex = 0
	for i, n := range names {
		if n == current {
			menu.LevelIndex = i
			break
		}
	}
}

// CycleLevel highlights the next level, wrapping around.
func CycleLevel(menu *components.MenuData) {
	if len(menu.LevelNames) == 0 {
		return
	}
	menu.LevelIndex = (menu.LevelIndex + 1) % len(menu.LevelNames)
}

// GetLevelDisplayName turns a stage file name into a menu label,
// e.g. "stage01" becomes "Stage 01".
func GetLevelDisplayName(name string) string {
	if name == "" {
		return ""
	}
	i := strings.IndexAny(name, "0123456789")
	if i <= 0 {
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return strings.ToUpper(name[:1]) + name[1:i] + " " + name[i:]
}

// ToggleMute flips the mute setting from the menu and saves it.
func ToggleMute(e *ecs.ECS) bool {
	settings := GetOrCreateSettings(e)
	settings.Muted = !settings.Muted
	applyAudioSettings(settings)
	globalSettings = *settings
	_ = SaveSettings(savedFrom(settings))
	return settings.Muted
}

// ToggleFullscreen flips fullscreen from the menu and saves it.
func ToggleFullscreen(e *ecs.ECS) bool {
	settings := GetOrCreateSettings(e)
	settings.Fullscreen = !settings.Fullscreen
	ebiten.SetFullscreen(settings.Fullscreen)
	globalSettings = *settings
	_ = SaveSettings(savedFrom(settings))
	return settings.Fullscreen
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
