package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the title menu
type MenuData struct {
	LevelNames []string
	LevelIndex int
	Start      bool // Play was clicked
	Quit       bool
}

// SelectedLevel returns the name of the highlighted level.
func (m *MenuData) SelectedLevel() string {
	if len(m.LevelNames) == 0 {
		return ""
	}
	return m.LevelNames[m.LevelIndex%len(m.LevelNames)]
}

// Menu is the component type for title menu state
var Menu = donburi.NewComponentType[MenuData]()
