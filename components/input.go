package components

import (
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// global actions, plus the set of held character keys by name.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Held     map[string]bool

	// Primed is false until the first poll. Keys already held when a scene
	// starts are not reported as just pressed.
	Primed bool
}

// IsKeyDown reports whether a character key is held this frame.
func (d *InputData) IsKeyDown(key string) bool {
	return d.Held[key]
}

var Input = donburi.NewComponentType[InputData]()
