package config

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
)

// ActionID represents a logical game action outside character movement
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuSelect
	ActionMenuBack
	ActionToggleDebug
	ActionToggleFullscreen
	ActionToggleMute
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// CharacterKeys maps the key names used by character bindings to
	// physical keys.
	CharacterKeys map[string]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
		},
		CharacterKeys: map[string]ebiten.Key{
			roster.KeyLeft:  ebiten.KeyLeft,
			roster.KeyRight: ebiten.KeyRight,
			roster.KeyUp:    ebiten.KeyUp,
			roster.KeyA:     ebiten.KeyA,
			roster.KeyD:     ebiten.KeyD,
			roster.KeyW:     ebiten.KeyW,
		},
	}
}
