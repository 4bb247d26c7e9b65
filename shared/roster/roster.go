// Package roster lists the playable characters and their key bindings.
// It must have zero dependencies on ebiten or any graphics library so the
// terminal binary stays headless.
package roster

import "github.com/lcs-rgordon/ics3u-2019-culminating-task/core"

// Key names understood by both frontends.
const (
	KeyLeft  = "left"
	KeyRight = "right"
	KeyUp    = "up"
	KeyA     = "a"
	KeyD     = "d"
	KeyW     = "w"
)

// Entry describes one playable character.
type Entry struct {
	Name       string // asset prefix
	Title      string
	WalkFrames int
	Keys       core.Bindings
	Glyph      rune // terminal rendering
}

// Default is the two-player roster: Guile on the arrow keys, Viga on WASD.
var Default = []Entry{
	{
		Name:       "guile",
		Title:      "Guile",
		WalkFrames: 6,
		Keys:       core.Bindings{MoveLeft: KeyLeft, MoveRight: KeyRight, Jump: KeyUp},
		Glyph:      'G',
	},
	{
		Name:       "viga",
		Title:      "Viga",
		WalkFrames: 8,
		Keys:       core.Bindings{MoveLeft: KeyA, MoveRight: KeyD, Jump: KeyW},
		Glyph:      'V',
	},
}

// Find returns the roster entry with the given name.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// CharacterConfig builds the core configuration for an entry at a spawn point.
func (e Entry) CharacterConfig(x, y int, params core.Params) core.Config {
	return core.Config{
		Name:       e.Name,
		WalkFrames: e.WalkFrames,
		Keys:       e.Keys,
		StartX:     x,
		StartY:     y,
		Params:     params,
	}
}
