// Package term is a terminal frontend for the character simulation. It draws
// stages with tcell and feeds the same core used by the desktop game.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
)

// Config holds the terminal frontend settings.
type Config struct {
	TickRate time.Duration // one simulation tick

	// Terminals only report key presses. A key counts as held for this long
	// after its last press or auto-repeat.
	Hold time.Duration

	// Pixel size reported to the simulation for every sprite; matches the
	// desktop character images.
	SpriteWidth  int
	SpriteHeight int

	FloatDuration float32 // seconds for one leg of a floating platform

	Params core.Params
	Roster []roster.Entry

	PlatformRune rune
	FloatingRune rune

	PlatformStyle tcell.Style
	FloatingStyle tcell.Style
	LabelStyle    tcell.Style
	HintStyle     tcell.Style
	HintText      string
}

// DefaultConfig returns settings matching the desktop game.
func DefaultConfig() Config {
	return Config{
		TickRate:      time.Second / 60,
		Hold:          500 * time.Millisecond,
		SpriteWidth:   32,
		SpriteHeight:  48,
		FloatDuration: 2,
		Params:        core.DefaultParams(),
		Roster:        roster.Default,
		PlatformRune:  '=',
		FloatingRune:  '~',
		PlatformStyle: tcell.StyleDefault.Foreground(tcell.ColorOlive),
		FloatingStyle: tcell.StyleDefault.Foreground(tcell.ColorTeal),
		LabelStyle:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		HintStyle:     tcell.StyleDefault.Foreground(tcell.ColorSilver),
		HintText:      "ENTER: retry   ESC: quit",
	}
}
