package term

import "github.com/lcs-rgordon/ics3u-2019-culminating-task/core"

// Glyph is the terminal sprite sink: it remembers the last key shown and
// reports a fixed sprite size.
type Glyph struct {
	Rune rune
	Key  core.SpriteKey
	w, h int
}

var _ core.Sprites = (*Glyph)(nil)

func NewGlyph(r rune, w, h int) *Glyph {
	return &Glyph{Rune: r, w: w, h: h}
}

func (g *Glyph) Show(key core.SpriteKey) { g.Key = key }

func (g *Glyph) Size() (int, int) { return g.w, g.h }

// Cell returns the rune and its facing marker for the current pose.
func (g *Glyph) Cell() (body rune, marker rune) {
	switch g.Key.Pose {
	case core.PoseJumpUp:
		marker = '^'
	case core.PoseJumpDown:
		marker = 'v'
	default:
		marker = '>'
		if g.Key.Facing == core.FacingLeft {
			marker = '<'
		}
	}
	return g.Rune, marker
}
