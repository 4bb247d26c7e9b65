package term

import (
	"github.com/gdamore/tcell/v2"
)

// cellSize is the number of world pixels per terminal cell.
func cellSize(s *Stage) (int, int) {
	cw, ch := s.level.TileWidth, s.level.TileHeight
	if cw <= 0 {
		cw = 20
	}
	if ch <= 0 {
		ch = 20
	}
	return cw, ch
}

func setCell(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	w, h := screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	screen.SetContent(x, y, r, nil, style)
}

func drawText(screen tcell.Screen, cx, y int, s string, style tcell.Style) {
	runes := []rune(s)
	x := cx - len(runes)/2
	for i, r := range runes {
		setCell(screen, x+i, y, r, style)
	}
}

// Draw renders the stage, every character still on it and the label.
func (g *Game) Draw() {
	screen := g.screen
	screen.Clear()

	cw, ch := cellSize(g.stage)

	for _, p := range g.stage.platforms {
		r, style := g.cfg.PlatformRune, g.cfg.PlatformStyle
		if p.floating {
			r, style = g.cfg.FloatingRune, g.cfg.FloatingStyle
		}
		x0, x1 := int(p.x)/cw, (int(p.x+p.w)-1)/cw
		y0, y1 := int(p.y)/ch, (int(p.y+p.h)-1)/ch
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				setCell(screen, x, y, r, style)
			}
		}
	}

	for _, pl := range g.players {
		if g.stage.Removed(pl.sim) {
			continue
		}
		x, y := pl.sim.Position()
		cx, cy := x/cw, y/ch
		body, marker := pl.glyph.Cell()
		style := tcell.StyleDefault.Bold(true)
		setCell(screen, cx, cy, body, style)
		switch marker {
		case '<':
			setCell(screen, cx-1, cy, marker, style)
		case '^', 'v':
			setCell(screen, cx, cy-1, marker, style)
		default:
			setCell(screen, cx+1, cy, marker, style)
		}
	}

	if label, lx, ly := g.stage.Label(); label != "" {
		drawText(screen, lx/cw, ly/ch, label, g.cfg.LabelStyle)
		hint := g.cfg.HintText
		if g.loser != "" {
			hint = g.loser + " fell.   " + hint
		}
		drawText(screen, lx/cw, ly/ch+2, hint, g.cfg.HintStyle)
	}

	screen.Show()
}
