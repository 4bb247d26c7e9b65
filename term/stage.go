package term

import (
	"math"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// platform is a stage rectangle; x and y are its top-left corner.
type platform struct {
	x, y, w, h float64
	floating   bool
	bob        *gween.Sequence
}

// Stage is the world and the solid geometry for one round. It is only used
// from the tick loop.
type Stage struct {
	level     *leveldata.Stage
	platforms []*platform

	removed  map[*core.Character]bool
	gameOver bool
	label    string
	labelX   int
	labelY   int
}

var (
	_ core.World  = (*Stage)(nil)
	_ core.Solids = (*Stage)(nil)
)

// NewStage builds a round from a parsed level. Floating platforms bob by
// their travel distance, one leg taking floatDuration seconds.
func NewStage(level *leveldata.Stage, floatDuration float32) *Stage {
	s := &Stage{
		level:   level,
		removed: make(map[*core.Character]bool),
	}
	for _, p := range level.Platforms {
		pl := &platform{x: p.X, y: p.Y, w: p.W, h: p.H, floating: p.Floating}
		if p.Floating {
			travel := p.Travel
			if travel <= 0 {
				travel = leveldata.DefaultTravel
			}
			pl.bob = gween.NewSequence()
			pl.bob.Add(
				gween.New(float32(p.Y), float32(p.Y-travel), floatDuration, ease.InOutSine),
				gween.New(float32(p.Y-travel), float32(p.Y), floatDuration, ease.InOutSine),
			)
		}
		s.platforms = append(s.platforms, pl)
	}
	return s
}

// Advance moves the floating platforms by dt seconds.
func (s *Stage) Advance(dt float32) {
	for _, p := range s.platforms {
		if p.bob == nil {
			continue
		}
		y, _, done := p.bob.Update(dt)
		p.y = float64(y)
		if done {
			p.bob.Reset()
		}
	}
}

func (s *Stage) Width() int { return s.level.Width }

func (s *Stage) Height() int { return s.level.Height }

func (s *Stage) VisibleWidth() int { return s.level.VisibleWidth }

func (s *Stage) Remove(c *core.Character) { s.removed[c] = true }

func (s *Stage) SetGameOver() { s.gameOver = true }

func (s *Stage) ShowText(text string, x, y int) {
	s.label = text
	s.labelX = x
	s.labelY = y
}

// Removed reports whether the character has been taken off the stage.
func (s *Stage) Removed(c *core.Character) bool { return s.removed[c] }

func (s *Stage) GameOver() bool { return s.gameOver }

// Label returns the text shown by the simulation and its center.
func (s *Stage) Label() (string, int, int) { return s.label, s.labelX, s.labelY }

// SolidAt returns the platform containing the point. When platforms overlap
// the highest one wins.
func (s *Stage) SolidAt(x, y int) (core.Solid, bool) {
	var best *platform
	bestTop := 0
	for _, p := range s.platforms {
		left, top, w, h := p.bounds()
		if x < left || x >= left+w || y < top || y >= top+h {
			continue
		}
		if best == nil || top < bestTop {
			best, bestTop = p, top
		}
	}
	if best == nil {
		return core.Solid{}, false
	}
	return best.toSolid(), true
}

// bounds snaps the platform to whole pixels, flooring the corner and rounding
// the size. The hit test and the Solid handle share it so a character snapped
// onto Top() is still inside the platform on the next tick.
func (p *platform) bounds() (left, top, w, h int) {
	return int(math.Floor(p.x)), int(math.Floor(p.y)), int(math.Round(p.w)), int(math.Round(p.h))
}

// toSolid converts to the center-based handle.
func (p *platform) toSolid() core.Solid {
	left, top, w, h := p.bounds()
	return core.Solid{
		X:      left + w/2,
		Y:      top + h/2,
		Width:  w,
		Height: h,
	}
}
