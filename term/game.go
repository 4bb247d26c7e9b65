package term

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
)

// ErrNoPlayers is returned when no roster entry has a spawn point.
var ErrNoPlayers = errors.New("stage has no spawn point for any character")

type player struct {
	sim   *core.Character
	entry roster.Entry
	glyph *Glyph
}

// Game runs rounds on one stage in a terminal.
type Game struct {
	cfg    Config
	screen tcell.Screen
	level  *leveldata.Stage
	keys   *HeldKeys

	stage   *Stage
	players []*player
	loser   string
}

// NewGame prepares the first round. The screen must already be initialized.
func NewGame(screen tcell.Screen, level *leveldata.Stage, cfg Config, keys *HeldKeys) (*Game, error) {
	if keys == nil {
		keys = NewHeldKeys(cfg.Hold, nil)
	}
	g := &Game{
		cfg:    cfg,
		screen: screen,
		level:  level,
		keys:   keys,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset starts a new round with every character back on its spawn point.
func (g *Game) Reset() error {
	g.stage = NewStage(g.level, g.cfg.FloatDuration)
	g.players = g.players[:0]
	g.loser = ""
	g.keys.Reset()

	for _, entry := range g.cfg.Roster {
		spawn, ok := g.level.SpawnFor(entry.Name)
		if !ok {
			log.Printf("Warning: Stage %s has no spawn point for %s", g.level.Name, entry.Name)
			continue
		}
		sim := core.New(entry.CharacterConfig(int(spawn.X), int(spawn.Y), g.cfg.Params))
		glyph := NewGlyph(entry.Glyph, g.cfg.SpriteWidth, g.cfg.SpriteHeight)
		glyph.Show(sim.InitialSprite())
		g.players = append(g.players, &player{sim: sim, entry: entry, glyph: glyph})
	}
	if len(g.players) == 0 {
		return ErrNoPlayers
	}
	return nil
}

// Tick advances the platforms and then every character still on the stage.
func (g *Game) Tick() {
	g.stage.Advance(float32(g.cfg.TickRate.Seconds()))

	for _, pl := range g.players {
		if g.stage.Removed(pl.sim) {
			continue
		}
		ev := pl.sim.Tick(core.Env{
			Keys:    g.keys,
			World:   g.stage,
			Solids:  g.stage,
			Sprites: pl.glyph,
		})
		if ev.Has(core.EventGameOver) && g.loser == "" {
			g.loser = pl.entry.Title
			log.Printf("Round over on %s: %s fell", g.level.Name, pl.entry.Title)
		}
	}
}

// Snapshots returns the state of every character, removed ones included.
func (g *Game) Snapshots() []core.Snapshot {
	out := make([]core.Snapshot, 0, len(g.players))
	for _, pl := range g.players {
		out = append(out, pl.sim.Snapshot())
	}
	return out
}

// GameOver reports whether a character has fallen off this round.
func (g *Game) GameOver() bool { return g.stage.GameOver() }

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			if g.stage.GameOver() {
				if err := g.Reset(); err != nil {
					log.Printf("Warning: Could not restart round: %v", err)
				}
			}
			return true
		}
		if name, ok := KeyName(ev); ok {
			g.keys.Press(name)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// Run ticks and draws until the context is cancelled or the player quits.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cfg.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			g.Tick()
			g.Draw()
		}
	}
}
