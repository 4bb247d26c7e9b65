package systems

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/assets"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stageWorld exposes the Stage singleton to the simulation. Removals are
// queued and applied after every character has ticked, so the entity being
// iterated is never destroyed mid-loop.
type stageWorld struct {
	ecs     *ecs.ECS
	stage   *components.StageData
	entries map[*core.Character]*donburi.Entry
	pending []*donburi.Entry
	loser   string
}

var _ core.World = (*stageWorld)(nil)

func (w *stageWorld) Width() int { return w.stage.Width }

func (w *stageWorld) Height() int { return w.stage.Height }

func (w *stageWorld) VisibleWidth() int { return w.stage.VisibleWidth }

func (w *stageWorld) Remove(c *core.Character) {
	if e, ok := w.entries[c]; ok {
		w.pending = append(w.pending, e)
	}
	if w.loser == "" {
		w.loser = c.Name()
	}
}

func (w *stageWorld) SetGameOver() {
	w.stage.GameOver = true
}

func (w *stageWorld) ShowText(text string, x, y int) {
	w.stage.Label = text
	w.stage.LabelX = x
	w.stage.LabelY = y
}

// flush removes queued entities and their collision objects.
func (w *stageWorld) flush() {
	for _, e := range w.pending {
		if !e.Valid() {
			continue
		}
		if e.HasComponent(components.Object) {
			if spaceEntry, ok := components.Space.First(w.ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
			}
		}
		w.ecs.World.Remove(e.Entity())
	}
	w.pending = w.pending[:0]
}

// spriteSink swaps the entity's image when the simulation picks a sprite.
type spriteSink struct {
	sprite *components.SpriteData
}

var _ core.Sprites = spriteSink{}

func (s spriteSink) Show(key core.SpriteKey) {
	s.sprite.Key = key
	s.sprite.Image = assets.CharacterSprite(key)
}

func (s spriteSink) Size() (int, int) {
	b := s.sprite.Image.Bounds()
	return b.Dx(), b.Dy()
}

// UpdateCharacters advances every character by one tick.
func UpdateCharacters(e *ecs.ECS) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	solidsEntry, ok := components.Solids.First(e.World)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	world := &stageWorld{
		ecs:     e,
		stage:   components.Stage.Get(stageEntry),
		entries: make(map[*core.Character]*donburi.Entry),
	}
	solids := components.Solids.Get(solidsEntry).SpaceSolids

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		world.entries[components.Character.Get(entry).Sim] = entry
	})

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		sprite := components.Sprite.Get(entry)

		env := core.Env{
			Keys:    input,
			World:   world,
			Solids:  solids,
			Sprites: spriteSink{sprite: sprite},
		}
		char.Events = char.Sim.Tick(env)

		syncObject(char.Sim, sprite, components.Object.Get(entry))
		queueCharacterSounds(e, char.Events)
	})

	if world.loser != "" {
		markLoser(e, world.loser)
	}
	world.flush()
}

// syncObject keeps the character's collision box on top of its sprite.
func syncObject(c *core.Character, sprite *components.SpriteData, obj *components.ObjectData) {
	x, y := c.Position()
	b := sprite.Image.Bounds()
	obj.W = float64(b.Dx())
	obj.H = float64(b.Dy())
	obj.X = float64(x) - obj.W/2
	obj.Y = float64(y) - obj.H/2
	obj.Update()
}

func queueCharacterSounds(e *ecs.ECS, ev core.Events) {
	if ev.Has(core.EventJumped) {
		PlaySFX(e, cfg.SoundJump)
	}
	if ev.Has(core.EventLanded) {
		PlaySFX(e, cfg.SoundLand)
	}
	if ev.Has(core.EventGameOver) {
		PlaySFX(e, cfg.SoundGameOver)
	}
}
