package levels

import (
	"testing"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/collision"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStagesLoad(t *testing.T) {
	stages, names, err := leveldata.LoadAllStages(FS, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"stage01", "stage02"}, names)

	for _, name := range names {
		stage := stages[name]
		assert.Equal(t, 640, stage.Width, name)
		assert.Equal(t, 360, stage.Height, name)
		assert.Equal(t, 600, stage.VisibleWidth, name)

		for _, entry := range roster.Default {
			_, ok := stage.SpawnFor(entry.Name)
			assert.True(t, ok, "%s has no spawn for %s", name, entry.Name)
		}
	}
}

// Every character must come to rest on a platform after spawning.
func TestSpawnsLandOnPlatforms(t *testing.T) {
	stages, names, err := leveldata.LoadAllStages(FS, ".")
	require.NoError(t, err)

	for _, name := range names {
		stage := stages[name]
		space, _ := collision.NewStageSpace(stage, collision.DefaultCellSize)
		solids := collision.NewSpaceSolids(space)

		for _, entry := range roster.Default {
			sp, _ := stage.SpawnFor(entry.Name)
			c := core.New(entry.CharacterConfig(int(sp.X), int(sp.Y), core.DefaultParams()))
			env := core.Env{
				Solids:  solids,
				Sprites: fixedSize{w: 32, h: 48},
				World:   &world{stage: stage},
			}

			for i := 0; i < 120; i++ {
				c.Tick(env)
			}

			s := c.Snapshot()
			assert.False(t, s.Terminal, "%s/%s fell off", name, entry.Name)
			assert.True(t, s.Grounded, "%s/%s is not grounded", name, entry.Name)
			assert.Equal(t, 0, s.VY)
		}
	}
}

type fixedSize struct{ w, h int }

func (fixedSize) Show(core.SpriteKey) {}

func (f fixedSize) Size() (int, int) { return f.w, f.h }

type world struct {
	stage *leveldata.Stage
}

func (w *world) Width() int { return w.stage.Width }

func (w *world) Height() int { return w.stage.Height }

func (w *world) VisibleWidth() int { return w.stage.VisibleWidth }

func (w *world) Remove(*core.Character) {}

func (w *world) SetGameOver() {}

func (w *world) ShowText(string, int, int) {}
