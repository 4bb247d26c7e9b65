package systems

import (
	"testing"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type worldFixture struct {
	ecs   *ecs.ECS
	space *resolv.Space
	world *stageWorld
}

func newWorldFixture() *worldFixture {
	e := ecs.NewECS(donburi.NewWorld())

	stageEntry := e.World.Entry(e.World.Create(components.Stage))
	components.Stage.SetValue(stageEntry, components.StageData{Width: 640, Height: 360, VisibleWidth: 600})

	space := resolv.NewSpace(640, 360, 16, 16)
	spaceEntry := e.World.Entry(e.World.Create(components.Space))
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	return &worldFixture{
		ecs:   e,
		space: space,
		world: &stageWorld{
			ecs:     e,
			stage:   components.Stage.Get(stageEntry),
			entries: make(map[*core.Character]*donburi.Entry),
		},
	}
}

func (f *worldFixture) addCharacter(name string, x float64) (*core.Character, *donburi.Entry, *resolv.Object) {
	c := core.New(core.Config{Name: name})
	obj := resolv.NewObject(x, 100, 32, 48)
	f.space.Add(obj)

	entry := f.ecs.World.Entry(f.ecs.World.Create(components.Object))
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	f.world.entries[c] = entry
	return c, entry, obj
}

func inSpace(space *resolv.Space, obj *resolv.Object) bool {
	for _, o := range space.Objects() {
		if o == obj {
			return true
		}
	}
	return false
}

func TestStageWorldReportsStageSize(t *testing.T) {
	f := newWorldFixture()

	assert.Equal(t, 640, f.world.Width())
	assert.Equal(t, 360, f.world.Height())
	assert.Equal(t, 600, f.world.VisibleWidth())
}

func TestStageWorldRemoveIsDeferredUntilFlush(t *testing.T) {
	f := newWorldFixture()
	guile, guileEntry, guileObj := f.addCharacter("guile", 100)
	_, vigaEntry, vigaObj := f.addCharacter("viga", 400)

	f.world.Remove(guile)
	assert.True(t, guileEntry.Valid(), "still alive while characters tick")
	assert.True(t, inSpace(f.space, guileObj))

	f.world.flush()

	assert.False(t, guileEntry.Valid())
	assert.False(t, inSpace(f.space, guileObj))
	assert.True(t, vigaEntry.Valid())
	assert.True(t, inSpace(f.space, vigaObj))
	assert.Empty(t, f.world.pending)
}

func TestStageWorldKeepsFirstLoser(t *testing.T) {
	f := newWorldFixture()
	guile, _, _ := f.addCharacter("guile", 100)
	viga, _, _ := f.addCharacter("viga", 400)

	f.world.Remove(viga)
	f.world.Remove(guile)
	f.world.Remove(viga)
	assert.Equal(t, "viga", f.world.loser)

	// A character queued twice is only destroyed once.
	require.NotPanics(t, f.world.flush)
	assert.Empty(t, f.space.Objects())

	markLoser(f.ecs, f.world.loser)
	markLoser(f.ecs, "guile")
	assert.Equal(t, "Viga", GetOrCreateGameOver(f.ecs).Loser, "shown by roster title")
}

func TestMarkLoserKeepsUnknownNames(t *testing.T) {
	f := newWorldFixture()

	markLoser(f.ecs, "stranger")
	assert.Equal(t, "stranger", GetOrCreateGameOver(f.ecs).Loser)
}

func TestStageWorldGameOverAndLabel(t *testing.T) {
	f := newWorldFixture()

	f.world.SetGameOver()
	f.world.ShowText(core.GameOverText, 320, 180)

	stage := f.world.stage
	assert.True(t, stage.GameOver)
	assert.Equal(t, "GAME OVER", stage.Label)
	assert.Equal(t, 320, stage.LabelX)
	assert.Equal(t, 180, stage.LabelY)
}
