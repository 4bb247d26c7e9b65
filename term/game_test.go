package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restY is the center of a 48px tall sprite standing on the floor at y=320.
const restY = 296

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(32, 18)
	return screen
}

func newTestGame(t *testing.T, level *leveldata.Stage) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	keys := NewHeldKeys(time.Second, clock.now)
	g, err := NewGame(screen, level, DefaultConfig(), keys)
	require.NoError(t, err)
	return g, screen
}

func (g *Game) ticks(n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func snapshotOf(t *testing.T, g *Game, name string) core.Snapshot {
	t.Helper()
	for _, s := range g.Snapshots() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no character named %s", name)
	return core.Snapshot{}
}

func TestNewGameSpawnsRoster(t *testing.T) {
	g, _ := newTestGame(t, testLevel())

	snaps := g.Snapshots()
	require.Len(t, snaps, 2)
	assert.Equal(t, "guile", snaps[0].Name)
	assert.Equal(t, 100, snaps[0].X)
	assert.Equal(t, 260, snaps[0].Y)
	assert.Equal(t, "viga", snaps[1].Name)
	assert.Equal(t, 500, snaps[1].X)
}

func TestNewGameWithoutSpawnsFails(t *testing.T) {
	level := testLevel()
	level.Spawns = nil

	_, err := NewGame(newTestScreen(t), level, DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestCharactersLandOnTheFloor(t *testing.T) {
	g, _ := newTestGame(t, testLevel())

	g.ticks(30)

	for _, s := range g.Snapshots() {
		assert.True(t, s.Grounded, s.Name)
		assert.Equal(t, restY, s.Y, s.Name)
		assert.Zero(t, s.VY, s.Name)
	}
	assert.False(t, g.GameOver())
}

func TestKeyEventsMoveOnlyTheirCharacter(t *testing.T) {
	g, _ := newTestGame(t, testLevel())
	g.ticks(30)

	assert.True(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	g.ticks(5)

	assert.Equal(t, 120, snapshotOf(t, g, "guile").X)
	assert.Equal(t, core.FacingRight, snapshotOf(t, g, "guile").Facing)
	assert.Equal(t, 500, snapshotOf(t, g, "viga").X)

	assert.True(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)))
	g.Tick()

	assert.Equal(t, 496, snapshotOf(t, g, "viga").X)
	assert.Equal(t, core.FacingLeft, snapshotOf(t, g, "viga").Facing)
}

func TestJumpKeyLaunchesCharacter(t *testing.T) {
	g, _ := newTestGame(t, testLevel())
	g.ticks(30)

	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	g.Tick()

	viga := snapshotOf(t, g, "viga")
	assert.False(t, viga.Grounded)
	assert.Less(t, viga.Y, restY)
	assert.Equal(t, restY, snapshotOf(t, g, "guile").Y)
}

func TestFallingOffEndsTheRound(t *testing.T) {
	level := testLevel()
	level.Platforms = []leveldata.Platform{{X: 0, Y: 320, W: 200, H: 40}}
	g, _ := newTestGame(t, level)

	g.ticks(60)

	require.True(t, g.GameOver())
	assert.Equal(t, "Viga", g.loser)
	assert.True(t, snapshotOf(t, g, "viga").Terminal)
	assert.False(t, snapshotOf(t, g, "guile").Terminal)

	label, x, y := g.stage.Label()
	assert.Equal(t, core.GameOverText, label)
	assert.Equal(t, 320, x)
	assert.Equal(t, 180, y)

	// Enter starts a new round
	assert.True(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.False(t, g.GameOver())
	assert.Empty(t, g.loser)
	viga := snapshotOf(t, g, "viga")
	assert.False(t, viga.Terminal)
	assert.Equal(t, 500, viga.X)
	assert.Equal(t, 260, viga.Y)
}

func TestEnterIgnoredDuringRound(t *testing.T) {
	g, _ := newTestGame(t, testLevel())
	g.ticks(10)
	before := snapshotOf(t, g, "guile")

	assert.True(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))

	assert.Equal(t, before, snapshotOf(t, g, "guile"))
}

func TestEscapeQuits(t *testing.T) {
	g, _ := newTestGame(t, testLevel())

	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}
