package term

import (
	"testing"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevel() *leveldata.Stage {
	return &leveldata.Stage{
		Name:         "test",
		Width:        640,
		Height:       360,
		VisibleWidth: 600,
		TileWidth:    20,
		TileHeight:   20,
		Platforms: []leveldata.Platform{
			{X: 0, Y: 320, W: 640, H: 40},
		},
		Spawns: []leveldata.Spawn{
			{X: 100, Y: 260, Character: "guile"},
			{X: 500, Y: 260, Character: "viga"},
		},
	}
}

func TestStageSolidAt(t *testing.T) {
	level := testLevel()
	level.Platforms = append(level.Platforms, leveldata.Platform{X: 200, Y: 200, W: 100, H: 20})
	s := NewStage(level, 2)

	solid, ok := s.SolidAt(250, 205)
	require.True(t, ok)
	assert.Equal(t, 200, solid.Top())
	assert.Equal(t, 250, solid.X)

	solid, ok = s.SolidAt(0, 320)
	require.True(t, ok, "top-left corner is inside")
	assert.Equal(t, 320, solid.Top())

	_, ok = s.SolidAt(300, 205)
	assert.False(t, ok, "right edge is outside")

	_, ok = s.SolidAt(250, 319)
	assert.False(t, ok)
}

func TestStageSolidAtPrefersHighestPlatform(t *testing.T) {
	level := testLevel()
	level.Platforms = append(level.Platforms, leveldata.Platform{X: 0, Y: 310, W: 100, H: 40})
	s := NewStage(level, 2)

	solid, ok := s.SolidAt(50, 330)
	require.True(t, ok)
	assert.Equal(t, 310, solid.Top())
}

func TestStageRecordsWorldNotifications(t *testing.T) {
	s := NewStage(testLevel(), 2)
	c := core.New(core.Config{Name: "guile"})

	assert.Equal(t, 640, s.Width())
	assert.Equal(t, 360, s.Height())
	assert.Equal(t, 600, s.VisibleWidth())
	assert.False(t, s.GameOver())
	assert.False(t, s.Removed(c))

	s.SetGameOver()
	s.Remove(c)
	s.ShowText(core.GameOverText, 320, 180)

	assert.True(t, s.GameOver())
	assert.True(t, s.Removed(c))
	label, x, y := s.Label()
	assert.Equal(t, "GAME OVER", label)
	assert.Equal(t, 320, x)
	assert.Equal(t, 180, y)
}

func TestFloatingPlatformsMove(t *testing.T) {
	level := testLevel()
	level.Platforms = append(level.Platforms, leveldata.Platform{X: 200, Y: 200, W: 100, H: 20, Floating: true, Travel: 50})
	s := NewStage(level, 2)

	for i := 0; i < 30; i++ {
		s.Advance(1.0 / 60.0)
	}

	_, ok := s.SolidAt(250, 219)
	assert.False(t, ok, "the platform has risen off its start row")

	solid, ok := s.SolidAt(250, 195)
	require.True(t, ok)
	assert.Less(t, solid.Top(), 200)
	assert.Greater(t, solid.Top(), 150)

	floor, ok := s.SolidAt(10, 330)
	require.True(t, ok)
	assert.Equal(t, 320, floor.Top(), "static platforms stay put")
}

func TestCharacterRidesRisingPlatform(t *testing.T) {
	level := testLevel()
	level.Platforms = []leveldata.Platform{
		{X: 0, Y: 300, W: 200, H: 20, Floating: true, Travel: 64},
	}
	s := NewStage(level, 2)
	glyph := NewGlyph('G', 32, 48)
	c := core.New(core.Config{Name: "guile", StartX: 100, StartY: 300 - 24})
	env := core.Env{World: s, Solids: s, Sprites: glyph}

	require.True(t, c.Tick(env).Has(core.EventLanded))

	// The first leg lasts 120 ticks at 60 Hz; stay inside it.
	for i := 0; i < 110; i++ {
		s.Advance(1.0 / 60.0)
		ev := c.Tick(env)
		snap := c.Snapshot()
		require.False(t, ev.Has(core.EventLanded), "tick %d", i)
		require.True(t, snap.Grounded, "tick %d", i)
		require.Equal(t, 0, snap.VY, "tick %d", i)
	}

	solid, ok := s.SolidAt(100, 250)
	require.True(t, ok)
	_, y := c.Position()
	assert.Equal(t, solid.Top()-24, y, "carried up with the platform")
	assert.Less(t, y, 300-24-50)
}
