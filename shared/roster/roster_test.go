package roster

import (
	"testing"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	e, ok := Find(Default, "viga")
	require.True(t, ok)
	assert.Equal(t, KeyA, e.Keys.MoveLeft)

	_, ok = Find(Default, "ryu")
	assert.False(t, ok)
}

func TestBindingsDoNotOverlap(t *testing.T) {
	seen := map[string]string{}
	for _, e := range Default {
		for _, k := range []string{e.Keys.MoveLeft, e.Keys.MoveRight, e.Keys.Jump} {
			other, dup := seen[k]
			assert.False(t, dup, "%s is bound by %s and %s", k, other, e.Name)
			seen[k] = e.Name
		}
	}
}

func TestCharacterConfig(t *testing.T) {
	cfg := Default[0].CharacterConfig(120, 260, core.DefaultParams())

	assert.Equal(t, "guile", cfg.Name)
	assert.Equal(t, 6, cfg.WalkFrames)
	assert.Equal(t, 120, cfg.StartX)
	assert.Equal(t, 260, cfg.StartY)

	c := core.New(cfg)
	x, y := c.Position()
	assert.Equal(t, 120, x)
	assert.Equal(t, 260, y)
}
