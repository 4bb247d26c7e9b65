package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestHeldKeysExpireAfterHoldWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	keys := NewHeldKeys(100*time.Millisecond, clock.now)

	assert.False(t, keys.IsKeyDown("left"))

	keys.Press("left")
	assert.True(t, keys.IsKeyDown("left"))

	clock.advance(100 * time.Millisecond)
	assert.True(t, keys.IsKeyDown("left"), "still held at the edge of the window")

	clock.advance(time.Millisecond)
	assert.False(t, keys.IsKeyDown("left"))
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	keys := NewHeldKeys(100*time.Millisecond, clock.now)

	keys.Press("a")
	clock.advance(80 * time.Millisecond)
	keys.Press("a")
	clock.advance(80 * time.Millisecond)

	assert.True(t, keys.IsKeyDown("a"))
	assert.False(t, keys.IsKeyDown("d"))
}

func TestHeldKeysReset(t *testing.T) {
	keys := NewHeldKeys(time.Hour, nil)
	keys.Press("w")
	keys.Press("up")

	keys.Reset()

	assert.False(t, keys.IsKeyDown("w"))
	assert.False(t, keys.IsKeyDown("up"))
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   string
		wantOK bool
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left", true},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "right", true},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up", true},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), "d", true},
		{"shifted letter", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), "w", true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "", false},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyName(tt.ev)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
