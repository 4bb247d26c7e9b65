package term

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
)

// HeldKeys emulates key-up events for terminals. Press is called from the
// event goroutine and IsKeyDown from the tick loop.
type HeldKeys struct {
	mu      sync.Mutex
	hold    time.Duration
	now     func() time.Time
	pressed map[string]time.Time
}

var _ core.KeyState = (*HeldKeys)(nil)

// NewHeldKeys creates a key set. A nil clock means time.Now.
func NewHeldKeys(hold time.Duration, now func() time.Time) *HeldKeys {
	if now == nil {
		now = time.Now
	}
	return &HeldKeys{
		hold:    hold,
		now:     now,
		pressed: make(map[string]time.Time),
	}
}

// Press marks a key as held from now on.
func (k *HeldKeys) Press(name string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[name] = k.now()
}

// IsKeyDown reports whether the key was pressed within the hold window.
func (k *HeldKeys) IsKeyDown(name string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	at, ok := k.pressed[name]
	if !ok {
		return false
	}
	if k.now().Sub(at) > k.hold {
		delete(k.pressed, name)
		return false
	}
	return true
}

// Reset releases every key.
func (k *HeldKeys) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.pressed)
}

// KeyName maps a terminal key event to the key names used by the roster.
func KeyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return roster.KeyLeft, true
	case tcell.KeyRight:
		return roster.KeyRight, true
	case tcell.KeyUp:
		return roster.KeyUp, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "", false
		}
		return strings.ToLower(string(r)), true
	}
	return "", false
}
