package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData drives the end-of-round label. The label itself is placed by
// the stage; this only tracks its fade-in.
type GameOverData struct {
	Fade   *gween.Tween
	Alpha  float32
	Loser  string // name of the character that fell
	Frames int    // ticks since the round ended
}

// GameOver is the component type for the end-of-round overlay
var GameOver = donburi.NewComponentType[GameOverData]()
