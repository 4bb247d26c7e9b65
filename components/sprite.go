package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/yohamta/donburi"
)

// SpriteData is the image currently shown for an entity. For characters the
// image is centered on the simulation position.
type SpriteData struct {
	Image *ebiten.Image
	Key   core.SpriteKey
}

var Sprite = donburi.NewComponentType[SpriteData]()
