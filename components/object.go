package components

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/collision"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the stage's collision space (singleton).
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()

// SolidsData holds the probe used by characters to find the ground.
type SolidsData struct {
	*collision.SpaceSolids
}

var Solids = donburi.NewComponentType[SolidsData]()

// Tween moves a floating platform back and forth.
var Tween = donburi.NewComponentType[gween.Sequence]()
