package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Stage
	LevelIndex   int
	Names        []string
	Background   *ebiten.Image // pre-rendered tile layers, may be nil
}

var Level = donburi.NewComponentType[LevelData]()
