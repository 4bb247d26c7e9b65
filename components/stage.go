package components

import "github.com/yohamta/donburi"

// StageData is the world a round is played in (singleton).
type StageData struct {
	Width        int
	Height       int
	VisibleWidth int

	GameOver bool
	Label    string
	LabelX   int
	LabelY   int
}

var Stage = donburi.NewComponentType[StageData]()
