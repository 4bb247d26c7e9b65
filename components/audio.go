package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/yohamta/donburi"
)

// AudioData stores per-scene audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
