package components

import "github.com/yohamta/donburi"

// SettingsData holds user settings for the running game (singleton).
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Muted      bool
	SFXVolume  float64
}

var Settings = donburi.NewComponentType[SettingsData]()
