package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/yohamta/donburi/ecs"
)

// globalSettings outlives scenes; every new scene starts from it.
var globalSettings = components.SettingsData{
	SFXVolume: cfg.Audio.DefaultSFXVol,
}

// EnableDebugOverlay turns the collision overlay on for every scene.
func EnableDebugOverlay() {
	globalSettings.Debug = true
}

// UpdateSettings handles the global hotkeys: debug overlay, fullscreen and mute.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		applyAudioSettings(settings)
		changed = true
	}

	if changed {
		globalSettings = *settings
		_ = SaveSettings(savedFrom(settings))
	}
}

func applyAudioSettings(s *components.SettingsData) {
	if s.Muted {
		SetSFXVolume(0)
		return
	}
	SetSFXVolume(s.SFXVolume)
}

func savedFrom(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the global settings if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, globalSettings)
	}
	return components.Settings.Get(entry)
}
