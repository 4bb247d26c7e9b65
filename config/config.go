package config

import (
	"image/color"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// StageConfig contains stage scene configuration values
type StageConfig struct {
	LevelsDir    string
	DefaultLevel string
	CellSize     int // resolv spatial hash cell

	BackgroundColor color.RGBA
	PlatformColor   color.RGBA
	FloatingColor   color.RGBA
	EdgeColor       color.RGBA

	// Floating platforms
	FloatDuration float32 // seconds for one leg of the bob

	// GAME OVER label
	LabelColor      color.RGBA
	LabelFadeFrames int
	HintColor       color.RGBA
	HintText        string
	HintOffsetY     int
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonDisabled  color.RGBA
	Title           string
	Subtitle        string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	Level      string // Level name override
	Overlay    bool   // Start with the collision overlay on
	SolidColor color.RGBA
	BodyColor  color.RGBA
	ProbeColor color.RGBA
	HitColor   color.RGBA
}

// Global configuration instances
var C *Config
var Character core.Params
var Roster []roster.Entry
var Stage StageConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Adversarial",
	}

	// Per-tick movement tuning
	Character = core.Params{
		Step:        4,
		Gravity:     2,
		JumpImpulse: -24,
		InitialFall: 4,
		WalkDelay:   8,
	}

	Roster = roster.Default

	Stage = StageConfig{
		LevelsDir:    ".",
		DefaultLevel: "stage01",
		CellSize:     16,

		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		PlatformColor:   color.RGBA{R: 90, G: 70, B: 60, A: 255},
		FloatingColor:   color.RGBA{R: 60, G: 110, B: 90, A: 255},
		EdgeColor:       color.RGBA{R: 200, G: 180, B: 140, A: 255},

		FloatDuration: 2,

		LabelColor:      LightRed,
		LabelFadeFrames: 45,
		HintColor:       White,
		HintText:        "ENTER: retry   ESC: menu",
		HintOffsetY:     28,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		HintColor:       color.RGBA{R: 180, G: 180, B: 180, A: 255},
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		ButtonDisabled:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Title:           "ADVERSARIAL",
		Subtitle:        "first one off the stage loses",
	}

	Debug = DebugConfig{
		SkipMenu:   false,
		SolidColor: Grey,
		BodyColor:  Cyan,
		ProbeColor: Yellow,
		HitColor:   Green,
	}
}
