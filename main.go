package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/fonts"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/scenes"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/systems"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// quitter is implemented by scenes that can end the game.
type quitter interface {
	QuitRequested() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Label, gobold.TTF, 32)
	fonts.LoadFontWithSize(fonts.Hint, goregular.TTF, 12)
	fonts.LoadFont(fonts.Debug, goregular.TTF)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewStageScene(g, config.Debug.Level)
	} else {
		g.scene = scenes.NewMenuSceneAt(g, levelOrDefault(config.Debug.Level))
	}

	return g
}

func levelOrDefault(level string) string {
	if level == "" {
		return config.Stage.DefaultLevel
	}
	return level
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(quitter); ok && q.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", config.Debug.SkipMenu, "start a round right away")
	flag.StringVar(&config.Debug.Level, "level", config.Debug.Level, "stage to play, e.g. stage02")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show collision boxes and ground probes")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if config.Debug.Overlay {
		systems.EnableDebugOverlay()
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
