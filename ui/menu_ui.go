package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/systems"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// Callbacks
	OnPlay             func()
	OnQuit             func()
	OnToggleMute       func() bool
	OnToggleFullscreen func() bool

	// Widget references for updates
	levelLabel       *widget.Label
	soundButton      *widget.Button
	fullscreenButton *widget.Button

	muted      bool
	fullscreen bool

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewMenuUI creates the title menu. muted and fullscreen are the settings
// the buttons start from.
func NewMenuUI(menu *components.MenuData, muted, fullscreen bool, onPlay, onQuit func(), onToggleMute, onToggleFullscreen func() bool) *MenuUI {
	mui := &MenuUI{
		Menu:               menu,
		OnPlay:             onPlay,
		OnQuit:             onQuit,
		OnToggleMute:       onToggleMute,
		OnToggleFullscreen: onToggleFullscreen,
		muted:              muted,
		fullscreen:         fullscreen,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Subtitle, &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.HintColor,
		}),
	))

	contentContainer.AddChild(mui.buildRosterContainer())
	contentContainer.AddChild(mui.buildSettingsContainer())
	contentContainer.AddChild(mui.buildButtonsContainer())

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("ENTER: play   ESC: quit   F1: debug", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.HintColor,
		}),
	))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildRosterContainer lists who plays with which keys.
func (mui *MenuUI) buildRosterContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	for _, entry := range cfg.Roster {
		container.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(rosterLine(entry), &mui.normalFace, &widget.LabelColor{
				Idle: cfg.Menu.TextColor,
			}),
		))
	}

	return container
}

func rosterLine(e roster.Entry) string {
	return fmt.Sprintf("%s: %s / %s to move, %s to jump",
		e.Title, keyLabel(e.Keys.MoveLeft), keyLabel(e.Keys.MoveRight), keyLabel(e.Keys.Jump))
}

func keyLabel(name string) string {
	switch name {
	case roster.KeyLeft:
		return "Left"
	case roster.KeyRight:
		return "Right"
	case roster.KeyUp:
		return "Up"
	}
	return strings.ToUpper(name)
}

func (mui *MenuUI) buildSettingsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	// Level row
	if len(mui.Menu.LevelNames) > 0 {
		levelRow := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)

		levelRow.AddChild(widget.NewLabel(
			widget.LabelOpts.Text("Level:", &mui.smallFace, &widget.LabelColor{
				Idle: cfg.Menu.TextColor,
			}),
		))

		mui.levelLabel = widget.NewLabel(
			widget.LabelOpts.Text(systems.GetLevelDisplayName(mui.Menu.SelectedLevel()), &mui.smallFace, &widget.LabelColor{
				Idle: cfg.Yellow,
			}),
		)
		levelRow.AddChild(mui.levelLabel)

		levelRow.AddChild(mui.smallButton("Change", func() {
			systems.CycleLevel(mui.Menu)
			mui.UpdateUI()
		}))

		container.AddChild(levelRow)
	}

	toggles := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	mui.soundButton = mui.smallButton(soundLabel(mui.muted), func() {
		if mui.OnToggleMute != nil {
			mui.muted = mui.OnToggleMute()
		}
		mui.UpdateUI()
	})
	toggles.AddChild(mui.soundButton)

	mui.fullscreenButton = mui.smallButton(fullscreenLabel(mui.fullscreen), func() {
		if mui.OnToggleFullscreen != nil {
			mui.fullscreen = mui.OnToggleFullscreen()
		}
		mui.UpdateUI()
	})
	toggles.AddChild(mui.fullscreenButton)

	container.AddChild(toggles)

	return container
}

func soundLabel(muted bool) string {
	if muted {
		return "Sound: Off"
	}
	return "Sound: On"
}

func fullscreenLabel(on bool) string {
	if on {
		return "Fullscreen: On"
	}
	return "Fullscreen: Off"
}

func (mui *MenuUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(mui.playButtonImage()),
		widget.ButtonOpts.Text("PLAY", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlay != nil {
				mui.OnPlay()
			}
		}),
	)
	container.AddChild(playButton)

	return container
}

func (mui *MenuUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonDisabled),
	}
}

func (mui *MenuUI) playButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// UpdateUI updates all UI elements to reflect current menu state
func (mui *MenuUI) UpdateUI() {
	if mui.levelLabel != nil {
		mui.levelLabel.Label = systems.GetLevelDisplayName(mui.Menu.SelectedLevel())
	}
	if mui.soundButton != nil {
		if textWidget := mui.soundButton.Text(); textWidget != nil {
			textWidget.Label = soundLabel(mui.muted)
		}
	}
	if mui.fullscreenButton != nil {
		if textWidget := mui.fullscreenButton.Text(); textWidget != nil {
			textWidget.Label = fullscreenLabel(mui.fullscreen)
		}
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !mui.initialized {
		mui.initialized = true
		mui.UpdateUI()
	}
}
