package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/fonts"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates the end-of-round system. Once the stage reports
// game over the label fades in and the players can retry or leave.
func NewUpdateGameOver(sceneChanger SceneChanger, createStageScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		stageEntry, ok := components.Stage.First(e.World)
		if !ok || !components.Stage.Get(stageEntry).GameOver {
			return
		}

		gameOver := GetOrCreateGameOver(e)
		if gameOver.Fade == nil {
			duration := float32(cfg.Stage.LabelFadeFrames) * tickSeconds
			gameOver.Fade = gween.New(0, 1, duration, ease.OutQuad)
		}
		gameOver.Alpha, _ = gameOver.Fade.Update(tickSeconds)
		gameOver.Frames++

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createStageScene())
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// markLoser records which character ended the round, by its roster title.
func markLoser(e *ecs.ECS, name string) {
	gameOver := GetOrCreateGameOver(e)
	if gameOver.Loser != "" {
		return
	}
	if entry, ok := roster.Find(cfg.Roster, name); ok {
		name = entry.Title
	}
	gameOver.Loser = name
}

// GetOrCreateGameOver returns the singleton GameOver component
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}

// DrawGameOver renders the label placed by the simulation, fading it in,
// with the retry hint underneath.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)
	if !stage.GameOver || stage.Label == "" {
		return
	}

	alpha := float32(1)
	loser := ""
	if entry, ok := components.GameOver.First(e.World); ok {
		gameOver := components.GameOver.Get(entry)
		alpha = gameOver.Alpha
		loser = gameOver.Loser
	}

	labelFace := fonts.Label.Get()
	bounds := text.BoundString(labelFace, stage.Label)
	x := stage.LabelX - bounds.Dx()/2
	y := stage.LabelY + bounds.Dy()/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(cfg.Stage.LabelColor)
	op.ColorScale.ScaleAlpha(alpha)
	text.DrawWithOptions(screen, stage.Label, labelFace, op)

	if alpha < 1 {
		return
	}

	hintFace := fonts.Hint.Get()
	hint := cfg.Stage.HintText
	if loser != "" {
		hint = loser + " fell.   " + hint
	}
	hb := text.BoundString(hintFace, hint)
	text.Draw(screen, hint, hintFace, stage.LabelX-hb.Dx()/2, y+cfg.Stage.HintOffsetY, cfg.Stage.HintColor)
}
