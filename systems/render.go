package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel renders the backdrop, the pre-rendered tile layers and every
// platform. The stage is never scrolled: world coordinates are screen
// coordinates.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Stage.BackgroundColor)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if level.Background != nil {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			screen.DrawImage(level.Background, drawOp)
		}
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawPlatform(screen, components.Object.Get(e), cfg.Stage.PlatformColor)
	})
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		drawPlatform(screen, components.Object.Get(e), cfg.Stage.FloatingColor)
	})
}

func drawPlatform(screen *ebiten.Image, o *components.ObjectData, c color.RGBA) {
	x, y := float32(o.X), float32(o.Y)
	w, h := float32(o.W), float32(o.H)
	vector.FillRect(screen, x, y, w, h, c, false)
	vector.FillRect(screen, x, y, w, 2, cfg.Stage.EdgeColor, false)
}

// DrawCharacters renders each character's current sprite centered on its
// simulated position.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil || char.Sim.Terminal() {
			return
		}

		x, y := char.Sim.Position()
		b := sprite.Image.Bounds()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(float64(x)-float64(b.Dx())/2, float64(y)-float64(b.Dy())/2)
		screen.DrawImage(sprite.Image, drawOp)
	})
}
