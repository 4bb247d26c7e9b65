package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/fonts"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and marks the three ground
// probes of each character, green where they touch a solid.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			var c color.RGBA
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.Debug.SolidColor
			case obj.HasTags(tags.ResolvCharacter):
				c = cfg.Debug.BodyColor
			default:
				continue // the probe itself
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	solidsEntry, ok := components.Solids.First(ecs.World)
	if !ok {
		return
	}
	solids := components.Solids.Get(solidsEntry)
	face := fonts.Debug.Get()

	line := 0
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}
		snap := char.Sim.Snapshot()
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()

		for _, dx := range []int{0, w / 3, -(w / 3)} {
			px, py := snap.X+dx, snap.Y+h/2
			c := cfg.Debug.ProbeColor
			if _, hit := solids.SolidAt(px, py); hit {
				c = cfg.Debug.HitColor
			}
			vector.FillRect(screen, float32(px-1), float32(py-1), 3, 3, c, false)
		}

		line++
		status := fmt.Sprintf("%s x=%d y=%d vy=%d %s frame=%d grounded=%t",
			snap.Name, snap.X, snap.Y, snap.VY, snap.Phase, snap.Frame, snap.Grounded)
		text.Draw(screen, status, face, 4, 12*line, cfg.White)
	})
}
