package systems

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the tween time step for one update at 60 TPS.
const tickSeconds = 1.0 / 60.0

// UpdateFloatingPlatforms moves floating platforms along their tween
// sequence, restarting it when it completes.
// Must run BEFORE UpdateCharacters so probes see this tick's geometry.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, seqDone := tw.Update(tickSeconds)
		obj.Y = float64(y)
		if seqDone {
			tw.Reset()
		}
	})
}

// UpdateObjects refreshes the spatial hash cells of every collision object.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
