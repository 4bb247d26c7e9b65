package factory

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/archetypes"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, object *resolv.Object) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	return platform
}

// CreateFloatingPlatform spawns a platform that bobs up by travel pixels and
// back down again, forever.
func CreateFloatingPlatform(ecs *ecs.ECS, object *resolv.Object, travel float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	if travel <= 0 {
		travel = leveldata.DefaultTravel
	}

	// The floating platform moves using a *gween.Sequence sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	obj := components.Object.Get(platform)
	d := cfg.Stage.FloatDuration
	tw.Add(
		gween.New(float32(obj.Y), float32(obj.Y-travel), d, ease.InOutSine),
		gween.New(float32(obj.Y-travel), float32(obj.Y), d, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}

// CreatePlatforms spawns one entity per stage platform.
func CreatePlatforms(ecs *ecs.ECS, stage *leveldata.Stage, objects []*resolv.Object) {
	for i, p := range stage.Platforms {
		if p.Floating {
			CreateFloatingPlatform(ecs, objects[i], p.Travel)
			continue
		}
		CreatePlatform(ecs, objects[i])
	}
}
