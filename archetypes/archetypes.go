package archetypes

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
		components.Solids,
	)
	Level = newArchetype(
		components.Level,
	)
	Stage = newArchetype(
		components.Stage,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
