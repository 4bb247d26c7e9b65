package factory

import (
	"log"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/archetypes"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/assets"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a roster character centered on a spawn point.
func CreateCharacter(ecs *ecs.ECS, entry roster.Entry, spawn leveldata.Spawn, space *resolv.Space) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	assets.PreloadCharacter(entry.Name, entry.WalkFrames)

	sim := core.New(entry.CharacterConfig(int(spawn.X), int(spawn.Y), cfg.Character))
	components.Character.SetValue(character, components.CharacterData{
		Sim:   sim,
		Entry: entry,
	})

	key := sim.InitialSprite()
	img := assets.CharacterSprite(key)
	components.Sprite.SetValue(character, components.SpriteData{Image: img, Key: key})

	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h/2, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = character
	space.Add(obj)
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	return character
}

// CreateCharacters spawns every roster entry that has a spawn point on the
// stage. Entries without one are skipped.
func CreateCharacters(ecs *ecs.ECS, entries []roster.Entry, stage *leveldata.Stage, space *resolv.Space) int {
	n := 0
	for _, entry := range entries {
		spawn, ok := stage.SpawnFor(entry.Name)
		if !ok {
			log.Printf("Warning: Stage %s has no spawn point for %s", stage.Name, entry.Name)
			continue
		}
		CreateCharacter(ecs, entry, spawn, space)
		n++
	}
	return n
}
