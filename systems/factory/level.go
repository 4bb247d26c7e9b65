package factory

import (
	"fmt"
	"log"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/archetypes"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/assets"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named stage. An unknown name falls back to the first
// stage in alphabetical order.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	stages, names := assets.MustLoadStages(cfg.Stage.LevelsDir)
	if len(names) == 0 {
		panic(fmt.Sprintf("No stages found in %q", cfg.Stage.LevelsDir))
	}

	index := -1
	for i, n := range names {
		if n == name {
			index = i
			break
		}
	}
	if index < 0 {
		log.Printf("Warning: Unknown stage %q, using %q", name, names[0])
		index = 0
	}

	stage := stages[names[index]]
	components.Level.SetValue(level, components.LevelData{
		CurrentLevel: stage,
		LevelIndex:   index,
		Names:        names,
		Background:   assets.RenderBackground(stage),
	})

	return level
}
