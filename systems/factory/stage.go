package factory

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/archetypes"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateStage(ecs *ecs.ECS, stage *leveldata.Stage) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, components.StageData{
		Width:        stage.Width,
		Height:       stage.Height,
		VisibleWidth: stage.VisibleWidth,
	})
	return entry
}
