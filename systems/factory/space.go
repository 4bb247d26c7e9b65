package factory

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/archetypes"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/components"
	cfg "github.com/lcs-rgordon/ics3u-2019-culminating-task/config"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/collision"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the stage's collision space and the ground probe that
// characters query. The platform objects are returned in stage order.
func CreateSpace(ecs *ecs.ECS, stage *leveldata.Stage) (*donburi.Entry, []*resolv.Object) {
	space := archetypes.Space.Spawn(ecs)
	spaceData, objects := collision.NewStageSpace(stage, cfg.Stage.CellSize)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	components.Solids.SetValue(space, components.SolidsData{SpaceSolids: collision.NewSpaceSolids(spaceData)})
	return space, objects
}
