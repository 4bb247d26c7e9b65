package components

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/roster"
	"github.com/yohamta/donburi"
)

// CharacterData ties an entity to its simulated character.
type CharacterData struct {
	Sim    *core.Character
	Entry  roster.Entry
	Events core.Events // what happened on the last tick
}

var Character = donburi.NewComponentType[CharacterData]()
