package tags

import (
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/collision"
	"github.com/yohamta/donburi"
)

var (
	Character        = donburi.NewTag().SetName("Character")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = collision.TagSolid
	ResolvProbe     = collision.TagProbe
	ResolvCharacter = "character"
)
