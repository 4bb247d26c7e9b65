package core

import "strconv"

// Pose selects which family of images a sprite key refers to.
type Pose int

const (
	PoseStand Pose = iota
	PoseWalk
	PoseJumpUp
	PoseJumpDown
)

// SpriteKey is a logical sprite state. Frame is only meaningful for PoseWalk.
type SpriteKey struct {
	Prefix string
	Pose   Pose
	Facing Facing
	Frame  int
}

// String returns the asset base name, e.g. "guile-jump-up-left" or
// "guile-walk-right-3".
func (k SpriteKey) String() string {
	switch k.Pose {
	case PoseWalk:
		return k.Prefix + "-walk-" + k.Facing.String() + "-" + strconv.Itoa(k.Frame)
	case PoseJumpUp:
		return k.Prefix + "-jump-up-" + k.Facing.String()
	case PoseJumpDown:
		return k.Prefix + "-jump-down-" + k.Facing.String()
	default:
		return k.Prefix + "-" + k.Facing.String()
	}
}

func jumpPose(p Phase) Pose {
	if p == PhaseAscending {
		return PoseJumpUp
	}
	return PoseJumpDown
}
