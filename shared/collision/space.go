// Package collision builds the resolv space for a stage and answers the
// point queries of the character's ground probes.
package collision

import (
	"log"
	"math"

	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	TagSolid = "solid"
	TagProbe = "probe"
)

// DefaultCellSize is the spatial hash cell size used for stages.
const DefaultCellSize = 16

// NewStageSpace builds a resolv.Space holding one solid object per platform.
// The returned objects are in the same order as stage.Platforms.
func NewStageSpace(stage *leveldata.Stage, cellSize int) (*resolv.Space, []*resolv.Object) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	space := resolv.NewSpace(stage.Width, stage.Height, cellSize, cellSize)

	objects := make([]*resolv.Object, 0, len(stage.Platforms))
	for _, p := range stage.Platforms {
		obj := NewSolid(p.X, p.Y, p.W, p.H)
		space.Add(obj)
		objects = append(objects, obj)
	}

	log.Printf("Loaded stage %s: %d platforms, %d spawn points, %dx%d map",
		stage.Name, len(stage.Platforms), len(stage.Spawns), stage.Width, stage.Height)

	return space, objects
}

// NewSolid creates a platform object; x and y are its top-left corner.
func NewSolid(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// SpaceSolids answers core.Solids queries against a resolv.Space with a
// single 1x1 probe object that is moved to each query point.
type SpaceSolids struct {
	space *resolv.Space
	probe *resolv.Object
}

var _ core.Solids = (*SpaceSolids)(nil)

func NewSpaceSolids(space *resolv.Space) *SpaceSolids {
	probe := resolv.NewObject(0, 0, 1, 1, TagProbe)
	space.Add(probe)
	return &SpaceSolids{space: space, probe: probe}
}

// SolidAt returns the solid whose rectangle contains the point. The spatial
// hash only narrows the candidates down to the probe's cell, so containment
// is checked exactly. When platforms overlap the highest one is returned.
func (s *SpaceSolids) SolidAt(x, y int) (core.Solid, bool) {
	px, py := float64(x), float64(y)

	s.probe.X = px
	s.probe.Y = py
	s.probe.Update()

	check := s.probe.Check(0, 0, TagSolid)
	if check == nil {
		return core.Solid{}, false
	}

	var hit *resolv.Object
	hitTop := 0
	for _, o := range check.ObjectsByTags(TagSolid) {
		if !Contains(o, x, y) {
			continue
		}
		if _, top, _, _ := Bounds(o); hit == nil || top < hitTop {
			hit, hitTop = o, top
		}
	}
	if hit == nil {
		return core.Solid{}, false
	}

	return ToSolid(hit), true
}

// Close removes the probe from the space.
func (s *SpaceSolids) Close() {
	s.space.Remove(s.probe)
}

// Bounds snaps the object's rectangle to whole pixels: the corner is floored
// and the size rounded. Both the hit test and the Solid handle use it, so a
// snap onto Top() always lands on a row the hit test reports as solid.
func Bounds(o *resolv.Object) (left, top, w, h int) {
	return int(math.Floor(o.X)), int(math.Floor(o.Y)), int(math.Round(o.W)), int(math.Round(o.H))
}

// Contains reports whether the point lies in the object's pixel bounds,
// left and top edges inclusive.
func Contains(o *resolv.Object, x, y int) bool {
	left, top, w, h := Bounds(o)
	return x >= left && x < left+w && y >= top && y < top+h
}

// ToSolid converts a top-left based object to a center based core.Solid.
func ToSolid(o *resolv.Object) core.Solid {
	left, top, w, h := Bounds(o)
	return core.Solid{
		X:      left + w/2,
		Y:      top + h/2,
		Width:  w,
		Height: h,
	}
}
