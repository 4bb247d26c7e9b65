// Package leveldata parses stage files for both frontends.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Stage holds everything the simulation needs from a TMX stage file.
type Stage struct {
	Name         string
	Width        int
	Height       int
	VisibleWidth int // right-hand movement bound, defaults to Width
	TileWidth    int
	TileHeight   int
	Platforms    []Platform
	Spawns       []Spawn
}

// Platform is a solid rectangle. X and Y are its top-left corner.
type Platform struct {
	X, Y, W, H float64
	Floating   bool    // bobs up and down
	Travel     float64 // vertical amplitude of a floating platform
}

// Spawn is a character start point. X and Y are the sprite center.
type Spawn struct {
	X, Y      float64
	Character string
}

// SpawnFor returns the spawn point assigned to a roster entry.
func (s *Stage) SpawnFor(character string) (Spawn, bool) {
	for _, sp := range s.Spawns {
		if sp.Character == character {
			return sp, true
		}
	}
	return Spawn{}, false
}
