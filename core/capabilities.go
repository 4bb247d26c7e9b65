package core

// KeyState reports whether a named key is currently held.
type KeyState interface {
	IsKeyDown(key string) bool
}

// World is the stage the character lives in.
type World interface {
	Width() int
	Height() int
	// VisibleWidth is the right-hand movement bound.
	VisibleWidth() int
	// Remove detaches the character from the simulation.
	Remove(c *Character)
	SetGameOver()
	// ShowText displays a label centered on (x, y).
	ShowText(text string, x, y int)
}

// Solid is a handle to a collider. X and Y are the center of its rectangle.
type Solid struct {
	X, Y          int
	Width, Height int
}

// Top is the y coordinate of the solid's upper edge.
func (s Solid) Top() int {
	return s.Y - s.Height/2
}

// Solids answers point queries against the static collision geometry.
type Solids interface {
	SolidAt(x, y int) (Solid, bool)
}

// Sprites is the sink for sprite selection. Size reports the dimensions of
// the image currently shown.
type Sprites interface {
	Show(key SpriteKey)
	Size() (w, h int)
}

// Env bundles the collaborators of a single tick.
type Env struct {
	Keys    KeyState
	World   World
	Solids  Solids
	Sprites Sprites
}
