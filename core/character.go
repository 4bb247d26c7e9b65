// Package core is the per-tick simulation of a platformer character.
// It knows nothing about rendering, ECS storage or input devices: the world,
// the solid geometry, the sprite sink and the key state are all reached
// through the small interfaces in capabilities.go.
package core

// Facing is the horizontal direction the character looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Phase is the vertical direction of an airborne character.
type Phase int

const (
	PhaseDescending Phase = iota
	PhaseAscending
)

func (p Phase) String() string {
	if p == PhaseAscending {
		return "up"
	}
	return "down"
}

// Bindings are the key names a character responds to.
type Bindings struct {
	MoveLeft  string
	MoveRight string
	Jump      string
}

// Params holds the movement tuning. All values are per tick.
type Params struct {
	Step        int // horizontal displacement
	Gravity     int // added to the vertical velocity while airborne
	JumpImpulse int // negative: vertical velocity set on jump
	InitialFall int // vertical velocity of a freshly created character
	WalkDelay   int // ticks per walking frame
}

func DefaultParams() Params {
	return Params{
		Step:        4,
		Gravity:     2,
		JumpImpulse: -24,
		InitialFall: 4,
		WalkDelay:   8,
	}
}

// Config describes one character at construction time.
type Config struct {
	Name       string // asset name prefix
	WalkFrames int
	Keys       Bindings
	StartX     int
	StartY     int
	Params     Params
}

type Character struct {
	cfg Config

	x, y int
	vy   int

	facing Facing
	phase  Phase

	// walkTicks counts ticks of the walking cycle; frame = walkTicks / WalkDelay
	walkTicks int

	grounded bool
	terminal bool
}

// New creates a character at its start position, facing right and falling.
// A zero Params is replaced by DefaultParams and a non-positive frame count
// by a single frame.
func New(cfg Config) *Character {
	if cfg.Params == (Params{}) {
		cfg.Params = DefaultParams()
	}
	if cfg.Params.WalkDelay <= 0 {
		cfg.Params.WalkDelay = 1
	}
	if cfg.WalkFrames <= 0 {
		cfg.WalkFrames = 1
	}

	return &Character{
		cfg:    cfg,
		x:      cfg.StartX,
		y:      cfg.StartY,
		vy:     cfg.Params.InitialFall,
		facing: FacingRight,
		phase:  PhaseDescending,
	}
}

func (c *Character) Name() string { return c.cfg.Name }

func (c *Character) Position() (int, int) { return c.x, c.y }

// Terminal reports whether the character has left the stage for good.
func (c *Character) Terminal() bool { return c.terminal }

// InitialSprite is the sprite a new character shows before its first tick.
func (c *Character) InitialSprite() SpriteKey {
	return c.key(PoseJumpDown, 0)
}

// Frame is the current walking frame index.
func (c *Character) Frame() int {
	return c.walkTicks / c.cfg.Params.WalkDelay
}

// Snapshot is a read-only view of a character, used by renderers and tests.
type Snapshot struct {
	Name     string
	X, Y     int
	VY       int
	Facing   Facing
	Phase    Phase
	Frame    int
	Grounded bool
	Terminal bool
}

func (c *Character) Snapshot() Snapshot {
	return Snapshot{
		Name:     c.cfg.Name,
		X:        c.x,
		Y:        c.y,
		VY:       c.vy,
		Facing:   c.facing,
		Phase:    c.phase,
		Frame:    c.Frame(),
		Grounded: c.grounded,
		Terminal: c.terminal,
	}
}

func (c *Character) key(pose Pose, frame int) SpriteKey {
	return SpriteKey{
		Prefix: c.cfg.Name,
		Pose:   pose,
		Facing: c.facing,
		Frame:  frame,
	}
}
