package core

// GameOverText is shown centered on the stage when a character falls off.
const GameOverText = "GAME OVER"

// Events reports what happened during a tick. It is informational only
// (sound effects, particles) and never feeds back into the simulation.
type Events uint8

const (
	EventJumped Events = 1 << iota
	EventLanded
	EventGameOver
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Tick advances the character by one frame: input, horizontal motion,
// vertical motion, then the off-stage check. A terminal character is inert.
func (c *Character) Tick(env Env) Events {
	if c.terminal {
		return 0
	}

	ev := c.checkKeys(env)
	ev |= c.checkFall(env)
	if !c.terminal {
		ev |= c.checkGameOver(env)
	}

	return ev
}
