package core

type offset struct {
	dx, dy int
}

// probes returns the ground probe offsets from the character's center:
// directly under, under-front and under-rear, a third of the width apart.
func probes(sprites Sprites) [3]offset {
	w, h := sprites.Size()
	return [3]offset{
		{0, h / 2},
		{w / 3, h / 2},
		{-(w / 3), h / 2},
	}
}

// onPlatform reports whether any ground probe touches a solid.
func (c *Character) onPlatform(env Env) bool {
	for _, p := range probes(env.Sprites) {
		if _, ok := env.Solids.SolidAt(c.x+p.dx, c.y+p.dy); ok {
			return true
		}
	}
	return false
}

func (c *Character) checkFall(env Env) Events {
	if !c.onPlatform(env) {
		c.grounded = false
		c.fall(env.Sprites)
		return 0
	}

	var ev Events
	if !c.grounded {
		ev = EventLanded
	}
	c.grounded = true
	c.vy = 0

	// Keep the walking frame picked this tick
	moveKey := c.cfg.Keys.MoveRight
	if c.facing == FacingLeft {
		moveKey = c.cfg.Keys.MoveLeft
	}
	if env.Keys == nil || !env.Keys.IsKeyDown(moveKey) {
		env.Sprites.Show(c.key(PoseStand, 0))
	}

	// All probes are taken before any correction. Every hit rewrites y, so
	// with several hits the rear probe has the final say.
	_, h := env.Sprites.Size()
	var hits [3]Solid
	var found [3]bool
	for i, p := range probes(env.Sprites) {
		hits[i], found[i] = env.Solids.SolidAt(c.x+p.dx, c.y+p.dy)
	}
	for i := range hits {
		if found[i] {
			c.y = hits[i].Top() - h/2
		}
	}

	return ev
}

// launch starts a jump from the ground.
func (c *Character) launch(sprites Sprites) {
	c.phase = PhaseAscending
	sprites.Show(c.key(PoseJumpUp, 0))
	c.vy = c.cfg.Params.JumpImpulse
}

// jump launches and moves once right away, so the ground probe later in the
// same tick no longer touches the platform that was jumped from.
func (c *Character) jump(sprites Sprites) {
	c.launch(sprites)
	c.fall(sprites)
}

func (c *Character) fall(sprites Sprites) {
	c.y += c.vy
	c.vy += c.cfg.Params.Gravity

	if c.vy >= 0 {
		c.phase = PhaseDescending
		sprites.Show(c.key(PoseJumpDown, 0))
	}
}
