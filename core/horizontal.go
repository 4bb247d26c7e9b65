package core

func (c *Character) moveLeft(env Env) {
	c.facing = FacingLeft
	c.selectMoveSprite(env)

	// Left edge of the stage
	if c.x > 0 {
		c.x -= c.cfg.Params.Step
	}
}

func (c *Character) moveRight(env Env) {
	c.facing = FacingRight
	c.selectMoveSprite(env)

	// Compared against the center, so the sprite may poke past the bound.
	if c.x < env.World.VisibleWidth() {
		c.x += c.cfg.Params.Step
	}
}

func (c *Character) selectMoveSprite(env Env) {
	if c.onPlatform(env) {
		c.animateWalk(env.Sprites)
		return
	}
	env.Sprites.Show(c.key(jumpPose(c.phase), 0))
}

// animateWalk advances the walking cycle. On the tick the cycle completes the
// counter wraps to zero and the previous frame stays on screen.
func (c *Character) animateWalk(sprites Sprites) {
	c.walkTicks++

	stage := c.walkTicks / c.cfg.Params.WalkDelay
	if stage < c.cfg.WalkFrames {
		sprites.Show(c.key(PoseWalk, stage))
		return
	}

	c.walkTicks = 0
}
