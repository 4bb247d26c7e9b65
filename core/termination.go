package core

// checkGameOver detaches the character once it is below the visible stage.
func (c *Character) checkGameOver(env Env) Events {
	_, h := env.Sprites.Size()
	offScreen := env.World.Height() + h/2
	if c.y <= offScreen {
		return 0
	}

	c.terminal = true
	env.World.SetGameOver()
	env.World.Remove(c)
	env.World.ShowText(GameOverText, env.World.Width()/2, env.World.Height()/2)

	return EventGameOver
}
