package core

// Action is the horizontal intent derived from the held keys.
type Action int

const (
	ActionIdle Action = iota
	ActionLeft
	ActionRight
)

// ResolveInput maps the held keys to a horizontal action and a jump request.
// Left wins over right when both are held. A terminal character resolves to
// idle without a jump.
func (c *Character) ResolveInput(keys KeyState) (Action, bool) {
	if c.terminal || keys == nil {
		return ActionIdle, false
	}

	action := ActionIdle
	if keys.IsKeyDown(c.cfg.Keys.MoveLeft) {
		action = ActionLeft
	} else if keys.IsKeyDown(c.cfg.Keys.MoveRight) {
		action = ActionRight
	}

	return action, keys.IsKeyDown(c.cfg.Keys.Jump)
}

func (c *Character) checkKeys(env Env) Events {
	action, jump := c.ResolveInput(env.Keys)

	switch action {
	case ActionLeft:
		c.moveLeft(env)
	case ActionRight:
		c.moveRight(env)
	default:
		// Standing still
		c.walkTicks = 0
	}

	// Airborne requests are dropped, not queued
	if jump && c.onPlatform(env) {
		c.jump(env.Sprites)
		return EventJumped
	}

	return 0
}
