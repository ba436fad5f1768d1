package combat

import "time"

// Tick is the per-frame poll: heavy classification, buffer replay, then
// lifecycle closure (pending external reset, idle timeout).
func (c *Controller) Tick(now time.Duration) {
	if in, ok := c.sampler.Poll(now); ok {
		c.Trigger(in, now)
	}
	c.tickBuffer(now)

	if c.resetPending {
		if c.tryReset(CauseExternal) {
			c.resetPending = false
		}
		return
	}

	if c.state.Step > 0 &&
		!c.state.Attacking &&
		!c.buffer.Present &&
		!c.state.Processing &&
		now-c.state.LastAttackTime > c.combo.ComboWindow {
		c.tryReset(CauseTimeout)
	}
}

// End closes the chain. While the last attack is still in flight it
// retries after a short delay instead of racing it.
func (c *Controller) End(now time.Duration) {
	if c.state.Attacking || c.state.Processing {
		c.schedule(timerEndRetry, c.combo.EndRetryDelay, c.End)
		return
	}
	c.reset(CauseEnd)
	c.state.NextAllowedTime = now + c.combo.EndCooldown
	c.state.CanAttack = true
}

// ForceReset asks for the combo to be cleared. It is denied while an
// attack is attacking or processing; a denied request stays pending and
// Tick retries it. It reports whether the reset happened now.
func (c *Controller) ForceReset() bool {
	if c.tryReset(CauseExternal) {
		c.resetPending = false
		return true
	}
	c.resetPending = true
	return false
}

func (c *Controller) tryReset(cause ResetCause) bool {
	if c.state.Attacking || c.state.Processing {
		return false
	}
	c.reset(cause)
	return true
}

// reset cancels every combo timer before clearing state, so no callback
// from the old chain can touch a new one. The lockout time is kept; the
// shared recovery gate is kept while the block machine holds it.
func (c *Controller) reset(cause ResetCause) {
	for _, p := range comboTimers {
		c.cancelTimer(p)
	}
	if c.snapshot.live && c.hitbox != nil {
		c.hitbox.Disable()
	}
	c.snapshot = AttackSnapshot{}
	c.dropBuffer(DropReset)

	next := c.state.NextAllowedTime
	c.state = freshState()
	c.state.NextAllowedTime = next
	c.state.InRecovery = c.block == BlockRecovery

	c.observer.ComboReset(cause)
}
