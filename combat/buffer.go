package combat

import "time"

func (c *Controller) storeBuffer(in Intent, now time.Duration) {
	if c.buffer.Present {
		c.observer.BufferDropped(c.buffer.Intent(), DropSuperseded)
	}
	c.buffer = BufferedInput{
		Present:      true,
		IsHeavy:      in.Heavy,
		CapturedAt:   now,
		ExpectedStep: c.state.Step,
	}
	c.observer.BufferStored(in)
}

func (c *Controller) dropBuffer(r DropReason) {
	if !c.buffer.Present {
		return
	}
	in := c.buffer.Intent()
	c.buffer = BufferedInput{}
	c.observer.BufferDropped(in, r)
}

// tickBuffer expires, discards or replays the buffered intent.
func (c *Controller) tickBuffer(now time.Duration) {
	if !c.buffer.Present {
		return
	}
	if now-c.buffer.CapturedAt > c.combo.BufferTTL {
		c.dropBuffer(DropExpired)
		return
	}
	if c.buffer.ExpectedStep != c.state.Step {
		// Replaying would hit the wrong combo position.
		c.dropBuffer(DropStale)
		return
	}
	if c.retryableGuard(now) != ReasonNone {
		return
	}

	in := c.buffer.Intent()
	c.buffer = BufferedInput{}
	c.observer.BufferReplayed(in)
	if out := c.Trigger(in, now); out == OutcomeRejected {
		c.observer.BufferDropped(in, DropRejected)
	}
}
