package combat

import "time"

// UpdateBlock advances the block machine from this frame's button levels.
// The chord (block and attack held together) enters the block only from
// Unblocked and only while no attack is in flight.
func (c *Controller) UpdateBlock(blockHeld, attackHeld bool, now time.Duration) {
	switch c.block {
	case BlockUnblocked:
		if blockHeld && attackHeld && !c.state.Attacking {
			c.enterBlock()
		}
	case BlockStarting, BlockActive:
		if !blockHeld {
			c.exitBlock()
		}
	}
}

func (c *Controller) enterBlock() {
	// Hard reset: the block forfeits the chain even mid-attack.
	c.reset(CauseBlock)
	c.resetPending = false
	c.sampler.Cancel()
	c.setBlock(BlockStarting)
	if c.animator != nil {
		c.animator.SetBool(c.animation.BlockingParam, true)
	}
	c.schedule(timerBlockStartup, c.blockCfg.Startup, func(time.Duration) {
		c.setBlock(BlockActive)
	})
}

func (c *Controller) exitBlock() {
	c.cancelTimer(timerBlockStartup)
	c.setBlock(BlockRecovery)
	c.state.InRecovery = true
	if c.animator != nil {
		c.animator.SetBool(c.animation.BlockingParam, false)
	}
	c.schedule(timerBlockRecovery, c.blockCfg.Recovery, func(time.Duration) {
		c.setBlock(BlockUnblocked)
		c.state.InRecovery = false
	})
}

func (c *Controller) setBlock(p BlockPhase) {
	if c.block == p {
		return
	}
	c.block = p
	c.observer.BlockChanged(p)
}
