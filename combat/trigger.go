package combat

import (
	"time"

	"github.com/automoto/doomerang-combo/config"
)

// PressAttack records a new press of the attack button. Any buffered
// intent is discarded before the new cycle is classified.
func (c *Controller) PressAttack(now time.Duration) {
	c.dropBuffer(DropSuperseded)
	c.sampler.Press(now)
}

// ReleaseAttack ends the press cycle and triggers its intent if it has
// not fired yet. ok is false when the release produced no intent.
func (c *Controller) ReleaseAttack(now time.Duration) (out Outcome, ok bool) {
	in, fired := c.sampler.Release(now)
	if !fired {
		return OutcomeRejected, false
	}
	return c.Trigger(in, now), true
}

// retryableGuard checks the guards whose failure is worth buffering,
// plus the blocking guard which is terminal. ReasonNone means all pass.
func (c *Controller) retryableGuard(now time.Duration) RejectReason {
	switch {
	case c.IsBlocking():
		return ReasonBlocking
	case c.state.Processing:
		return ReasonProcessing
	case c.state.Locked(now):
		return ReasonLocked
	case c.state.Step == 0 && (!c.state.CanAttack || c.state.InRecovery):
		return ReasonRecovery
	case c.state.Step > 0 && c.state.InRecovery:
		return ReasonRecovery
	}
	return ReasonNone
}

func (c *Controller) cost(in Intent) int {
	if in.Heavy {
		return c.combo.HeavyCost
	}
	return c.combo.LightCost
}

// Trigger runs one attack attempt through the guards, the mixing rule and
// the max-combo decision, and commits it when everything passes.
func (c *Controller) Trigger(in Intent, now time.Duration) Outcome {
	if r := c.retryableGuard(now); r != ReasonNone {
		if r.Retryable() {
			c.storeBuffer(in, now)
			return OutcomeBuffered
		}
		c.observer.AttackRejected(in, r)
		return OutcomeRejected
	}
	if c.resources != nil && c.resources.Current() < c.cost(in) {
		c.observer.AttackRejected(in, ReasonResources)
		return OutcomeRejected
	}

	// Evaluation in flight: a reentrant trigger from a collaborator sees this.
	c.state.Processing = true

	wasHeavy := c.state.Type == ComboHeavy
	prevStep := c.state.Step

	if prevStep > 0 && in.Type() != c.state.Type {
		switch {
		case !c.combo.MixingEnabled:
			return c.reject(in, ReasonMixingDisabled)
		case in.Heavy && c.state.Type == ComboLight:
			// Heavy finisher. The type switch waits for the max decision.
		default:
			return c.reject(in, ReasonDeescalation)
		}
	}
	if prevStep == 0 {
		c.state.Type = in.Type()
	}

	justSwitchedToHeavy := in.Heavy && !wasHeavy && c.combo.MixingEnabled && prevStep > 0
	maxStep := c.combo.LightMax
	switch {
	case justSwitchedToHeavy:
		// The chain began light, so the light limit governs the finisher.
		maxStep = c.combo.LightMax
	case wasHeavy:
		maxStep = c.combo.HeavyMax
	}

	next := prevStep + 1
	if next > maxStep {
		c.state.Step = maxStep
		c.state.Processing = false
		c.End(now)
		return OutcomeEnded
	}
	if justSwitchedToHeavy {
		c.state.Type = ComboHeavy
	}
	c.state.Step = next

	c.commit(in, now)
	return OutcomeCommitted
}

func (c *Controller) reject(in Intent, r RejectReason) Outcome {
	c.state.Processing = false
	c.observer.AttackRejected(in, r)
	return OutcomeRejected
}

func (c *Controller) commit(in Intent, now time.Duration) {
	// A continuation can land while the previous swing's hitbox is open.
	// Close it so the new swing only opens on its own hit event.
	if c.snapshot.live && c.hitbox != nil {
		c.hitbox.Disable()
	}
	c.attackSeq++
	c.state.Attacking = true
	c.state.Processing = true
	c.state.CanAttack = false
	c.state.InRecovery = true
	c.state.LastAttackTime = now
	c.snapshot = AttackSnapshot{
		ID:      c.attackSeq,
		IsHeavy: c.state.Type == ComboHeavy,
		Step:    c.state.Step,
		live:    true,
	}

	speed := 1.0
	if c.resources != nil {
		c.resources.OnAttack(in.Heavy)
		if m := c.resources.SpeedModifier(); m > 0 {
			speed = m
		}
	}
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) / speed)
	}
	c.state.NextAllowedTime = now + scale(c.combo.AttackCooldown)

	c.emit(speed)

	c.schedule(timerHitboxOff, c.combo.HitboxTimeout, c.onHitboxTimeout)
	c.schedule(timerWindowOpen, scale(c.combo.InputWindowOpen), c.onWindowOpen)
	c.schedule(timerRecoveryEnd, scale(c.combo.Recovery), c.onRecoveryEnd)
	c.schedule(timerProcessingClear, c.combo.ProcessingClear, c.onProcessingClear)

	c.observer.AttackCommitted(c.snapshot)
}

// emit sends the animation and hitbox commands for the committed snapshot.
// A configuration fault aborts only this emission; the step stays advanced.
func (c *Controller) emit(speed float64) {
	if c.animator == nil {
		c.reportOnce("animator", "no animator attached, attack %d not animated", c.snapshot.Step)
		return
	}
	state, ok := AnimationState(c.animation, c.state.Type, c.snapshot.Step)
	if !ok {
		c.reportOnce("states:"+c.state.Type.String(), "no %s animation states configured", c.state.Type)
		return
	}
	c.snapshot.State = state
	c.animator.CrossFade(state, c.animation.BlendDuration, c.animation.Layer, 0)
	c.animator.SetFloat(c.animation.AttackSpeedParam, speed)

	if c.hitbox == nil {
		return
	}
	if shaper, ok := c.hitbox.(HitboxShaper); ok {
		shaper.Shape(c.snapshot)
	}
	c.hitbox.ClearHitList()
	if !c.combo.HitboxEventDriven {
		c.hitbox.Enable()
	}
}

// AnimationState picks the animator state for a step of a chain. Steps past
// the configured list reuse its last entry. ok is false for an empty list.
func AnimationState(cfg config.AnimationConfig, t ComboType, step int) (string, bool) {
	var states []string
	switch t {
	case ComboLight:
		states = cfg.LightStates
	case ComboHeavy:
		states = cfg.HeavyStates
	}
	if len(states) == 0 || step < 1 {
		return "", false
	}
	i := step - 1
	if i >= len(states) {
		i = len(states) - 1
	}
	return states[i], true
}

// HitEvent is the animator's notification that the clip for state reached
// its hit frame. It enables the hitbox only for the live attack that
// started that clip.
func (c *Controller) HitEvent(state string) {
	if !c.combo.HitboxEventDriven || c.hitbox == nil {
		return
	}
	if !c.snapshot.live || c.snapshot.State != state {
		return
	}
	c.hitbox.Enable()
}

func (c *Controller) onHitboxTimeout(time.Duration) {
	c.snapshot.live = false
	if c.hitbox != nil {
		c.hitbox.Disable()
	}
}

// onWindowOpen lets the chain continue before the full recovery ends.
func (c *Controller) onWindowOpen(time.Duration) {
	c.state.InRecovery = false
}

func (c *Controller) onRecoveryEnd(time.Duration) {
	c.state.Attacking = false
	c.state.CanAttack = true
	c.state.InRecovery = false
}

func (c *Controller) onProcessingClear(time.Duration) {
	c.state.Processing = false
}
