package combat

import (
	"time"

	"github.com/automoto/doomerang-combo/timing"
)

// Resources is the resource economy the controller spends from.
type Resources interface {
	Current() int
	SpeedModifier() float64
	OnAttack(isHeavy bool)
}

// Animator receives blended state transitions and parameter writes.
type Animator interface {
	CrossFade(state string, blend time.Duration, layer int, normalizedStart float64)
	SetFloat(name string, v float64)
	SetBool(name string, v bool)
}

// Hitbox is the attack collider.
type Hitbox interface {
	Enable()
	Disable()
	ClearHitList()
}

// HitboxShaper is implemented by colliders that size themselves per attack.
// It is called with the committed snapshot before Enable.
type HitboxShaper interface {
	Shape(s AttackSnapshot)
}

// Scheduler runs delayed callbacks on the tick goroutine.
type Scheduler interface {
	After(delay time.Duration, fn timing.Callback) timing.Handle
	Cancel(h timing.Handle) bool
}

// Observer is notified of combo outcomes. All calls happen on the tick goroutine.
type Observer interface {
	AttackCommitted(s AttackSnapshot)
	AttackRejected(in Intent, r RejectReason)
	BufferStored(in Intent)
	BufferReplayed(in Intent)
	BufferDropped(in Intent, r DropReason)
	ComboReset(c ResetCause)
	BlockChanged(p BlockPhase)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) AttackCommitted(AttackSnapshot)      {}
func (NopObserver) AttackRejected(Intent, RejectReason) {}
func (NopObserver) BufferStored(Intent)                 {}
func (NopObserver) BufferReplayed(Intent)               {}
func (NopObserver) BufferDropped(Intent, DropReason)    {}
func (NopObserver) ComboReset(ResetCause)               {}
func (NopObserver) BlockChanged(BlockPhase)             {}

// Observers fans notifications out to several observers in order.
type Observers []Observer

func (o Observers) AttackCommitted(s AttackSnapshot) {
	for _, ob := range o {
		ob.AttackCommitted(s)
	}
}

func (o Observers) AttackRejected(in Intent, r RejectReason) {
	for _, ob := range o {
		ob.AttackRejected(in, r)
	}
}

func (o Observers) BufferStored(in Intent) {
	for _, ob := range o {
		ob.BufferStored(in)
	}
}

func (o Observers) BufferReplayed(in Intent) {
	for _, ob := range o {
		ob.BufferReplayed(in)
	}
}

func (o Observers) BufferDropped(in Intent, r DropReason) {
	for _, ob := range o {
		ob.BufferDropped(in, r)
	}
}

func (o Observers) ComboReset(c ResetCause) {
	for _, ob := range o {
		ob.ComboReset(c)
	}
}

func (o Observers) BlockChanged(p BlockPhase) {
	for _, ob := range o {
		ob.BlockChanged(p)
	}
}
