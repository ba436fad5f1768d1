package combat

import "time"

// InputSampler turns press/hold/release edges of the attack button into
// exactly one intent per press cycle. Holding past the threshold fires a
// heavy as soon as a poll sees the crossing; releasing earlier fires a light.
type InputSampler struct {
	Threshold time.Duration

	held      bool
	fired     bool
	pressedAt time.Duration
}

func NewInputSampler(threshold time.Duration) *InputSampler {
	return &InputSampler{Threshold: threshold}
}

// Press starts a new cycle. A press while already held restarts it.
func (s *InputSampler) Press(now time.Duration) {
	s.held = true
	s.fired = false
	s.pressedAt = now
}

// Poll fires the heavy intent once the hold crosses the threshold.
func (s *InputSampler) Poll(now time.Duration) (Intent, bool) {
	if !s.held || s.fired {
		return Intent{}, false
	}
	if now-s.pressedAt >= s.Threshold {
		s.fired = true
		return HeavyIntent, true
	}
	return Intent{}, false
}

// Release ends the cycle. It fires a light unless the cycle already fired;
// a threshold crossed since the last poll still counts as heavy.
func (s *InputSampler) Release(now time.Duration) (Intent, bool) {
	if !s.held {
		return Intent{}, false
	}
	s.held = false
	if s.fired {
		return Intent{}, false
	}
	s.fired = true
	if now-s.pressedAt >= s.Threshold {
		return HeavyIntent, true
	}
	return LightIntent, true
}

// Cancel abandons the current cycle without firing anything.
func (s *InputSampler) Cancel() {
	s.held = false
	s.fired = true
}

func (s *InputSampler) Holding() bool {
	return s.held
}

// HeldFor is how long the current cycle has been held, zero when released.
func (s *InputSampler) HeldFor(now time.Duration) time.Duration {
	if !s.held {
		return 0
	}
	return now - s.pressedAt
}
