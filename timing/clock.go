package timing

import "time"

// Clock is the game-time source. It only moves when the game loop ticks,
// so every timestamp the combat code sees is deterministic.
type Clock struct {
	now   time.Duration
	ticks uint64
}

// TickDuration converts a ticks-per-second rate into the duration of one tick.
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// Advance moves the clock forward by dt and returns the new time.
func (c *Clock) Advance(dt time.Duration) time.Duration {
	if dt > 0 {
		c.now += dt
	}
	c.ticks++
	return c.now
}

func (c *Clock) Now() time.Duration {
	return c.now
}

// Ticks is the number of Advance calls so far.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}
