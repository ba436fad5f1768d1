package systems

import (
	"time"

	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/timing"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances game time by one tick and fires every timer that
// came due. Must run before any system that reads GameTime.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	now := clock.Clock.Advance(timing.TickDuration(cfg.C.TPS))
	clock.Scheduler.Advance(now)
}

// GameTicks is the number of ticks the clock has advanced.
func GameTicks(ecs *ecs.ECS) uint64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Clock.Ticks()
}

// GameTime is the current game time, or zero before the clock exists.
func GameTime(ecs *ecs.ECS) time.Duration {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Clock.Now()
}
