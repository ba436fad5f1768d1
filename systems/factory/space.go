package factory

import (
	"github.com/automoto/doomerang-combo/archetypes"
	"github.com/automoto/doomerang-combo/components"
	"github.com/automoto/doomerang-combo/tags"
	"github.com/automoto/doomerang-combo/timing"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateClock adds the scene's game clock and scheduler singleton.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		Clock:     &timing.Clock{},
		Scheduler: timing.NewScheduler(),
	})
	return clock
}

func CreateFloor(ecs *ecs.ECS, space *resolv.Space, y, width, height float64) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)
	obj := resolv.NewObject(0, y, width, height, tags.ResolvSolid)
	obj.Data = floor
	components.Object.SetValue(floor, components.ObjectData{Object: obj})
	space.Add(obj)
	return floor
}
