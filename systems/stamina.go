package systems

import (
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateStamina(ecs *ecs.ECS) {
	dt := timing.TickDuration(cfg.C.TPS)
	components.Stamina.Each(ecs.World, func(entry *donburi.Entry) {
		components.Stamina.Get(entry).Regen(dt)
	})
}
