package systems

import (
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimators picks the idle or guard clip when nothing else is playing
// and advances every animator. Hit events raised here reach the controller
// in the same tick.
func UpdateAnimators(ecs *ecs.ECS) {
	dt := timing.TickDuration(cfg.C.TPS)
	components.Animator.Each(ecs.World, func(entry *donburi.Entry) {
		anim := components.Animator.Get(entry)
		selectBaseState(anim)
		anim.Update(dt)
	})
}

func selectBaseState(anim *components.AnimatorData) {
	layer := cfg.Animation.Layer
	if layer < 0 || layer >= len(anim.Layers) {
		return
	}
	state := anim.Layers[layer].State
	blocking := anim.Bools[cfg.Animation.BlockingParam]
	blend := cfg.Animation.BlendDuration

	switch {
	case blocking && state != cfg.Animation.GuardState:
		anim.CrossFade(cfg.Animation.GuardState, blend, layer, 0)
	case !blocking && state == cfg.Animation.GuardState:
		anim.CrossFade(cfg.Animation.IdleState, blend, layer, 0)
	case anim.Finished(layer):
		anim.SetFloat(cfg.Animation.AttackSpeedParam, 1)
		anim.CrossFade(cfg.Animation.IdleState, blend, layer, 0)
	}
}
