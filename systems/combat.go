package systems

import (
	"time"

	"github.com/automoto/doomerang-combo/combat"
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat feeds each fighter's input into its combo controller and
// ticks it. Timers have already fired for this tick in UpdateClock.
func UpdateCombat(ecs *ecs.ECS) {
	now := GameTime(ecs)
	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		input := components.Input.Get(entry)
		updateFighterCombat(fighter.Combo, input, now)
	})
}

func updateFighterCombat(ctrl *combat.Controller, input *components.InputData, now time.Duration) {
	attack := input.Action(cfg.ActionAttack)
	block := input.Action(cfg.ActionBlock)

	// Press first so a same-frame block chord can cancel the cycle.
	if attack.JustPressed {
		ctrl.PressAttack(now)
	}
	ctrl.UpdateBlock(block.Pressed, attack.Pressed, now)
	if attack.JustReleased {
		ctrl.ReleaseAttack(now)
	}

	if input.Action(cfg.ActionReset).JustPressed {
		ctrl.ForceReset()
	}
	if input.Action(cfg.ActionToggleMixing).JustPressed {
		ctrl.SetMixingEnabled(!ctrl.MixingEnabled())
		cfg.Combo.MixingEnabled = ctrl.MixingEnabled()
		SaveCurrentTuning()
	}

	ctrl.Tick(now)
}
