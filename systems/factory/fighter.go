package factory

import (
	"github.com/automoto/doomerang-combo/archetypes"
	"github.com/automoto/doomerang-combo/combat"
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/tags"
	"github.com/automoto/doomerang-combo/timing"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter with its stamina, animator and hitbox wired
// into a combo controller driven by sched.
func CreateFighter(ecs *ecs.ECS, space *resolv.Space, sched *timing.Scheduler, x, y float64, observer combat.Observer) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Arena.FighterW, cfg.Arena.FighterH)
	obj.AddTags(tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Stamina.SetValue(fighter, components.StaminaData{
		Value:          float64(cfg.Stamina.Max),
		Max:            float64(cfg.Stamina.Max),
		RegenPerSecond: cfg.Stamina.RegenPerSecond,
		LightCost:      float64(cfg.Combo.LightCost),
		HeavyCost:      float64(cfg.Combo.HeavyCost),
		MinSpeed:       cfg.Stamina.MinSpeed,
		MaxSpeed:       cfg.Stamina.MaxSpeed,
	})

	animData := components.NewAnimatorData("fighter")
	animData.SpeedParam = cfg.Animation.AttackSpeedParam
	components.Animator.SetValue(fighter, animData)
	anim := components.Animator.Get(fighter)
	anim.CrossFade("Idle", 0, cfg.Animation.Layer, 0)

	hitbox := createHitbox(ecs, space, fighter)

	opts := combat.DefaultOptions(sched)
	opts.Resources = components.Stamina.Get(fighter)
	opts.Animator = anim
	opts.Hitbox = components.Hitbox.Get(hitbox)
	opts.Observer = observer
	ctrl := combat.NewController(opts)
	anim.OnHitFrame = ctrl.HitEvent

	components.Fighter.SetValue(fighter, components.FighterData{
		Combo:  ctrl,
		Facing: 1,
		Hitbox: hitbox,
	})

	return fighter
}

func createHitbox(ecs *ecs.ECS, space *resolv.Space, owner *donburi.Entry) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.Hitbox.LightWidth, cfg.Hitbox.LightHeight)
	obj.AddTags(tags.ResolvHitbox)
	obj.Data = hitbox

	data := components.NewHitboxData(owner, obj, space)
	data.LightW, data.LightH = cfg.Hitbox.LightWidth, cfg.Hitbox.LightHeight
	data.HeavyW, data.HeavyH = cfg.Hitbox.HeavyWidth, cfg.Hitbox.HeavyHeight
	components.Hitbox.SetValue(hitbox, data)

	return hitbox
}
