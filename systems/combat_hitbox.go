package systems

import (
	"image/color"

	"github.com/automoto/doomerang-combo/components"
	"github.com/automoto/doomerang-combo/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Frames a dummy flashes after taking a hit
const dummyFlashFrames = 8

func UpdateCombatHitboxes(ecs *ecs.ECS) {
	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		owner := hitbox.OwnerEntity
		if owner == nil || !owner.Valid() {
			return
		}
		positionHitbox(hitbox, owner)
		if hitbox.Active {
			checkHitboxCollisions(hitbox)
		}
	})

	components.Dummy.Each(ecs.World, func(entry *donburi.Entry) {
		dummy := components.Dummy.Get(entry)
		if dummy.Flash > 0 {
			dummy.Flash--
		}
	})
}

// positionHitbox places the hitbox in front of its owner based on facing direction.
func positionHitbox(hitbox *components.HitboxData, owner *donburi.Entry) {
	obj := hitbox.Object()
	if obj == nil {
		return
	}
	ownerObject := components.Object.Get(owner).Object
	facing := 1.0
	if owner.HasComponent(components.Fighter) {
		facing = components.Fighter.Get(owner).Facing
	}

	if facing >= 0 {
		obj.X = ownerObject.X + ownerObject.W
	} else {
		obj.X = ownerObject.X - obj.W
	}
	obj.Y = ownerObject.Y + (ownerObject.H-obj.H)/2
	if hitbox.Active {
		obj.Update()
	}
}

func checkHitboxCollisions(hitbox *components.HitboxData) {
	check := hitbox.Object().Check(0, 0, tags.ResolvDummy)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !shouldHitTarget(hitbox, target, hitbox.Object(), obj) {
			continue
		}
		hitbox.HitEntities[target] = true
		if target.HasComponent(components.Dummy) {
			applyHitToDummy(components.Dummy.Get(target), hitbox)
		}
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry, hitboxObject, targetObject *resolv.Object) bool {
	// Don't hit the owner of the hitbox
	if hitbox.OwnerEntity == target {
		return false
	}

	// Don't hit if already hit this target
	if hitbox.HitEntities[target] {
		return false
	}

	// Check only narrows to shared cells
	return hitboxObject.X < targetObject.X+targetObject.W &&
		targetObject.X < hitboxObject.X+hitboxObject.W &&
		hitboxObject.Y < targetObject.Y+targetObject.H &&
		targetObject.Y < hitboxObject.Y+hitboxObject.H
}

func applyHitToDummy(dummy *components.DummyData, hitbox *components.HitboxData) {
	if hitbox.IsHeavy {
		dummy.HeavyHits++
	} else {
		dummy.LightHits++
	}
	dummy.LastStep = hitbox.Step
	dummy.Flash = dummyFlashFrames
}

func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	c := color.RGBA{255, 255, 0, 255}
	tags.Hitbox.Each(ecs.World, func(entry *donburi.Entry) {
		hitbox := components.Hitbox.Get(entry)
		obj := hitbox.Object()
		if !hitbox.Active || obj == nil {
			return
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	})
}
