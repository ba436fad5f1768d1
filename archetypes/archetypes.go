package archetypes

import (
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Stamina,
		components.Animator,
		components.Input,
	)
	Dummy = newArchetype(
		tags.Dummy,
		components.Dummy,
		components.Object,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
