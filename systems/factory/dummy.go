package factory

import (
	"github.com/automoto/doomerang-combo/archetypes"
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateDummy(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	dummy := archetypes.Dummy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Arena.DummyW, cfg.Arena.DummyH)
	obj.AddTags(tags.ResolvDummy)
	obj.Data = dummy
	components.Object.SetValue(dummy, components.ObjectData{Object: obj})
	components.Dummy.SetValue(dummy, components.DummyData{})
	space.Add(obj)

	return dummy
}
