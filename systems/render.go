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

var (
	floorColor   = color.RGBA{90, 90, 90, 255}
	fighterColor = color.RGBA{60, 110, 230, 255}
	guardColor   = color.RGBA{60, 200, 220, 255}
	attackColor  = color.RGBA{240, 140, 40, 255}
	dummyColor   = color.RGBA{200, 50, 50, 255}
	flashColor   = color.RGBA{255, 255, 255, 255}
)

// DrawArena draws every body as a flat rectangle.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Floor.Each(ecs.World, func(entry *donburi.Entry) {
		fillObject(screen, components.Object.Get(entry).Object, floorColor)
	})

	tags.Dummy.Each(ecs.World, func(entry *donburi.Entry) {
		c := dummyColor
		if components.Dummy.Get(entry).Flash > 0 {
			c = flashColor
		}
		fillObject(screen, components.Object.Get(entry).Object, c)
	})

	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		ctrl := components.Fighter.Get(entry).Combo
		c := fighterColor
		switch {
		case ctrl.IsBlocking():
			c = guardColor
		case ctrl.IsAttacking():
			c = attackColor
		}
		fillObject(screen, components.Object.Get(entry).Object, c)
	})
}

func fillObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	if obj == nil {
		return
	}
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}
