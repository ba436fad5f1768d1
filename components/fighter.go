package components

import (
	"github.com/automoto/doomerang-combo/combat"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	Combo  *combat.Controller
	Facing float64        // 1 = right, -1 = left
	Hitbox *donburi.Entry // Persistent attack collider, enabled by the controller
}

var Fighter = donburi.NewComponentType[FighterData]()
