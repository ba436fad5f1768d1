package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Dummy   = donburi.NewTag().SetName("Dummy")
	Hitbox  = donburi.NewTag().SetName("Hitbox")
	Floor   = donburi.NewTag().SetName("Floor")
)

// Resolv tags for collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "Fighter"
	ResolvDummy   = "Dummy"
	ResolvHitbox  = "Hitbox"
)
