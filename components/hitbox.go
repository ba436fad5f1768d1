package components

import (
	"github.com/automoto/doomerang-combo/combat"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxData is a fighter's attack collider. It joins the resolv space only
// while enabled, so disabled hitboxes never show up in overlap checks.
type HitboxData struct {
	OwnerEntity *donburi.Entry          // The fighter that owns this hitbox
	HitEntities map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)
	Active      bool
	IsHeavy     bool
	Step        int

	LightW, LightH float64
	HeavyW, HeavyH float64

	object *resolv.Object
	space  *resolv.Space

	Enables int
}

func NewHitboxData(owner *donburi.Entry, obj *resolv.Object, space *resolv.Space) HitboxData {
	return HitboxData{
		OwnerEntity: owner,
		HitEntities: make(map[*donburi.Entry]bool),
		object:      obj,
		space:       space,
	}
}

func (h *HitboxData) Object() *resolv.Object {
	return h.object
}

func (h *HitboxData) Enable() {
	if h.Active {
		return
	}
	h.Active = true
	h.Enables++
	if h.space != nil && h.object != nil {
		h.space.Add(h.object)
	}
}

func (h *HitboxData) Disable() {
	if !h.Active {
		return
	}
	h.Active = false
	if h.space != nil && h.object != nil {
		h.space.Remove(h.object)
	}
}

func (h *HitboxData) ClearHitList() {
	for k := range h.HitEntities {
		delete(h.HitEntities, k)
	}
}

// Shape sizes the collider for the attack about to start.
func (h *HitboxData) Shape(s combat.AttackSnapshot) {
	h.IsHeavy = s.IsHeavy
	h.Step = s.Step
	if h.object == nil {
		return
	}
	if s.IsHeavy {
		h.object.W, h.object.H = h.HeavyW, h.HeavyH
	} else {
		h.object.W, h.object.H = h.LightW, h.LightH
	}
}

var Hitbox = donburi.NewComponentType[HitboxData]()
