package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// StaminaData is the resource pool attacks are paid from. It regenerates
// over game time and slows attacks down as it runs out.
type StaminaData struct {
	Value          float64
	Max            float64
	RegenPerSecond float64
	LightCost      float64
	HeavyCost      float64
	MinSpeed       float64 // speed modifier at empty stamina
	MaxSpeed       float64 // speed modifier at full stamina
}

func (s *StaminaData) Current() int {
	return int(s.Value)
}

// SpeedModifier scales linearly from MinSpeed at empty to MaxSpeed at full.
func (s *StaminaData) SpeedModifier() float64 {
	if s.Max <= 0 {
		return s.MaxSpeed
	}
	ratio := s.Value / s.Max
	return s.MinSpeed + (s.MaxSpeed-s.MinSpeed)*ratio
}

func (s *StaminaData) OnAttack(isHeavy bool) {
	cost := s.LightCost
	if isHeavy {
		cost = s.HeavyCost
	}
	s.Value -= cost
	if s.Value < 0 {
		s.Value = 0
	}
}

func (s *StaminaData) Regen(dt time.Duration) {
	s.Value += s.RegenPerSecond * dt.Seconds()
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

var Stamina = donburi.NewComponentType[StaminaData]()
