package components

import (
	"github.com/automoto/doomerang-combo/timing"
	"github.com/yohamta/donburi"
)

type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// ClockData is the scene's game clock and the scheduler driven by it.
type ClockData struct {
	Clock     *timing.Clock
	Scheduler *timing.Scheduler
}

var Clock = donburi.NewComponentType[ClockData]()
