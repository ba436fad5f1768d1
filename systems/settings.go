package systems

import (
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, seeded from config.Debug.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowHUD,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		if components.Input.Get(entry).Action(cfg.ActionToggleDebug).JustPressed {
			settings.Debug = !settings.Debug
		}
	})
}
