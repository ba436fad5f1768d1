package systems

import (
	"fmt"
	"time"

	"github.com/automoto/doomerang-combo/components"
	"github.com/automoto/doomerang-combo/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 14

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	y := 4
	printLine := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, 4, y)
		y += hudLineHeight
	}

	now := GameTime(ecs)
	printLine(fmt.Sprintf("t=%v tick %d TPS %.0f", now, GameTicks(ecs), ebiten.ActualTPS()))
	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		for _, line := range fighterDebugLines(entry, now) {
			printLine(line)
		}
	})
	components.Dummy.Each(ecs.World, func(entry *donburi.Entry) {
		d := components.Dummy.Get(entry)
		printLine(fmt.Sprintf("dummy light=%d heavy=%d last step=%d", d.LightHits, d.HeavyHits, d.LastStep))
	})
}

func fighterDebugLines(entry *donburi.Entry, now time.Duration) []string {
	ctrl := components.Fighter.Get(entry).Combo
	s := ctrl.State()
	lines := []string{
		fmt.Sprintf("combo %s step %d mixing %v", s.Type, s.Step, ctrl.MixingEnabled()),
		fmt.Sprintf("attacking %v recovery %v processing %v can %v", s.Attacking, s.InRecovery, s.Processing, s.CanAttack),
		fmt.Sprintf("locked until %v", s.NextAllowedTime),
		fmt.Sprintf("block %s", ctrl.BlockPhase()),
	}
	if held, holding := ctrl.Charge(now); holding {
		lines = append(lines, fmt.Sprintf("charging %v", held))
	}
	if snap := ctrl.Snapshot(); snap.Live() {
		lines = append(lines, fmt.Sprintf("hitbox live for attack %d (%s)", snap.ID, snap.State))
	}
	if b := ctrl.Buffered(); b.Present {
		lines = append(lines, fmt.Sprintf("buffered %s for step %d", b.Intent(), b.ExpectedStep))
	}
	if ctrl.ResetPending() {
		lines = append(lines, "reset pending")
	}
	if entry.HasComponent(components.Input) {
		lines = append(lines, "input "+inputMethodName(components.Input.Get(entry).LastInputMethod))
	}
	if entry.HasComponent(components.Stamina) {
		st := components.Stamina.Get(entry)
		lines = append(lines, fmt.Sprintf("stamina %.1f/%.0f speed %.2f", st.Value, st.Max, st.SpeedModifier()))
	}
	if entry.HasComponent(components.Animator) {
		anim := components.Animator.Get(entry)
		for i, l := range anim.Layers {
			lines = append(lines, fmt.Sprintf("layer %d %s w=%.2f", i, l.State, l.Weight))
		}
	}
	return lines
}

func inputMethodName(m components.InputMethod) string {
	if m == components.InputGamepad {
		return "gamepad"
	}
	return "keyboard"
}
