package systems

import (
	"strings"
	"testing"

	"github.com/automoto/doomerang-combo/combat"
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type arena struct {
	ecs     *ecs.ECS
	fighter *donburi.Entry
	dummy   *donburi.Entry
}

func newArena(t *testing.T) *arena {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16))
	clock := components.Clock.Get(factory.CreateClock(e))
	dummy := factory.CreateDummy(e, space, cfg.Arena.DummyX, cfg.Arena.DummyY)
	fighter := factory.CreateFighter(e, space, clock.Scheduler, cfg.Arena.FighterX, cfg.Arena.FighterY, nil)
	return &arena{ecs: e, fighter: fighter, dummy: dummy}
}

// frame runs one tick of the gameplay systems with the given buttons held.
func (a *arena) frame(held ...cfg.ActionID) {
	input := components.Input.Get(a.fighter)
	input.Swap()
	for _, id := range held {
		input.Current[id] = true
	}
	UpdateClock(a.ecs)
	UpdateSettings(a.ecs)
	UpdateStamina(a.ecs)
	UpdateCombat(a.ecs)
	UpdateAnimators(a.ecs)
	UpdateCombatHitboxes(a.ecs)
}

func (a *arena) idle(n int) {
	for i := 0; i < n; i++ {
		a.frame()
	}
}

func (a *arena) combo() *combat.Controller {
	return components.Fighter.Get(a.fighter).Combo
}

func TestTapLandsOneLightHitOnDummy(t *testing.T) {
	a := newArena(t)

	a.frame(cfg.ActionAttack)
	a.frame()
	if a.combo().Step() != 1 || a.combo().ComboType() != combat.ComboLight {
		t.Fatalf("expected light step 1 after tap, got %s step %d", a.combo().ComboType(), a.combo().Step())
	}

	a.idle(30)
	dummy := components.Dummy.Get(a.dummy)
	if dummy.LightHits != 1 || dummy.HeavyHits != 0 {
		t.Errorf("expected exactly one light hit, got light=%d heavy=%d", dummy.LightHits, dummy.HeavyHits)
	}
	if dummy.LastStep != 1 {
		t.Errorf("expected hit from step 1, got %d", dummy.LastStep)
	}

	hitbox := components.Hitbox.Get(components.Fighter.Get(a.fighter).Hitbox)
	if hitbox.Active {
		t.Error("expected hitbox disabled after its timeout")
	}
}

func TestSecondSwingHitsOnItsOwnHitFrame(t *testing.T) {
	a := newArena(t)
	dummy := components.Dummy.Get(a.dummy)

	a.frame(cfg.ActionAttack)
	a.frame()
	for i := 0; i < 40 && a.combo().InRecovery(); i++ {
		a.frame()
	}
	if dummy.LightHits != 1 || dummy.LastStep != 1 {
		t.Fatalf("expected the first swing to have landed, got hits=%d step=%d", dummy.LightHits, dummy.LastStep)
	}
	hitbox := components.Hitbox.Get(components.Fighter.Get(a.fighter).Hitbox)
	if !hitbox.Active {
		t.Fatal("expected the first swing's hitbox still open when the window opens")
	}

	a.frame(cfg.ActionAttack)
	a.frame()
	if a.combo().Step() != 2 {
		t.Fatalf("expected continuation to step 2, got %d", a.combo().Step())
	}
	if dummy.LastStep != 1 || dummy.LightHits != 1 {
		t.Fatalf("expected no step 2 hit at commit, got hits=%d step=%d", dummy.LightHits, dummy.LastStep)
	}

	anim := components.Animator.Get(a.fighter)
	hitFrame := cfg.CharacterAnimations["fighter"]["Punch02"].HitFrame
	for i := 0; i < 30 && dummy.LastStep != 2; i++ {
		a.frame()
	}
	if dummy.LastStep != 2 || dummy.LightHits != 2 {
		t.Fatalf("expected the second swing to land, got hits=%d step=%d", dummy.LightHits, dummy.LastStep)
	}
	clip, ok := anim.Clip(cfg.Animation.Layer)
	if !ok {
		t.Fatal("expected a clip playing on the attack layer")
	}
	if state := anim.Layers[cfg.Animation.Layer].State; state != "Punch02" || clip.Frame() < hitFrame {
		t.Errorf("expected the hit on Punch02 frame %d or later, got %q frame %d", hitFrame, state, clip.Frame())
	}
}

func TestHoldLandsHeavyHit(t *testing.T) {
	a := newArena(t)

	// Hold past the heavy threshold, then release.
	frames := int(cfg.Input.HeavyHoldThreshold.Seconds()*float64(cfg.C.TPS)) + 2
	for i := 0; i < frames; i++ {
		a.frame(cfg.ActionAttack)
	}
	a.frame()
	if a.combo().ComboType() != combat.ComboHeavy {
		t.Fatalf("expected heavy chain, got %s", a.combo().ComboType())
	}

	a.idle(40)
	if got := components.Dummy.Get(a.dummy).HeavyHits; got != 1 {
		t.Errorf("expected one heavy hit, got %d", got)
	}
}

func TestAttackDrainsStamina(t *testing.T) {
	a := newArena(t)
	before := components.Stamina.Get(a.fighter).Value

	a.frame(cfg.ActionAttack)
	a.frame()

	after := components.Stamina.Get(a.fighter).Value
	if before-after < float64(cfg.Combo.LightCost)-0.5 {
		t.Errorf("expected stamina drained by about %d, got %v -> %v", cfg.Combo.LightCost, before, after)
	}
}

func TestBlockChordPlaysGuard(t *testing.T) {
	a := newArena(t)

	for i := 0; i < 12; i++ {
		a.frame(cfg.ActionAttack, cfg.ActionBlock)
	}
	if !a.combo().IsActiveBlock() {
		t.Fatalf("expected active block, got %s", a.combo().BlockPhase())
	}
	if a.combo().Step() != 0 {
		t.Errorf("expected no attack from the chord, got step %d", a.combo().Step())
	}
	anim := components.Animator.Get(a.fighter)
	if anim.Layers[cfg.Animation.Layer].State != cfg.Animation.GuardState {
		t.Errorf("expected guard clip, got %q", anim.Layers[cfg.Animation.Layer].State)
	}

	a.frame()
	if !a.combo().IsBlockRecovering() {
		t.Errorf("expected block recovery on release, got %s", a.combo().BlockPhase())
	}
	a.frame()
	if got := anim.Layers[cfg.Animation.Layer].State; got != cfg.Animation.IdleState {
		t.Errorf("expected idle clip after release, got %q", got)
	}
}

func TestResetKeyClearsChainAfterRecovery(t *testing.T) {
	a := newArena(t)

	a.frame(cfg.ActionAttack)
	a.frame()
	a.frame(cfg.ActionReset)
	if !a.combo().ResetPending() {
		t.Fatal("expected reset to wait while the attack is in flight")
	}

	a.idle(40)
	if a.combo().Step() != 0 || a.combo().ResetPending() {
		t.Errorf("expected pending reset applied, got step %d pending %v", a.combo().Step(), a.combo().ResetPending())
	}
}

func TestMixingToggle(t *testing.T) {
	saved := cfg.Combo.MixingEnabled
	t.Cleanup(func() { cfg.Combo.MixingEnabled = saved })

	a := newArena(t)
	was := a.combo().MixingEnabled()
	a.frame(cfg.ActionToggleMixing)

	if a.combo().MixingEnabled() == was {
		t.Error("expected mixing toggled on the controller")
	}
	if cfg.Combo.MixingEnabled != a.combo().MixingEnabled() {
		t.Error("expected global tuning to follow the toggle")
	}
}

func TestDebugToggle(t *testing.T) {
	a := newArena(t)
	before := GetOrCreateSettings(a.ecs).Debug

	a.frame(cfg.ActionToggleDebug)
	a.frame(cfg.ActionToggleDebug)

	if GetOrCreateSettings(a.ecs).Debug == before {
		t.Error("expected debug flag toggled once for a held key")
	}
}

func TestFighterDebugLines(t *testing.T) {
	a := newArena(t)
	a.frame(cfg.ActionAttack)
	a.frame()

	lines := fighterDebugLines(a.fighter, GameTime(a.ecs))
	if len(lines) < 4 {
		t.Fatalf("expected at least 4 HUD lines, got %d", len(lines))
	}
	if lines[0] != "combo light step 1 mixing true" && lines[0] != "combo light step 1 mixing false" {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestDebugLinesShowChargeAndLiveHitbox(t *testing.T) {
	a := newArena(t)
	has := func(lines []string, prefix string) bool {
		for _, l := range lines {
			if strings.HasPrefix(l, prefix) {
				return true
			}
		}
		return false
	}

	for i := 0; i < 5; i++ {
		a.frame(cfg.ActionAttack)
	}
	lines := fighterDebugLines(a.fighter, GameTime(a.ecs))
	if !has(lines, "charging ") {
		t.Errorf("expected a charging line while attack is held, got %v", lines)
	}
	if !has(lines, "input keyboard") {
		t.Errorf("expected the input method line, got %v", lines)
	}

	a.frame()
	lines = fighterDebugLines(a.fighter, GameTime(a.ecs))
	if has(lines, "charging ") {
		t.Errorf("expected no charging line after release, got %v", lines)
	}
	if !has(lines, "hitbox live for attack 1") {
		t.Errorf("expected the live attack line, got %v", lines)
	}
	if GameTicks(a.ecs) != 6 {
		t.Errorf("expected 6 ticks, got %d", GameTicks(a.ecs))
	}
}

func TestGameTimeAdvancesPerTick(t *testing.T) {
	a := newArena(t)
	a.idle(cfg.C.TPS)
	got := GameTime(a.ecs)
	if got.Seconds() < 0.99 || got.Seconds() > 1.01 {
		t.Errorf("expected about one second of game time, got %v", got)
	}
}
