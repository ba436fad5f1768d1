package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/doomerang-combo/combat"
	"github.com/automoto/doomerang-combo/components"
	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/metrics"
	"github.com/automoto/doomerang-combo/systems"
	"github.com/automoto/doomerang-combo/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TrainingScene is one fighter and a target dummy on a floor.
type TrainingScene struct {
	ecs      *ecs.ECS
	recorder *metrics.Recorder
	once     sync.Once
}

// NewTrainingScene creates the scene. recorder may be nil.
func NewTrainingScene(recorder *metrics.Recorder) *TrainingScene {
	return &TrainingScene{recorder: recorder}
}

func (ts *TrainingScene) Update() {
	ts.once.Do(ts.configure)
	start := time.Now()
	ts.ecs.Update()
	if ts.recorder != nil {
		ts.recorder.RecordTick(time.Since(start))
	}
}

func (ts *TrainingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TrainingScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock first: timers fire before anything reads game time.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateStamina)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateAnimators)
	ecs.AddSystem(systems.UpdateCombatHitboxes)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ts.ecs = ecs
	populate(ecs, ts.observer())
}

func (ts *TrainingScene) observer() combat.Observer {
	if ts.recorder == nil {
		return nil
	}
	return ts.recorder
}

// populate spawns the training bodies into an empty world.
func populate(ecs *ecs.ECS, observer combat.Observer) {
	cell := cfg.Arena.CellSize
	spaceEntry := factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cell, cell)
	space := components.Space.Get(spaceEntry)
	clock := components.Clock.Get(factory.CreateClock(ecs))

	factory.CreateFloor(ecs, space, cfg.Arena.FloorY, float64(cfg.C.Width), float64(cfg.C.Height)-cfg.Arena.FloorY)
	factory.CreateDummy(ecs, space, cfg.Arena.DummyX, cfg.Arena.DummyY)
	factory.CreateFighter(ecs, space, clock.Scheduler, cfg.Arena.FighterX, cfg.Arena.FighterY, observer)
}
