package combat

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/timing"
)

const frame = 10 * time.Millisecond

type fakeResources struct {
	current int
	speed   float64
	drained []bool
}

func (f *fakeResources) Current() int           { return f.current }
func (f *fakeResources) SpeedModifier() float64 { return f.speed }
func (f *fakeResources) OnAttack(isHeavy bool) {
	f.drained = append(f.drained, isHeavy)
	if isHeavy {
		f.current -= 3
	} else {
		f.current -= 2
	}
}

type crossFade struct {
	state string
	blend time.Duration
	layer int
}

type fakeAnimator struct {
	fades  []crossFade
	floats map[string]float64
	bools  map[string]bool
	onFade func(state string)
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{floats: map[string]float64{}, bools: map[string]bool{}}
}

func (a *fakeAnimator) CrossFade(state string, blend time.Duration, layer int, _ float64) {
	a.fades = append(a.fades, crossFade{state: state, blend: blend, layer: layer})
	if a.onFade != nil {
		a.onFade(state)
	}
}
func (a *fakeAnimator) SetFloat(name string, v float64) { a.floats[name] = v }
func (a *fakeAnimator) SetBool(name string, v bool)     { a.bools[name] = v }

func (a *fakeAnimator) last() string {
	if len(a.fades) == 0 {
		return ""
	}
	return a.fades[len(a.fades)-1].state
}

type fakeHitbox struct {
	enabled  bool
	enables  int
	disables int
	clears   int
	shaped   []AttackSnapshot
}

func (h *fakeHitbox) Enable()                { h.enabled = true; h.enables++ }
func (h *fakeHitbox) Disable()               { h.enabled = false; h.disables++ }
func (h *fakeHitbox) ClearHitList()          { h.clears++ }
func (h *fakeHitbox) Shape(s AttackSnapshot) { h.shaped = append(h.shaped, s) }

type recorder struct {
	NopObserver
	committed []AttackSnapshot
	rejected  []RejectReason
	stored    int
	replayed  int
	dropped   []DropReason
	resets    []ResetCause
	phases    []BlockPhase
}

func (r *recorder) AttackCommitted(s AttackSnapshot)        { r.committed = append(r.committed, s) }
func (r *recorder) AttackRejected(_ Intent, x RejectReason) { r.rejected = append(r.rejected, x) }
func (r *recorder) BufferStored(Intent)                     { r.stored++ }
func (r *recorder) BufferReplayed(Intent)                   { r.replayed++ }
func (r *recorder) BufferDropped(_ Intent, x DropReason)    { r.dropped = append(r.dropped, x) }
func (r *recorder) ComboReset(c ResetCause)                 { r.resets = append(r.resets, c) }
func (r *recorder) BlockChanged(p BlockPhase)               { r.phases = append(r.phases, p) }

func (r *recorder) lastDrop() (DropReason, bool) {
	if len(r.dropped) == 0 {
		return 0, false
	}
	return r.dropped[len(r.dropped)-1], true
}

func testOptions() Options {
	return Options{
		Combo: config.ComboConfig{
			LightMax:          3,
			HeavyMax:          2,
			MixingEnabled:     true,
			LightCost:         2,
			HeavyCost:         3,
			AttackCooldown:    100 * time.Millisecond,
			InputWindowOpen:   200 * time.Millisecond,
			Recovery:          400 * time.Millisecond,
			ProcessingClear:   50 * time.Millisecond,
			ComboWindow:       time.Second,
			BufferTTL:         300 * time.Millisecond,
			EndCooldown:       500 * time.Millisecond,
			EndRetryDelay:     50 * time.Millisecond,
			HitboxTimeout:     300 * time.Millisecond,
			HitboxEventDriven: false,
		},
		Block: config.BlockConfig{
			Startup:  100 * time.Millisecond,
			Recovery: 200 * time.Millisecond,
		},
		Animation: config.AnimationConfig{
			LightStates:      []string{"Punch01", "Punch02", "Punch03"},
			HeavyStates:      []string{"Kick01", "Kick02"},
			BlendDuration:    80 * time.Millisecond,
			Layer:            0,
			AttackSpeedParam: "AttackSpeed",
			BlockingParam:    "Blocking",
		},
		HeavyHoldThreshold: 250 * time.Millisecond,
	}
}

// rig drives a controller frame by frame the way the ECS systems do:
// timers first, then the controller's tick.
type rig struct {
	t     *testing.T
	now   time.Duration
	sched *timing.Scheduler
	res   *fakeResources
	anim  *fakeAnimator
	hb    *fakeHitbox
	obs   *recorder
	logs  *bytes.Buffer
	c     *Controller
}

func newRig(t *testing.T, mutate func(*Options)) *rig {
	t.Helper()
	r := &rig{
		t:     t,
		sched: timing.NewScheduler(),
		res:   &fakeResources{current: 100, speed: 1},
		anim:  newFakeAnimator(),
		hb:    &fakeHitbox{},
		obs:   &recorder{},
		logs:  &bytes.Buffer{},
	}
	opts := testOptions()
	opts.Scheduler = r.sched
	opts.Resources = r.res
	opts.Animator = r.anim
	opts.Hitbox = r.hb
	opts.Observer = r.obs
	opts.Logger = log.New(r.logs, "", 0)
	if mutate != nil {
		mutate(&opts)
	}
	r.c = NewController(opts)
	return r
}

// advance runs whole frames until d has elapsed.
func (r *rig) advance(d time.Duration) {
	for end := r.now + d; r.now < end; {
		r.now += frame
		r.sched.Advance(r.now)
		r.c.Tick(r.now)
	}
}

func (r *rig) trigger(in Intent) Outcome {
	return r.c.Trigger(in, r.now)
}

func (r *rig) expectStep(step int, typ ComboType) {
	r.t.Helper()
	if got := r.c.Step(); got != step {
		r.t.Errorf("expected step %d, got %d", step, got)
	}
	if got := r.c.ComboType(); got != typ {
		r.t.Errorf("expected combo type %v, got %v", typ, got)
	}
}
