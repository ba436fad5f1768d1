package combat

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/timing"
)

type timerPurpose int

const (
	timerWindowOpen timerPurpose = iota
	timerRecoveryEnd
	timerProcessingClear
	timerHitboxOff
	timerEndRetry
	timerBlockStartup
	timerBlockRecovery
	timerCount
)

// comboTimers are the ones a combo reset owns. Block timers survive it.
var comboTimers = [...]timerPurpose{
	timerWindowOpen,
	timerRecoveryEnd,
	timerProcessingClear,
	timerHitboxOff,
	timerEndRetry,
}

// Options wires a Controller to its tuning and collaborators.
// Scheduler is required; the rest may be nil.
type Options struct {
	Combo              config.ComboConfig
	Block              config.BlockConfig
	Animation          config.AnimationConfig
	HeavyHoldThreshold time.Duration

	Scheduler Scheduler
	Resources Resources
	Animator  Animator
	Hitbox    Hitbox
	Observer  Observer
	Logger    *log.Logger
}

// DefaultOptions returns Options filled from the global config.
func DefaultOptions(s Scheduler) Options {
	return Options{
		Combo:              config.Combo,
		Block:              config.Block,
		Animation:          config.Animation,
		HeavyHoldThreshold: config.Input.HeavyHoldThreshold,
		Scheduler:          s,
	}
}

// Controller is one character's combo state machine. It owns the combo
// state, the input buffer, the sampler and the block machine; nothing else
// mutates them. All methods must be called from the tick goroutine.
type Controller struct {
	combo     config.ComboConfig
	blockCfg  config.BlockConfig
	animation config.AnimationConfig

	state    ComboState
	buffer   BufferedInput
	snapshot AttackSnapshot
	sampler  *InputSampler
	block    BlockPhase

	sched     Scheduler
	resources Resources
	animator  Animator
	hitbox    Hitbox
	observer  Observer
	logger    *log.Logger

	timers       [timerCount]timing.Handle
	resetPending bool
	attackSeq    uint64
	reported     map[string]bool
}

func NewController(opts Options) *Controller {
	if opts.Scheduler == nil {
		panic("combat: controller needs a scheduler")
	}
	c := &Controller{
		combo:     opts.Combo,
		blockCfg:  opts.Block,
		animation: opts.Animation,
		state:     freshState(),
		sampler:   NewInputSampler(opts.HeavyHoldThreshold),
		sched:     opts.Scheduler,
		resources: opts.Resources,
		animator:  opts.Animator,
		hitbox:    opts.Hitbox,
		observer:  opts.Observer,
		logger:    opts.Logger,
		reported:  make(map[string]bool),
	}
	if c.observer == nil {
		c.observer = NopObserver{}
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// Read-only accessors for HUDs and tests.

func (c *Controller) State() ComboState        { return c.state }
func (c *Controller) Step() int                { return c.state.Step }
func (c *Controller) ComboType() ComboType     { return c.state.Type }
func (c *Controller) IsAttacking() bool        { return c.state.Attacking }
func (c *Controller) InRecovery() bool         { return c.state.InRecovery }
func (c *Controller) IsProcessing() bool       { return c.state.Processing }
func (c *Controller) Buffered() BufferedInput  { return c.buffer }
func (c *Controller) Snapshot() AttackSnapshot { return c.snapshot }
func (c *Controller) BlockPhase() BlockPhase   { return c.block }
func (c *Controller) ResetPending() bool       { return c.resetPending }
func (c *Controller) MixingEnabled() bool      { return c.combo.MixingEnabled }

func (c *Controller) IsBlocking() bool {
	return c.block == BlockStarting || c.block == BlockActive
}

func (c *Controller) IsActiveBlock() bool {
	return c.block == BlockActive
}

func (c *Controller) IsBlockRecovering() bool {
	return c.block == BlockRecovery
}

// SetMixingEnabled toggles heavy finishers for subsequent attacks.
// Charge reports how long the attack button has been held this cycle and
// whether it is still down.
func (c *Controller) Charge(now time.Duration) (time.Duration, bool) {
	return c.sampler.HeldFor(now), c.sampler.Holding()
}

func (c *Controller) SetMixingEnabled(on bool) {
	c.combo.MixingEnabled = on
}

// SetHeavyHoldThreshold changes the hold time that classifies a heavy.
func (c *Controller) SetHeavyHoldThreshold(d time.Duration) {
	c.sampler.Threshold = d
}

func (c *Controller) schedule(p timerPurpose, delay time.Duration, fn timing.Callback) {
	c.cancelTimer(p)
	c.timers[p] = c.sched.After(delay, func(now time.Duration) {
		c.timers[p] = 0
		fn(now)
	})
}

func (c *Controller) cancelTimer(p timerPurpose) {
	if c.timers[p] != 0 {
		c.sched.Cancel(c.timers[p])
		c.timers[p] = 0
	}
}

// pendingTimers counts outstanding handles owned by the controller.
func (c *Controller) pendingTimers() int {
	n := 0
	for _, h := range c.timers {
		if h != 0 {
			n++
		}
	}
	return n
}

// reportOnce logs a configuration fault the first time key is seen.
func (c *Controller) reportOnce(key, format string, args ...any) {
	if c.reported[key] {
		return
	}
	c.reported[key] = true
	c.logger.Printf("Warning: combo: %s", fmt.Sprintf(format, args...))
}
