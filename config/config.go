package config

import (
	"errors"
	"fmt"
	"time"
)

// ComboConfig contains the combo chain rules and timing windows.
// Durations are game time; the attack-scaled ones are divided by the
// resource speed modifier when an attack commits.
type ComboConfig struct {
	// Chain lengths
	LightMax int
	HeavyMax int

	// Allow a heavy finisher on a light chain
	MixingEnabled bool

	// Resource cost per attack
	LightCost int
	HeavyCost int

	// Per-attack timing (scaled by attack speed)
	AttackCooldown  time.Duration // lockout between two committed attacks
	InputWindowOpen time.Duration // continuation allowed after this, before recovery ends
	Recovery        time.Duration // fresh attack blocked until this elapses

	// Fixed timing
	ProcessingClear time.Duration // reentrancy flag lifetime
	ComboWindow     time.Duration // idle time before a chain silently resets
	BufferTTL       time.Duration // buffered intent lifetime
	EndCooldown     time.Duration // lockout after a completed chain
	EndRetryDelay   time.Duration // End retry while an attack is still in flight
	HitboxTimeout   time.Duration // hitbox force-disable backstop

	// Hitbox enable waits for the animation's hit event when true
	HitboxEventDriven bool
}

// BlockConfig contains block timing values
type BlockConfig struct {
	Startup  time.Duration // delay from chord to active block
	Recovery time.Duration // attacks gated for this long after release
}

// AnimationConfig contains the animator values the combo drives
type AnimationConfig struct {
	// Ordered per-type state names, indexed by step-1
	LightStates []string
	HeavyStates []string
	// States played outside an attack
	IdleState  string
	GuardState string

	BlendDuration time.Duration
	Layer         int

	// Parameter names written on the animator
	AttackSpeedParam string
	BlockingParam    string
}

// HitboxConfig contains hitbox sizes per attack type
type HitboxConfig struct {
	LightWidth  float64
	LightHeight float64
	HeavyWidth  float64
	HeavyHeight float64
}

// StaminaConfig contains the default resource pool values
type StaminaConfig struct {
	Max            int
	RegenPerSecond float64
	// Attack speed at empty and full stamina
	MinSpeed float64
	MaxSpeed float64
}

// ArenaConfig places the training scene's bodies
type ArenaConfig struct {
	FighterX, FighterY float64
	FighterW, FighterH float64
	DummyX, DummyY     float64
	DummyW, DummyH     float64
	FloorY             float64
	CellSize           int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD     bool
	MetricsAddr string // empty disables the metrics server
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

var (
	ErrChainLength = errors.New("combo chain length must be at least 1")
	ErrTiming      = errors.New("combo timing out of range")
)

// Validate checks the invariants the combo controller relies on.
func (c ComboConfig) Validate() error {
	if c.LightMax < 1 || c.HeavyMax < 1 {
		return fmt.Errorf("light=%d heavy=%d: %w", c.LightMax, c.HeavyMax, ErrChainLength)
	}
	if c.EndRetryDelay <= 0 {
		return fmt.Errorf("end retry delay %v must be positive: %w", c.EndRetryDelay, ErrTiming)
	}
	if c.InputWindowOpen > c.Recovery {
		return fmt.Errorf("input window %v opens after recovery %v: %w", c.InputWindowOpen, c.Recovery, ErrTiming)
	}
	// The idle timeout must not fire while a deferred End is still retrying.
	if c.ComboWindow <= c.Recovery+c.EndRetryDelay {
		return fmt.Errorf("combo window %v must exceed recovery %v plus end retry %v: %w",
			c.ComboWindow, c.Recovery, c.EndRetryDelay, ErrTiming)
	}
	if c.LightCost < 0 || c.HeavyCost < 0 {
		return fmt.Errorf("negative attack cost: %w", ErrTiming)
	}
	return nil
}

// Global configuration instances
var C *Config
var Combo ComboConfig
var Block BlockConfig
var Animation AnimationConfig
var Hitbox HitboxConfig
var Stamina StaminaConfig
var Debug DebugConfig
var Arena ArenaConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Combo = ComboConfig{
		LightMax:      3,
		HeavyMax:      2,
		MixingEnabled: true,

		LightCost: 2,
		HeavyCost: 3,

		AttackCooldown:  150 * time.Millisecond,
		InputWindowOpen: 250 * time.Millisecond,
		Recovery:        450 * time.Millisecond,

		ProcessingClear: 100 * time.Millisecond,
		ComboWindow:     time.Second,
		BufferTTL:       400 * time.Millisecond,
		EndCooldown:     600 * time.Millisecond,
		EndRetryDelay:   100 * time.Millisecond,
		HitboxTimeout:   350 * time.Millisecond,

		HitboxEventDriven: true,
	}

	Block = BlockConfig{
		Startup:  100 * time.Millisecond,
		Recovery: 300 * time.Millisecond,
	}

	Animation = AnimationConfig{
		LightStates:      []string{"Punch01", "Punch02", "Punch03"},
		HeavyStates:      []string{"Kick01", "Kick02", "Kick03"},
		IdleState:        "Idle",
		GuardState:       "Guard",
		BlendDuration:    80 * time.Millisecond,
		Layer:            0,
		AttackSpeedParam: "AttackSpeed",
		BlockingParam:    "Blocking",
	}

	Hitbox = HitboxConfig{
		LightWidth:  20,
		LightHeight: 16,
		HeavyWidth:  28,
		HeavyHeight: 20,
	}

	Stamina = StaminaConfig{
		Max:            12,
		RegenPerSecond: 3,
		MinSpeed:       0.8,
		MaxSpeed:       1.0,
	}

	Arena = ArenaConfig{
		FighterX: 240,
		FighterY: 256,
		FighterW: 16,
		FighterH: 40,
		DummyX:   266,
		DummyY:   256,
		DummyW:   16,
		DummyH:   40,
		FloorY:   296,
		CellSize: 16,
	}
}
