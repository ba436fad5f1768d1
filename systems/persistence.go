package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	cfg "github.com/automoto/doomerang-combo/config"
	"github.com/quasilyte/gdata"
)

const tuningKey = "tuning"

// SavedTuning is the player-adjustable combo tuning stored on disk
type SavedTuning struct {
	MixingEnabled   bool `json:"mixingEnabled"`
	HeavyHoldMillis int  `json:"heavyHoldMillis"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-combo",
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads tuning from disk. It returns nil when nothing is saved.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeTuning(data)
}

func decodeTuning(data []byte) (*SavedTuning, error) {
	var t SavedTuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse saved tuning: %w", err)
	}
	return &t, nil
}

// SaveTuning saves tuning to disk
func SaveTuning(t *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := gdataManager.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

// CurrentTuning captures the tunable values from the global config.
func CurrentTuning() *SavedTuning {
	return &SavedTuning{
		MixingEnabled:   cfg.Combo.MixingEnabled,
		HeavyHoldMillis: int(cfg.Input.HeavyHoldThreshold / time.Millisecond),
	}
}

// SaveCurrentTuning saves the global config's tunable values.
func SaveCurrentTuning() {
	if err := SaveTuning(CurrentTuning()); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
	}
}

// ApplySavedTuning copies loaded tuning into the global config. Call it
// before any controller is built.
func ApplySavedTuning(t *SavedTuning) {
	if t == nil {
		return
	}
	cfg.Combo.MixingEnabled = t.MixingEnabled
	if t.HeavyHoldMillis > 0 {
		cfg.Input.HeavyHoldThreshold = time.Duration(t.HeavyHoldMillis) * time.Millisecond
	}
}
