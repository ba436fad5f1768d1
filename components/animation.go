package components

import (
	"time"

	"github.com/automoto/doomerang-combo/assets/animations"
	"github.com/automoto/doomerang-combo/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// AnimatorLayer plays one clip at a time and cross-fades from the previous one.
type AnimatorLayer struct {
	State    string
	Previous string
	Weight   float32 // blend weight of State against Previous
	blend    *gween.Tween
	hitFired bool
}

// AnimatorData is a small parameterised animator: named clips on layers,
// float and bool parameters, and a hit event raised once per clip.
type AnimatorData struct {
	Clips     map[string]*animations.Animation
	HitFrames map[string]int
	Layers    []AnimatorLayer
	Floats    map[string]float64
	Bools     map[string]bool

	// SpeedParam names the float parameter that scales playback rate.
	SpeedParam string
	// OnHitFrame is called when a clip reaches its hit frame.
	OnHitFrame func(state string)
}

// NewAnimatorData builds the clips for a character from config.CharacterAnimations.
func NewAnimatorData(character string) AnimatorData {
	a := AnimatorData{
		Clips:     make(map[string]*animations.Animation),
		HitFrames: make(map[string]int),
		Floats:    make(map[string]float64),
		Bools:     make(map[string]bool),
	}
	for name, def := range config.CharacterAnimations[character] {
		a.Clips[name] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		a.HitFrames[name] = def.HitFrame
	}
	return a
}

func (a *AnimatorData) layer(i int) *AnimatorLayer {
	for len(a.Layers) <= i {
		a.Layers = append(a.Layers, AnimatorLayer{Weight: 1})
	}
	return &a.Layers[i]
}

func (a *AnimatorData) CrossFade(state string, blend time.Duration, layer int, normalizedStart float64) {
	if layer < 0 {
		return
	}
	l := a.layer(layer)
	l.Previous = l.State
	l.State = state
	l.hitFired = false
	if clip, ok := a.Clips[state]; ok {
		if normalizedStart <= 0 {
			clip.Restart()
		} else {
			clip.Seek(normalizedStart)
		}
		clip.FreezeOnComplete = a.HitFrames[state] >= 0
	}
	if blend <= 0 || l.Previous == "" {
		l.blend = nil
		l.Weight = 1
		return
	}
	l.blend = gween.New(0, 1, float32(blend.Seconds()), ease.Linear)
	l.Weight = 0
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	a.Floats[name] = v
}

func (a *AnimatorData) SetBool(name string, v bool) {
	a.Bools[name] = v
}

// Clip returns the clip currently playing on a layer.
func (a *AnimatorData) Clip(layer int) (*animations.Animation, bool) {
	if layer < 0 || layer >= len(a.Layers) {
		return nil, false
	}
	clip, ok := a.Clips[a.Layers[layer].State]
	return clip, ok
}

// Update advances blends and clips by one tick of dt.
func (a *AnimatorData) Update(dt time.Duration) {
	rate := float32(1)
	if v, ok := a.Floats[a.SpeedParam]; ok && v > 0 {
		rate = float32(v)
	}
	for i := range a.Layers {
		l := &a.Layers[i]
		if l.blend != nil {
			w, done := l.blend.Update(float32(dt.Seconds()))
			l.Weight = w
			if done {
				l.blend = nil
				l.Weight = 1
				l.Previous = ""
			}
		}

		clip, ok := a.Clips[l.State]
		if !ok {
			continue
		}
		before := clip.Frame()
		if !clip.Update(rate) || l.hitFired {
			continue
		}
		if hf := a.HitFrames[l.State]; hf >= 0 && crossed(before, clip.Frame(), hf) {
			l.hitFired = true
			if a.OnHitFrame != nil {
				a.OnHitFrame(l.State)
			}
		}
	}
}

// crossed reports whether a clip moving from frame before to after passed
// through frame f. A fast rate or a Step above 1 can jump over f.
func crossed(before, after, f int) bool {
	if after >= before {
		return before < f && f <= after
	}
	// wrapped around a loop
	return f > before || f <= after
}

// Finished reports whether a non-looping clip on the layer has played out.
func (a *AnimatorData) Finished(layer int) bool {
	clip, ok := a.Clip(layer)
	return ok && clip.FreezeOnComplete && clip.Looped
}

var Animator = donburi.NewComponentType[AnimatorData]()
