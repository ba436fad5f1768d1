package animations

// Animation is a frame clip advanced once per tick.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the clip by one tick scaled by rate (1 = authored speed).
// It reports whether the displayed frame changed.
func (a *Animation) Update(rate float32) bool {
	if rate <= 0 {
		rate = 1
	}
	before := a.frame
	a.frameCounter -= rate
	for a.frameCounter < 0.0 {
		a.frameCounter += a.SpeedInTps
		if a.SpeedInTps <= 0 {
			a.frameCounter = 0
		}
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
				break
			}
			// loop back to the beginning
			a.frame = a.First
		}
		if a.SpeedInTps <= 0 {
			break
		}
	}
	return a.frame != before
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// Seek jumps to a normalized position in [0,1] of the clip.
func (a *Animation) Seek(normalized float64) {
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	span := a.Last - a.First
	a.frame = a.First + int(normalized*float64(span))
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}
