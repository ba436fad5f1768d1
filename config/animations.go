package config

// AnimationDef describes a frame clip. HitFrame is the frame on which the
// clip raises its hit event; -1 means the clip never raises one.
type AnimationDef struct {
	First    int
	Last     int
	Step     int
	Speed    float32 // ticks per frame
	HitFrame int
}

// CharacterAnimations maps a character key (e.g., "fighter")
// to its clips keyed by animator state name.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"fighter": {
		"Idle":    {First: 0, Last: 6, Step: 1, Speed: 5, HitFrame: -1},
		"Guard":   {First: 0, Last: 0, Step: 1, Speed: 10, HitFrame: -1},
		"Punch01": {First: 0, Last: 5, Step: 1, Speed: 4, HitFrame: 2},
		"Punch02": {First: 0, Last: 3, Step: 1, Speed: 5, HitFrame: 1},
		"Punch03": {First: 0, Last: 6, Step: 1, Speed: 5, HitFrame: 3},
		"Kick01":  {First: 0, Last: 8, Step: 1, Speed: 4, HitFrame: 4},
		"Kick02":  {First: 0, Last: 7, Step: 1, Speed: 3, HitFrame: 3},
		"Kick03":  {First: 0, Last: 8, Step: 1, Speed: 5, HitFrame: 5},
	},
}
