package components

import "github.com/yohamta/donburi"

// DummyData is a training target that counts the hits it takes.
type DummyData struct {
	LightHits int
	HeavyHits int
	LastStep  int
	Flash     int // frames of hit flash remaining
}

var Dummy = donburi.NewComponentType[DummyData]()
