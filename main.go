package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-combo/config"
	"github.com/automoto/doomerang-combo/metrics"
	"github.com/automoto/doomerang-combo/scenes"
	"github.com/automoto/doomerang-combo/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(recorder *metrics.Recorder) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewTrainingScene(recorder),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.ShowHUD, "debug", config.Debug.ShowHUD, "show the combo debug HUD")
	flag.StringVar(&config.Debug.MetricsAddr, "metrics", config.Debug.MetricsAddr, "serve Prometheus metrics on this localhost address (e.g. 127.0.0.1:6060)")
	flag.Parse()

	// Initialize persistence and load saved tuning
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadTuning(); err != nil {
		log.Printf("Warning: %v", err)
	} else {
		systems.ApplySavedTuning(saved)
	}

	if err := config.Combo.Validate(); err != nil {
		log.Fatalf("Invalid combo config: %v", err)
	}

	var recorder *metrics.Recorder
	if config.Debug.MetricsAddr != "" {
		recorder = metrics.NewRecorder()
		if _, err := metrics.StartDebugServer(config.Debug.MetricsAddr, recorder); err != nil {
			log.Printf("Warning: Could not start metrics server: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("doomerang combo trainer")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(recorder)); err != nil {
		log.Fatal(err)
	}
}
