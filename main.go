package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/summit/assets"
	"github.com/automoto/summit/config"
	"github.com/automoto/summit/fonts"
	"github.com/automoto/summit/scenes"
	"github.com/automoto/summit/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(level *assets.Level) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewClimbScene(level),
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
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "show collision boxes and controller state (F1 toggles)")
	flag.StringVar(&config.Debug.Tuning, "tuning", "", "YAML file with movement overrides, reloaded on change")
	flag.StringVar(&config.C.Level, "level", "", "level name without .tmx (default: first level)")
	listLevels := flag.Bool("levels", false, "print the embedded level names and exit")
	flag.Parse()

	if *listLevels {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	level, err := assets.LoadLevel(config.C.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	// Initialize persistence for run statistics
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(&level)
	err = ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}
