package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/summit/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Level is the gameplay data of a map plus its pre-rendered tile layers.
type Level struct {
	*leveldata.Level
	Background *ebiten.Image
}

// FS exposes the embedded level files.
func FS() fs.FS {
	return assetFS
}

// LevelNames lists the embedded levels, sorted.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, levelsDir)
	return names, err
}

// LoadLevel loads a level by name. An empty name loads the first level.
func LoadLevel(name string) (Level, error) {
	levels, names, err := leveldata.LoadAll(assetFS, levelsDir)
	if err != nil {
		return Level{}, err
	}
	if name == "" {
		name = names[0]
	}
	data, ok := levels[name]
	if !ok {
		return Level{}, fmt.Errorf("level %q not found, have %v", name, names)
	}

	background, err := renderBackground(path.Join(levelsDir, name+".tmx"))
	if err != nil {
		return Level{}, err
	}
	return Level{Level: data, Background: background}, nil
}

// renderBackground draws every tile layer whose "render" property is set.
func renderBackground(tmxPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %d: %v", i, err)
			continue
		}
		if layer.Opacity <= 0 {
			renderer.Clear()
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		// Dispose temporary image to free GPU memory
		layerImage.Deallocate()
		renderer.Clear()
	}
	return background, nil
}
