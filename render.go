package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/prefabs"
	"golang.org/x/image/colornames"
)

type Palette struct {
	Background color.Color
	Square     color.Color
	Bar        map[component.BarCategory]color.Color
}

func NewPalette(spec prefabs.PaletteSpec) Palette {
	return Palette{
		Background: spec.Background.Or(colornames.White),
		Square:     spec.Square.Or(colornames.Blue),
		Bar: map[component.BarCategory]color.Color{
			component.BarHealthy:    spec.Healthy.Or(colornames.Lime),
			component.BarLow:        spec.Low.Or(colornames.Red),
			component.BarOverheated: spec.Overheated.Or(colornames.Orange),
		},
	}
}

// DrawScene paints one frame from render params. The bar is drawn from its
// anchor upward, so FillHeight grows toward the top of the screen.
func DrawScene(screen *ebiten.Image, params component.RenderParams, palette Palette) {
	screen.Fill(palette.Background)

	sq := params.Square
	vector.FillRect(screen, float32(sq.X), float32(sq.Y), float32(sq.Size), float32(sq.Size), palette.Square, false)

	bar := params.Bar
	if bar.FillHeight > 0 {
		vector.FillRect(screen,
			float32(bar.X), float32(bar.Y-bar.FillHeight),
			float32(bar.Width), float32(bar.FillHeight),
			palette.Bar[bar.Category], false)
	}
	vector.StrokeRect(screen,
		float32(bar.X), float32(bar.Y-bar.Height),
		float32(bar.Width), float32(bar.Height),
		1, palette.Bar[bar.Category], false)
}
