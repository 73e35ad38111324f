package main

import (
	"fmt"
	stdcolor "image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/zeusync/gamemath/internal/config"
	"github.com/zeusync/gamemath/internal/demo"
	"github.com/zeusync/gamemath/internal/observability/log"
	"github.com/zeusync/gamemath/pkg/color"
)

var (
	colorBackground = color.RGB(0.05, 0.05, 0.08)
	colorBand       = stdcolor.RGBA{90, 90, 110, 255}
	colorPanel      = stdcolor.RGBA{0, 0, 0, 160}
)

type game struct {
	scene *demo.Scene
	cfg   config.DemoConfig
	log   log.Log
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.TogglePause()
		g.log.Info("pause toggled", log.Bool("paused", g.scene.Paused()), log.Int("tick", g.scene.Ticks()))
	}
	g.scene.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cx, cy := float32(g.cfg.Width)/2, float32(g.cfg.Height)/2

	// clamp band of the arrow
	vector.StrokeCircle(screen, cx, cy, g.cfg.MinMagnitude, 1, colorBand, true)
	vector.StrokeCircle(screen, cx, cy, g.cfg.MaxMagnitude, 1, colorBand, true)

	for i, p := range g.scene.Points() {
		vector.DrawFilledCircle(screen, cx+p[0], cy-p[1], 3, g.scene.PointColor(i), true)
	}

	a := g.scene.Arrow()
	vector.StrokeLine(screen, cx, cy, cx+a[0], cy-a[1], 3, g.scene.Tint(), true)

	vector.FillRect(screen, 0, 0, 230, 70, colorPanel, true)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"heading %7.2f\nlength  %7.2f\nhue     %7.3f\nspace: pause  esc: quit",
		g.scene.Heading(), a.Len(), g.scene.Hue(),
	))
}

func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
