// Package main provides a season animation viewer tool for testing and
// debugging the particle engine without the full dashboard UI.
//
// Usage:
//
//	go run cmd/seasonview/main.go [flags]
//
// Flags:
//
//	--season <name>   Start with specific season (e.g., --season=monsoon)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Left/Right Arrow  - Switch to previous/next season
//	Space             - Toggle pause/resume
//	R                 - Rebuild the current season's particle pool
//	I                 - Toggle pointer interaction
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/seasonscape/pkg/config"
	"github.com/gonewx/seasonscape/pkg/engine"
	"github.com/gonewx/seasonscape/pkg/game"
	"github.com/gonewx/seasonscape/pkg/utils"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	seasonFlag  = flag.String("season", "prewinter", "Start with specific season name")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// ViewerGame implements ebiten.Game interface for the season viewer
type ViewerGame struct {
	eng         *engine.Engine
	seasons     []engine.Season
	index       int
	interaction bool
}

// NewViewerGame creates a new viewer instance
func NewViewerGame(start engine.Season) (*ViewerGame, error) {
	// 从工作目录加载资源；缺失时引擎内部会使用程序化回退图形
	rm := game.NewResourceManager(os.DirFS("."))
	set, err := config.LoadSeasonSet(os.DirFS("."), "data/seasons.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load season config: %w", err)
	}

	seasons := engine.AllSeasons()
	index := 0
	for i, s := range seasons {
		if s == start {
			index = i
		}
	}

	eng := engine.New(engine.Options{
		Seasons:   set,
		Season:    seasons[index],
		Width:     screenWidth,
		Height:    screenHeight,
		Scale:     ebiten.Monitor().DeviceScaleFactor(),
		Resources: rm,
	})

	return &ViewerGame{
		eng:         eng,
		seasons:     seasons,
		index:       index,
		interaction: true,
	}, nil
}

// switchSeason 按偏移切换季节（环形）
func (g *ViewerGame) switchSeason(delta int) {
	g.index = (g.index + delta + len(g.seasons)) % len(g.seasons)
	g.eng.SetMode(g.seasons[g.index])
}

// Update handles input and advances the simulation
func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.switchSeason(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.switchSeason(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.Running() {
			g.eng.Pause()
		} else {
			g.eng.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.SetMode(g.seasons[g.index])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.interaction = !g.interaction
	}

	px, py, pressed := utils.PointerPosition()
	g.eng.Pointer().Update(float64(px), float64(py), pressed)

	g.eng.Tick(g.interaction)
	return nil
}

// Draw renders the current frame plus a debug overlay
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 22, G: 24, B: 30, A: 255})
	g.eng.Draw(screen)

	sim := g.eng.Simulation()
	status := fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nSeason: %s  Particles: %d  Ripples: %d  Flares: %d\nRunning: %v  Interaction: %v\n<- -> season  Space pause  R rebuild  I interaction  Q quit",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.eng.Season(), len(sim.Particles()), len(sim.Ripples()), len(sim.Flares()),
		g.eng.Running(), g.interaction,
	)
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	g, err := NewViewerGame(engine.ParseSeason(*seasonFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "seasonview: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Seasonscape - Season Viewer")

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
