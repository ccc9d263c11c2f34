package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/seasonscape/pkg/app"
)

var (
	verboseFlag       = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	seasonFlag        = flag.String("season", "", "Start with a specific season (spring/summer/monsoon/autumn/winter/prewinter)")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Disable all animation (accessibility mode)")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:       *verboseFlag,
		Season:        *seasonFlag,
		ReducedMotion: *reducedMotionFlag,
		AssetsFS:      assetsFS,
		DataFS:        dataFS,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(app.DefaultWindowWidth, app.DefaultWindowHeight)
	ebiten.SetWindowTitle("Seasonscape")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Intercept close so settings can be flushed before exit
	ebiten.SetWindowClosingHandled(true)

	// Start the main loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
