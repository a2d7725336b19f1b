// Command browser runs the game in a window. Built with GOOS=js GOARCH=wasm it
// runs in a browser tab; see cmd/web for hosting.
package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/webview"
	"github.com/tomz197/skyraid/internal/world"
)

func main() {
	logger := config.NewLogger(os.Stderr, "browser")
	if err := config.Load(); err != nil {
		logger.Fatal("config", "err", err)
	}

	ebiten.SetWindowSize(config.DefaultViewportWidth, config.DefaultViewportHeight)
	ebiten.SetWindowTitle("Skyraid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.GetEnvInt(config.EnvFPS, config.DefaultFPS))

	game := webview.NewGame(world.DefaultConfig(), logger)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game stopped", "err", err)
	}
}
