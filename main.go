package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gridcaster/internal/config"
	"gridcaster/internal/game"
	"gridcaster/internal/game/keytracker"
	"gridcaster/internal/logger"
	"gridcaster/internal/snapshot"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// windowGame presents a Session in an ebiten window.
type windowGame struct {
	session *game.Session
	screen  *ebiten.Image
	keys    *keytracker.Set
	capture *snapshot.Capture
	width   int
	height  int
}

func newWindowGame(session *game.Session, cfg *config.Config, capture *snapshot.Capture) *windowGame {
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	return &windowGame{
		session: session,
		screen:  ebiten.NewImage(w, h),
		keys:    keytracker.NewSet(ebiten.KeySpace, ebiten.KeyT, ebiten.KeyF12),
		capture: capture,
		width:   w,
		height:  h,
	}
}

func (g *windowGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := game.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyE),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		LookUp:      ebiten.IsKeyPressed(ebiten.KeyPageUp),
		LookDown:    ebiten.IsKeyPressed(ebiten.KeyPageDown),
		Interact:    g.keys.JustPressed(ebiten.KeySpace),
		NextTheme:   g.keys.JustPressed(ebiten.KeyT),
	}
	g.session.Update(1000/float64(ebiten.TPS()), in)

	if g.keys.JustPressed(ebiten.KeyF12) {
		path, err := g.capture.Save(g.session.Renderer().Canvas())
		if err != nil {
			logger.Error("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	frame := g.session.Render()
	g.screen.WritePixels(frame.Pix)
	screen.DrawImage(g.screen, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	shotDir := flag.String("screenshots", "screenshots", "directory for F12 screenshots")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	session, err := game.NewSession(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to start session", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := newWindowGame(session, cfg, snapshot.NewCapture(*shotDir, "gridcaster"))
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("window closed")
}
