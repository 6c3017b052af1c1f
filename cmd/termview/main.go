// Command termview renders the demo level in a terminal using half-block
// characters.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"gridcaster/internal/config"
	"gridcaster/internal/game"
	"gridcaster/internal/logger"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	logFile := flag.String("log", "termview.log", "log file; the terminal is used for drawing")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(*logFile), false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start tcell: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	cfg.Display.ScreenWidth, cfg.Display.ScreenHeight = canvasSize(cols, rows)
	cfg.Render.ColumnWidth = 1

	session, err := game.NewSession(context.Background(), cfg)
	if err != nil {
		screen.Fini()
		logger.Error("failed to start session", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Session error: %v\n", err)
		os.Exit(1)
	}

	run(screen, session)
	logger.Info("terminal closed")
}

func run(screen tcell.Screen, session *game.Session) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in, quit := inputForKey(ev.Key(), ev.Rune())
				if quit {
					return
				}
				session.Update(keyStepMs, in)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			session.Update(float64(now.Sub(last).Milliseconds()), game.Input{})
			last = now
			drawHalfBlocks(screen, session.Render())
			screen.Show()
		}
	}
}
