// Command mapview draws grid maps top-down for checking level layouts.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gridcaster/internal/config"
	"gridcaster/internal/logger"
	"gridcaster/internal/render"
	"gridcaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
	lineHeight   = 14
)

const (
	tabInfo = iota
	tabLegend
)

type viewer struct {
	maps         []mapInfo
	mapIndex     int
	palette      palette
	legend       []string
	legendScroll int
	sidebarTab   int
	startX       float64
	startY       float64
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
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

	atlas, err := render.NewAtlas(cfg)
	if err != nil {
		logger.Fatal("failed to build theme", zap.Error(err))
	}

	v := &viewer{
		maps:    loadMaps(cfg, flag.Args()),
		palette: newPalette(atlas.Theme()),
		legend:  legendLines(),
		startX:  cfg.World.StartX,
		startY:  cfg.World.StartY,
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle + " map viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		logger.Fatal("viewer error", zap.Error(err))
	}
}

// loadMaps loads the built-in level followed by every path given.
func loadMaps(cfg *config.Config, paths []string) []mapInfo {
	settings := render.DoorSettingsFromConfig(cfg)
	builtin := world.DefaultLevel()
	maps := []mapInfo{{Name: "built-in", Grid: builtin, Doors: world.NewDoorManager(builtin, settings)}}

	for _, path := range paths {
		m := mapInfo{Name: filepath.Base(path)}
		m.Grid, m.Err = world.LoadMap(path)
		if m.Err != nil {
			logger.Warn("map failed to load", zap.String("path", path), zap.Error(m.Err))
		} else {
			m.Doors = world.NewDoorManager(m.Grid, settings)
		}
		maps = append(maps, m)
	}
	return maps
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.sidebarTab = 1 - v.sidebarTab
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.sidebarTab = tabInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.sidebarTab = tabLegend
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.mapIndex = (v.mapIndex + 1) % len(v.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.mapIndex = (v.mapIndex + len(v.maps) - 1) % len(v.maps)
	}

	if v.sidebarTab == tabLegend {
		if _, wheelY := ebiten.Wheel(); wheelY != 0 {
			v.legendScroll -= int(wheelY * lineHeight)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
			v.legendScroll += lineHeight
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
			v.legendScroll -= lineHeight
		}
		v.legendScroll = max(0, min(v.legendScroll, v.maxLegendScroll()))
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Name, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2

	v.drawMapPanel(screen, m, padding, padding, mapAreaW, mapAreaH)
	v.drawSidebar(screen, m, padding*2+mapAreaW, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) maxLegendScroll() int {
	content := windowHeight - 32 - 24 - 12
	total := len(v.legend) * lineHeight
	if total <= content {
		return 0
	}
	return total - content
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	gw, gh := m.Grid.Width(), m.Grid.Height()
	tile := fitTileSize(w, h, gw, gh)
	originX := x + (w-gw*tile)/2
	originY := y + (h-gh*tile)/2

	m.Grid.Cells(func(tx, ty int, c world.Cell) {
		px, py := float32(originX+tx*tile), float32(originY+ty*tile)
		vector.DrawFilledRect(screen, px, py, float32(tile), float32(tile), v.palette.color(c), false)
		if c.IsDoor() && tile >= 6 {
			ebitenutil.DebugPrintAt(screen, "D", originX+tx*tile+2, originY+ty*tile+1)
		}
	})

	cx := float32(float64(originX) + v.startX*float64(tile))
	cy := float32(float64(originY) + v.startY*float64(tile))
	radius := float32(tile) * 0.35
	vector.DrawFilledCircle(screen, cx, cy, radius, color.RGBA{50, 200, 255, 255}, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1, color.RGBA{255, 255, 255, 255}, true)

	ebitenutil.DebugPrintAt(screen, m.Name, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Esc to quit", x+12, y+24)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	tabHeight := 24
	tabW := w / 2
	active, idle := color.RGBA{70, 70, 95, 255}, color.RGBA{40, 40, 55, 255}
	infoColor, legendColor := active, idle
	if v.sidebarTab == tabLegend {
		infoColor, legendColor = idle, active
	}
	drawFilledRect(screen, x, y, tabW, tabHeight, infoColor)
	drawFilledRect(screen, x+tabW, y, w-tabW, tabHeight, legendColor)
	ebitenutil.DebugPrintAt(screen, "Info (1)", x+10, y+6)
	ebitenutil.DebugPrintAt(screen, "Legend (2)", x+tabW+10, y+6)

	row := y + tabHeight + 12
	if v.sidebarTab == tabLegend {
		bottom := y + h - lineHeight
		for i, line := range v.legend {
			drawY := row + i*lineHeight - v.legendScroll
			if drawY < row-lineHeight {
				continue
			}
			if drawY > bottom {
				break
			}
			ebitenutil.DebugPrintAt(screen, line, x+10, drawY)
		}
		return
	}

	for _, line := range statLines(m) {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(thickness), clr, false)
}
