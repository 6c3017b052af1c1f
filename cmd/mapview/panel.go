package main

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"gridcaster/internal/texture"
	"gridcaster/internal/world"
)

// mapInfo is one loaded map, or the error that stopped it loading.
type mapInfo struct {
	Name  string
	Grid  *world.Grid
	Doors *world.DoorManager
	Err   error
}

// palette maps cell codes to flat colors taken from a theme.
type palette struct {
	floor  color.RGBA
	colors map[world.Cell]color.RGBA
}

func newPalette(theme *texture.Theme) palette {
	p := palette{floor: theme.Floor, colors: make(map[world.Cell]color.RGBA)}
	for _, c := range append(append([]world.Cell(nil), world.WallMaterials...), world.CellDoor) {
		p.colors[c] = averageColor(theme.Image(c))
	}
	return p
}

func (p palette) color(c world.Cell) color.RGBA {
	if c.IsEmpty() {
		return p.floor
	}
	if clr, ok := p.colors[c]; ok {
		return clr
	}
	return p.colors[world.CellWall]
}

// averageColor is the mean of every pixel in img.
func averageColor(img *image.RGBA) color.RGBA {
	if img == nil {
		return color.RGBA{A: 255}
	}
	var r, g, b, n uint64
	for i := 0; i+3 < len(img.Pix); i += 4 {
		r += uint64(img.Pix[i])
		g += uint64(img.Pix[i+1])
		b += uint64(img.Pix[i+2])
		n++
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{uint8(r / n), uint8(g / n), uint8(b / n), 255}
}

// fitTileSize returns the largest square tile that fits a w x h grid in
// an areaW x areaH panel, never below 2 pixels.
func fitTileSize(areaW, areaH, w, h int) int {
	if w <= 0 || h <= 0 {
		return 2
	}
	size := areaW / w
	if alt := areaH / h; alt < size {
		size = alt
	}
	if size < 2 {
		size = 2
	}
	return size
}

// statLines summarizes a map for the info tab.
func statLines(m mapInfo) []string {
	if m.Grid == nil {
		return nil
	}
	lines := []string{
		fmt.Sprintf("Cells: %dx%d", m.Grid.Width(), m.Grid.Height()),
		fmt.Sprintf("Open: %d", m.Grid.Count(world.CellEmpty)),
	}
	if m.Doors != nil {
		lines = append(lines, fmt.Sprintf("Doors: %d", m.Doors.Len()))
	}

	counts := make(map[world.Cell]int)
	m.Grid.Cells(func(_, _ int, c world.Cell) {
		if c.IsSolid() {
			counts[c]++
		}
	})
	cells := make([]world.Cell, 0, len(counts))
	for c := range counts {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })
	for _, c := range cells {
		lines = append(lines, fmt.Sprintf("%s: %d", c, counts[c]))
	}
	return lines
}

// legendLines lists every cell code with its name.
func legendLines() []string {
	lines := []string{"Cells (code -> material)", "------------------------"}
	codes := append([]world.Cell{world.CellEmpty}, world.WallMaterials...)
	codes = append(codes, world.CellDoor)
	for _, c := range codes {
		lines = append(lines, fmt.Sprintf("%d -> %s", int(c), c))
	}
	lines = append(lines,
		"",
		"Markers",
		"-------",
		"Cyan circle: start position",
		"D: door",
		"Other digits are walls",
	)
	return lines
}
