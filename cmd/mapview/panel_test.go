package main

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"gridcaster/internal/texture"
	"gridcaster/internal/world"
)

func TestFitTileSize(t *testing.T) {
	tests := []struct {
		name         string
		areaW, areaH int
		gridW, gridH int
		want         int
	}{
		{"width bound", 240, 1000, 24, 24, 10},
		{"height bound", 1000, 48, 24, 24, 2},
		{"minimum", 10, 10, 100, 100, 2},
		{"empty grid", 100, 100, 0, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitTileSize(tt.areaW, tt.areaH, tt.gridW, tt.gridH); got != tt.want {
				t.Errorf("fitTileSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAverageColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{100, 0, 50, 255})
	img.SetRGBA(1, 0, color.RGBA{200, 100, 50, 255})
	if got, want := averageColor(img), (color.RGBA{150, 50, 50, 255}); got != want {
		t.Errorf("averageColor = %v, want %v", got, want)
	}
	if got := averageColor(nil); got != (color.RGBA{A: 255}) {
		t.Errorf("averageColor(nil) = %v", got)
	}
}

func TestPalette(t *testing.T) {
	atlas := texture.NewAtlas(texture.DefaultShading(), 16, 64)
	if err := atlas.SetTheme("dungeon"); err != nil {
		t.Fatal(err)
	}
	p := newPalette(atlas.Theme())

	if got := p.color(world.CellEmpty); got != atlas.Theme().Floor {
		t.Errorf("empty cell color = %v, want floor %v", got, atlas.Theme().Floor)
	}
	if p.color(world.Cell(7)) != p.color(world.CellWall) {
		t.Error("unknown wall code should use the fallback wall color")
	}
	if p.color(world.CellDoor) == p.color(world.CellEmpty) {
		t.Error("doors should not look like floor")
	}
}

func TestStatLines(t *testing.T) {
	grid := world.MustNewGrid([][]world.Cell{
		{1, 1, 1, 1},
		{1, 0, 9, 5},
		{1, 1, 1, 1},
	})
	m := mapInfo{Name: "room", Grid: grid, Doors: world.NewDoorManager(grid, world.DefaultDoorSettings())}

	got := strings.Join(statLines(m), "\n")
	for _, want := range []string{"Cells: 4x3", "Open: 1", "Doors: 1", "red brick: 9", "metal: 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("stats missing %q:\n%s", want, got)
		}
	}
	if statLines(mapInfo{Name: "broken"}) != nil {
		t.Error("a map without a grid has no stats")
	}
}

func TestLegendLinesNameEveryMaterial(t *testing.T) {
	legend := strings.Join(legendLines(), "\n")
	for _, c := range world.WallMaterials {
		if !strings.Contains(legend, c.String()) {
			t.Errorf("legend missing %s", c)
		}
	}
	if !strings.Contains(legend, "9 -> door") {
		t.Error("legend missing door")
	}
}
