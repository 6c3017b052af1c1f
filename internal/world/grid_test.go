package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGridOutOfBoundsIsWall(t *testing.T) {
	g := MustNewGrid([][]Cell{
		{0, 0},
		{0, 9},
	})

	testCases := []struct {
		x, y int
		want Cell
	}{
		{0, 0, CellEmpty},
		{1, 1, CellDoor},
		{-1, 0, CellWall},
		{0, -1, CellWall},
		{2, 0, CellWall},
		{0, 2, CellWall},
	}
	for _, tc := range testCases {
		if got := g.At(tc.x, tc.y); got != tc.want {
			t.Errorf("At(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	if got := g.AtPoint(-0.2, 0.5); got != CellWall {
		t.Errorf("AtPoint(-0.2, 0.5) = %v, want wall", got)
	}
}

func TestNewGridRejectsBadShapes(t *testing.T) {
	if _, err := NewGrid(nil); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("nil rows: got %v", err)
	}
	if _, err := NewGrid([][]Cell{{1, 1}, {1}}); !errors.Is(err, ErrRaggedMap) {
		t.Errorf("ragged rows: got %v", err)
	}
}

func TestCellClassification(t *testing.T) {
	if !CellEmpty.IsEmpty() || CellEmpty.IsSolid() {
		t.Error("empty cell misclassified")
	}
	if !CellDoor.IsDoor() || CellDoor.IsSolid() {
		t.Error("door cell misclassified")
	}
	if !CellLava.IsSolid() || !CellLava.IsHazard() {
		t.Error("lava cell misclassified")
	}
	if !Cell(7).IsSolid() {
		t.Error("unknown code should block rays")
	}
	if got := CellDarkStone.String(); got != "dark stone" {
		t.Errorf("CellDarkStone.String() = %q", got)
	}
	if got := Cell(7).String(); got != "wall(7)" {
		t.Errorf("Cell(7).String() = %q", got)
	}
}

func TestParseMap(t *testing.T) {
	src := `# small room
111
1.9
1 0 1

111
`
	g, err := ParseMap(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if g.Width() != 3 || g.Height() != 4 {
		t.Fatalf("size = %dx%d, want 3x4", g.Width(), g.Height())
	}
	if g.At(1, 1) != CellEmpty || g.At(2, 1) != CellDoor || g.At(1, 2) != CellEmpty {
		t.Errorf("unexpected cells: %v %v %v", g.At(1, 1), g.At(2, 1), g.At(1, 2))
	}
}

func TestParseMapErrors(t *testing.T) {
	if _, err := ParseMap(strings.NewReader("11\n1x\n")); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("bad symbol: got %v", err)
	}
	if _, err := ParseMap(strings.NewReader("# only comments\n")); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("empty map: got %v", err)
	}
	if _, err := ParseMap(strings.NewReader("111\n11\n")); !errors.Is(err, ErrRaggedMap) {
		t.Errorf("ragged map: got %v", err)
	}
}

func TestLoadMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.map")
	if err := os.WriteFile(path, []byte("111\n101\n111\n"), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	g, err := LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if g.Count(CellRedBrick) != 8 {
		t.Errorf("wall count = %d, want 8", g.Count(CellRedBrick))
	}

	if _, err := LoadMap(filepath.Join(t.TempDir(), "missing.map")); err == nil {
		t.Error("expected error for missing map")
	}
}

func TestDefaultLevel(t *testing.T) {
	g := DefaultLevel()
	if g.Width() != 24 || g.Height() != 24 {
		t.Fatalf("size = %dx%d", g.Width(), g.Height())
	}
	for x := 0; x < g.Width(); x++ {
		if !g.At(x, 0).IsSolid() || !g.At(x, g.Height()-1).IsSolid() {
			t.Fatalf("border open at column %d", x)
		}
	}
	if g.Count(CellDoor) == 0 {
		t.Error("default level has no doors")
	}
}
