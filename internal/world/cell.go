package world

import "fmt"

// Cell is a grid cell code. The set of codes is closed: empty, the wall
// materials, the hazard floor and the door.
type Cell int

const (
	CellEmpty     Cell = 0
	CellRedBrick  Cell = 1 // default wall, also returned for out-of-range reads
	CellTapestry  Cell = 2
	CellTorch     Cell = 3
	CellDarkStone Cell = 4
	CellMetal     Cell = 5
	CellLava      Cell = 6 // hazard; blocks rays like a wall
	CellDoor      Cell = 9
)

// CellWall is what the grid reports outside its bounds.
const CellWall = CellRedBrick

// WallMaterials lists the wall codes a theme must provide an image for.
var WallMaterials = []Cell{CellRedBrick, CellTapestry, CellTorch, CellDarkStone, CellMetal, CellLava}

// IsEmpty reports whether rays and movement pass freely through the cell.
func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

// IsDoor reports whether the cell is a sliding door.
func (c Cell) IsDoor() bool {
	return c == CellDoor
}

// IsSolid reports whether the cell terminates a ray regardless of state.
// Unknown non-zero codes count as walls.
func (c Cell) IsSolid() bool {
	return c != CellEmpty && c != CellDoor
}

// IsHazard reports whether the cell is the hazard floor variant.
func (c Cell) IsHazard() bool {
	return c == CellLava
}

var cellNames = map[Cell]string{
	CellEmpty:     "empty",
	CellRedBrick:  "red brick",
	CellTapestry:  "tapestry",
	CellTorch:     "torch",
	CellDarkStone: "dark stone",
	CellMetal:     "metal",
	CellLava:      "lava",
	CellDoor:      "door",
}

func (c Cell) String() string {
	if name, ok := cellNames[c]; ok {
		return name
	}
	return fmt.Sprintf("wall(%d)", int(c))
}
