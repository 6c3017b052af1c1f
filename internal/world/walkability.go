package world

// Walkability answers movement queries for a grid and its doors. Solid
// cells block, doors block until they are open past the pass fraction.
type Walkability struct {
	grid  *Grid
	doors *DoorManager
}

// NewWalkability binds a grid to its door manager. A nil manager keeps
// every door shut.
func NewWalkability(grid *Grid, doors *DoorManager) Walkability {
	return Walkability{grid: grid, doors: doors}
}

// IsTileBlocking reports whether movement into a cell is blocked.
func (w Walkability) IsTileBlocking(x, y int) bool {
	c := w.grid.At(x, y)
	if c.IsDoor() {
		if w.doors == nil {
			return true
		}
		d := w.doors.Door(x, y)
		return d == nil || !d.CanPass()
	}
	return c.IsSolid()
}

// GetWorldBounds returns the grid size in cells.
func (w Walkability) GetWorldBounds() (width, height int) {
	return w.grid.Width(), w.grid.Height()
}
