package world

import (
	"math"

	"gridcaster/internal/logger"

	"go.uber.org/zap"
)

// DoorState maps a door cell to its open fraction in [0, 1].
// 0 is fully closed. The ray caster queries it only for door cells it hits.
type DoorState interface {
	OpenFraction(x, y int) float64
}

// ClosedDoors is a DoorState with every door shut.
type ClosedDoors struct{}

// OpenFraction always returns 0.
func (ClosedDoors) OpenFraction(x, y int) float64 { return 0 }

// DoorSettings controls door easing.
type DoorSettings struct {
	OpenSpeed    float64 // fraction per ms
	MaxOpen      float64 // fraction a door stops at when opening
	CloseDelayMs float64 // time fully open before auto-close, 0 disables
	PassFraction float64 // open fraction above which movement may pass
}

// DefaultDoorSettings returns the stock easing values.
func DefaultDoorSettings() DoorSettings {
	return DoorSettings{
		OpenSpeed:    0.003,
		MaxOpen:      0.9,
		CloseDelayMs: 3000,
		PassFraction: 0.5,
	}
}

// Door is a sliding door occupying one grid cell.
type Door struct {
	X, Y       int
	OpenAmount float64 // 0 closed, up to MaxOpen

	opening bool
	moving  bool
	openFor float64 // ms spent fully open
	cfg     DoorSettings
}

// Open starts opening the door if it is not already open.
func (d *Door) Open() {
	if !d.opening && d.OpenAmount < d.cfg.MaxOpen {
		d.opening = true
		d.moving = true
	}
}

// Close starts closing the door if it is open or opening.
func (d *Door) Close() {
	if d.opening {
		d.opening = false
		d.moving = true
	}
}

// Toggle opens a closed door and closes an open one.
func (d *Door) Toggle() {
	if d.opening {
		d.Close()
	} else {
		d.Open()
	}
}

// Update eases the door toward its target by dtMs milliseconds.
func (d *Door) Update(dtMs float64) {
	if d.moving {
		step := d.cfg.OpenSpeed * dtMs
		if d.opening {
			d.OpenAmount += step
			if d.OpenAmount >= d.cfg.MaxOpen {
				d.OpenAmount = d.cfg.MaxOpen
				d.moving = false
				d.openFor = 0
			}
		} else {
			d.OpenAmount -= step
			if d.OpenAmount <= 0 {
				d.OpenAmount = 0
				d.moving = false
			}
		}
		return
	}

	if d.opening && d.cfg.CloseDelayMs > 0 {
		d.openFor += dtMs
		if d.openFor > d.cfg.CloseDelayMs {
			d.Close()
		}
	}
}

// IsOpen reports whether the door is open or opening.
func (d *Door) IsOpen() bool { return d.opening }

// IsMoving reports whether the door is still sliding.
func (d *Door) IsMoving() bool { return d.moving }

// CanPass reports whether the door is open far enough to walk through.
func (d *Door) CanPass() bool {
	return d.OpenAmount > d.cfg.PassFraction
}

// DoorManager owns every door in a level.
type DoorManager struct {
	doors map[[2]int]*Door
	cfg   DoorSettings
}

// NewDoorManager creates one closed door per CellDoor in the grid.
func NewDoorManager(grid *Grid, cfg DoorSettings) *DoorManager {
	dm := &DoorManager{
		doors: make(map[[2]int]*Door),
		cfg:   cfg,
	}
	grid.Cells(func(x, y int, c Cell) {
		if c.IsDoor() {
			dm.doors[[2]int{x, y}] = &Door{X: x, Y: y, cfg: cfg}
		}
	})
	logger.Debug("doors found", zap.Int("count", len(dm.doors)))
	return dm
}

// Len returns the number of doors.
func (dm *DoorManager) Len() int { return len(dm.doors) }

// Update advances every door by dtMs milliseconds.
func (dm *DoorManager) Update(dtMs float64) {
	for _, d := range dm.doors {
		d.Update(dtMs)
	}
}

// OpenAll snaps every door fully open. The usual auto-close delay applies.
func (dm *DoorManager) OpenAll() {
	for _, d := range dm.doors {
		d.Open()
		d.OpenAmount = d.cfg.MaxOpen
		d.moving = false
		d.openFor = 0
	}
}

// Door returns the door at a cell, or nil.
func (dm *DoorManager) Door(x, y int) *Door {
	return dm.doors[[2]int{x, y}]
}

// DoorAt returns the door containing a continuous position, or nil.
func (dm *DoorManager) DoorAt(x, y float64) *Door {
	return dm.Door(int(math.Floor(x)), int(math.Floor(y)))
}

// OpenFraction implements DoorState. Unknown cells report closed.
func (dm *DoorManager) OpenFraction(x, y int) float64 {
	if d := dm.Door(x, y); d != nil {
		return d.OpenAmount
	}
	return 0
}

// CanPass reports whether a position is free of a closed door.
func (dm *DoorManager) CanPass(x, y float64) bool {
	if d := dm.DoorAt(x, y); d != nil {
		return d.CanPass()
	}
	return true
}

// Interact toggles the door 1.5 cells ahead of the viewer, or failing
// that any door within 2 cells. It reports whether a door was toggled.
func (dm *DoorManager) Interact(x, y, heading float64) bool {
	if d := dm.DoorAt(x+math.Cos(heading)*1.5, y+math.Sin(heading)*1.5); d != nil {
		d.Toggle()
		return true
	}

	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			d := dm.Door(cx+dx, cy+dy)
			if d == nil {
				continue
			}
			if math.Hypot(float64(d.X)+0.5-x, float64(d.Y)+0.5-y) < 2.0 {
				d.Toggle()
				return true
			}
		}
	}
	return false
}
