package world

import (
	"math"
	"testing"
)

func doorTestGrid() *Grid {
	return MustNewGrid([][]Cell{
		{1, 1, 1, 1, 1},
		{1, 0, 9, 0, 1},
		{1, 1, 1, 1, 1},
	})
}

func TestDoorOpensAndStopsAtMax(t *testing.T) {
	dm := NewDoorManager(doorTestGrid(), DefaultDoorSettings())
	if dm.Len() != 1 {
		t.Fatalf("Len = %d, want 1", dm.Len())
	}
	d := dm.Door(2, 1)
	if d == nil {
		t.Fatal("door not found at (2,1)")
	}

	d.Open()
	dm.Update(100) // 0.003 * 100 = 0.3
	if math.Abs(dm.OpenFraction(2, 1)-0.3) > 1e-9 {
		t.Errorf("OpenFraction = %v, want 0.3", dm.OpenFraction(2, 1))
	}
	if d.CanPass() {
		t.Error("door at 0.3 should not be passable")
	}

	dm.Update(1000)
	if d.OpenAmount != 0.9 {
		t.Errorf("OpenAmount = %v, want capped 0.9", d.OpenAmount)
	}
	if d.IsMoving() {
		t.Error("door should have stopped moving")
	}
	if !dm.CanPass(2.5, 1.5) {
		t.Error("open door should be passable")
	}
}

func TestDoorAutoCloses(t *testing.T) {
	cfg := DefaultDoorSettings()
	cfg.CloseDelayMs = 500
	dm := NewDoorManager(doorTestGrid(), cfg)
	d := dm.Door(2, 1)

	d.Open()
	dm.Update(400) // fully open
	dm.Update(300) // counting
	if !d.IsOpen() {
		t.Fatal("door closed before delay elapsed")
	}
	dm.Update(300) // delay passed, close starts
	if d.IsOpen() || !d.IsMoving() {
		t.Fatal("door should be closing")
	}
	dm.Update(1000)
	if d.OpenAmount != 0 {
		t.Errorf("OpenAmount = %v, want 0", d.OpenAmount)
	}
}

func TestDoorInteract(t *testing.T) {
	dm := NewDoorManager(doorTestGrid(), DefaultDoorSettings())

	// Facing east from (1.5, 1.5): 1.5 cells ahead is (3.0, 1.5), past the door,
	// so the neighbourhood search must find it.
	if !dm.Interact(1.5, 1.5, 0) {
		t.Fatal("Interact did not find the adjacent door")
	}
	if !dm.Door(2, 1).IsOpen() {
		t.Error("door should be opening after interact")
	}

	// a second interact toggles the same door shut
	if !dm.Interact(1.5, 1.5, math.Pi) {
		t.Fatal("second Interact found no door")
	}
	if dm.Door(2, 1).IsOpen() {
		t.Error("door should be closing after second interact")
	}
}

func TestUnknownCellReportsClosed(t *testing.T) {
	dm := NewDoorManager(doorTestGrid(), DefaultDoorSettings())
	if got := dm.OpenFraction(0, 0); got != 0 {
		t.Errorf("OpenFraction on wall = %v", got)
	}
	if got := (ClosedDoors{}).OpenFraction(2, 1); got != 0 {
		t.Errorf("ClosedDoors = %v", got)
	}
}

func TestOpenAll(t *testing.T) {
	dm := NewDoorManager(doorTestGrid(), DefaultDoorSettings())
	dm.OpenAll()

	d := dm.Door(2, 1)
	if got := dm.OpenFraction(2, 1); got != 0.9 {
		t.Errorf("OpenFraction = %v, want 0.9", got)
	}
	if !d.IsOpen() || d.IsMoving() || !d.CanPass() {
		t.Errorf("door state open=%v moving=%v pass=%v", d.IsOpen(), d.IsMoving(), d.CanPass())
	}

	dm.Update(3001)
	if d.IsOpen() {
		t.Error("door should start closing after the delay")
	}
}
