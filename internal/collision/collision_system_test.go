package collision

import (
	"math"
	"testing"

	"gridcaster/internal/world"
)

// mockTileChecker implements TileChecker for testing
type mockTileChecker struct {
	width, height int
	blocking      map[[2]int]bool
}

func newMockTileChecker(width, height int) *mockTileChecker {
	return &mockTileChecker{width: width, height: height, blocking: make(map[[2]int]bool)}
}

func (m *mockTileChecker) IsTileBlocking(tileX, tileY int) bool {
	return m.blocking[[2]int{tileX, tileY}]
}

func (m *mockTileChecker) GetWorldBounds() (width, height int) {
	return m.width, m.height
}

func TestCanMoveTo(t *testing.T) {
	checker := newMockTileChecker(5, 5)
	checker.blocking[[2]int{3, 2}] = true
	cs := NewCollisionSystem(checker)
	cs.RegisterEntity(NewEntity("viewer", 1.5, 2.5, 0.4, true))

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"open cell", 2.5, 2.5, true},
		{"blocked cell", 3.5, 2.5, false},
		{"overlapping blocked cell", 2.85, 2.5, false},
		{"outside world", -0.1, 2.5, false},
		{"edge of world", 4.79, 4.79, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cs.CanMoveTo("viewer", tt.x, tt.y); got != tt.want {
				t.Errorf("CanMoveTo(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if cs.CanMoveTo("ghost", 1, 1) {
		t.Error("unknown entity should not move")
	}
}

func TestMoveSlidesAlongWalls(t *testing.T) {
	checker := newMockTileChecker(5, 5)
	for y := 0; y < 5; y++ {
		checker.blocking[[2]int{3, y}] = true
	}
	cs := NewCollisionSystem(checker)
	cs.RegisterEntity(NewEntity("viewer", 2.5, 2.5, 0.4, true))

	x, y := cs.Move("viewer", 0.5, 0.3)
	if x != 2.5 {
		t.Errorf("x = %v, want blocked at 2.5", x)
	}
	if math.Abs(y-2.8) > 1e-9 {
		t.Errorf("y = %v, want 2.8", y)
	}
}

func TestSolidEntitiesBlock(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10))
	cs.RegisterEntity(NewEntity("viewer", 1.5, 1.5, 0.4, true))
	cs.RegisterEntity(NewEntity("pillar", 2.5, 1.5, 0.6, true))
	cs.RegisterEntity(NewEntity("coin", 1.5, 2.5, 0.3, false))

	if cs.CanMoveTo("viewer", 2.1, 1.5) {
		t.Error("moved into a solid pillar")
	}
	if !cs.CanMoveTo("viewer", 1.5, 2.5) {
		t.Error("blocked by a non-solid pickup")
	}

	near := cs.GetNearbyEntities(1.5, 1.5, 1.1, "viewer")
	if len(near) != 2 {
		t.Errorf("nearby = %d, want 2", len(near))
	}

	cs.UnregisterEntity("pillar")
	if !cs.CanMoveTo("viewer", 2.1, 1.5) {
		t.Error("unregistered pillar still blocks")
	}
}

func TestWalkabilityWithDoors(t *testing.T) {
	grid := world.MustNewGrid([][]world.Cell{
		{1, 1, 1, 1, 1},
		{1, 0, 9, 0, 1},
		{1, 1, 1, 1, 1},
	})
	doors := world.NewDoorManager(grid, world.DefaultDoorSettings())
	cs := NewCollisionSystem(world.NewWalkability(grid, doors))
	cs.RegisterEntity(NewEntity("viewer", 1.5, 1.5, 0.4, true))

	if cs.CanMoveTo("viewer", 2.5, 1.5) {
		t.Fatal("walked through a closed door")
	}

	doors.Door(2, 1).Open()
	doors.Update(1000)
	if !cs.CanMoveTo("viewer", 2.5, 1.5) {
		t.Fatal("open door still blocks")
	}

	if !world.NewWalkability(grid, nil).IsTileBlocking(2, 1) {
		t.Error("door without a manager should block")
	}
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := NewBoundingBox(1, 1, 1, 1)
	tests := []struct {
		name string
		b    *BoundingBox
		want bool
	}{
		{"overlapping", NewBoundingBox(1.5, 1.5, 1, 1), true},
		{"contained", NewBoundingBox(1, 1, 0.2, 0.2), true},
		{"sharing an edge", NewBoundingBox(2, 1, 1, 1), false},
		{"apart", NewBoundingBox(3, 3, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}

	moved := a.At(5, 6)
	if moved.X != 5 || moved.Y != 6 || moved.Width != 1 || a.X != 1 {
		t.Errorf("At returned %+v and left the original at %+v", moved, a)
	}
}
