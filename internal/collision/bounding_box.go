package collision

import (
	"math"
)

// BoundingBox is an axis-aligned rectangle given by its centre and size.
type BoundingBox struct {
	X, Y          float64 // centre
	Width, Height float64
}

// NewBoundingBox creates a box centred on (x, y).
func NewBoundingBox(x, y, width, height float64) *BoundingBox {
	return &BoundingBox{X: x, Y: y, Width: width, Height: height}
}

// GetBounds returns the min and max corners.
func (bb *BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	hw, hh := bb.Width/2, bb.Height/2
	return bb.X - hw, bb.Y - hh, bb.X + hw, bb.Y + hh
}

// At returns a copy of the box centred on (x, y).
func (bb *BoundingBox) At(x, y float64) *BoundingBox {
	moved := *bb
	moved.X, moved.Y = x, y
	return &moved
}

// Intersects reports an overlap with positive area. Boxes that only
// share an edge do not intersect.
func (bb *BoundingBox) Intersects(other *BoundingBox) bool {
	return math.Abs(bb.X-other.X)*2 < bb.Width+other.Width &&
		math.Abs(bb.Y-other.Y)*2 < bb.Height+other.Height
}

// MoveTo recentres the box.
func (bb *BoundingBox) MoveTo(x, y float64) {
	bb.X, bb.Y = x, y
}

// DistanceToPoint is the distance from the centre to (x, y).
func (bb *BoundingBox) DistanceToPoint(x, y float64) float64 {
	return math.Hypot(bb.X-x, bb.Y-y)
}

// Entity is anything in the world with a footprint: the viewer or a prop.
type Entity struct {
	ID          string
	BoundingBox *BoundingBox
	Solid       bool // blocks other entities
}

// NewEntity creates a square entity of the given size centred at (x, y).
func NewEntity(id string, x, y, size float64, solid bool) *Entity {
	return &Entity{
		ID:          id,
		BoundingBox: NewBoundingBox(x, y, size, size),
		Solid:       solid,
	}
}
