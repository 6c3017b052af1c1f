// Package raycast finds the nearest wall or door along one ray per screen
// column by marching grid-line crossings.
package raycast

import (
	"math"

	"gridcaster/internal/mathutil"
	"gridcaster/internal/world"
)

// Grid is the cell lookup the caster needs. Out-of-range reads must
// return a wall code.
type Grid interface {
	At(x, y int) world.Cell
}

// Pose is the viewer snapshot for one frame. Pitch is a vertical shift in
// screen pixels and does not affect casting.
type Pose struct {
	X, Y    float64
	Heading float64
	Pitch   float64
}

// Hit is the result for one column.
type Hit struct {
	Depth     float64    // fisheye-corrected distance
	RawDepth  float64    // distance along the ray
	Material  world.Cell // CellEmpty when nothing was hit
	TexOffset float64    // [0, 1) across the hit face
	Vertical  bool       // hit came from the vertical grid-line march
	Door      bool       // ray stopped on a door
	MapX      int
	MapY      int
	Angle     float64 // absolute ray angle
}

// DepthBuffer holds one corrected depth per column.
type DepthBuffer []float64

// At returns the depth for column i, clamped to the buffer. An empty
// buffer occludes nothing and reports +Inf.
func (d DepthBuffer) At(i int) float64 {
	if len(d) == 0 {
		return math.Inf(1)
	}
	if i < 0 {
		i = 0
	}
	if i >= len(d) {
		i = len(d) - 1
	}
	return d[i]
}

const (
	// parallelEpsilon is the direction component below which a march is
	// considered parallel to its grid lines.
	parallelEpsilon = 1e-12
	// doorPassable is the open fraction at which a door no longer stops rays.
	doorPassable = 0.999
)

// Caster casts a fixed number of rays across a field of view. Its result
// buffers are allocated once and overwritten by every CastFrame, so a
// caster must not be shared between goroutines.
type Caster struct {
	numColumns int
	fov        float64
	halfFOV    float64
	step       float64
	maxDepth   float64
	maxSteps   int

	hits  []Hit
	depth DepthBuffer
}

// NewCaster creates a caster for numColumns rays spread over fov radians.
// maxDepth bounds each march to that many grid lines and is the depth
// reported for rays that hit nothing.
func NewCaster(numColumns int, fov, maxDepth float64) *Caster {
	if numColumns < 1 {
		numColumns = 1
	}
	steps := int(math.Ceil(maxDepth))
	if steps < 1 {
		steps = 1
	}
	return &Caster{
		numColumns: numColumns,
		fov:        fov,
		halfFOV:    fov / 2,
		step:       fov / float64(numColumns),
		maxDepth:   maxDepth,
		maxSteps:   steps,
		hits:       make([]Hit, numColumns),
		depth:      make(DepthBuffer, numColumns),
	}
}

// NumColumns returns the number of rays per frame.
func (c *Caster) NumColumns() int { return c.numColumns }

// MaxDepth returns the sentinel depth for rays that hit nothing.
func (c *Caster) MaxDepth() float64 { return c.maxDepth }

// ColumnAngle returns the absolute angle of ray i for the given heading.
func (c *Caster) ColumnAngle(heading float64, i int) float64 {
	return heading - c.halfFOV + float64(i)*c.step
}

// CastFrame casts every column for pose. The returned slices are owned by
// the caster and valid until the next call. A nil doors treats every door
// as closed.
func (c *Caster) CastFrame(pose Pose, grid Grid, doors world.DoorState) ([]Hit, DepthBuffer) {
	if doors == nil {
		doors = world.ClosedDoors{}
	}
	for i := 0; i < c.numColumns; i++ {
		hit := c.CastRay(pose, c.ColumnAngle(pose.Heading, i), grid, doors)
		c.hits[i] = hit
		c.depth[i] = hit.Depth
	}
	return c.hits, c.depth
}

// CastRay casts a single ray at an absolute angle.
func (c *Caster) CastRay(pose Pose, angle float64, grid Grid, doors world.DoorState) Hit {
	if doors == nil {
		doors = world.ClosedDoors{}
	}
	sinA, cosA := math.Sincos(angle)

	hor, horOK := c.marchHorizontal(pose.X, pose.Y, sinA, cosA, grid, doors)
	ver, verOK := c.marchVertical(pose.X, pose.Y, sinA, cosA, grid, doors)

	var hit Hit
	switch {
	case horOK && (!verOK || hor.RawDepth <= ver.RawDepth):
		hit = hor
	case verOK:
		hit = ver
	default:
		return Hit{
			Depth:    c.maxDepth,
			RawDepth: c.maxDepth,
			Material: world.CellEmpty,
			Angle:    angle,
		}
	}

	hit.Angle = angle
	hit.Depth = hit.RawDepth * math.Cos(angle-pose.Heading)
	return hit
}

// marchHorizontal steps across horizontal grid lines (y = const).
func (c *Caster) marchHorizontal(ox, oy, sinA, cosA float64, grid Grid, doors world.DoorState) (Hit, bool) {
	if math.Abs(sinA) < parallelEpsilon {
		return Hit{}, false
	}

	var lineY, dy float64
	if sinA > 0 {
		lineY, dy = math.Floor(oy)+1, 1
	} else {
		lineY, dy = math.Floor(oy), -1
	}
	depth := (lineY - oy) / sinA
	x := ox + depth*cosA
	deltaDepth := dy / sinA
	dx := deltaDepth * cosA

	for i := 0; i < c.maxSteps; i++ {
		cellX := int(math.Floor(x))
		cellY := int(lineY)
		if dy < 0 {
			cellY--
		}
		if hit, stop := resolveCell(grid, doors, cellX, cellY, x, depth); stop {
			return hit, true
		}
		x += dx
		lineY += dy
		depth += deltaDepth
	}
	return Hit{}, false
}

// marchVertical steps across vertical grid lines (x = const).
func (c *Caster) marchVertical(ox, oy, sinA, cosA float64, grid Grid, doors world.DoorState) (Hit, bool) {
	if math.Abs(cosA) < parallelEpsilon {
		return Hit{}, false
	}

	var lineX, dx float64
	if cosA > 0 {
		lineX, dx = math.Floor(ox)+1, 1
	} else {
		lineX, dx = math.Floor(ox), -1
	}
	depth := (lineX - ox) / cosA
	y := oy + depth*sinA
	deltaDepth := dx / cosA
	dy := deltaDepth * sinA

	for i := 0; i < c.maxSteps; i++ {
		cellX := int(lineX)
		if dx < 0 {
			cellX--
		}
		cellY := int(math.Floor(y))
		if hit, stop := resolveCell(grid, doors, cellX, cellY, y, depth); stop {
			hit.Vertical = true
			return hit, true
		}
		y += dy
		lineX += dx
		depth += deltaDepth
	}
	return Hit{}, false
}

// resolveCell decides whether the march stops in the entered cell.
// along is the crossing coordinate orthogonal to the step axis.
func resolveCell(grid Grid, doors world.DoorState, cellX, cellY int, along, depth float64) (Hit, bool) {
	cell := grid.At(cellX, cellY)
	if cell.IsEmpty() {
		return Hit{}, false
	}

	offset := mathutil.Frac(along)
	hit := Hit{
		RawDepth:  depth,
		Material:  cell,
		TexOffset: offset,
		MapX:      cellX,
		MapY:      cellY,
	}
	if !cell.IsDoor() {
		return hit, true
	}

	open := doors.OpenFraction(cellX, cellY)
	switch {
	case open <= 0 || math.IsNaN(open):
		open = 0
	case open >= doorPassable:
		return Hit{}, false
	}
	if offset < open {
		return Hit{}, false
	}
	hit.Door = true
	hit.TexOffset = (offset - open) / (1 - open)
	return hit, true
}
