package sprite

import (
	"image"
	"image/color"
	"math"
	"sort"

	"gridcaster/internal/mathutil"
	"gridcaster/internal/raycast"
	"gridcaster/internal/texture"
)

// Settings are the projection constants shared with the wall renderer.
type Settings struct {
	HalfFOV         float64 // radians
	ScreenDist      float64 // projection plane distance in pixels
	MinDistance     float64 // billboards nearer than this are skipped
	FOVMargin       float64 // radians beyond HalfFOV still considered visible
	MaxHeightFactor float64 // projected height cap as a multiple of canvas height
	ColumnWidth     int     // canvas pixels per ray; 0 derives it from the depth buffer
	Shading         texture.Shading
}

// projected is a billboard that survived culling.
type projected struct {
	index int
	dist  float64
	delta float64
}

// Compositor draws billboards over a frame. The visibility queue and the
// row lookup are reused across calls, so a compositor belongs to one
// render loop.
type Compositor struct {
	settings Settings
	queue    []projected
	rows     []int
}

// NewCompositor creates a compositor with room for capacity billboards
// before its queue has to grow.
func NewCompositor(settings Settings, capacity int) *Compositor {
	if settings.MaxHeightFactor <= 0 {
		settings.MaxHeightFactor = 1.5
	}
	return &Compositor{
		settings: settings,
		queue:    make([]projected, 0, capacity),
	}
}

// Settings returns the projection constants.
func (c *Compositor) Settings() Settings { return c.settings }

// Composite draws billboards onto canvas far to near. A column of a
// billboard is drawn only where the billboard is nearer than the wall
// depth recorded for that column. It returns the number of billboards
// that passed culling.
func (c *Compositor) Composite(canvas *image.RGBA, depth raycast.DepthBuffer, pose raycast.Pose, billboards []Billboard) int {
	if len(depth) == 0 || len(billboards) == 0 {
		return 0
	}

	s := c.settings
	limit := s.HalfFOV + s.FOVMargin
	c.queue = c.queue[:0]
	for i, b := range billboards {
		if b.Image == nil {
			continue
		}
		dist := mathutil.Distance(pose.X, pose.Y, b.X, b.Y)
		if dist < s.MinDistance || dist == 0 {
			continue
		}
		delta := mathutil.NormalizeAngle(math.Atan2(b.Y-pose.Y, b.X-pose.X) - pose.Heading)
		if math.Abs(delta) > limit {
			continue
		}
		c.queue = append(c.queue, projected{index: i, dist: dist, delta: delta})
	}

	sort.SliceStable(c.queue, func(i, j int) bool {
		return c.queue[i].dist > c.queue[j].dist
	})

	for _, p := range c.queue {
		c.draw(canvas, depth, pose, billboards[p.index], p)
	}
	return len(c.queue)
}

func (c *Compositor) draw(canvas *image.RGBA, depth raycast.DepthBuffer, pose raycast.Pose, b Billboard, p projected) {
	s := c.settings
	bounds := canvas.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	halfH := float64(height) / 2

	src := b.Image.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return
	}

	// Rays cover span pixels, which overshoots the canvas when the column
	// width does not divide it. Sprites use the same angle-to-pixel scale.
	columnWidth := s.ColumnWidth
	if columnWidth <= 0 {
		columnWidth = mathutil.CeilDiv(width, len(depth))
	}
	span := float64(len(depth) * columnWidth)
	screenX := (p.delta + s.HalfFOV) * span / (2 * s.HalfFOV)

	h := s.ScreenDist / p.dist * b.Scale
	if maxH := s.MaxHeightFactor * float64(height); h > maxH {
		h = maxH
	}
	w := h * float64(src.Dx()) / float64(src.Dy())

	spriteW, spriteH := int(math.Round(w)), int(math.Round(h))
	if spriteW <= 0 || spriteH <= 0 {
		return
	}

	left := int(math.Round(screenX - w/2))
	top := int(math.Round(halfH + pose.Pitch - h/2 + b.VerticalOffset*s.ScreenDist/p.dist))

	colFrom := mathutil.IntMax(left, 0)
	colTo := mathutil.IntMin(left+spriteW, width)
	rowFrom := mathutil.IntMax(top, 0)
	rowTo := mathutil.IntMin(top+spriteH, height)
	if colFrom >= colTo || rowFrom >= rowTo {
		return
	}

	visible := false
	for col := colFrom; col < colTo; col++ {
		if p.dist < depth.At(col/columnWidth) {
			visible = true
			break
		}
	}
	if !visible {
		return
	}

	if n := rowTo - rowFrom; cap(c.rows) < n {
		c.rows = make([]int, 0, n)
	}
	c.rows = c.rows[:0]
	for row := rowFrom; row < rowTo; row++ {
		c.rows = append(c.rows, src.Min.Y+nearest(row-top, spriteH, src.Dy()))
	}
	fog := s.Shading.FogFactor(p.dist)

	for col := colFrom; col < colTo; col++ {
		if p.dist >= depth.At(col/columnWidth) {
			continue
		}
		sx := src.Min.X + nearest(col-left, spriteW, src.Dx())
		for i, sy := range c.rows {
			texel := texelAt(b.Image, sx, sy)
			if texel.A == 0 {
				continue
			}
			shaded := s.Shading.Apply(color.RGBA{R: texel.R, G: texel.G, B: texel.B, A: texel.A}, false, fog)
			x, y := bounds.Min.X+col, bounds.Min.Y+rowFrom+i
			canvas.SetRGBA(x, y, blend(canvas.RGBAAt(x, y), shaded))
		}
	}
}

// nearest maps pixel i of a dst-long run onto a src-long run, sampling at
// pixel centres.
func nearest(i, dst, src int) int {
	j := int((float64(i) + 0.5) * float64(src) / float64(dst))
	return mathutil.IntMin(j, src-1)
}

func texelAt(img image.Image, x, y int) color.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// blend draws a straight-alpha src over dst.
func blend(dst, src color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	a := uint32(src.A)
	inv := 255 - a
	return color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv + 127) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv + 127) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv + 127) / 255),
		A: uint8(a + (uint32(dst.A)*inv+127)/255),
	}
}
