package texture

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// painter draws primitives on a square texture whose layout is authored
// on a 256-pixel grid and scaled to the real size.
type painter struct {
	img  *image.RGBA
	size int
}

func newPainter(size int, bg color.RGBA) *painter {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return &painter{img: img, size: size}
}

// s scales a coordinate from the 256 authoring grid.
func (p *painter) s(v int) int {
	return v * p.size / 256
}

func (p *painter) rect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(p.s(x), p.s(y), p.s(x+w), p.s(y+h)).Intersect(p.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(p.img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// frame draws a rectangle outline of the given thickness.
func (p *painter) frame(x, y, w, h, t int, c color.RGBA) {
	p.rect(x, y, w, t, c)
	p.rect(x, y+h-t, w, t, c)
	p.rect(x, y, t, h, c)
	p.rect(x+w-t, y, t, h, c)
}

func (p *painter) set(x, y int, c color.RGBA) {
	if x >= 0 && y >= 0 && x < p.size && y < p.size {
		p.img.SetRGBA(x, y, c)
	}
}

// line draws a Bresenham line between two authoring-grid points.
func (p *painter) line(x0, y0, x1, y1 int, c color.RGBA) {
	x0, y0, x1, y1 = p.s(x0), p.s(y0), p.s(x1), p.s(y1)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// circle fills a disc centred on an authoring-grid point.
func (p *painter) circle(cx, cy, r int, c color.RGBA) {
	cx, cy, r = p.s(cx), p.s(cy), p.s(r)
	if r < 1 {
		p.set(cx, cy, c)
		return
	}
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				p.set(cx+x, cy+y, c)
			}
		}
	}
}

// shift adds delta to every channel, clamped.
func shift(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: clampByte(int(c.R) + delta),
		G: clampByte(int(c.G) + delta),
		B: clampByte(int(c.B) + delta),
		A: c.A,
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
