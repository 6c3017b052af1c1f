package game

import (
	"image"
	"image/color"
	"math"

	"gridcaster/internal/sprite"

	"golang.org/x/image/vector"
)

// Prop is a billboard the demo places in the level. Orbiting props
// circle their anchor point.
type Prop struct {
	Name      string
	Billboard sprite.Billboard
	Solid     bool

	anchorX, anchorY float64
	orbitRadius      float64
	orbitSpeed       float64 // radians per ms
	phase            float64
}

func (p *Prop) update(dtMs float64) {
	if p.orbitRadius == 0 {
		return
	}
	p.phase = math.Mod(p.phase+p.orbitSpeed*dtMs, 2*math.Pi)
	p.Billboard.X = p.anchorX + math.Cos(p.phase)*p.orbitRadius
	p.Billboard.Y = p.anchorY + math.Sin(p.phase)*p.orbitRadius
}

// defaultProps populates the built-in level.
func defaultProps() []*Prop {
	red := demonColors{body: rgba(180, 40, 40), head: rgba(200, 50, 50), horn: rgba(100, 30, 30)}
	green := demonColors{body: rgba(40, 140, 40), head: rgba(50, 160, 50), horn: rgba(30, 80, 30)}
	purple := demonColors{body: rgba(140, 40, 140), head: rgba(160, 50, 160), horn: rgba(80, 30, 80)}

	orb := &Prop{
		Name:        "fireball",
		Billboard:   sprite.NewBillboard(orbImage(), 3.7, 2.5, sprite.Projectile),
		anchorX:     3,
		anchorY:     2.5,
		orbitRadius: 0.7,
		orbitSpeed:  0.002,
	}
	orb.update(0)

	return []*Prop{
		{Name: "imp", Billboard: sprite.NewBillboard(demonImage(red, false), 4.5, 3.5, sprite.Standard), Solid: true},
		{Name: "ghoul", Billboard: sprite.NewBillboard(demonImage(green, false), 2.5, 9.5, sprite.Standard), Solid: true},
		{Name: "overlord", Billboard: sprite.NewBillboard(demonImage(purple, true), 11.5, 3.5, sprite.Boss), Solid: true},
		{Name: "potion", Billboard: sprite.NewBillboard(potionImage(), 1.5, 3.5, sprite.Pickup)},
		orb,
	}
}

type demonColors struct {
	body, head, horn color.RGBA
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// canvas wraps a transparent image with vector fill helpers.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

func (c *canvas) fill(col color.RGBA) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) reset() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

// ellipse fills an axis-aligned ellipse.
func (c *canvas) ellipse(cx, cy, rx, ry float32, col color.RGBA) {
	c.reset()
	const segments = 32
	c.z.MoveTo(cx+rx, cy)
	for i := 1; i < segments; i++ {
		a := float64(i) * 2 * math.Pi / segments
		c.z.LineTo(cx+rx*float32(math.Cos(a)), cy+ry*float32(math.Sin(a)))
	}
	c.z.ClosePath()
	c.fill(col)
}

// polygon fills a closed polygon given as x, y pairs.
func (c *canvas) polygon(col color.RGBA, pts ...float32) {
	if len(pts) < 6 {
		return
	}
	c.reset()
	c.z.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		c.z.LineTo(pts[i], pts[i+1])
	}
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) rect(x, y, w, h float32, col color.RGBA) {
	c.polygon(col, x, y, x+w, y, x+w, y+h, x, y+h)
}

func demonImage(c demonColors, crowned bool) image.Image {
	cv := newCanvas(64, 64)
	cv.ellipse(32, 39, 22, 21, c.body)
	cv.ellipse(8, 39, 6, 11, c.body)
	cv.ellipse(56, 39, 6, 11, c.body)
	cv.ellipse(32, 18, 14, 14, c.head)
	cv.polygon(c.horn, 20, 10, 18, 0, 25, 8)
	cv.polygon(c.horn, 44, 10, 46, 0, 39, 8)

	eye := rgba(255, 255, 0)
	cv.ellipse(26, 16, 4, 4, eye)
	cv.ellipse(38, 16, 4, 4, eye)
	cv.ellipse(27, 16, 2, 2, rgba(0, 0, 0))
	cv.ellipse(39, 16, 2, 2, rgba(0, 0, 0))
	cv.ellipse(32, 27, 8, 3, rgba(50, 0, 0))

	if crowned {
		gold := rgba(230, 190, 40)
		cv.polygon(gold, 20, 6, 24, -2, 28, 4, 32, -4, 36, 4, 40, -2, 44, 6)
	}
	return cv.img
}

// orbImage is a fireball with a translucent halo. color.RGBA is
// premultiplied, so the halo channels are scaled by its alpha.
func orbImage() image.Image {
	cv := newCanvas(32, 32)
	cv.ellipse(16, 16, 15, 15, color.RGBA{R: 66, G: 19, B: 0, A: 120})
	cv.ellipse(16, 16, 11, 11, rgba(255, 120, 20))
	cv.ellipse(16, 16, 7, 7, rgba(255, 200, 60))
	cv.ellipse(16, 16, 3, 3, rgba(255, 250, 210))
	return cv.img
}

func potionImage() image.Image {
	cv := newCanvas(32, 48)
	cv.ellipse(16, 32, 12, 13, rgba(200, 30, 60))
	cv.ellipse(12, 28, 3, 4, rgba(255, 140, 160))
	cv.rect(12, 8, 8, 14, rgba(170, 190, 200))
	cv.rect(11, 3, 10, 6, rgba(120, 80, 40))
	return cv.img
}
