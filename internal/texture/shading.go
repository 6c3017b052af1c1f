package texture

import (
	"image/color"
	"math"

	"gridcaster/internal/mathutil"
)

// Shading holds the per-pixel lighting constants shared by walls and sprites.
type Shading struct {
	DarkenFactor float64    // RGB multiplier for darkened hit orientations, < 1
	FogColor     color.RGBA // color reached at MaxDepth
	MaxDepth     float64    // depth at which fog is total
	FogExponent  float64    // curve shape; 1 is linear in depth
}

// DefaultShading mirrors the default config values.
func DefaultShading() Shading {
	return Shading{
		DarkenFactor: 0.7,
		FogColor:     color.RGBA{0, 0, 0, 255},
		MaxDepth:     20,
		FogExponent:  1,
	}
}

// FogFactor maps a depth to a blend amount in [0, 1].
// It is monotonically non-decreasing and reaches 1 at MaxDepth.
func (s Shading) FogFactor(depth float64) float64 {
	if s.MaxDepth <= 0 || math.IsNaN(depth) {
		return 1
	}
	ratio := mathutil.Clamp01(depth / s.MaxDepth)
	if s.FogExponent > 0 && s.FogExponent != 1 {
		ratio = math.Pow(ratio, s.FogExponent)
	}
	return ratio
}

// Apply darkens and fogs one color. Alpha is left untouched.
func (s Shading) Apply(c color.RGBA, darken bool, fog float64) color.RGBA {
	if !darken && fog <= 0 {
		return c
	}
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	if darken {
		r *= s.DarkenFactor
		g *= s.DarkenFactor
		b *= s.DarkenFactor
	}
	if fog > 0 {
		if fog > 1 {
			fog = 1
		}
		r += (float64(s.FogColor.R) - r) * fog
		g += (float64(s.FogColor.G) - g) * fog
		b += (float64(s.FogColor.B) - b) * fog
	}
	return color.RGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: c.A}
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
