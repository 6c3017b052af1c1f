// Package sprite projects world-space billboards onto a rendered frame,
// testing each screen column against the wall depth buffer.
package sprite

import "image"

// SizeClass tells the compositor's callers which stock scale and offset a
// billboard uses. The entity manager that builds the list picks it.
type SizeClass int

const (
	Standard SizeClass = iota
	Boss
	Projectile
	Pickup
)

func (c SizeClass) String() string {
	switch c {
	case Standard:
		return "standard"
	case Boss:
		return "boss"
	case Projectile:
		return "projectile"
	case Pickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// DefaultScale returns the stock world scale for the class.
func (c SizeClass) DefaultScale() float64 {
	switch c {
	case Boss:
		return 0.6
	case Projectile:
		return 0.15
	case Pickup:
		return 0.4
	default:
		return 0.3
	}
}

// DefaultOffset returns the stock vertical offset for the class, in world
// units below the horizon.
func (c SizeClass) DefaultOffset() float64 {
	switch c {
	case Boss:
		return 0.35
	case Projectile:
		return 0
	case Pickup:
		return 0.3
	default:
		return 0.25
	}
}

// Billboard is one camera-facing image placed in the world for a frame.
type Billboard struct {
	Image          image.Image
	X, Y           float64
	Scale          float64
	VerticalOffset float64
	Class          SizeClass
}

// NewBillboard places img at (x, y) with its class's stock scale and offset.
func NewBillboard(img image.Image, x, y float64, class SizeClass) Billboard {
	return Billboard{
		Image:          img,
		X:              x,
		Y:              y,
		Scale:          class.DefaultScale(),
		VerticalOffset: class.DefaultOffset(),
		Class:          class,
	}
}
