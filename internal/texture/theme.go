package texture

import (
	"fmt"
	"image"
	"image/color"

	"gridcaster/internal/world"
)

// Theme is a named, immutable bundle of square wall and door images plus
// ambient ceiling and floor colors.
type Theme struct {
	Name    string
	Ceiling color.RGBA
	Floor   color.RGBA

	size  int
	walls map[world.Cell]*image.RGBA
	door  *image.RGBA
}

// NewTheme validates that every image is a non-empty square of one size.
// The wall map must contain CellRedBrick, which is the fallback material.
func NewTheme(name string, walls map[world.Cell]*image.RGBA, door *image.RGBA, ceiling, floor color.RGBA) (*Theme, error) {
	base, ok := walls[world.CellRedBrick]
	if !ok || base == nil {
		return nil, fmt.Errorf("theme %s: missing fallback material %d", name, world.CellRedBrick)
	}
	size := base.Bounds().Dx()
	if size == 0 {
		return nil, fmt.Errorf("theme %s: fallback material image is empty", name)
	}
	check := func(what string, img *image.RGBA) error {
		if img == nil {
			return fmt.Errorf("theme %s: %s image is nil", name, what)
		}
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			return fmt.Errorf("theme %s: %s image is %dx%d, want %dx%d", name, what, b.Dx(), b.Dy(), size, size)
		}
		return nil
	}

	copied := make(map[world.Cell]*image.RGBA, len(walls))
	for cell, img := range walls {
		if err := check(fmt.Sprintf("material %d", cell), img); err != nil {
			return nil, err
		}
		copied[cell] = img
	}
	if err := check("door", door); err != nil {
		return nil, err
	}

	return &Theme{
		Name:    name,
		Ceiling: ceiling,
		Floor:   floor,
		size:    size,
		walls:   copied,
		door:    door,
	}, nil
}

// Size returns the edge length of every image in the theme.
func (t *Theme) Size() int { return t.size }

// Image returns the source image for a material, nil for CellEmpty.
// Unknown materials fall back to CellRedBrick.
func (t *Theme) Image(material world.Cell) *image.RGBA {
	switch {
	case material == world.CellEmpty:
		return nil
	case material.IsDoor():
		return t.door
	}
	if img, ok := t.walls[material]; ok {
		return img
	}
	return t.walls[world.CellRedBrick]
}
