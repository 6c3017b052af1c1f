package texture

import (
	"image"
	"image/color"
	"math/rand"

	"gridcaster/internal/world"
)

// generators builds each named theme at a given texture size.
var generators = map[string]func(size int) (*Theme, error){
	"dungeon":    dungeonTheme,
	"industrial": industrialTheme,
	"hell":       hellTheme,
}

// ThemeNames lists the themes SetTheme can generate.
func ThemeNames() []string {
	return []string{"dungeon", "industrial", "hell"}
}

func dungeonTheme(size int) (*Theme, error) {
	brick := brickTexture(size, rgb(150, 50, 50), rgb(60, 50, 45))
	walls := map[world.Cell]*image.RGBA{
		world.CellRedBrick:  brick,
		world.CellTapestry:  tapestryTexture(size, rgb(120, 40, 60), rgb(200, 170, 60)),
		world.CellTorch:     torchTexture(size, rgb(150, 50, 50), rgb(60, 50, 45)),
		world.CellDarkStone: stoneTexture(size, rgb(70, 65, 60), 42),
		world.CellMetal:     metalTexture(size, rgb(80, 85, 90)),
		world.CellLava:      lavaTexture(size, 7),
	}
	return NewTheme("dungeon", walls, doorTexture(size, rgb(150, 50, 50)), rgb(30, 30, 50), rgb(60, 40, 30))
}

func industrialTheme(size int) (*Theme, error) {
	walls := map[world.Cell]*image.RGBA{
		world.CellRedBrick:  metalTexture(size, rgb(90, 95, 100)),
		world.CellTapestry:  techTexture(size, rgb(60, 70, 80)),
		world.CellTorch:     techTexture(size, rgb(50, 60, 90)),
		world.CellDarkStone: stoneTexture(size, rgb(85, 85, 90), 11),
		world.CellMetal:     metalTexture(size, rgb(110, 100, 80)),
		world.CellLava:      lavaTexture(size, 13),
	}
	return NewTheme("industrial", walls, doorTexture(size, rgb(90, 95, 100)), rgb(35, 40, 45), rgb(55, 55, 60))
}

func hellTheme(size int) (*Theme, error) {
	walls := map[world.Cell]*image.RGBA{
		world.CellRedBrick:  brickTexture(size, rgb(110, 30, 20), rgb(30, 10, 10)),
		world.CellTapestry:  stoneTexture(size, rgb(90, 30, 25), 5),
		world.CellTorch:     torchTexture(size, rgb(110, 30, 20), rgb(30, 10, 10)),
		world.CellDarkStone: stoneTexture(size, rgb(60, 20, 20), 23),
		world.CellMetal:     metalTexture(size, rgb(100, 40, 30)),
		world.CellLava:      lavaTexture(size, 3),
	}
	return NewTheme("hell", walls, doorTexture(size, rgb(110, 30, 20)), rgb(40, 10, 10), rgb(70, 25, 15))
}

// brickTexture lays staggered 64x32 bricks with highlight and shadow edges.
func brickTexture(size int, base, mortar color.RGBA) *image.RGBA {
	p := newPainter(size, mortar)
	const brickW, brickH, gap = 64, 32, 4

	for row := 0; row < 256/brickH; row++ {
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		y := row * brickH
		for col := -1; col <= 256/brickW; col++ {
			x := col*brickW + offset
			c := shift(base, (row*7+col*13)%30-15)
			bx, by, bw, bh := x+gap/2, y+gap/2, brickW-gap, brickH-gap
			p.rect(bx, by, bw, bh, c)

			hi, lo := shift(c, 20), shift(c, -30)
			p.line(bx, by, bx+bw, by, hi)
			p.line(bx, by, bx, by+bh, hi)
			p.line(bx+bw, by, bx+bw, by+bh, lo)
			p.line(bx, by+bh, bx+bw, by+bh, lo)
		}
	}
	return p.img
}

// stoneTexture scatters blotches and cracks with a fixed seed.
func stoneTexture(size int, base color.RGBA, seed int64) *image.RGBA {
	p := newPainter(size, base)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 500; i++ {
		x, y := rng.Intn(256), rng.Intn(256)
		r := 2 + rng.Intn(7)
		p.circle(x, y, r, shift(base, rng.Intn(81)-40))
	}
	dark := shift(base, -50)
	for i := 0; i < 10; i++ {
		x, y := rng.Intn(256), rng.Intn(256)
		ex, ey := x+rng.Intn(101)-50, y+rng.Intn(101)-50
		p.line(x, y, ex, ey, dark)
		p.line(x+1, y, ex+1, ey, dark)
	}
	return p.img
}

// metalTexture draws horizontal seams and rivets.
func metalTexture(size int, base color.RGBA) *image.RGBA {
	p := newPainter(size, base)
	dark, light := shift(base, -30), shift(base, 30)
	for y := 0; y < 256; y += 32 {
		p.rect(0, y, 256, 2, dark)
		p.rect(0, y+2, 256, 1, light)
	}

	rivet, rivetShadow := shift(base, 50), shift(base, -40)
	for row := 0; row < 256; row += 64 {
		for col := 0; col < 256; col += 64 {
			p.circle(col+17, row+17, 6, rivetShadow)
			p.circle(col+16, row+16, 6, rivet)
			p.circle(col+16, row+16, 4, base)
		}
	}
	return p.img
}

// techTexture draws a panel grid with a glowing centre strip.
func techTexture(size int, base color.RGBA) *image.RGBA {
	p := newPainter(size, base)
	grid := shift(base, -20)
	for v := 0; v < 256; v += 32 {
		p.rect(v, 0, 1, 256, grid)
		p.rect(0, v, 256, 1, grid)
	}
	p.rect(124, 0, 8, 256, rgb(100, 200, 255))

	detail := shift(base, 40)
	p.frame(20, 20, 60, 40, 2, detail)
	p.frame(176, 20, 60, 40, 2, detail)
	p.frame(20, 196, 60, 40, 2, detail)
	p.frame(176, 196, 60, 40, 2, detail)
	return p.img
}

// tapestryTexture hangs a patterned cloth over a brick wall.
func tapestryTexture(size int, cloth, accent color.RGBA) *image.RGBA {
	img := brickTexture(size, rgb(150, 50, 50), rgb(60, 50, 45))
	p := &painter{img: img, size: size}

	p.rect(48, 16, 160, 224, cloth)
	p.frame(48, 16, 160, 224, 6, accent)
	for y := 48; y < 224; y += 48 {
		for i := 0; i < 16; i++ {
			// diamond rows
			p.rect(128-i*2, y+i, i*4, 1, shift(cloth, 40))
			p.rect(128-i*2, y+32-i, i*4, 1, shift(cloth, 40))
		}
	}
	p.rect(40, 8, 176, 8, rgb(90, 70, 40))
	return img
}

// torchTexture mounts a burning torch on brick.
func torchTexture(size int, base, mortar color.RGBA) *image.RGBA {
	img := brickTexture(size, base, mortar)
	p := &painter{img: img, size: size}

	p.circle(128, 104, 40, shift(base, 35))
	p.rect(120, 120, 16, 72, rgb(90, 60, 30))
	p.rect(112, 116, 32, 8, rgb(60, 60, 60))
	p.circle(128, 100, 18, rgb(255, 140, 20))
	p.circle(128, 94, 11, rgb(255, 210, 60))
	p.circle(128, 90, 5, rgb(255, 250, 200))
	return img
}

// lavaTexture mixes molten blobs with a fixed seed.
func lavaTexture(size int, seed int64) *image.RGBA {
	p := newPainter(size, rgb(160, 40, 10))
	rng := rand.New(rand.NewSource(seed))
	palette := []color.RGBA{rgb(200, 60, 10), rgb(230, 110, 20), rgb(255, 170, 40), rgb(120, 25, 5)}

	for i := 0; i < 300; i++ {
		p.circle(rng.Intn(256), rng.Intn(256), 3+rng.Intn(12), palette[rng.Intn(len(palette))])
	}
	for i := 0; i < 40; i++ {
		p.circle(rng.Intn(256), rng.Intn(256), 2+rng.Intn(3), rgb(255, 230, 120))
	}
	return p.img
}

// doorTexture draws a panelled wooden door, half the texture wide, set in brick.
func doorTexture(size int, brickColor color.RGBA) *image.RGBA {
	img := brickTexture(size, brickColor, rgb(60, 50, 45))
	p := &painter{img: img, size: size}

	const doorStart, doorWidth = 64, 128
	p.rect(doorStart, 0, doorWidth, 256, rgb(100, 70, 45))
	p.frame(doorStart, 0, doorWidth, 256, 12, rgb(70, 50, 35))

	panel, hi, lo := rgb(85, 60, 40), rgb(120, 90, 60), rgb(50, 35, 25)
	const panelW, panelH, gap = 35, 90, 15
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			x := doorStart + 18 + col*(panelW+gap)
			y := 20 + row*(panelH+gap)
			p.rect(x, y, panelW, panelH, panel)
			p.rect(x, y, panelW, 2, hi)
			p.rect(x, y, 2, panelH, hi)
			p.rect(x+panelW-2, y, 2, panelH, lo)
			p.rect(x, y+panelH-2, panelW, 2, lo)
		}
	}

	knobX := doorStart + doorWidth - 25
	p.circle(knobX, 128, 8, rgb(180, 160, 80))
	p.circle(knobX-1, 127, 5, rgb(220, 200, 100))
	p.circle(knobX, 128, 3, rgb(100, 80, 40))
	return img
}
