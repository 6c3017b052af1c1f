package main

import (
	"image"

	"gridcaster/internal/game"

	"github.com/gdamore/tcell/v2"
)

// halfBlock puts two canvas rows in one terminal cell: the upper pixel is
// the foreground of the glyph, the lower pixel the background.
const halfBlock = '▀'

// keyStepMs is how far one key press advances the session.
const keyStepMs = 60

// canvasSize returns the canvas that fills a terminal of cols x rows cells.
func canvasSize(cols, rows int) (int, int) {
	return cols, rows * 2
}

// cellScreen is the part of tcell.Screen the presenter draws through.
type cellScreen interface {
	Size() (int, int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// drawHalfBlocks copies img to the screen, two pixel rows per cell row.
func drawHalfBlocks(screen cellScreen, img *image.RGBA) {
	b := img.Bounds()
	cols, rows := screen.Size()
	for cy := 0; cy < rows && cy*2 < b.Dy(); cy++ {
		for cx := 0; cx < cols && cx < b.Dx(); cx++ {
			top := pixel(img, cx, cy*2)
			bottom := top
			if cy*2+1 < b.Dy() {
				bottom = pixel(img, cx, cy*2+1)
			}
			screen.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func pixel(img *image.RGBA, x, y int) tcell.Color {
	i := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
	return tcell.NewRGBColor(int32(img.Pix[i]), int32(img.Pix[i+1]), int32(img.Pix[i+2]))
}

// inputForKey maps a key press to one step of session input. The second
// result reports a quit request.
func inputForKey(key tcell.Key, r rune) (game.Input, bool) {
	var in game.Input
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return in, true
	case tcell.KeyUp:
		in.Forward = true
	case tcell.KeyDown:
		in.Backward = true
	case tcell.KeyLeft:
		in.TurnLeft = true
	case tcell.KeyRight:
		in.TurnRight = true
	case tcell.KeyPgUp:
		in.LookUp = true
	case tcell.KeyPgDn:
		in.LookDown = true
	case tcell.KeyRune:
		switch r {
		case 'w':
			in.Forward = true
		case 's':
			in.Backward = true
		case 'a':
			in.TurnLeft = true
		case 'd':
			in.TurnRight = true
		case 'q':
			in.StrafeLeft = true
		case 'e':
			in.StrafeRight = true
		case ' ':
			in.Interact = true
		case 't':
			in.NextTheme = true
		}
	}
	return in, false
}
