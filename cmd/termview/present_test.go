package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

// recordingScreen keeps what was drawn, keyed by cell position.
type recordingScreen struct {
	width, height int
	cells         map[[2]int]cell
}

func newRecordingScreen(w, h int) *recordingScreen {
	return &recordingScreen{width: w, height: h, cells: make(map[[2]int]cell)}
}

func (s *recordingScreen) Size() (int, int) { return s.width, s.height }

func (s *recordingScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = cell{r: mainc, style: style}
}

func TestCanvasSize(t *testing.T) {
	w, h := canvasSize(80, 24)
	if w != 80 || h != 48 {
		t.Errorf("canvasSize(80, 24) = %dx%d, want 80x48", w, h)
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	screen := newRecordingScreen(4, 2)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, color.RGBA{255, 0, 0, 255})
		img.SetRGBA(x, 1, color.RGBA{0, 0, 255, 255})
	}

	drawHalfBlocks(screen, img)

	if len(screen.cells) != 8 {
		t.Fatalf("drew %d cells, want 8", len(screen.cells))
	}
	got := screen.cells[[2]int{2, 0}]
	if got.r != halfBlock {
		t.Errorf("rune = %q, want %q", got.r, halfBlock)
	}
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)).Background(tcell.NewRGBColor(0, 0, 255))
	if got.style != want {
		t.Errorf("top row style = %v, want red over blue", got.style)
	}

	black := tcell.NewRGBColor(0, 0, 0)
	if got := screen.cells[[2]int{0, 1}].style; got != tcell.StyleDefault.Foreground(black).Background(black) {
		t.Errorf("second row style = %v, want black", got)
	}
}

func TestDrawHalfBlocksClipsToScreen(t *testing.T) {
	screen := newRecordingScreen(2, 1)
	drawHalfBlocks(screen, image.NewRGBA(image.Rect(0, 0, 5, 5)))
	if len(screen.cells) != 2 {
		t.Errorf("drew %d cells, want 2", len(screen.cells))
	}
}

func TestInputForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want func(quit, forward, turnLeft, interact, theme bool) bool
	}{
		{"escape quits", tcell.KeyEscape, 0, func(q, f, l, i, th bool) bool { return q }},
		{"arrow up walks", tcell.KeyUp, 0, func(q, f, l, i, th bool) bool { return !q && f }},
		{"a turns left", tcell.KeyRune, 'a', func(q, f, l, i, th bool) bool { return l && !f }},
		{"space interacts", tcell.KeyRune, ' ', func(q, f, l, i, th bool) bool { return i }},
		{"t switches theme", tcell.KeyRune, 't', func(q, f, l, i, th bool) bool { return th }},
		{"unmapped rune is idle", tcell.KeyRune, 'z', func(q, f, l, i, th bool) bool { return !q && !f && !l && !i && !th }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, quit := inputForKey(tt.key, tt.r)
			if !tt.want(quit, in.Forward, in.TurnLeft, in.Interact, in.NextTheme) {
				t.Errorf("inputForKey(%v, %q) = %+v, quit=%v", tt.key, tt.r, in, quit)
			}
		})
	}
}
