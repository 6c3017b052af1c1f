package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 200, G: 10, B: 20, A: 255})
	return img
}

func TestWritePNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, testImage()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Fatalf("bounds = %v", decoded.Bounds())
	}
	r, g, b, a := decoded.At(1, 2).RGBA()
	if r>>8 != 200 || g>>8 != 10 || b>>8 != 20 || a>>8 != 255 {
		t.Errorf("pixel = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestCaptureNamesDoNotCollide(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := NewCapture(dir, "frame")
	fixed := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	first, err := c.Save(testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := c.Save(testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if first != filepath.Join(dir, "frame_2024-05-01_12-30-00.png") {
		t.Errorf("first = %s", first)
	}
	if second == first {
		t.Fatal("second capture overwrote the first")
	}
	for _, p := range []string{first, second} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
}

func TestWritePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := WritePNG(path, testImage()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestWriteImagePicksEncoder(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file   string
		decode func(io.Reader) (image.Image, error)
	}{
		{"frame.bmp", bmp.Decode},
		{"frame.BMP", bmp.Decode},
		{"frame.png", png.Decode},
		{"frame", png.Decode},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := WriteImage(path, testImage()); err != nil {
				t.Fatalf("WriteImage: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := img.At(1, 2).RGBA()
			if r>>8 != 200 || g>>8 != 10 || b>>8 != 20 {
				t.Errorf("pixel (1,2) = %d,%d,%d", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 40))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	Label(img, "hello")

	var dark, white int
	for y := 0; y < 19; y++ {
		for x := 0; x < 41; x++ {
			c := img.RGBAAt(x, y)
			switch {
			case c.R == 255 && c.G == 255 && c.B == 255:
				white++
			case c.R < 255:
				dark++
			}
		}
	}
	if dark == 0 || white == 0 {
		t.Errorf("label strip has %d dark and %d white pixels, want both", dark, white)
	}
	if c := img.RGBAAt(100, 30); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel outside the label changed to %v", c)
	}

	before := append([]byte(nil), img.Pix...)
	Label(img, "")
	if string(before) != string(img.Pix) {
		t.Error("empty label changed the image")
	}
}
