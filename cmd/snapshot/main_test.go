package main

import (
	"context"
	"math"
	"testing"

	"gridcaster/internal/config"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Display.ScreenWidth = 64
	cfg.Display.ScreenHeight = 40
	cfg.Render.TextureSize = 16
	return cfg
}

func TestRenderView(t *testing.T) {
	start := view{x: math.NaN(), y: math.NaN()}

	tests := []struct {
		name string
		v    view
	}{
		{"start position", start},
		{"hell theme", view{x: math.NaN(), y: math.NaN(), theme: "hell"}},
		{"facing an open door", view{x: 5.5, y: 2.5, openDoors: true}},
		{"looking up", view{x: 2.5, y: 2.5, headingDeg: 90, pitch: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, caption, err := renderView(context.Background(), smallConfig(), tt.v)
			if err != nil {
				t.Fatalf("renderView: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 40 {
				t.Errorf("frame %v, want 64x40", b)
			}
			if caption == "" {
				t.Error("empty caption")
			}
		})
	}
}

func TestRenderViewOpenDoorShowsDepth(t *testing.T) {
	closed, _, err := renderView(context.Background(), smallConfig(), view{x: 5.5, y: 2.5})
	if err != nil {
		t.Fatal(err)
	}
	closedPix := append([]byte(nil), closed.Pix...)

	open, _, err := renderView(context.Background(), smallConfig(), view{x: 5.5, y: 2.5, openDoors: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(closedPix) == string(open.Pix) {
		t.Error("opening the door in view did not change the frame")
	}
}

func TestRenderViewCaption(t *testing.T) {
	_, caption, err := renderView(context.Background(), smallConfig(), view{x: 5.5, y: 2.5, headingDeg: 90, theme: "industrial"})
	if err != nil {
		t.Fatal(err)
	}
	if want := "industrial x=5.50 y=2.50 heading=90"; caption != want {
		t.Errorf("caption = %q, want %q", caption, want)
	}
}

func TestRenderViewUnknownTheme(t *testing.T) {
	if _, _, err := renderView(context.Background(), smallConfig(), view{x: math.NaN(), y: math.NaN(), theme: "swamp"}); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
