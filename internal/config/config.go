package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate for every rejected value.
var ErrInvalid = errors.New("invalid config")

// Config holds all renderer configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Fog     FogConfig     `yaml:"fog"`
	Sprites SpriteConfig  `yaml:"sprites"`
	World   WorldConfig   `yaml:"world"`
	Logging LoggingConfig `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	FieldOfViewDeg float64 `yaml:"field_of_view_deg"`
	MaxDepth       float64 `yaml:"max_depth"`      // march length and fog distance, in cells
	MoveSpeed      float64 `yaml:"move_speed"`     // cells per ms, demo presenters only
	RotationSpeed  float64 `yaml:"rotation_speed"` // radians per ms, demo presenters only
	PitchLimit     float64 `yaml:"pitch_limit"`    // max vertical shift in pixels
}

type RenderConfig struct {
	ColumnWidth     int     `yaml:"column_width"` // canvas pixels per ray
	DarkenFactor    float64 `yaml:"darken_factor"`
	TextureSize     int     `yaml:"texture_size"`
	Theme           string  `yaml:"theme"`
	ColumnCacheSize int     `yaml:"column_cache_size"`
	LogEveryNFrames int     `yaml:"log_every_n_frames"`
}

type FogConfig struct {
	Color    [3]int  `yaml:"color"`
	Exponent float64 `yaml:"exponent"` // fog curve shape, 1 is linear
}

type SpriteConfig struct {
	MinDistance   float64 `yaml:"min_distance"`
	FOVMargin     float64 `yaml:"fov_margin"`      // radians added to the half FOV when culling
	MaxHeightMult float64 `yaml:"max_height_mult"` // cap on projected height, in screen heights
}

type WorldConfig struct {
	MapFile string     `yaml:"map_file"` // empty selects the built-in level
	StartX  float64    `yaml:"start_x"`
	StartY  float64    `yaml:"start_y"`
	Heading float64    `yaml:"heading"`
	Doors   DoorConfig `yaml:"doors"`
}

type DoorConfig struct {
	OpenSpeed    float64 `yaml:"open_speed"`     // open fraction per ms
	MaxOpen      float64 `yaml:"max_open"`       // fraction a door stops at when opening
	CloseDelayMs int     `yaml:"close_delay_ms"` // auto-close delay once fully open
	PassFraction float64 `yaml:"pass_fraction"`  // open fraction above which a door is passable
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file overrides a value.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 600,
			WindowTitle:  "gridcaster",
			Resizable:    false,
		},
		Camera: CameraConfig{
			FieldOfViewDeg: 60,
			MaxDepth:       20,
			MoveSpeed:      0.004,
			RotationSpeed:  0.002,
			PitchLimit:     200,
		},
		Render: RenderConfig{
			ColumnWidth:     2,
			DarkenFactor:    0.7,
			TextureSize:     256,
			Theme:           "dungeon",
			ColumnCacheSize: 1024,
			LogEveryNFrames: 600,
		},
		Fog: FogConfig{
			Color:    [3]int{0, 0, 0},
			Exponent: 1,
		},
		Sprites: SpriteConfig{
			MinDistance:   0.5,
			FOVMargin:     0.3,
			MaxHeightMult: 1.5,
		},
		World: WorldConfig{
			StartX:  2.5,
			StartY:  1.5,
			Heading: 0,
			Doors: DoorConfig{
				OpenSpeed:    0.003,
				MaxOpen:      0.9,
				CloseDelayMs: 3000,
				PassFraction: 0.5,
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML file on top of Default and validates the result.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads filename when it exists and falls back to Default
// when it does not. Any other read or parse error is returned.
func LoadOrDefault(filename string) (*Config, error) {
	cfg, err := LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// MustLoadConfig loads configuration and panics on failure
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the render pipeline cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Camera.FieldOfViewDeg <= 0 || c.Camera.FieldOfViewDeg >= 180:
		return fmt.Errorf("%w: field_of_view_deg %v", ErrInvalid, c.Camera.FieldOfViewDeg)
	case c.Camera.MaxDepth < 1:
		return fmt.Errorf("%w: max_depth %v", ErrInvalid, c.Camera.MaxDepth)
	case c.Render.ColumnWidth <= 0:
		return fmt.Errorf("%w: column_width %d", ErrInvalid, c.Render.ColumnWidth)
	case c.Render.DarkenFactor < 0 || c.Render.DarkenFactor > 1:
		return fmt.Errorf("%w: darken_factor %v", ErrInvalid, c.Render.DarkenFactor)
	case c.Render.TextureSize < 8:
		return fmt.Errorf("%w: texture_size %d", ErrInvalid, c.Render.TextureSize)
	case c.Fog.Exponent <= 0:
		return fmt.Errorf("%w: fog exponent %v", ErrInvalid, c.Fog.Exponent)
	case c.Sprites.MinDistance <= 0:
		return fmt.Errorf("%w: sprite min_distance %v", ErrInvalid, c.Sprites.MinDistance)
	}
	for _, ch := range c.Fog.Color {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("%w: fog color %v", ErrInvalid, c.Fog.Color)
		}
	}
	return nil
}

// GetScreenWidth returns the canvas width in pixels
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

// GetScreenHeight returns the canvas height in pixels
func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// FOV returns the horizontal field of view in radians.
func (c *Config) FOV() float64 {
	return c.Camera.FieldOfViewDeg * math.Pi / 180
}

// HalfFOV returns half the field of view in radians.
func (c *Config) HalfFOV() float64 {
	return c.FOV() / 2
}

// NumColumns returns the ray count, rounded up so the whole canvas is covered.
func (c *Config) NumColumns() int {
	w := c.Render.ColumnWidth
	if w <= 0 {
		w = 1
	}
	return (c.Display.ScreenWidth + w - 1) / w
}

// ScreenDist is the projection constant: half canvas width over tan(half FOV).
func (c *Config) ScreenDist() float64 {
	return float64(c.Display.ScreenWidth) / 2 / math.Tan(c.HalfFOV())
}
