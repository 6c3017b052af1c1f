package render

import (
	"fmt"
	"image/color"

	"gridcaster/internal/config"
	"gridcaster/internal/sprite"
	"gridcaster/internal/texture"
	"gridcaster/internal/world"
)

// ShadingFromConfig builds the lighting constants shared by walls and sprites.
func ShadingFromConfig(cfg *config.Config) texture.Shading {
	fc := cfg.Fog.Color
	return texture.Shading{
		DarkenFactor: cfg.Render.DarkenFactor,
		FogColor:     color.RGBA{R: uint8(fc[0]), G: uint8(fc[1]), B: uint8(fc[2]), A: 255},
		MaxDepth:     cfg.Camera.MaxDepth,
		FogExponent:  cfg.Fog.Exponent,
	}
}

// SpriteSettingsFromConfig builds the billboard projection constants.
func SpriteSettingsFromConfig(cfg *config.Config) sprite.Settings {
	return sprite.Settings{
		HalfFOV:         cfg.HalfFOV(),
		ScreenDist:      cfg.ScreenDist(),
		MinDistance:     cfg.Sprites.MinDistance,
		FOVMargin:       cfg.Sprites.FOVMargin,
		MaxHeightFactor: cfg.Sprites.MaxHeightMult,
		ColumnWidth:     cfg.Render.ColumnWidth,
		Shading:         ShadingFromConfig(cfg),
	}
}

// NewAtlas creates an atlas and binds the configured theme.
func NewAtlas(cfg *config.Config) (*texture.Atlas, error) {
	atlas := texture.NewAtlas(ShadingFromConfig(cfg), cfg.Render.TextureSize, cfg.Render.ColumnCacheSize)
	if err := atlas.SetTheme(cfg.Render.Theme); err != nil {
		return nil, fmt.Errorf("binding theme: %w", err)
	}
	return atlas, nil
}

// LoadWorld returns the configured map, or the built-in level when no
// map file is set, along with a door manager for it.
func LoadWorld(cfg *config.Config) (*world.Grid, *world.DoorManager, error) {
	grid := world.DefaultLevel()
	if cfg.World.MapFile != "" {
		loaded, err := world.LoadMap(cfg.World.MapFile)
		if err != nil {
			return nil, nil, err
		}
		grid = loaded
	}
	return grid, world.NewDoorManager(grid, DoorSettingsFromConfig(cfg)), nil
}

// DoorSettingsFromConfig converts the door section of the config.
func DoorSettingsFromConfig(cfg *config.Config) world.DoorSettings {
	d := cfg.World.Doors
	return world.DoorSettings{
		OpenSpeed:    d.OpenSpeed,
		MaxOpen:      d.MaxOpen,
		CloseDelayMs: float64(d.CloseDelayMs),
		PassFraction: d.PassFraction,
	}
}
