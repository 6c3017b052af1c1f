// Package game is the demo collaborator around the renderer: it owns the
// viewer, the doors and the props, and turns presenter input into frames.
package game

import (
	"context"
	"fmt"
	"image"

	"gridcaster/internal/collision"
	"gridcaster/internal/config"
	"gridcaster/internal/logger"
	"gridcaster/internal/monitoring"
	"gridcaster/internal/render"
	"gridcaster/internal/sprite"
	"gridcaster/internal/texture"
	"gridcaster/internal/threading"
	"gridcaster/internal/world"

	"go.uber.org/zap"
)

const (
	viewerID   = "viewer"
	viewerSize = 0.4
	propSize   = 0.5
	// pitchSpeed is the look speed in screen pixels per ms.
	pitchSpeed = 0.4
)

// Input is one frame of presenter-neutral controls. Interact and
// NextTheme are edges; the rest are held states.
type Input struct {
	Forward, Backward       bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
	LookUp, LookDown        bool
	Interact                bool
	NextTheme               bool
}

// Session is one running demo level.
type Session struct {
	cfg       *config.Config
	grid      *world.Grid
	doors     *world.DoorManager
	atlas     *texture.Atlas
	renderer  *render.Renderer
	collision *collision.CollisionSystem
	camera    FirstPersonCamera

	props      []*Prop
	billboards []sprite.Billboard
	themes     []string
	themeIdx   int
}

// NewSession loads the configured world, generates every theme in
// parallel and binds the configured one.
func NewSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	grid, doors, err := render.LoadWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	themes := texture.ThemeNames()
	atlas := texture.NewAtlas(render.ShadingFromConfig(cfg), cfg.Render.TextureSize, cfg.Render.ColumnCacheSize)
	pool := threading.NewWorkerPool(len(themes))
	pool.Start()
	err = atlas.Prewarm(ctx, pool, themes...)
	pool.Stop()
	if err != nil {
		return nil, fmt.Errorf("generating themes: %w", err)
	}
	if err := atlas.SetTheme(cfg.Render.Theme); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:       cfg,
		grid:      grid,
		doors:     doors,
		atlas:     atlas,
		renderer:  render.NewRenderer(cfg, atlas, monitoring.NewPerformanceMonitor()),
		collision: collision.NewCollisionSystem(world.NewWalkability(grid, doors)),
		camera: FirstPersonCamera{
			X:          cfg.World.StartX,
			Y:          cfg.World.StartY,
			Angle:      cfg.World.Heading,
			PitchLimit: cfg.Camera.PitchLimit,
		},
		themes: themes,
	}
	for i, name := range themes {
		if name == cfg.Render.Theme {
			s.themeIdx = i
		}
	}

	s.collision.RegisterEntity(collision.NewEntity(viewerID, s.camera.X, s.camera.Y, viewerSize, true))
	for _, p := range defaultProps() {
		if !grid.AtPoint(p.Billboard.X, p.Billboard.Y).IsEmpty() {
			continue
		}
		s.props = append(s.props, p)
		if p.Solid {
			s.collision.RegisterEntity(collision.NewEntity(p.Name, p.Billboard.X, p.Billboard.Y, propSize, true))
		}
	}
	s.billboards = make([]sprite.Billboard, 0, len(s.props))

	logger.Info("session ready",
		zap.Int("map_width", grid.Width()),
		zap.Int("map_height", grid.Height()),
		zap.Int("doors", doors.Len()),
		zap.Int("props", len(s.props)),
		zap.String("theme", cfg.Render.Theme))
	return s, nil
}

// Update advances the session by dtMs milliseconds.
func (s *Session) Update(dtMs float64, in Input) {
	cam := &s.camera

	if in.TurnLeft {
		cam.Rotate(-s.cfg.Camera.RotationSpeed * dtMs)
	}
	if in.TurnRight {
		cam.Rotate(s.cfg.Camera.RotationSpeed * dtMs)
	}
	if in.LookUp {
		cam.Look(pitchSpeed * dtMs)
	}
	if in.LookDown {
		cam.Look(-pitchSpeed * dtMs)
	}

	speed := s.cfg.Camera.MoveSpeed * dtMs
	fx, fy := cam.Forward()
	rx, ry := cam.Right()
	var dx, dy float64
	if in.Forward {
		dx, dy = dx+fx*speed, dy+fy*speed
	}
	if in.Backward {
		dx, dy = dx-fx*speed, dy-fy*speed
	}
	if in.StrafeLeft {
		dx, dy = dx-rx*speed, dy-ry*speed
	}
	if in.StrafeRight {
		dx, dy = dx+rx*speed, dy+ry*speed
	}
	if dx != 0 || dy != 0 {
		cam.X, cam.Y = s.collision.Move(viewerID, dx, dy)
	}

	if in.Interact && s.doors.Interact(cam.X, cam.Y, cam.Angle) {
		logger.Debug("door toggled", zap.Float64("x", cam.X), zap.Float64("y", cam.Y))
	}
	if in.NextTheme {
		if err := s.CycleTheme(); err != nil {
			logger.Error("theme switch failed", zap.Error(err))
		}
	}

	s.doors.Update(dtMs)
	for _, p := range s.props {
		p.update(dtMs)
	}
}

// Teleport places the viewer at (x, y) without collision checks.
func (s *Session) Teleport(x, y float64) {
	s.camera.X, s.camera.Y = x, y
	if e := s.collision.GetEntityByID(viewerID); e != nil {
		e.BoundingBox.MoveTo(x, y)
	}
}

// CycleTheme binds the next theme. The swap is visible from the next frame.
func (s *Session) CycleTheme() error {
	next := (s.themeIdx + 1) % len(s.themes)
	if err := s.atlas.SetTheme(s.themes[next]); err != nil {
		return err
	}
	s.themeIdx = next
	return nil
}

// Render draws the current view and returns the canvas.
func (s *Session) Render() *image.RGBA {
	s.billboards = s.billboards[:0]
	for _, p := range s.props {
		s.billboards = append(s.billboards, p.Billboard)
	}
	return s.renderer.RenderFrame(s.camera.Pose(), s.grid, s.doors, s.billboards)
}

// Camera returns the viewer.
func (s *Session) Camera() *FirstPersonCamera { return &s.camera }

// Theme returns the bound theme name.
func (s *Session) Theme() string { return s.themes[s.themeIdx] }

// Renderer returns the frame renderer.
func (s *Session) Renderer() *render.Renderer { return s.renderer }

// Doors returns the level's door manager.
func (s *Session) Doors() *world.DoorManager { return s.doors }

// Props returns the placed props.
func (s *Session) Props() []*Prop { return s.props }
