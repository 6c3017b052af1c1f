// Package render paints one frame: ceiling and floor, textured wall
// columns, then billboards.
package render

import (
	"image"
	"image/color"
	"math"

	"gridcaster/internal/config"
	"gridcaster/internal/logger"
	"gridcaster/internal/mathutil"
	"gridcaster/internal/monitoring"
	"gridcaster/internal/raycast"
	"gridcaster/internal/sprite"
	"gridcaster/internal/texture"
	"gridcaster/internal/world"
)

// minDepth keeps the wall height finite for a viewer touching a wall.
const minDepth = 1e-4

// Renderer owns the canvas and the per-frame buffers.
type Renderer struct {
	width       int
	height      int
	columnWidth int
	screenDist  float64

	canvas  *image.RGBA
	caster  *raycast.Caster
	atlas   *texture.Atlas
	sprites *sprite.Compositor
	monitor *monitoring.PerformanceMonitor

	logEvery uint64
	column   []color.RGBA
	hits     []raycast.Hit
	depth    raycast.DepthBuffer
}

// NewRenderer sizes a renderer from cfg. A nil monitor gets a fresh one.
func NewRenderer(cfg *config.Config, atlas *texture.Atlas, monitor *monitoring.PerformanceMonitor) *Renderer {
	if monitor == nil {
		monitor = monitoring.NewPerformanceMonitor()
	}
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	numColumns := cfg.NumColumns()
	return &Renderer{
		width:       w,
		height:      h,
		columnWidth: cfg.Render.ColumnWidth,
		screenDist:  cfg.ScreenDist(),
		canvas:      image.NewRGBA(image.Rect(0, 0, w, h)),
		caster:      raycast.NewCaster(numColumns, cfg.FOV(), cfg.Camera.MaxDepth),
		atlas:       atlas,
		sprites:     sprite.NewCompositor(SpriteSettingsFromConfig(cfg), 64),
		monitor:     monitor,
		logEvery:    uint64(mathutil.IntMax(cfg.Render.LogEveryNFrames, 0)),
		column:      make([]color.RGBA, 0, h),
	}
}

// Canvas returns the frame buffer. It is overwritten by every RenderFrame.
func (r *Renderer) Canvas() *image.RGBA { return r.canvas }

// Hits returns the ray results of the last frame.
func (r *Renderer) Hits() []raycast.Hit { return r.hits }

// Depth returns the depth buffer of the last frame.
func (r *Renderer) Depth() raycast.DepthBuffer { return r.depth }

// Monitor returns the timing monitor.
func (r *Renderer) Monitor() *monitoring.PerformanceMonitor { return r.monitor }

// Atlas returns the texture atlas.
func (r *Renderer) Atlas() *texture.Atlas { return r.atlas }

// RenderFrame draws the view from pose. The theme binding is read once, so
// a SetTheme issued during the frame shows up on the next one.
func (r *Renderer) RenderFrame(pose raycast.Pose, grid raycast.Grid, doors world.DoorState, billboards []sprite.Billboard) *image.RGBA {
	frame := r.monitor.StartFrame()
	binding := r.atlas.Binding()

	horizon := float64(r.height)/2 + pose.Pitch
	r.fillBackground(binding, horizon)

	timer := r.monitor.Start(monitoring.StageRaycast)
	r.hits, r.depth = r.caster.CastFrame(pose, grid, doors)
	timer.End()

	timer = r.monitor.Start(monitoring.StageWalls)
	r.drawWalls(binding, horizon)
	timer.End()

	timer = r.monitor.Start(monitoring.StageSprites)
	drawn := r.sprites.Composite(r.canvas, r.depth, pose, billboards)
	timer.End()
	r.monitor.AddSpritesDrawn(drawn)

	if n := frame.EndFrame(); r.logEvery > 0 && n%r.logEvery == 0 {
		logger.Debug("frame stats", r.monitor.GetCurrentMetrics().Fields()...)
	}
	return r.canvas
}

// fillBackground paints the ceiling above the horizon and the floor below.
func (r *Renderer) fillBackground(binding *texture.ThemeBinding, horizon float64) {
	ceiling, floor := color.RGBA{A: 255}, color.RGBA{A: 255}
	if binding != nil {
		ceiling, floor = binding.Theme.Ceiling, binding.Theme.Floor
	}
	split := mathutil.IntClamp(int(math.Round(horizon)), 0, r.height)
	r.fillRows(0, split, ceiling)
	r.fillRows(split, r.height, floor)
}

func (r *Renderer) fillRows(from, to int, c color.RGBA) {
	if from >= to {
		return
	}
	stride := r.canvas.Stride
	row := r.canvas.Pix[from*stride : from*stride+r.width*4]
	for i := 0; i < len(row); i += 4 {
		row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
	}
	for y := from + 1; y < to; y++ {
		copy(r.canvas.Pix[y*stride:y*stride+r.width*4], row)
	}
}

func (r *Renderer) drawWalls(binding *texture.ThemeBinding, horizon float64) {
	if binding == nil {
		return
	}
	shading := r.atlas.Shading()
	stride := r.canvas.Stride

	for i, hit := range r.hits {
		if hit.Material == world.CellEmpty {
			continue
		}
		x0 := i * r.columnWidth
		x1 := mathutil.IntMin(x0+r.columnWidth, r.width)
		if x0 >= x1 {
			continue
		}

		depth := math.Max(hit.Depth, minDepth)
		wallHeight := r.screenDist / depth
		if wallHeight > math.MaxInt32 {
			wallHeight = math.MaxInt32
		}
		h := int(wallHeight)
		if h <= 0 {
			continue
		}
		top := int(math.Round(horizon - float64(h)/2))
		from := mathutil.IntMax(0, -top)
		to := mathutil.IntMin(h, r.height-top)
		if from >= to {
			continue
		}

		r.column = r.atlas.ColumnSpan(r.column, binding, hit.Material, hit.TexOffset, h, from, to, !hit.Vertical, shading.FogFactor(hit.Depth))
		for k, c := range r.column {
			y := top + from + k
			off := y*stride + x0*4
			for x := x0; x < x1; x++ {
				r.canvas.Pix[off], r.canvas.Pix[off+1], r.canvas.Pix[off+2], r.canvas.Pix[off+3] = c.R, c.G, c.B, c.A
				off += 4
			}
		}
	}
}
