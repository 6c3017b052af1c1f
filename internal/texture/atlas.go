// Package texture samples wall and door textures for the ray caster.
//
// The atlas holds one ThemeBinding at a time. A binding is replaced as a
// whole between frames, so a frame never observes a half-swapped theme.
package texture

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"gridcaster/internal/logger"
	"gridcaster/internal/world"

	"go.uber.org/zap"
)

// ErrUnknownTheme is returned by SetTheme for names without a generator.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeBinding is the active theme plus a generation number that changes
// on every bind, used to key cached columns.
type ThemeBinding struct {
	Theme      *Theme
	Generation uint64
}

// Atlas resolves material columns against the bound theme.
type Atlas struct {
	binding    atomic.Pointer[ThemeBinding]
	generation atomic.Uint64
	shading    Shading
	cache      *ColumnCache

	// built themes by name, generated at most once each
	mu          sync.Mutex
	themes      map[string]*Theme
	textureSize int
}

// NewAtlas creates an atlas with no bound theme.
// textureSize is the edge length used when SetTheme generates a theme.
func NewAtlas(shading Shading, textureSize, cacheSize int) *Atlas {
	return &Atlas{
		shading:     shading,
		cache:       NewColumnCache(cacheSize),
		themes:      make(map[string]*Theme),
		textureSize: textureSize,
	}
}

// Shading returns the lighting constants used by Column.
func (a *Atlas) Shading() Shading { return a.shading }

// Bind makes theme the active set in one atomic swap.
func (a *Atlas) Bind(theme *Theme) {
	gen := a.generation.Add(1)
	a.binding.Store(&ThemeBinding{Theme: theme, Generation: gen})
}

// Binding returns the current binding, or nil before the first Bind.
// Callers read it once per frame and use that value throughout.
func (a *Atlas) Binding() *ThemeBinding {
	return a.binding.Load()
}

// Theme returns the bound theme, or nil.
func (a *Atlas) Theme() *Theme {
	if b := a.binding.Load(); b != nil {
		return b.Theme
	}
	return nil
}

// SetTheme binds a procedurally generated theme by name, generating it on
// first use.
func (a *Atlas) SetTheme(name string) error {
	a.mu.Lock()
	theme, ok := a.themes[name]
	if !ok {
		gen, known := generators[name]
		if !known {
			a.mu.Unlock()
			return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
		}
		var err error
		theme, err = gen(a.textureSize)
		if err != nil {
			a.mu.Unlock()
			return fmt.Errorf("building theme %q: %w", name, err)
		}
		a.themes[name] = theme
	}
	a.mu.Unlock()

	a.Bind(theme)
	logger.Info("theme bound", zap.String("theme", name), zap.Int("texture_size", theme.Size()))
	return nil
}

// Runner runs fn(i) for i in [start, end), possibly in parallel, and
// returns once every call has finished or ctx is done.
type Runner interface {
	ParallelForWithContext(ctx context.Context, start, end int, fn func(int))
}

// Prewarm generates the named themes that are not built yet without
// binding any of them. Generation fans out over runner.
func (a *Atlas) Prewarm(ctx context.Context, runner Runner, names ...string) error {
	a.mu.Lock()
	var missing []string
	for _, name := range names {
		if _, ok := a.themes[name]; ok {
			continue
		}
		if _, ok := generators[name]; !ok {
			a.mu.Unlock()
			return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
		}
		missing = append(missing, name)
	}
	a.mu.Unlock()

	built := make([]*Theme, len(missing))
	errs := make([]error, len(missing))
	runner.ParallelForWithContext(ctx, 0, len(missing), func(i int) {
		built[i], errs[i] = generators[missing[i]](a.textureSize)
	})
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i, name := range missing {
		if errs[i] != nil {
			return fmt.Errorf("building theme %q: %w", name, errs[i])
		}
		if built[i] == nil {
			continue
		}
		if _, ok := a.themes[name]; !ok {
			a.themes[name] = built[i]
		}
	}
	logger.Debug("themes prewarmed", zap.Strings("themes", missing))
	return nil
}

// Column returns the texel column for material at offset, resampled to
// height pixels with the given shading. It returns nil for CellEmpty,
// height <= 0 or when no theme is bound.
func (a *Atlas) Column(material world.Cell, offset float64, height int, darken bool, fog float64) []color.RGBA {
	return a.ColumnSpan(nil, a.Binding(), material, offset, height, 0, height, darken, fog)
}

// ColumnSpan writes rows [from, to) of the height-pixel column into dst
// (reusing its capacity) and returns it. Rows outside [0, height) are
// clipped. Frame code uses this to sample only the on-screen part of
// walls that are taller than the canvas.
func (a *Atlas) ColumnSpan(dst []color.RGBA, b *ThemeBinding, material world.Cell, offset float64, height, from, to int, darken bool, fog float64) []color.RGBA {
	dst = dst[:0]
	if b == nil || height <= 0 {
		return nil
	}
	src := a.sourceColumn(b, material, offset)
	if src == nil {
		return nil
	}
	if from < 0 {
		from = 0
	}
	if to > height {
		to = height
	}
	size := len(src)
	for row := from; row < to; row++ {
		texY := row * size / height
		dst = append(dst, a.shading.Apply(src[texY], darken, fog))
	}
	return dst
}

// TexelX maps an offset fraction to a texel column: floor(offset*size) mod size.
func TexelX(offset float64, size int) int {
	x := int(offset*float64(size)) % size
	if x < 0 {
		x += size
	}
	return x
}

// sourceColumn returns the unshaded texel column, cached per binding.
func (a *Atlas) sourceColumn(b *ThemeBinding, material world.Cell, offset float64) []color.RGBA {
	img := b.Theme.Image(material)
	if img == nil {
		return nil
	}
	size := b.Theme.Size()
	texX := TexelX(offset, size)

	key := ColumnKey{Generation: b.Generation, Material: material, TexX: texX}
	return a.cache.GetOrCreate(key, func() []color.RGBA {
		col := make([]color.RGBA, size)
		minX, minY := img.Bounds().Min.X, img.Bounds().Min.Y
		for y := 0; y < size; y++ {
			col[y] = img.RGBAAt(minX+texX, minY+y)
		}
		return col
	})
}
