// Package monitoring records per-frame render timings.
package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Stage names one timed part of a frame.
type Stage int

const (
	StageRaycast Stage = iota
	StageWalls
	StageSprites
	stageCount
)

func (s Stage) String() string {
	switch s {
	case StageRaycast:
		return "raycast"
	case StageWalls:
		return "walls"
	case StageSprites:
		return "sprites"
	default:
		return "unknown"
	}
}

// smoothing is the weight of the newest sample in the moving averages.
const smoothing = 0.1

// PerformanceMonitor tracks frame and stage timings. Counters are atomic so
// a presenter goroutine can read metrics while the render loop writes them.
type PerformanceMonitor struct {
	frameCount   atomic.Uint64
	frameTime    atomic.Uint64 // nanoseconds, last frame
	stageTime    [stageCount]atomic.Uint64
	spritesDrawn atomic.Uint64

	mutex        sync.RWMutex
	avgFrameTime float64
	avgStageTime [stageCount]float64
	startTime    time.Time

	enableDetailed bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// FrameTimer measures one whole frame.
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing and returns the frame number.
func (ft *FrameTimer) EndFrame() uint64 {
	frameTime := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	count := ft.monitor.frameCount.Add(1)

	if ft.monitor.detailed() {
		ft.monitor.mutex.Lock()
		ft.monitor.avgFrameTime = average(ft.monitor.avgFrameTime, float64(frameTime.Nanoseconds()), count)
		ft.monitor.mutex.Unlock()
	}
	return count
}

// StageTimer measures one stage within a frame.
type StageTimer struct {
	monitor   *PerformanceMonitor
	stage     Stage
	startTime time.Time
}

// Start begins timing a stage.
func (pm *PerformanceMonitor) Start(stage Stage) StageTimer {
	return StageTimer{monitor: pm, stage: stage, startTime: time.Now()}
}

// End completes stage timing.
func (st StageTimer) End() {
	st.monitor.Record(st.stage, time.Since(st.startTime))
}

// Record stores a stage duration measured elsewhere.
func (pm *PerformanceMonitor) Record(stage Stage, d time.Duration) {
	if stage < 0 || stage >= stageCount {
		return
	}
	pm.stageTime[stage].Store(uint64(d.Nanoseconds()))

	if pm.detailed() {
		pm.mutex.Lock()
		pm.avgStageTime[stage] = average(pm.avgStageTime[stage], float64(d.Nanoseconds()), pm.frameCount.Load()+1)
		pm.mutex.Unlock()
	}
}

// AddSpritesDrawn counts billboards that passed culling.
func (pm *PerformanceMonitor) AddSpritesDrawn(n int) {
	if n > 0 {
		pm.spritesDrawn.Add(uint64(n))
	}
}

// FrameMetrics is a snapshot of the monitor.
type FrameMetrics struct {
	FrameCount      uint64
	FramesPerSecond float64
	LastFrame       time.Duration
	AvgFrame        time.Duration
	LastStage       [stageCount]time.Duration
	AvgStage        [stageCount]time.Duration
	SpritesDrawn    uint64
	MemoryUsageMB   uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m := FrameMetrics{
		FrameCount:      pm.frameCount.Load(),
		FramesPerSecond: fps,
		LastFrame:       time.Duration(frameTime),
		AvgFrame:        time.Duration(pm.avgFrameTime),
		SpritesDrawn:    pm.spritesDrawn.Load(),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
	for i := range m.LastStage {
		m.LastStage[i] = time.Duration(pm.stageTime[i].Load())
		m.AvgStage[i] = time.Duration(pm.avgStageTime[i])
	}
	return m
}

// Fields renders the metrics as structured log fields.
func (m FrameMetrics) Fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("frame", m.FrameCount),
		zap.Float64("fps", m.FramesPerSecond),
		zap.Duration("avg_frame", m.AvgFrame),
		zap.Duration("avg_raycast", m.AvgStage[StageRaycast]),
		zap.Duration("avg_walls", m.AvgStage[StageWalls]),
		zap.Duration("avg_sprites", m.AvgStage[StageSprites]),
		zap.Uint64("sprites_drawn", m.SpritesDrawn),
		zap.Uint64("memory_mb", m.MemoryUsageMB),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts reports a frame rate below minFPS.
func (pm *PerformanceMonitor) CheckPerformanceAlerts(minFPS float64) []PerformanceAlert {
	var alerts []PerformanceAlert

	frameTime := pm.frameTime.Load()
	if frameTime > 0 {
		fps := float64(time.Second) / float64(frameTime)
		if fps < minFPS {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "frame rate below threshold",
				Value:     fps,
				Threshold: minFPS,
				Timestamp: time.Now(),
			})
		}
	}
	return alerts
}

// EnableDetailedLogging enables/disables the moving averages.
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Uptime returns the time since creation or the last Reset.
func (pm *PerformanceMonitor) Uptime() time.Duration {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return time.Since(pm.startTime)
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.spritesDrawn.Store(0)
	for i := range pm.stageTime {
		pm.stageTime[i].Store(0)
	}

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgStageTime = [stageCount]float64{}
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}

func (pm *PerformanceMonitor) detailed() bool {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return pm.enableDetailed
}

// average seeds with the first sample, then applies exponential smoothing.
func average(prev, sample float64, n uint64) float64 {
	if n <= 1 || prev == 0 {
		return sample
	}
	return prev + (sample-prev)*smoothing
}
