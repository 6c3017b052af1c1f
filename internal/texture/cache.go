package texture

import (
	"image/color"
	"sync"

	"gridcaster/internal/world"
)

// ColumnKey identifies one unshaded source column.
type ColumnKey struct {
	Generation uint64     // theme binding generation the column was read from
	Material   world.Cell // material id
	TexX       int        // texel column
}

// ColumnCache keeps extracted texel columns contiguous in memory so the
// per-pixel resampling loop does not stride through the source image.
// Eviction is FIFO in batches down to three quarters of the limit.
type ColumnCache struct {
	cache      map[ColumnKey][]color.RGBA
	mutex      sync.RWMutex
	cacheOrder []ColumnKey
	maxSize    int
	targetSize int
}

// NewColumnCache creates a cache holding at most maxSize columns.
func NewColumnCache(maxSize int) *ColumnCache {
	if maxSize < 4 {
		maxSize = 4
	}
	return &ColumnCache{
		cache:      make(map[ColumnKey][]color.RGBA, maxSize),
		cacheOrder: make([]ColumnKey, 0, maxSize),
		maxSize:    maxSize,
		targetSize: maxSize * 3 / 4,
	}
}

// GetOrCreate returns the cached column for key, calling createFunc on a miss.
func (cc *ColumnCache) GetOrCreate(key ColumnKey, createFunc func() []color.RGBA) []color.RGBA {
	cc.mutex.RLock()
	if col, exists := cc.cache[key]; exists {
		cc.mutex.RUnlock()
		return col
	}
	cc.mutex.RUnlock()

	col := createFunc()

	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if cached, exists := cc.cache[key]; exists {
		return cached
	}

	if len(cc.cache) >= cc.maxSize {
		evictCount := len(cc.cacheOrder) - cc.targetSize
		if evictCount > 0 && evictCount <= len(cc.cacheOrder) {
			for i := 0; i < evictCount; i++ {
				delete(cc.cache, cc.cacheOrder[i])
			}
			cc.cacheOrder = append(cc.cacheOrder[:0], cc.cacheOrder[evictCount:]...)
		}
	}

	cc.cache[key] = col
	cc.cacheOrder = append(cc.cacheOrder, key)
	return col
}

// Len returns the number of cached columns.
func (cc *ColumnCache) Len() int {
	cc.mutex.RLock()
	defer cc.mutex.RUnlock()
	return len(cc.cache)
}

// Clear drops every cached column.
func (cc *ColumnCache) Clear() {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()
	clear(cc.cache)
	cc.cacheOrder = cc.cacheOrder[:0]
}
