package stamp

import (
	"github.com/gogpu/stamp/internal/cache"
	"github.com/gogpu/stamp/pixbuf"
)

// DefaultStampCacheLimit is the soft limit used when NewStampCache is
// given a non-positive limit.
const DefaultStampCacheLimit = 64

// stampKey identifies one rendering of a brush. size is the rasterized
// size for procedural kinds and zero for image stamps.
type stampKey struct {
	brush *Brush
	gen   Generation
	size  int
}

// StampCache hands out stamp snapshots that callers may keep for as long
// as they like, unlike the borrowed buffers returned by Brush.Image.
//
// Entries are keyed on (brush, generation, size), so any change that
// gives the brush a new generation makes older snapshots unreachable;
// they age out of the cache's LRU. StampCache is safe for concurrent use,
// but the brushes passed to it are not.
type StampCache struct {
	entries *cache.Cache[stampKey, *pixbuf.Buf]
}

// NewStampCache creates a cache holding about limit snapshots.
func NewStampCache(limit int) *StampCache {
	if limit <= 0 {
		limit = DefaultStampCacheLimit
	}
	return &StampCache{entries: cache.New[stampKey, *pixbuf.Buf](limit)}
}

// Stamp returns a snapshot of b's stamp at the given preview scale.
// The snapshot must be treated as read-only: it is shared by every caller
// asking for the same (brush, generation, size).
//
// Procedural masks are rasterized directly with GenerateMask, so taking a
// snapshot never changes the brush. Image stamps ignore scale and copy
// the current image; nil is returned for an image brush without one.
func (c *StampCache) Stamp(b *Brush, scale float64) *pixbuf.Buf {
	size := 0
	if b.Kind().IsProcedural() {
		size = scaledSize(b.Size(), scale)
	}

	key := stampKey{brush: b, gen: b.Generation(), size: size}
	return c.entries.GetOrCreate(key, func() *pixbuf.Buf {
		if size > 0 {
			return GenerateMask(b.Kind(), size, b.Angle())
		}
		if img := b.Image(); img != nil {
			return img.Clone()
		}
		return nil
	})
}

// Forget drops every snapshot of b, whatever its generation.
func (c *StampCache) Forget(b *Brush) int {
	return c.entries.DeleteFunc(func(k stampKey) bool { return k.brush == b })
}

// Len returns the number of cached snapshots.
func (c *StampCache) Len() int {
	return c.entries.Len()
}

// Clear drops all snapshots.
func (c *StampCache) Clear() {
	c.entries.Clear()
}
