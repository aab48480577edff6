package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"sync"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixbuf: invalid format")
)

// Pixel is a packed sample whose layout depends on the buffer format.
// See the Format constants for the encodings.
type Pixel uint32

// Buf is a pixel buffer in one of the supported formats.
//
// Single pixel access (At, Set) and the drawing primitives are unlocked.
// ReadPixels and WritePixels hold the buffer lock for the whole iteration,
// so a scan is never interleaved with another locked scan.
type Buf struct {
	mu sync.RWMutex

	data   []byte
	width  int
	height int
	stride int
	format Format

	// Indexed only.
	maskIndex uint8
	palette   color.Palette
}

// New creates a new buffer with the given dimensions and format.
// All samples start at zero, which is transparent in every format.
func New(width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer, palette included.
func (b *Buf) Clone() *Buf {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data := make([]byte, len(b.data))
	copy(data, b.data)

	var pal color.Palette
	if b.palette != nil {
		pal = make(color.Palette, len(b.palette))
		copy(pal, b.palette)
	}

	return &Buf{
		data:      data,
		width:     b.width,
		height:    b.height,
		stride:    b.stride,
		format:    b.format,
		maskIndex: b.maskIndex,
		palette:   pal,
	}
}

// Width returns the buffer width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *Buf) Format() Format {
	return b.format
}

// Rect returns the buffer dimensions anchored at the origin.
func (b *Buf) Rect() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Stride returns the number of bytes per row.
func (b *Buf) Stride() int {
	return b.stride
}

// Data returns the raw sample bytes.
func (b *Buf) Data() []byte {
	return b.data
}

// MaskIndex returns the palette index treated as transparent.
// Only meaningful for FormatIndexed.
func (b *Buf) MaskIndex() uint8 {
	return b.maskIndex
}

// SetMaskIndex sets the palette index treated as transparent.
func (b *Buf) SetMaskIndex(i uint8) {
	b.maskIndex = i
}

// Palette returns the palette attached to an indexed buffer, or nil.
func (b *Buf) Palette() color.Palette {
	return b.palette
}

// SetPalette attaches a palette to an indexed buffer. The palette is used
// only for conversions; indices are never validated against it.
func (b *Buf) SetPalette(p color.Palette) {
	b.palette = p
}

// TransparentPixel returns the format's transparent encoding.
func (b *Buf) TransparentPixel() Pixel {
	if b.format == FormatIndexed {
		return Pixel(b.maskIndex)
	}
	return 0
}

// IsTransparent reports whether p is transparent-like in this buffer:
// alpha below full opacity, the mask index, or an "off" bitmap sample.
func (b *Buf) IsTransparent(p Pixel) bool {
	switch b.format {
	case FormatIndexed:
		return p == Pixel(b.maskIndex)
	case FormatBitmap:
		return p == 0
	default:
		am := b.format.Info().AlphaMask
		return p&am != am
	}
}

// offset returns the byte offset of pixel (x, y), or -1 when outside.
func (b *Buf) offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

func (b *Buf) load(off int) Pixel {
	switch b.format {
	case FormatRGBA:
		d := b.data[off : off+4 : off+4]
		return Pixel(d[0]) | Pixel(d[1])<<8 | Pixel(d[2])<<16 | Pixel(d[3])<<24
	case FormatGrayA:
		return Pixel(b.data[off]) | Pixel(b.data[off+1])<<8
	default:
		return Pixel(b.data[off])
	}
}

func (b *Buf) store(off int, p Pixel) {
	switch b.format {
	case FormatRGBA:
		d := b.data[off : off+4 : off+4]
		d[0] = byte(p)
		d[1] = byte(p >> 8)
		d[2] = byte(p >> 16)
		d[3] = byte(p >> 24)
	case FormatGrayA:
		b.data[off] = byte(p)
		b.data[off+1] = byte(p >> 8)
	case FormatBitmap:
		b.data[off] = byte(p & 1)
	default:
		b.data[off] = byte(p)
	}
}

// At returns the pixel at (x, y).
// Returns the transparent encoding for coordinates outside the buffer.
func (b *Buf) At(x, y int) Pixel {
	off := b.offset(x, y)
	if off < 0 {
		return b.TransparentPixel()
	}
	return b.load(off)
}

// Set sets the pixel at (x, y). Coordinates outside the buffer are ignored.
func (b *Buf) Set(x, y int, p Pixel) {
	off := b.offset(x, y)
	if off < 0 {
		return
	}
	b.store(off, p)
}

// ReadPixels calls fn for every pixel in row-major order while holding
// the buffer's read lock.
func (b *Buf) ReadPixels(fn func(x, y int, p Pixel)) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := y * b.stride
		for x := range b.width {
			fn(x, y, b.load(row+x*bpp))
		}
	}
}

// WritePixels replaces every pixel with the value returned by fn, in
// row-major order, while holding the buffer's write lock.
func (b *Buf) WritePixels(fn func(x, y int, p Pixel) Pixel) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := y * b.stride
		for x := range b.width {
			off := row + x*bpp
			b.store(off, fn(x, y, b.load(off)))
		}
	}
}

// Clear sets every pixel to p.
func (b *Buf) Clear(p Pixel) {
	b.WritePixels(func(int, int, Pixel) Pixel { return p })
}

// CountPixels returns how many pixels equal p.
func (b *Buf) CountPixels(p Pixel) int {
	n := 0
	b.ReadPixels(func(_, _ int, q Pixel) {
		if q == p {
			n++
		}
	})
	return n
}

// Equal reports whether two buffers have the same format, dimensions
// and samples.
func (b *Buf) Equal(o *Buf) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.format != o.format || b.width != o.width || b.height != o.height {
		return false
	}
	for y := range b.height {
		for x := range b.width {
			if b.At(x, y) != o.At(x, y) {
				return false
			}
		}
	}
	return true
}
