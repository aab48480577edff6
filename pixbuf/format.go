// Package pixbuf provides the pixel buffers that brush stamps are drawn into.
//
// A Buf stores a 2-D grid of samples in one of four formats. Each format has
// a reserved encoding for "transparent": an alpha channel below 255 for
// FormatRGBA and FormatGrayA, the designated mask index for FormatIndexed,
// and the zero value for FormatBitmap.
//
// Pixels are exchanged as packed Pixel values whose layout depends on the
// format of the buffer they belong to.
package pixbuf

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGBA is 32-bit non-premultiplied RGBA (4 bytes per pixel).
	// Pixels are packed as r | g<<8 | b<<16 | a<<24.
	FormatRGBA Format = iota

	// FormatGrayA is 8-bit gray with 8-bit alpha (2 bytes per pixel).
	// Pixels are packed as v | a<<8.
	FormatGrayA

	// FormatIndexed is an 8-bit palette index (1 byte per pixel).
	// The buffer's MaskIndex marks transparent pixels.
	FormatIndexed

	// FormatBitmap is a two-level mask (1 byte per pixel, 0 or 1).
	FormatBitmap

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format carries an alpha channel.
	HasAlpha bool

	// AlphaMask selects the alpha bits of a packed Pixel. Zero when the
	// format has no alpha channel.
	AlphaMask Pixel

	// ColorMask selects the non-alpha bits of a packed Pixel.
	ColorMask Pixel
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGBA: {
		BytesPerPixel: 4,
		HasAlpha:      true,
		AlphaMask:     0xff000000,
		ColorMask:     0x00ffffff,
	},
	FormatGrayA: {
		BytesPerPixel: 2,
		HasAlpha:      true,
		AlphaMask:     0xff00,
		ColorMask:     0x00ff,
	},
	FormatIndexed: {
		BytesPerPixel: 1,
		ColorMask:     0xff,
	},
	FormatBitmap: {
		BytesPerPixel: 1,
		ColorMask:     0x01,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA:
		return "RGBA"
	case FormatGrayA:
		return "GrayA"
	case FormatIndexed:
		return "Indexed"
	case FormatBitmap:
		return "Bitmap"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}
