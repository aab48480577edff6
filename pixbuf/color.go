package pixbuf

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("pixbuf: invalid hex color")

// RGBA packs an 8-bit non-premultiplied color for FormatRGBA buffers.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel(r) | Pixel(g)<<8 | Pixel(b)<<16 | Pixel(a)<<24
}

// GrayA packs a gray value with alpha for FormatGrayA buffers.
func GrayA(v, a uint8) Pixel {
	return Pixel(v) | Pixel(a)<<8
}

// Index returns the Pixel for a palette index of a FormatIndexed buffer.
func Index(i uint8) Pixel {
	return Pixel(i)
}

// Bitmap "on" and "off" samples.
const (
	BitmapOff Pixel = 0
	BitmapOn  Pixel = 1
)

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an
// optional '#' prefix.
func ParseHex(s string) (color.NRGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			n, ok := hexNibble(hex[i])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexNibble(hex[i])
			lo, ok2 := hexNibble(hex[i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// PixelFor converts c into this buffer's pixel encoding.
//
// Gray buffers use the standard luminance weights. Indexed buffers pick
// the closest palette entry, or the gray level when no palette is
// attached. Bitmap buffers are "on" when alpha is at least half.
func (b *Buf) PixelFor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	switch b.format {
	case FormatRGBA:
		return RGBA(n.R, n.G, n.B, n.A)
	case FormatGrayA:
		return GrayA(luminance(n.R, n.G, n.B), n.A)
	case FormatIndexed:
		if len(b.palette) > 0 {
			return Index(uint8(b.palette.Index(c)))
		}
		return Index(luminance(n.R, n.G, n.B))
	default:
		if n.A >= 128 {
			return BitmapOn
		}
		return BitmapOff
	}
}

// ColorOf converts a pixel in this buffer's encoding to a color.Color.
func (b *Buf) ColorOf(p Pixel) color.Color {
	switch b.format {
	case FormatRGBA:
		return color.NRGBA{R: uint8(p), G: uint8(p >> 8), B: uint8(p >> 16), A: uint8(p >> 24)}
	case FormatGrayA:
		v := uint8(p)
		return color.NRGBA{R: v, G: v, B: v, A: uint8(p >> 8)}
	case FormatIndexed:
		if p == Pixel(b.maskIndex) {
			return color.Transparent
		}
		if int(p) < len(b.palette) {
			return b.palette[p]
		}
		return color.Gray{Y: uint8(p)}
	default:
		if p != BitmapOff {
			return color.Opaque
		}
		return color.Transparent
	}
}

// luminance uses 0.299*R + 0.587*G + 0.114*B.
func luminance(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
}
