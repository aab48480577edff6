package pixbuf

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromStdImage creates a buffer from a standard library image.
//
// *image.Paletted becomes FormatIndexed, keeping its palette; the first
// fully transparent palette entry (or index 0) becomes the mask index.
// *image.Gray and *image.Gray16 become FormatGrayA. Everything else is
// converted to FormatRGBA.
func FromStdImage(img image.Image) *Buf {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	switch src := img.(type) {
	case *image.Paletted:
		buf, _ := New(width, height, FormatIndexed)
		buf.palette = append(color.Palette(nil), src.Palette...)
		buf.maskIndex = transparentIndex(src.Palette)
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.data[y*buf.stride:], src.Pix[start:start+width])
		}
		return buf

	case *image.Gray, *image.Gray16:
		buf, _ := New(width, height, FormatGrayA)
		for y := range height {
			for x := range width {
				g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				buf.Set(x, y, GrayA(g.Y, 255))
			}
		}
		return buf
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
		bounds = nrgba.Bounds()
	}

	buf, _ := New(width, height, FormatRGBA)
	for y := range height {
		start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(buf.data[y*buf.stride:], nrgba.Pix[start:start+width*4])
	}
	return buf
}

// ToStdImage converts the buffer to a standard library image.
// Returns *image.NRGBA for RGBA and GrayA, *image.Paletted for indexed
// buffers with a palette, and *image.Alpha for bitmaps (on = opaque).
func (b *Buf) ToStdImage() image.Image {
	rect := b.Rect()

	switch b.format {
	case FormatBitmap:
		alpha := image.NewAlpha(rect)
		for y := range b.height {
			for x := range b.width {
				if b.At(x, y) != BitmapOff {
					alpha.Pix[y*alpha.Stride+x] = 0xff
				}
			}
		}
		return alpha

	case FormatIndexed:
		if len(b.palette) > int(b.maskIndex) {
			pal := append(color.Palette(nil), b.palette...)
			pal[b.maskIndex] = color.Transparent
			paletted := image.NewPaletted(rect, pal)
			for y := range b.height {
				copy(paletted.Pix[y*paletted.Stride:], b.data[y*b.stride:y*b.stride+b.width])
			}
			return paletted
		}
	}

	nrgba := image.NewNRGBA(rect)
	for y := range b.height {
		for x := range b.width {
			nrgba.Set(x, y, b.ColorOf(b.At(x, y)))
		}
	}
	return nrgba
}

func transparentIndex(p color.Palette) uint8 {
	for i, c := range p {
		if _, _, _, a := c.RGBA(); a == 0 {
			return uint8(i)
		}
	}
	return 0
}
