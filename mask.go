package stamp

import (
	"image"

	"github.com/gogpu/stamp/internal/raster"
	"github.com/gogpu/stamp/pixbuf"
)

// GenerateMask rasterizes the footprint of a procedural brush into a new
// FormatBitmap buffer. The buffer is square; its side is size, except for
// rotated squares which need room for their corners (see below).
//
//   - KindEllipse fills the ellipse inscribed in the buffer.
//   - KindSquare fills the whole buffer when the angle is a multiple of
//     360 or size <= 2. Otherwise the buffer side is
//     floor(sqrt(2)*size)+2 and the rotated square is scan filled around
//     the buffer center.
//   - KindLine draws a segment of length size through the buffer center.
//
// Angles are taken modulo 360, so 360 and -720 give the same size×size
// full square as 0 rather than an enlarged buffer holding an unrotated
// square. A 1×1 mask is always fully on. GenerateMask panics if size is not
// positive or kind is KindImage.
func GenerateMask(kind Kind, size, angle int) *pixbuf.Buf {
	assertf(size > 0, "stamp: mask size must be positive, got %d", size)
	assertf(kind.IsProcedural(), "stamp: kind %v has no procedural mask", kind)

	rotated := kind == KindSquare && normalizeAngle(angle) != 0 && size > 2

	side := size
	if rotated {
		side = rotatedSquareSide(size)
	}

	mask, err := pixbuf.New(side, side, pixbuf.FormatBitmap)
	assertf(err == nil, "stamp: allocate %d×%d mask: %v", side, side, err)

	if side == 1 {
		mask.Clear(pixbuf.BitmapOn)
		return mask
	}

	switch kind {
	case KindEllipse:
		mask.FillEllipse(0, 0, side-1, side-1, pixbuf.BitmapOn)

	case KindSquare:
		if !rotated {
			mask.Clear(pixbuf.BitmapOn)
			break
		}
		fillRotatedSquare(mask, size, angle)

	case KindLine:
		r := size / 2
		sa, ca := rotatedOffsets(r, angle)
		mask.DrawLine(-ca+r, -sa+r, ca+r, sa+r, pixbuf.BitmapOn)
	}

	return mask
}

// fillRotatedSquare scan fills a square of the given side rotated by
// angle degrees around the center of mask.
func fillRotatedSquare(mask *pixbuf.Buf, size, angle int) {
	c := mask.Width() / 2
	sa, ca := rotatedOffsets(size/2, angle)

	// The corners (-1,-1), (1,-1), (1,1), (-1,1) scaled by size/2 and
	// rotated, listed so the outline does not cross itself.
	corners := []image.Point{
		{X: -ca + sa + c, Y: -sa - ca + c},
		{X: -ca - sa + c, Y: -sa + ca + c},
		{X: ca - sa + c, Y: ca + sa + c},
		{X: ca + sa + c, Y: sa - ca + c},
	}

	raster.Polygon(corners, func(x1, y, x2 int) {
		mask.DrawHLine(x1, y, x2, pixbuf.BitmapOn)
	})
}
