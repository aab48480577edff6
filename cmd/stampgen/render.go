package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/gogpu/stamp"
	"github.com/gogpu/stamp/internal/config"
	"github.com/gogpu/stamp/pixbuf"
)

var errEmptyStamp = errors.New("brush has no stamp image")

// defaultInk colors procedural masks when no main color is given.
var defaultInk = color.NRGBA{A: 0xff}

// buildBrush creates the brush described by r. src is the decoded image
// for image stamps and nil otherwise.
func buildBrush(r config.Resolved, src image.Image) (*stamp.Brush, error) {
	b := stamp.New(r.Kind, r.Size, r.Angle,
		stamp.WithGenerations(stamp.NewGenerations()),
		stamp.WithObjects(stamp.NewRegistry()),
		stamp.WithPattern(r.Pattern))

	if r.Kind != stamp.KindImage {
		return b, nil
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no image given", errEmptyStamp)
	}

	if err := b.SetImage(pixbuf.FromStdImage(src)); err != nil {
		return nil, err
	}

	// Encode against the brush's own copy so the pixel format matches. The
	// buffer is not used past the first SetRecolor.
	img := b.Image()
	var mainPx, bgPx pixbuf.Pixel
	if r.Main != nil {
		mainPx = img.PixelFor(*r.Main)
	}
	if r.Background != nil {
		bgPx = img.PixelFor(*r.Background)
	}
	if r.Main != nil {
		b.SetRecolor(stamp.RoleMain, mainPx)
	}
	if r.Background != nil {
		b.SetRecolor(stamp.RoleBackground, bgPx)
	}
	return b, nil
}

// render builds the stamp for r and converts it to an image magnified
// zoom times.
func render(r config.Resolved, src image.Image, zoom int) (image.Image, error) {
	b, err := buildBrush(r, src)
	if err != nil {
		return nil, err
	}

	stamps := stamp.NewStampCache(1)
	buf := stamps.Stamp(b, r.Scale)
	if buf == nil {
		return nil, errEmptyStamp
	}

	stamp.Logger().Debug("stamp ready",
		"id", b.ID(),
		"generation", b.Generation(),
		"bounds", b.Bounds(),
		"format", buf.Format(),
		"width", buf.Width(),
		"height", buf.Height())

	var out image.Image
	if buf.Format() == pixbuf.FormatBitmap {
		out = compositeMask(buf, r.Main, r.Background)
	} else {
		out = buf.ToStdImage()
	}
	return magnify(out, zoom), nil
}

// compositeMask paints ink through a bitmap mask over an optional
// background.
func compositeMask(mask *pixbuf.Buf, ink, bg *color.NRGBA) *image.NRGBA {
	rect := mask.Rect()
	dst := image.NewNRGBA(rect)
	if bg != nil {
		draw.Draw(dst, rect, image.NewUniform(*bg), image.Point{}, draw.Src)
	}

	c := defaultInk
	if ink != nil {
		c = *ink
	}
	draw.DrawMask(dst, rect, image.NewUniform(c), image.Point{}, mask.ToStdImage(), rect.Min, draw.Over)
	return dst
}

// magnify scales img up by an integer factor keeping hard pixel edges.
func magnify(img image.Image, zoom int) image.Image {
	if zoom <= 1 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*zoom, b.Dy()*zoom, imaging.NearestNeighbor)
}
