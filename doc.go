// Package stamp generates the bitmap stamps a painting tool applies at
// each point of a stroke.
//
// # Overview
//
// A Brush is either procedural, producing a two-level mask for an
// ellipse, a rotated square or an angled line, or an image stamp built
// from a user supplied picture. Image stamps can be recolored: the brush
// infers a "background" and a "main" color from the picture and swaps
// them for the active painting colors, always starting again from a
// pristine copy so repeated recolors never compound.
//
//	b := stamp.New(stamp.KindSquare, 12, 30)
//	mask := b.Image() // 18×18 FormatBitmap buffer
//
//	img, _ := pixbuf.New(4, 4, pixbuf.FormatRGBA)
//	// ... draw the stencil ...
//	_ = b.SetImage(img)
//	b.SetRecolor(stamp.RoleMain, pixbuf.RGBA(255, 0, 0, 255))
//
// # Generations
//
// A brush rebuilds its stamp lazily and takes a new Generation each time
// it drops the old one. Anything memoizing a rendering of a brush should
// key on the brush and its Generation; StampCache does exactly that and
// returns snapshots that stay valid after the brush changes.
//
// # Ownership
//
// Buffers returned by Brush.Image and Brush.ImageScaled are borrowed and
// valid only until the next call that modifies the brush.
//
// # Concurrency
//
// Brushes are not safe for concurrent use. Generations, Registry and
// StampCache are.
package stamp
