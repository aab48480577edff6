package stamp

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/stamp/pixbuf"
)

// Errors returned by SetImage.
var (
	// ErrNilImage is returned when SetImage is given no image.
	ErrNilImage = errors.New("stamp: nil image")

	// ErrUnsupportedFormat is returned for image stamps that are not
	// RGBA, GrayA or indexed.
	ErrUnsupportedFormat = errors.New("stamp: unsupported image stamp format")
)

// Brush produces the stamp a painting tool applies at each point of a
// stroke: either a procedural mask (ellipse, rotated square, line) or a
// user image, optionally recolored.
//
// The stamp image is rebuilt lazily. Every time the brush drops its image
// it takes a new Generation; caches of anything derived from the stamp
// should be keyed on (brush, Generation()).
//
// A Brush is not safe for concurrent use. Confine it to the goroutine that
// owns the painting session, or guard it with a lock.
type Brush struct {
	kind  Kind
	size  int
	angle int

	pattern       Pattern
	patternOrigin image.Point

	img    *pixbuf.Buf
	backup *pixbuf.Buf

	overrides Overrides

	bounds       image.Rectangle
	scaledBounds image.Rectangle
	genSize      int
	gen          Generation

	gens    *Generations
	objects Objects
	id      ObjectID
}

// New creates a brush of the given kind, size and angle and rasterizes
// its mask. size must be positive for procedural kinds.
func New(kind Kind, size, angle int, opts ...Option) *Brush {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Brush{
		kind:          kind,
		size:          size,
		angle:         angle,
		pattern:       o.pattern,
		patternOrigin: o.patternOrigin,
		gens:          o.generations,
		objects:       o.objects,
	}
	if b.objects != nil {
		b.id = b.objects.AllocateID()
	}

	if kind.IsProcedural() {
		b.regenerate()
	} else {
		b.discard()
	}
	return b
}

// Default creates a 1 pixel ellipse brush.
func Default(opts ...Option) *Brush {
	return New(KindEllipse, 1, 0, opts...)
}

// Clone returns a deep copy of the brush. The copy owns its own images
// and overrides, shares the generation source and identity service, and
// starts at a fresh generation so it never shares cache validity with b.
// A tracked brush's copy gets its own ID.
func (b *Brush) Clone() *Brush {
	c := &Brush{
		kind:          b.kind,
		size:          b.size,
		angle:         b.angle,
		pattern:       b.pattern,
		patternOrigin: b.patternOrigin,
		overrides:     b.overrides,
		bounds:        b.bounds,
		scaledBounds:  b.scaledBounds,
		gens:          b.gens,
		objects:       b.objects,
	}
	if c.objects != nil {
		c.id = c.objects.AllocateID()
	}

	if b.kind.IsProcedural() {
		c.regenerate()
		return c
	}

	c.invalidate()
	if b.img != nil {
		c.img = b.img.Clone()
	}
	if b.backup != nil {
		c.backup = b.backup.Clone()
	}
	return c
}

// Kind returns the brush kind.
func (b *Brush) Kind() Kind { return b.kind }

// Size returns the nominal size of procedural shapes.
func (b *Brush) Size() int { return b.size }

// Angle returns the rotation in degrees used by squares and lines.
func (b *Brush) Angle() int { return b.angle }

// Pattern returns the tiling pattern.
func (b *Brush) Pattern() Pattern { return b.pattern }

// SetPattern sets the tiling pattern. The stamp is unaffected.
func (b *Brush) SetPattern(p Pattern) { b.pattern = p }

// PatternOrigin returns the tiling origin.
func (b *Brush) PatternOrigin() image.Point { return b.patternOrigin }

// SetPatternOrigin sets the tiling origin. The stamp is unaffected.
func (b *Brush) SetPatternOrigin(pt image.Point) { b.patternOrigin = pt }

// Bounds returns the stamp rectangle at nominal size, centered on the
// origin.
func (b *Brush) Bounds() image.Rectangle { return b.bounds }

// ScaledBounds returns the rectangle of the most recently generated mask,
// which differs from Bounds after a scaled preview.
func (b *Brush) ScaledBounds() image.Rectangle { return b.scaledBounds }

// Generation returns the current cache generation of the stamp image.
func (b *Brush) Generation() Generation { return b.gen }

// ID returns the identity assigned by the Objects service, or zero for an
// untracked brush.
func (b *Brush) ID() ObjectID { return b.id }

// Overrides returns the recolor overrides of an image stamp.
func (b *Brush) Overrides() Overrides { return b.overrides }

// HasBackup reports whether the pristine copy of an image stamp has been
// captured, which happens on the first recolor request.
func (b *Brush) HasBackup() bool { return b.backup != nil }

// SetKind changes the brush kind. Procedural kinds regenerate at once and
// drop any image stamp state; KindImage drops the mask and waits for
// SetImage.
func (b *Brush) SetKind(k Kind) {
	b.kind = k
	if k.IsProcedural() {
		b.overrides = Overrides{}
		b.regenerate()
		return
	}
	b.discard()
}

// SetSize sets the nominal size and regenerates a procedural mask.
// Image stamps only record the value.
func (b *Brush) SetSize(size int) {
	b.size = size
	if b.kind.IsProcedural() {
		b.regenerate()
	}
}

// SetAngle sets the rotation in degrees and regenerates a procedural
// mask. Image stamps only record the value.
func (b *Brush) SetAngle(angle int) {
	b.angle = angle
	if b.kind.IsProcedural() {
		b.regenerate()
	}
}

// SetImage makes the brush an image stamp holding a copy of img. Any
// pristine backup and recolor overrides are dropped.
func (b *Brush) SetImage(img *pixbuf.Buf) error {
	if img == nil {
		return ErrNilImage
	}
	switch img.Format() {
	case pixbuf.FormatRGBA, pixbuf.FormatGrayA, pixbuf.FormatIndexed:
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, img.Format())
	}

	b.discard()
	b.kind = KindImage
	b.img = img.Clone()
	b.overrides = Overrides{}
	b.bounds = centeredBounds(b.img.Width(), b.img.Height())
	b.scaledBounds = b.bounds
	return nil
}

// SetRecolor overrides the color of one role of an image stamp and
// re-derives the stamp from the pristine image with all overrides set so
// far. The first call captures the pristine copy, so repeated calls never
// compound. c must be encoded in the stamp image's format.
//
// The call is ignored when the brush holds no image stamp.
func (b *Brush) SetRecolor(role Role, c pixbuf.Pixel) {
	if b.kind != KindImage || b.img == nil {
		Logger().Warn("stamp: recolor without an image stamp", "kind", b.kind, "role", role)
		return
	}

	if b.backup == nil {
		b.backup = b.img.Clone()
	} else {
		b.img = b.backup.Clone()
	}
	b.overrides = b.overrides.With(role, c)
	b.invalidate()

	Remap(b.img, b.overrides)
	Logger().Debug("stamp: recolored", "role", role, "generation", b.gen)
}

// Image returns the stamp image, regenerating a procedural mask whose
// size changed since it was last generated.
//
// The buffer is borrowed: it stays owned by the brush and is only valid
// until the next call that changes the brush. Use a StampCache to keep a
// snapshot. Returns nil for an image brush without an image.
func (b *Brush) Image() *pixbuf.Buf {
	if b.kind.IsProcedural() && b.genSize != b.size {
		b.regenerate()
	}
	return b.img
}

// ImageScaled returns the stamp for a preview at the given scale. The
// mask is regenerated at round(size*scale), clamped to [1, size], when
// that differs from the last generated size. Size and Bounds are left
// alone; the next Image call notices the scaled mask and regenerates at
// nominal size.
//
// Image stamps are returned unscaled. The result is borrowed like Image.
func (b *Brush) ImageScaled(scale float64) *pixbuf.Buf {
	if !b.kind.IsProcedural() {
		return b.img
	}

	size := scaledSize(b.size, scale)
	if size != b.genSize {
		b.generateAt(size)
	}
	return b.img
}

// Discard drops the stamp image and the pristine backup and moves the
// brush to a new generation. The next Image call regenerates a
// procedural mask; an image brush stays empty until SetImage.
func (b *Brush) Discard() {
	b.discard()
}

func (b *Brush) discard() {
	b.img = nil
	b.backup = nil
	b.genSize = 0
	b.invalidate()
	Logger().Debug("stamp: discarded", "kind", b.kind, "generation", b.gen)
}

// invalidate moves the brush to a new generation without touching its
// images.
func (b *Brush) invalidate() {
	b.gen = b.gens.Next()
	if b.objects != nil {
		b.objects.BumpVersion(b.id)
	}
}

// regenerate rebuilds the mask at nominal size and resets both bounds.
func (b *Brush) regenerate() {
	b.generateAt(b.size)
	b.bounds = b.scaledBounds
}

// generateAt replaces the mask with one rasterized at size.
func (b *Brush) generateAt(size int) {
	b.discard()

	b.img = GenerateMask(b.kind, size, b.angle)
	b.genSize = size
	b.scaledBounds = centeredBounds(b.img.Width(), b.img.Height())

	Logger().Debug("stamp: generated mask",
		"kind", b.kind,
		"size", size,
		"angle", b.angle,
		"side", b.img.Width(),
		"generation", b.gen)
}
