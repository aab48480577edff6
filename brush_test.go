package stamp

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/stamp/pixbuf"
)

func TestBrushEllipseResize(t *testing.T) {
	b := New(KindEllipse, 5, 0, WithGenerations(NewGenerations()))

	img := b.Image()
	if img.Width() != 5 || img.Height() != 5 {
		t.Fatalf("Image() is %d×%d, want 5×5", img.Width(), img.Height())
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if img.At(x, y) != pixbuf.BitmapOn {
				t.Errorf("pixel (%d,%d) is off, want on", x, y)
			}
		}
	}
	if want := image.Rect(-2, -2, 3, 3); b.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", b.Bounds(), want)
	}

	gen := b.Generation()
	b.SetSize(8)
	img = b.Image()
	if img.Width() != 8 || img.Height() != 8 {
		t.Fatalf("after SetSize(8) Image() is %d×%d, want 8×8", img.Width(), img.Height())
	}
	if b.Generation() == gen {
		t.Error("SetSize did not change the generation")
	}
	if want := image.Rect(-4, -4, 4, 4); b.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", b.Bounds(), want)
	}
}

func TestBrushDefault(t *testing.T) {
	b := Default()
	if b.Kind() != KindEllipse || b.Size() != 1 || b.Angle() != 0 {
		t.Fatalf("Default() = %v/%d/%d, want ellipse/1/0", b.Kind(), b.Size(), b.Angle())
	}
	img := b.Image()
	if img.Width() != 1 || img.At(0, 0) != pixbuf.BitmapOn {
		t.Errorf("Default().Image() = %q, want a single on pixel", maskString(img))
	}
	if b.Pattern() != PatternDefault || b.PatternOrigin() != (image.Point{}) {
		t.Errorf("Default() pattern = %v at %v", b.Pattern(), b.PatternOrigin())
	}
}

func TestBrushImageIsCached(t *testing.T) {
	b := New(KindSquare, 6, 30)
	first := b.Image()
	gen := b.Generation()

	if b.Image() != first {
		t.Error("Image() regenerated without a change")
	}
	if b.Generation() != gen {
		t.Error("Image() changed the generation without a change")
	}
}

func TestBrushSetAngle(t *testing.T) {
	b := New(KindSquare, 10, 0)
	if b.Image().Width() != 10 {
		t.Fatalf("unrotated side = %d, want 10", b.Image().Width())
	}

	b.SetAngle(45)
	if got, want := b.Image().Width(), rotatedSquareSide(10); got != want {
		t.Errorf("rotated side = %d, want %d", got, want)
	}
	if want := centeredBounds(rotatedSquareSide(10), rotatedSquareSide(10)); b.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", b.Bounds(), want)
	}
}

func TestBrushRecolorScenario(t *testing.T) {
	b := New(KindImage, 0, 0)
	if b.Image() != nil {
		t.Fatal("image brush without SetImage has an image")
	}

	// Paper comes first in scan order, so it is inferred as background.
	src := stencil(t, white, black)
	if err := b.SetImage(src); err != nil {
		t.Fatalf("SetImage() error = %v", err)
	}
	if b.HasBackup() {
		t.Error("HasBackup() = true before any recolor")
	}

	b.SetRecolor(RoleMain, red)
	if !b.HasBackup() {
		t.Error("HasBackup() = false after recolor")
	}
	b.SetRecolor(RoleBackground, blue)

	assertPixels(t, b.Image(), [][]pixbuf.Pixel{
		{blue, blue, blue, blue},
		{blue, red, red, blue},
		{blue, red, red, blue},
		{blue, blue, blue, blue},
	})

	// The caller's image is copied, never recolored.
	if src.At(1, 1) != black || src.At(0, 0) != white {
		t.Error("SetImage source was modified")
	}
	if want := image.Rect(-2, -2, 2, 2); b.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", b.Bounds(), want)
	}
}

func TestBrushRecolorDoesNotCompound(t *testing.T) {
	b := New(KindImage, 0, 0)
	if err := b.SetImage(stencil(t, white, black)); err != nil {
		t.Fatal(err)
	}

	b.SetRecolor(RoleMain, red)
	b.SetRecolor(RoleBackground, green)
	b.SetRecolor(RoleMain, blue)
	b.SetRecolor(RoleBackground, black)

	fresh := New(KindImage, 0, 0)
	if err := fresh.SetImage(stencil(t, white, black)); err != nil {
		t.Fatal(err)
	}
	fresh.SetRecolor(RoleMain, blue)
	fresh.SetRecolor(RoleBackground, black)

	if !b.Image().Equal(fresh.Image()) {
		t.Error("repeated recolor depends on earlier overrides")
	}
	if ov := b.Overrides(); ov.Main != blue || ov.Background != black {
		t.Errorf("Overrides() = %+v, want main blue and background black", ov)
	}
}

func TestBrushRecolorSingleRole(t *testing.T) {
	t.Run("background only", func(t *testing.T) {
		b := New(KindImage, 0, 0)
		if err := b.SetImage(stencil(t, white, black)); err != nil {
			t.Fatal(err)
		}
		b.SetRecolor(RoleBackground, green)
		img := b.Image()
		if img.At(1, 1) != black || img.At(0, 0) != green {
			t.Errorf("ink = %#x, paper = %#x, want black ink on green", img.At(1, 1), img.At(0, 0))
		}
	})

	t.Run("main only", func(t *testing.T) {
		b := New(KindImage, 0, 0)
		if err := b.SetImage(stencil(t, white, black)); err != nil {
			t.Fatal(err)
		}
		b.SetRecolor(RoleMain, green)
		img := b.Image()
		if img.At(1, 1) != green || img.At(0, 0) != white {
			t.Errorf("ink = %#x, paper = %#x, want green ink on white", img.At(1, 1), img.At(0, 0))
		}
	})
}

func TestBrushRecolorWithoutImage(t *testing.T) {
	b := New(KindEllipse, 4, 0)
	gen := b.Generation()
	before := b.Image().Clone()

	b.SetRecolor(RoleMain, red)

	if b.HasBackup() || !b.Overrides().IsZero() {
		t.Error("recolor of a procedural brush recorded state")
	}
	if b.Generation() != gen || !b.Image().Equal(before) {
		t.Error("recolor of a procedural brush changed the stamp")
	}
}

func TestBrushSetImageErrors(t *testing.T) {
	b := New(KindEllipse, 3, 0)

	if err := b.SetImage(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("SetImage(nil) error = %v, want %v", err, ErrNilImage)
	}
	if err := b.SetImage(GenerateMask(KindSquare, 2, 0)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SetImage(bitmap) error = %v, want %v", err, ErrUnsupportedFormat)
	}
	if b.Kind() != KindEllipse || b.Image().Width() != 3 {
		t.Error("failed SetImage changed the brush")
	}
}

func TestBrushSetKindClearsImageState(t *testing.T) {
	b := New(KindImage, 7, 0)
	if err := b.SetImage(stencil(t, white, black)); err != nil {
		t.Fatal(err)
	}
	b.SetRecolor(RoleMain, red)

	b.SetKind(KindSquare)
	if b.HasBackup() || !b.Overrides().IsZero() {
		t.Error("SetKind(square) kept image stamp state")
	}
	if img := b.Image(); img.Format() != pixbuf.FormatBitmap || img.Width() != 7 {
		t.Errorf("Image() after SetKind(square) = %v %d wide, want 7 wide bitmap", img.Format(), img.Width())
	}

	b.SetKind(KindImage)
	if b.Image() != nil {
		t.Error("SetKind(image) kept the procedural mask")
	}
}

func TestBrushImageKindIgnoresShapeParams(t *testing.T) {
	b := New(KindImage, 0, 0)
	if err := b.SetImage(stencil(t, white, black)); err != nil {
		t.Fatal(err)
	}
	img := b.Image()
	gen := b.Generation()

	b.SetSize(20)
	b.SetAngle(45)

	if b.Size() != 20 || b.Angle() != 45 {
		t.Errorf("Size/Angle = %d/%d, want 20/45", b.Size(), b.Angle())
	}
	if b.Image() != img || b.Generation() != gen {
		t.Error("SetSize/SetAngle changed an image stamp")
	}
	if b.ImageScaled(0.5) != img {
		t.Error("ImageScaled scaled an image stamp")
	}
}

func TestBrushDiscard(t *testing.T) {
	gens := NewGenerations()
	a := New(KindEllipse, 4, 0, WithGenerations(gens))
	b := New(KindLine, 4, 30, WithGenerations(gens))

	seen := map[Generation]bool{a.Generation(): true, b.Generation(): true}
	for range 10 {
		for _, br := range []*Brush{a, b} {
			br.Discard()
			if seen[br.Generation()] {
				t.Fatalf("Discard() reused generation %d", br.Generation())
			}
			seen[br.Generation()] = true
		}
	}

	gen := a.Generation()
	if img := a.Image(); img == nil || img.Width() != 4 {
		t.Fatalf("Image() after Discard() = %v, want a regenerated 4×4 mask", img)
	}
	if a.Generation() == gen {
		t.Error("regeneration after Discard() kept the generation")
	}

	img := New(KindImage, 0, 0, WithGenerations(gens))
	if err := img.SetImage(stencil(t, white, black)); err != nil {
		t.Fatal(err)
	}
	img.SetRecolor(RoleMain, red)
	img.Discard()
	if img.Image() != nil || img.HasBackup() {
		t.Error("Discard() kept image stamp buffers")
	}
}

func TestBrushImageScaled(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		scale    float64
		wantSide int
	}{
		{"half", 10, 0.5, 5},
		{"rounds", 9, 0.5, 5},
		{"clamped low", 10, 0.01, 1},
		{"clamped high", 10, 3, 10},
		{"identity", 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(KindEllipse, tt.size, 0)
			bounds := b.Bounds()

			scaled := b.ImageScaled(tt.scale)
			if scaled.Width() != tt.wantSide {
				t.Fatalf("ImageScaled(%v) width = %d, want %d", tt.scale, scaled.Width(), tt.wantSide)
			}
			if b.Size() != tt.size || b.Bounds() != bounds {
				t.Errorf("ImageScaled changed Size/Bounds to %d/%v", b.Size(), b.Bounds())
			}
			if want := centeredBounds(tt.wantSide, tt.wantSide); b.ScaledBounds() != want {
				t.Errorf("ScaledBounds() = %v, want %v", b.ScaledBounds(), want)
			}

			if img := b.Image(); img.Width() != tt.size {
				t.Errorf("Image() after preview width = %d, want %d", img.Width(), tt.size)
			}
		})
	}
}

func TestBrushClone(t *testing.T) {
	t.Run("procedural", func(t *testing.T) {
		b := New(KindSquare, 8, 30, WithPattern(PatternAlignedToDst), WithPatternOrigin(image.Pt(3, 4)))
		c := b.Clone()

		if c.Generation() == b.Generation() {
			t.Error("Clone() shares the generation")
		}
		if c.Kind() != b.Kind() || c.Size() != b.Size() || c.Angle() != b.Angle() ||
			c.Pattern() != b.Pattern() || c.PatternOrigin() != b.PatternOrigin() {
			t.Error("Clone() lost brush parameters")
		}
		if c.Image() == b.Image() || !c.Image().Equal(b.Image()) {
			t.Error("Clone() mask is shared or different")
		}

		c.SetSize(3)
		if b.Size() != 8 || b.Image().Width() != rotatedSquareSide(8) {
			t.Error("changing the clone changed the original")
		}
	})

	t.Run("image", func(t *testing.T) {
		b := New(KindImage, 0, 0)
		if err := b.SetImage(stencil(t, white, black)); err != nil {
			t.Fatal(err)
		}
		b.SetRecolor(RoleMain, red)

		c := b.Clone()
		if c.Generation() == b.Generation() {
			t.Error("Clone() shares the generation")
		}
		if !c.HasBackup() || c.Overrides() != b.Overrides() {
			t.Error("Clone() lost recolor state")
		}
		if c.Image() == b.Image() || !c.Image().Equal(b.Image()) {
			t.Error("Clone() image is shared or different")
		}

		// Recolor continues from the copied pristine image.
		c.SetRecolor(RoleBackground, green)
		if got := c.Image().At(0, 0); got != green {
			t.Errorf("clone paper = %#x, want green", got)
		}
		if got := b.Image().At(0, 0); got != white {
			t.Errorf("original paper = %#x, want white", got)
		}
	})
}

func TestBrushObjects(t *testing.T) {
	reg := NewRegistry()
	b := New(KindEllipse, 4, 0, WithObjects(reg))
	if b.ID() == 0 {
		t.Fatal("tracked brush has no ID")
	}

	v0, ok := reg.Version(b.ID())
	if !ok {
		t.Fatal("registry does not know the brush")
	}

	b.SetSize(6)
	v1, _ := reg.Version(b.ID())
	if v1 <= v0 {
		t.Errorf("version after SetSize = %d, want > %d", v1, v0)
	}

	c := b.Clone()
	if c.ID() == b.ID() || c.ID() == 0 {
		t.Errorf("Clone() ID = %d, original %d", c.ID(), b.ID())
	}
	if reg.Len() != 2 {
		t.Errorf("registry has %d objects, want 2", reg.Len())
	}

	if New(KindEllipse, 4, 0).ID() != 0 {
		t.Error("untracked brush has an ID")
	}
}

func TestBrushSetPattern(t *testing.T) {
	b := New(KindLine, 5, 0)
	gen := b.Generation()

	b.SetPattern(PatternPaintBrush)
	b.SetPatternOrigin(image.Pt(-2, 7))

	if b.Pattern() != PatternPaintBrush || b.PatternOrigin() != image.Pt(-2, 7) {
		t.Errorf("pattern = %v at %v", b.Pattern(), b.PatternOrigin())
	}
	if b.Generation() != gen {
		t.Error("pattern changes invalidated the stamp")
	}
}

func TestNewPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(ellipse, 0, 0) did not panic")
		}
	}()
	New(KindEllipse, 0, 0)
}
