package stamp

import (
	"github.com/gogpu/stamp/pixbuf"
)

// Role names one of the two colors inferred from an image stamp.
type Role uint8

const (
	// RoleMain is the "ink" of the stamp: the first opaque color that
	// differs from the background.
	RoleMain Role = iota

	// RoleBackground is the "paper" of the stamp: the first opaque color
	// found in row-major order.
	RoleBackground
)

// String returns the name of the role.
func (r Role) String() string {
	switch r {
	case RoleMain:
		return "main"
	case RoleBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Overrides holds the optional replacement colors for the two roles.
// An unset role keeps its original pixels; a role set to the transparent
// encoding is still set.
type Overrides struct {
	Main          pixbuf.Pixel
	Background    pixbuf.Pixel
	HasMain       bool
	HasBackground bool
}

// With returns a copy of o with the color for role set to c.
func (o Overrides) With(role Role, c pixbuf.Pixel) Overrides {
	switch role {
	case RoleMain:
		o.Main, o.HasMain = c, true
	case RoleBackground:
		o.Background, o.HasBackground = c, true
	}
	return o
}

// IsZero reports whether no role is overridden.
func (o Overrides) IsZero() bool {
	return !o.HasMain && !o.HasBackground
}

// sourceColors is the result of the inference scan.
type sourceColors struct {
	hasAlpha   bool
	background pixbuf.Pixel
	main       pixbuf.Pixel
	found      bool
}

// inferColors scans img in row-major order. The first opaque pixel
// becomes the background and the first opaque pixel that differs from it
// becomes main; neither changes afterwards. Transparent-like pixels only
// set hasAlpha. When no second color exists, main equals background.
func inferColors(img *pixbuf.Buf) sourceColors {
	var sc sourceColors
	distinct := false

	img.ReadPixels(func(_, _ int, p pixbuf.Pixel) {
		switch {
		case img.IsTransparent(p):
			sc.hasAlpha = true
		case !sc.found:
			sc.background, sc.main, sc.found = p, p, true
		case !distinct && p != sc.background:
			sc.main, distinct = p, true
		}
	})
	return sc
}

// Remap recolors img in place using the two-color stencil heuristic.
//
// When img has any transparent-like pixel, every pixel takes the main
// override if set, else the background override if set, keeping its own
// alpha; indexed images replace only non-transparent indices. Without
// transparency, every pixel other than the inferred background (every
// pixel of a single-color image) takes the main override, and background
// pixels take the background override. Roles without an override keep
// their pixels.
//
// Remap works on RGBA, GrayA and indexed buffers; other formats are left
// untouched.
func Remap(img *pixbuf.Buf, ov Overrides) {
	if img == nil || ov.IsZero() {
		return
	}

	switch img.Format() {
	case pixbuf.FormatRGBA, pixbuf.FormatGrayA, pixbuf.FormatIndexed:
	default:
		return
	}

	info := img.Format().Info()
	alphaMask := info.AlphaMask

	// Overrides never carry alpha; the pixel's own alpha is kept.
	mainColor := ov.Main & info.ColorMask
	bgColor := ov.Background & info.ColorMask

	sc := inferColors(img)
	indexed := img.Format() == pixbuf.FormatIndexed
	mono := sc.main == sc.background

	Logger().Debug("stamp: remap",
		"format", img.Format(),
		"has_alpha", sc.hasAlpha,
		"monochrome", mono,
		"main", ov.HasMain,
		"background", ov.HasBackground)

	if sc.hasAlpha {
		img.WritePixels(func(_, _ int, p pixbuf.Pixel) pixbuf.Pixel {
			if indexed && img.IsTransparent(p) {
				return p
			}
			switch {
			case ov.HasMain:
				return p&alphaMask | mainColor
			case ov.HasBackground:
				return p&alphaMask | bgColor
			}
			return p
		})
		return
	}

	img.WritePixels(func(_, _ int, p pixbuf.Pixel) pixbuf.Pixel {
		switch {
		case ov.HasMain && (p != sc.background || mono):
			return p&alphaMask | mainColor
		case ov.HasBackground && p == sc.background:
			return p&alphaMask | bgColor
		}
		return p
	})
}
