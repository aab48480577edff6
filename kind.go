package stamp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("stamp: unknown brush kind")

// Kind selects how a brush produces its stamp.
type Kind uint8

const (
	// KindEllipse is a filled circle of diameter Size.
	KindEllipse Kind = iota

	// KindSquare is a filled square of side Size rotated by Angle.
	KindSquare

	// KindLine is a one pixel wide segment of length Size at Angle.
	KindLine

	// KindImage uses a user supplied image; Size and Angle are ignored.
	KindImage
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindSquare:
		return "square"
	case KindLine:
		return "line"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// IsProcedural reports whether the kind is rasterized from parameters.
func (k Kind) IsProcedural() bool {
	return k == KindEllipse || k == KindSquare || k == KindLine
}

// ParseKind returns the Kind named s. "circle" is accepted for ellipse.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ellipse", "circle":
		return KindEllipse, nil
	case "square":
		return KindSquare, nil
	case "line":
		return KindLine, nil
	case "image":
		return KindImage, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
