package stamp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPattern is returned by ParsePattern for unrecognized names.
var ErrUnknownPattern = errors.New("stamp: unknown pattern")

// Pattern tells the painting code how the stamp tiles across a stroke.
// The brush stores it and never interprets it.
type Pattern uint8

const (
	// PatternDefault paints the stamp as is at every point.
	PatternDefault Pattern = iota

	// PatternAlignedToSrc anchors the tiling to the source image.
	PatternAlignedToSrc

	// PatternAlignedToDst anchors the tiling to the destination.
	PatternAlignedToDst

	// PatternPaintBrush re-anchors the tiling at each stroke start.
	PatternPaintBrush
)

// String returns the name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternDefault:
		return "default"
	case PatternAlignedToSrc:
		return "aligned-to-src"
	case PatternAlignedToDst:
		return "aligned-to-dst"
	case PatternPaintBrush:
		return "paint-brush"
	default:
		return "unknown"
	}
}

// ParsePattern returns the Pattern named s. An empty string is the default.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return PatternDefault, nil
	case "aligned-to-src":
		return PatternAlignedToSrc, nil
	case "aligned-to-dst":
		return PatternAlignedToDst, nil
	case "paint-brush":
		return PatternPaintBrush, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
	}
}
