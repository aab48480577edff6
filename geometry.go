package stamp

import (
	"fmt"
	"image"
	"math"
)

// assertf panics when cond is false. Violations are defects in the
// calling code, not runtime conditions.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// normalizeAngle maps degrees into [0, 360).
func normalizeAngle(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// rotatedOffsets returns (round(r*sin a), round(r*cos a)) for an angle in
// degrees. Offsets are rounded half away from zero so the shapes stay
// symmetric in every quadrant.
func rotatedOffsets(r, deg int) (sa, ca int) {
	rad := float64(normalizeAngle(deg)) * math.Pi / 180
	sa = int(math.Round(float64(r) * math.Sin(rad)))
	ca = int(math.Round(float64(r) * math.Cos(rad)))
	return sa, ca
}

// rotatedSquareSide is the side of a buffer that holds a square of the
// given side at any rotation without clipping its corners.
func rotatedSquareSide(size int) int {
	return int(math.Sqrt(2*float64(size)*float64(size))) + 2
}

// scaledSize returns round(size*scale) clamped to [1, size].
func scaledSize(size int, scale float64) int {
	n := int(float64(size)*scale + 0.5)
	return max(1, min(n, size))
}

// centeredBounds returns a w×h rectangle centered on the origin.
func centeredBounds(w, h int) image.Rectangle {
	return image.Rect(-w/2, -h/2, -w/2+w, -h/2+h)
}
