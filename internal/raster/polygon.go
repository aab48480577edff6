// Package raster provides integer scanline rasterization for brush shapes.
package raster

import (
	"image"
	"math"
	"slices"
)

// HLineFunc receives one horizontal run per call; x1 and x2 are inclusive
// and x1 <= x2.
type HLineFunc func(x1, y, x2 int)

// edge is a non-horizontal polygon edge with y0 < y1.
type edge struct {
	x0, y0 int
	x1, y1 int
}

// xAt returns the edge's x coordinate on scanline y, rounded to the
// nearest pixel.
func (e edge) xAt(y int) int {
	t := float64(y-e.y0) / float64(e.y1-e.y0)
	return e.x0 + int(math.Round(t*float64(e.x1-e.x0)))
}

// Polygon fills the polygon whose vertices are given in order (the last
// vertex connects back to the first) and reports the filled area as
// horizontal runs, one scanline at a time from top to bottom.
//
// Spans are taken between pairs of sorted edge crossings (even-odd rule).
// Edges are half-open in y so a vertex shared by two edges is counted
// once, except on the polygon's last row where closing vertices are kept.
// Horizontal edges are emitted directly so flat tops and bottoms are drawn.
func Polygon(points []image.Point, hline HLineFunc) {
	n := len(points)
	if n == 0 {
		return
	}

	edges := make([]edge, 0, n)
	var flat [][2]image.Point

	yMin, yMax := points[0].Y, points[0].Y
	for i := range n {
		p0 := points[i]
		p1 := points[(i+1)%n]
		yMin = min(yMin, p0.Y)
		yMax = max(yMax, p0.Y)

		if p0.Y == p1.Y {
			flat = append(flat, [2]image.Point{p0, p1})
			continue
		}
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		edges = append(edges, edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y})
	}

	crossings := make([]int, 0, len(edges))
	for y := yMin; y <= yMax; y++ {
		crossings = crossings[:0]
		for _, e := range edges {
			if y < e.y0 || y > e.y1 || (y == e.y1 && y != yMax) {
				continue
			}
			crossings = append(crossings, e.xAt(y))
		}

		slices.Sort(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			hline(crossings[i], y, crossings[i+1])
		}

		for _, f := range flat {
			if f[0].Y == y {
				hline(min(f[0].X, f[1].X), y, max(f[0].X, f[1].X))
			}
		}
	}
}
