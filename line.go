package stringart

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/vec"
)

// Rasterize returns the pixels covered by the segment from a to b.
//
// The segment is sampled round(|b-a|) times (at least once) by linearly
// interpolating x and y independently, and each sample is floored to a
// pixel. This is not a Bresenham walk: shallow angles can repeat a pixel
// or step slightly off the ideal line. Only the aggregate sum matters to
// the solver. A zero-length segment yields the single pixel under a.
func Rasterize(a, b vec.Vec2) []image.Point {
	n := int(math.Round(b.Sub(a).Length()))
	if n <= 1 {
		return []image.Point{toPixel(a.X, a.Y)}
	}

	xs := floats.Span(make([]float64, n), a.X, b.X)
	ys := floats.Span(make([]float64, n), a.Y, b.Y)

	pts := make([]image.Point, n)
	for i := range pts {
		pts[i] = toPixel(xs[i], ys[i])
	}
	return pts
}

func toPixel(x, y float64) image.Point {
	return image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}
