// Package raster fills closed outlines into an image using the
// golang.org/x/image/vector scanline rasterizer.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Point is a 2D coordinate (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

// Cubic is one cubic Bezier segment: two control points and an endpoint.
type Cubic struct {
	C1, C2, P Point
}

// FillPolygon fills the closed polygon into dst, anti-aliased and
// composited source-over. Degenerate polygons are ignored.
func FillPolygon(dst draw.Image, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	ras := newRasterizer(dst)
	ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
	ras.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// FillCubics fills the closed path formed by cubic Bezier segments,
// starting at start. The last segment is expected to end at start.
func FillCubics(dst draw.Image, start Point, segs []Cubic, c color.Color) {
	if len(segs) == 0 {
		return
	}
	ras := newRasterizer(dst)
	ras.MoveTo(float32(start.X), float32(start.Y))
	for _, s := range segs {
		ras.CubeTo(
			float32(s.C1.X), float32(s.C1.Y),
			float32(s.C2.X), float32(s.C2.Y),
			float32(s.P.X), float32(s.P.Y),
		)
	}
	ras.ClosePath()
	ras.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.DrawOp = draw.Over
	return ras
}
