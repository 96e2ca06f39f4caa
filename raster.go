package sevenseg

import (
	"image"

	"github.com/gogpu/sevenseg/internal/raster"
)

// Rasterize paints segment fills into the pixmap with the software
// rasterizer. Fills are painted in order, composited source-over.
func Rasterize(pm *Pixmap, fills []SegmentFill) {
	dst := pm.Image()
	for _, f := range fills {
		fillShape(dst, f)
	}
	Logger().Debug("rasterized segment fills",
		"fills", len(fills), "width", pm.width, "height", pm.height)
}

func fillShape(dst *image.RGBA, f SegmentFill) {
	switch s := f.Shape.(type) {
	case Polygon:
		tp := s.Transform(f.Transform)
		pts := make([]raster.Point, len(tp.Points))
		for i, p := range tp.Points {
			pts[i] = raster.Point{X: p.X, Y: p.Y}
		}
		raster.FillPolygon(dst, pts, f.Color)
	case Ellipse:
		start, segs := ellipseCubics(s.Rect, f.Transform)
		raster.FillCubics(dst, start, segs, f.Color)
	}
}

// kappa is the control-point offset ratio approximating a quarter circle
// with one cubic Bezier.
const kappa = 0.5522847498307936

// ellipseCubics approximates the ellipse inscribed in r with four cubic
// arcs, transformed by m. Affine transforms map Bezier control points
// exactly, so the sheared ellipse needs no special casing.
func ellipseCubics(r Rect, m Matrix) (raster.Point, []raster.Cubic) {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	rx, ry := r.W/2, r.H/2
	ox, oy := rx*kappa, ry*kappa

	raw := [13]Point{
		{X: cx + rx, Y: cy},
		{X: cx + rx, Y: cy + oy}, {X: cx + ox, Y: cy + ry}, {X: cx, Y: cy + ry},
		{X: cx - ox, Y: cy + ry}, {X: cx - rx, Y: cy + oy}, {X: cx - rx, Y: cy},
		{X: cx - rx, Y: cy - oy}, {X: cx - ox, Y: cy - ry}, {X: cx, Y: cy - ry},
		{X: cx + ox, Y: cy - ry}, {X: cx + rx, Y: cy - oy}, {X: cx + rx, Y: cy},
	}

	var pts [13]raster.Point
	for i, p := range raw {
		t := m.TransformPoint(p)
		pts[i] = raster.Point{X: t.X, Y: t.Y}
	}

	segs := make([]raster.Cubic, 4)
	for i := 0; i < 4; i++ {
		segs[i] = raster.Cubic{C1: pts[i*3+1], C2: pts[i*3+2], P: pts[i*3+3]}
	}
	return pts[0], segs
}
