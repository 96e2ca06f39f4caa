package sevenseg

// Shape is the drawable outline of a single segment. It is one of
// Polygon or Ellipse.
type Shape interface {
	isShape()
}

// Polygon is a closed polygonal outline.
type Polygon struct {
	Points []Point
}

func (Polygon) isShape() {}

// Ellipse is an ellipse inscribed in a rectangle.
type Ellipse struct {
	Rect Rect
}

func (Ellipse) isShape() {}

// Transform returns the polygon with every vertex transformed.
func (p Polygon) Transform(m Matrix) Polygon {
	out := Polygon{Points: make([]Point, len(p.Points))}
	for i, pt := range p.Points {
		out.Points[i] = m.TransformPoint(pt)
	}
	return out
}

// SegmentOutline produces the shape drawn for a segment of the given
// kind inside rect. Horizontal and vertical bars get the classic tapered
// LED silhouette: a hexagon whose short ends narrow to a point at the
// midline, with the long-edge vertices inset by half the bar's minor
// dimension. The dot is an ellipse inscribed in its rect.
//
// Vertex order is fixed: far-short-edge midpoint, two inset points along
// one long edge, near-short-edge midpoint, then back along the other
// long edge. Renderers depend on this order.
func SegmentOutline(k Kind, r Rect) Shape {
	switch k {
	case KindHorizontal:
		inset := r.H / 2
		return Polygon{Points: []Point{
			{X: r.X, Y: r.Y + r.H/2},
			{X: r.X + inset, Y: r.Y},
			{X: r.MaxX() - inset, Y: r.Y},
			{X: r.MaxX(), Y: r.Y + r.H/2},
			{X: r.MaxX() - inset, Y: r.MaxY()},
			{X: r.X + inset, Y: r.MaxY()},
		}}

	case KindVertical:
		inset := r.W / 2
		return Polygon{Points: []Point{
			{X: r.X + r.W/2, Y: r.Y},
			{X: r.MaxX(), Y: r.Y + inset},
			{X: r.MaxX(), Y: r.MaxY() - inset},
			{X: r.X + r.W/2, Y: r.MaxY()},
			{X: r.X, Y: r.MaxY() - inset},
			{X: r.X, Y: r.Y + inset},
		}}

	default: // KindDot
		return Ellipse{Rect: r}
	}
}
