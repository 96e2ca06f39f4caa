package sevenseg

// Size represents the width and height of a drawing surface or frame.
type Size struct {
	W, H float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Min returns the smaller of width and height.
func (s Size) Min() float64 {
	if s.W < s.H {
		return s.W
	}
	return s.H
}

// Rect is an axis-aligned rectangle with origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Rct is a convenience function to create a Rect.
func Rct(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ContainsRect reports whether o lies entirely within r, with a small
// epsilon to absorb floating point error.
func (r Rect) ContainsRect(o Rect) bool {
	const eps = 1e-9
	return o.X >= r.X-eps && o.Y >= r.Y-eps &&
		o.MaxX() <= r.MaxX()+eps && o.MaxY() <= r.MaxY()+eps
}
