package sevenseg

// Segment placement is derived from a single stroke thickness so any
// frame size yields a proportioned glyph:
//
//   - thickness is 10% of the frame's smaller dimension, at least 1 unit
//   - horizontal bars span the width minus 2.5 thicknesses, centered
//   - vertical bars are a thickness wide and half the remaining height,
//     flush against the left/right edge, centered on the quarter and
//     three-quarter height marks
//   - the period dot is a thickness square flush at the bottom-right

// Thickness returns the stroke thickness for a widget frame of the given
// size. Zero-area frames still yield the 1-unit minimum so shapes stay
// degenerate rather than inverted.
func Thickness(size Size) float64 {
	t := size.Min() * 0.1
	if t < 1 {
		return 1
	}
	return t
}

// SegmentFrame computes the sub-rectangle of the parent frame in which
// the segment's shape is drawn. It is total over all 8 segments and any
// finite size.
func SegmentFrame(s Segment, parent Size) Rect {
	thin := Thickness(parent)

	switch s.Kind() {
	case KindHorizontal:
		w := parent.W - 2.5*thin
		x := (parent.W - w) / 2
		var y float64
		switch s {
		case SegmentTop:
			y = 0
		case SegmentCenter:
			y = (parent.H - thin) / 2
		case SegmentBottom:
			y = parent.H - thin
		}
		return Rct(x, y, w, thin)

	case KindVertical:
		h := (parent.H - thin) / 2
		var x float64
		if s == SegmentTopRight || s == SegmentBottomRight {
			x = parent.W - thin
		}
		// Centered on the quarter (upper pair) or three-quarter
		// (lower pair) height mark.
		y := thin / 4
		if s == SegmentBottomLeft || s == SegmentBottomRight {
			y = parent.H/2 + thin/4
		}
		return Rct(x, y, thin, h)

	default: // KindDot
		return Rct(parent.W-thin, parent.H-thin, thin, thin)
	}
}
