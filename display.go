package sevenseg

import "math"

// offOpacity is the alpha applied to the on-color for unlit segments.
const offOpacity = 0.1

// Skew is a horizontal shear factor applied to a whole display for the
// slanted, traditional LED look. The shear maps (x, y) to (x+c*y, y).
type Skew float64

const (
	// SkewNone leaves the display upright.
	SkewNone Skew = 0

	// SkewTraditional is the preset lean of classic LED readouts.
	SkewTraditional Skew = -0.1
)

// IsNone reports whether the skew is the identity.
func (s Skew) IsNone() bool {
	return s == 0
}

// Padding returns the horizontal padding added on each side of a frame
// of the given width so the sheared display never clips outside it.
func (s Skew) Padding(width float64) float64 {
	return math.Abs(float64(s)) * width
}

// Transform returns the shear matrix for a frame of the given width,
// offset by the symmetric padding. The identity for SkewNone.
func (s Skew) Transform(width float64) Matrix {
	if s.IsNone() {
		return Identity()
	}
	return Translate(s.Padding(width), 0).Multiply(ShearX(float64(s)))
}

// SegmentFill is one positioned, colored segment shape: what the host
// paints. Shape coordinates are in the unskewed frame; Transform carries
// the display's skew (identity when none) and any readout placement.
type SegmentFill struct {
	Segment   Segment
	Shape     Shape
	Color     RGBA
	Transform Matrix
}

// SkewedSize returns the frame size after skew padding is added on both
// sides. Hosts size their drawing surface with this.
func SkewedSize(size Size, skew Skew) Size {
	return Size{W: size.W + 2*skew.Padding(size.W), H: size.H}
}

// RenderDisplay composes one display state into 8 positioned, colored
// segment shapes, in ascending segment bit order. Lit segments are
// filled with color; unlit segments with the same color at reduced
// opacity, so the whole glyph outline stays faintly visible the way a
// powered LED module does.
func RenderDisplay(state DisplayState, c RGBA, skew Skew, size Size) []SegmentFill {
	m := skew.Transform(size.W)
	dim := c.WithAlpha(c.A * offOpacity)

	fills := make([]SegmentFill, 0, segmentCount)
	for _, seg := range AllSegments {
		fill := dim
		if state.Contains(seg) {
			fill = c
		}
		frame := SegmentFrame(seg, size)
		fills = append(fills, SegmentFill{
			Segment:   seg,
			Shape:     SegmentOutline(seg.Kind(), frame),
			Color:     fill,
			Transform: m,
		})
	}
	return fills
}
