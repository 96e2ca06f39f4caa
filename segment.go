package sevenseg

// Segment identifies one of the 8 light-up elements of a display:
// seven strokes plus the period dot. Segments are numbered clockwise
// from the top stroke, matching the usual LED datasheet order.
type Segment uint8

const (
	SegmentTop Segment = iota
	SegmentTopRight
	SegmentBottomRight
	SegmentBottom
	SegmentBottomLeft
	SegmentTopLeft
	SegmentCenter
	SegmentPeriod

	segmentCount = 8
)

// Kind is the shape category of a segment.
type Kind uint8

const (
	// KindHorizontal is a horizontal bar (top, center, bottom).
	KindHorizontal Kind = iota
	// KindVertical is a vertical bar (the four corner segments).
	KindVertical
	// KindDot is the period dot.
	KindDot
)

// Bit returns the single-bit mask value of the segment (1, 2, 4, ... 128).
func (s Segment) Bit() uint8 {
	return 1 << s
}

// Kind returns the shape category of the segment.
func (s Segment) Kind() Kind {
	switch s {
	case SegmentTop, SegmentCenter, SegmentBottom:
		return KindHorizontal
	case SegmentPeriod:
		return KindDot
	default:
		return KindVertical
	}
}

// String returns the segment name.
func (s Segment) String() string {
	switch s {
	case SegmentTop:
		return "top"
	case SegmentTopRight:
		return "topRight"
	case SegmentBottomRight:
		return "bottomRight"
	case SegmentBottom:
		return "bottom"
	case SegmentBottomLeft:
		return "bottomLeft"
	case SegmentTopLeft:
		return "topLeft"
	case SegmentCenter:
		return "center"
	case SegmentPeriod:
		return "period"
	}
	return "invalid"
}

// AllSegments lists every segment in ascending bit order.
var AllSegments = [segmentCount]Segment{
	SegmentTop, SegmentTopRight, SegmentBottomRight, SegmentBottom,
	SegmentBottomLeft, SegmentTopLeft, SegmentCenter, SegmentPeriod,
}

// DisplayState is the set of currently-lit segments for one character
// position, stored as an 8-bit mask. The zero value is a blank display.
// DisplayState is an immutable value type: equality is structural and
// values are usable as map keys in host rendering caches.
type DisplayState uint8

// Blank returns the empty display state (no segments lit).
func Blank() DisplayState {
	return 0
}

// NewDisplayState returns the state with exactly the given segments lit.
func NewDisplayState(segments ...Segment) DisplayState {
	var d DisplayState
	for _, s := range segments {
		d |= DisplayState(s.Bit())
	}
	return d
}

// State returns the display state with only this segment lit.
func (s Segment) State() DisplayState {
	return DisplayState(s.Bit())
}

// Contains reports whether the segment is lit.
func (d DisplayState) Contains(s Segment) bool {
	return d&DisplayState(s.Bit()) != 0
}

// Union returns the state with every segment lit in either operand.
func (d DisplayState) Union(o DisplayState) DisplayState {
	return d | o
}

// Intersect returns the state with the segments lit in both operands.
func (d DisplayState) Intersect(o DisplayState) DisplayState {
	return d & o
}

// With returns a copy of the state with the segment lit.
func (d DisplayState) With(s Segment) DisplayState {
	return d | DisplayState(s.Bit())
}

// Without returns a copy of the state with the segment unlit.
func (d DisplayState) Without(s Segment) DisplayState {
	return d &^ DisplayState(s.Bit())
}

// WithPeriod returns a copy of the state with the period dot lit or
// unlit. Unlike the historical insert-only setter this honors on=false
// by clearing the bit.
func (d DisplayState) WithPeriod(on bool) DisplayState {
	if on {
		return d.With(SegmentPeriod)
	}
	return d.Without(SegmentPeriod)
}

// IsBlank reports whether no segments are lit.
func (d DisplayState) IsBlank() bool {
	return d == 0
}

// Segments returns the lit segments in ascending bit order.
func (d DisplayState) Segments() []Segment {
	out := make([]Segment, 0, segmentCount)
	for _, s := range AllSegments {
		if d.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}
