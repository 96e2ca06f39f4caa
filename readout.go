package sevenseg

// PositionedDisplay is one character cell of a readout: the frame it
// occupies within the readout and the segments lit in it.
type PositionedDisplay struct {
	Frame Rect
	State DisplayState
}

// ReadoutSpacing returns the uniform gap between adjacent displays in a
// readout of n characters across totalWidth. The total gap budget is 5%
// of the width, divided evenly among the n-1 gaps; a single display gets
// no gap.
func ReadoutSpacing(totalWidth float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return (totalWidth / 20) / float64(n-1)
}

// ReadoutAspectRatio derives the aspect ratio of an n-character readout
// from the per-character ratio. n of zero leaves the ratio unchanged.
func ReadoutAspectRatio(perCharacter float64, n int) float64 {
	if n > 0 {
		return perCharacter * float64(n)
	}
	return perCharacter
}

// LayoutReadout splits text into characters and lays the resulting
// displays out left-to-right across a frame of the given size. Each
// character is encoded with case-toggle fallback; characters the table
// cannot represent become blank displays, never an error.
func LayoutReadout(text string, size Size) []PositionedDisplay {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	spacing := ReadoutSpacing(size.W, n)
	cellW := (size.W - spacing*float64(n-1)) / float64(n)

	out := make([]PositionedDisplay, n)
	for i, r := range runes {
		state, ok := Encode(r, true)
		if !ok {
			state = Blank()
		}
		out[i] = PositionedDisplay{
			Frame: Rct(float64(i)*(cellW+spacing), 0, cellW, size.H),
			State: state,
		}
	}
	return out
}

// RenderReadout composes a whole readout into fill geometry: every
// character cell rendered via RenderDisplay and translated into place.
// All displays share one color and skew.
func RenderReadout(text string, c RGBA, skew Skew, size Size) []SegmentFill {
	cells := LayoutReadout(text, size)
	if cells == nil {
		return nil
	}

	fills := make([]SegmentFill, 0, len(cells)*segmentCount)
	for _, cell := range cells {
		place := Translate(cell.Frame.X, cell.Frame.Y)
		for _, f := range RenderDisplay(cell.State, c, skew, cell.Frame.Size()) {
			f.Transform = place.Multiply(f.Transform)
			fills = append(fills, f)
		}
	}
	return fills
}
