package sevenseg

import "testing"

func renderToPixmap(t *testing.T, state DisplayState, c RGBA, size Size) *Pixmap {
	t.Helper()
	pm := NewPixmap(int(size.W), int(size.H))
	pm.Clear(Black)
	Rasterize(pm, RenderDisplay(state, c, SkewNone, size))
	return pm
}

func TestRasterizeLitSegment(t *testing.T) {
	eight, ok := Encode('8', false)
	if !ok {
		t.Fatal("cannot encode '8'")
	}
	pm := renderToPixmap(t, eight, Red, Sz(100, 100))

	// Center of the top bar frame (12.5, 0, 75, 10).
	got := pm.GetPixel(50, 5)
	if got.R < 0.9 || got.G > 0.1 {
		t.Errorf("top bar center = %+v, want solid red", got)
	}

	// Center of the top-left vertical frame (0, 2.5, 10, 45).
	got = pm.GetPixel(5, 25)
	if got.R < 0.9 {
		t.Errorf("top-left bar center = %+v, want solid red", got)
	}
}

func TestRasterizeUnlitSegmentIsDim(t *testing.T) {
	one, ok := Encode('1', false)
	if !ok {
		t.Fatal("cannot encode '1'")
	}
	pm := renderToPixmap(t, one, Red, Sz(100, 100))

	// '1' leaves the top bar unlit; it shows at a tenth of the on color.
	got := pm.GetPixel(50, 5)
	if got.R < 0.05 || got.R > 0.2 {
		t.Errorf("unlit top bar = %+v, want faint red around 0.1", got)
	}
}

func TestRasterizePeriodEllipse(t *testing.T) {
	pm := renderToPixmap(t, SegmentPeriod.State(), Green, Sz(100, 100))

	// Dot frame is (90, 90, 10, 10); its center must be solid.
	got := pm.GetPixel(95, 95)
	if got.G < 0.9 {
		t.Errorf("period center = %+v, want solid green", got)
	}
}

func TestRasterizeLeavesBackgroundUntouched(t *testing.T) {
	eight, _ := Encode('8', false)
	pm := renderToPixmap(t, eight, Red, Sz(100, 100))

	// No shape reaches the extreme corner pixel.
	got := pm.GetPixel(0, 0)
	if got.R > 0.02 || got.G > 0.02 || got.B > 0.02 {
		t.Errorf("corner pixel = %+v, want background black", got)
	}
}

func TestRasterizeReadoutEndToEnd(t *testing.T) {
	size := Sz(200, 100)
	pm := NewPixmap(200, 100)
	pm.Clear(Black)
	Rasterize(pm, RenderReadout("01", Red, SkewNone, size))

	cells := LayoutReadout("01", size)

	// '1' lights only the right column; the second cell's right edge
	// midpoint must be lit.
	frame := SegmentFrame(SegmentTopRight, cells[1].Frame.Size())
	x := int(cells[1].Frame.X + frame.X + frame.W/2)
	y := int(frame.Y + frame.H/2)
	if got := pm.GetPixel(x, y); got.R < 0.9 {
		t.Errorf("second cell top-right bar = %+v at (%d,%d), want solid red", got, x, y)
	}
}
