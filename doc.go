// Package sevenseg renders seven-segment display widgets.
//
// # Overview
//
// sevenseg models the classic LED seven-segment display (seven strokes
// plus a period dot) as pure geometry: a bitset of lit segments, a
// character-to-segment encoding table, and shape generation that turns a
// segment identity into a polygon or ellipse inside an arbitrary frame.
// The package computes fill geometry; painting is left to the host, with
// a small software rasterizer included for PNG output and tests.
//
// # Quick Start
//
//	import "github.com/gogpu/sevenseg"
//
//	// Compose a two-character readout into fill geometry.
//	fills := sevenseg.RenderReadout("42", sevenseg.Red, sevenseg.SkewTraditional,
//		sevenseg.Sz(200, 120))
//
//	// Rasterize into a pixmap and save.
//	pm := sevenseg.NewPixmap(220, 120)
//	pm.Clear(sevenseg.Black)
//	sevenseg.Rasterize(pm, fills)
//	pm.SavePNG("readout.png")
//
// # Architecture
//
// The package is organized into:
//   - Model: Segment, DisplayState, the character encoding table
//   - Geometry: SegmentFrame, SegmentOutline, Matrix, Rect, Point
//   - Composition: RenderDisplay, RenderReadout, Skew
//   - Rendering: Pixmap plus internal/raster (software fill)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All segment placement is computed as fractions of the widget frame, so
// output is resolution and DPI independent.
//
// # Concurrency
//
// Every operation is a pure function of its inputs. The encoding table is
// read-only after initialization, so any number of goroutines may render
// displays concurrently without locking.
package sevenseg

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
