package sevenseg

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// encodings maps printable characters to the minimal segment combination
// that visually approximates them on seven segments. The table is
// deliberately partial: letters that cannot be rendered recognizably
// (uppercase B, D, K, M, N, Q, R, T, V, W, X, Y; lowercase k, m, v, w, x)
// are absent. Read-only after initialization.
var encodings = map[rune]DisplayState{
	'0': NewDisplayState(SegmentTop, SegmentTopRight, SegmentBottomRight, SegmentBottom, SegmentBottomLeft, SegmentTopLeft),
	'1': NewDisplayState(SegmentTopRight, SegmentBottomRight),
	'2': NewDisplayState(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottom),
	'3': NewDisplayState(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomRight, SegmentBottom),
	'4': NewDisplayState(SegmentTopLeft, SegmentCenter, SegmentTopRight, SegmentBottomRight),
	'5': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),
	'6': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft, SegmentBottomRight, SegmentBottom),
	'7': NewDisplayState(SegmentTop, SegmentTopRight, SegmentBottomRight),
	'8': NewDisplayState(SegmentTop, SegmentTopRight, SegmentBottomRight, SegmentBottom, SegmentBottomLeft, SegmentTopLeft, SegmentCenter),
	'9': NewDisplayState(SegmentTop, SegmentTopRight, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),

	'A': NewDisplayState(SegmentTop, SegmentTopRight, SegmentBottomRight, SegmentBottomLeft, SegmentTopLeft, SegmentCenter),
	'C': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentBottomLeft, SegmentBottom),
	'E': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft, SegmentBottom),
	'F': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft),
	'G': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentBottomLeft, SegmentBottom, SegmentBottomRight),
	'H': NewDisplayState(SegmentTopLeft, SegmentBottomLeft, SegmentCenter, SegmentTopRight, SegmentBottomRight),
	'I': NewDisplayState(SegmentTopRight, SegmentBottomRight),
	'J': NewDisplayState(SegmentTopRight, SegmentBottomRight, SegmentBottom, SegmentBottomLeft),
	'L': NewDisplayState(SegmentTopLeft, SegmentBottomLeft, SegmentBottom),
	'O': NewDisplayState(SegmentTop, SegmentTopRight, SegmentBottomRight, SegmentBottom, SegmentBottomLeft, SegmentTopLeft),
	'P': NewDisplayState(SegmentTop, SegmentTopRight, SegmentTopLeft, SegmentCenter, SegmentBottomLeft),
	'S': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),
	'U': NewDisplayState(SegmentTopLeft, SegmentBottomLeft, SegmentBottom, SegmentBottomRight, SegmentTopRight),
	'Z': NewDisplayState(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottom),

	'a': NewDisplayState(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottom, SegmentBottomRight),
	'b': NewDisplayState(SegmentTopLeft, SegmentBottomLeft, SegmentBottom, SegmentBottomRight, SegmentCenter),
	'c': NewDisplayState(SegmentCenter, SegmentBottomLeft, SegmentBottom),
	'd': NewDisplayState(SegmentTopRight, SegmentBottomRight, SegmentBottom, SegmentBottomLeft, SegmentCenter),
	'e': NewDisplayState(SegmentTop, SegmentTopRight, SegmentTopLeft, SegmentCenter, SegmentBottomLeft, SegmentBottom),
	'f': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft),
	'g': NewDisplayState(SegmentTop, SegmentTopRight, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),
	'h': NewDisplayState(SegmentTopLeft, SegmentBottomLeft, SegmentCenter, SegmentBottomRight),
	'i': NewDisplayState(SegmentBottomRight),
	'j': NewDisplayState(SegmentBottomRight, SegmentBottom),
	'l': NewDisplayState(SegmentTopLeft, SegmentBottomLeft),
	'n': NewDisplayState(SegmentCenter, SegmentBottomLeft, SegmentBottomRight),
	'o': NewDisplayState(SegmentCenter, SegmentBottomLeft, SegmentBottom, SegmentBottomRight),
	'p': NewDisplayState(SegmentTop, SegmentTopRight, SegmentTopLeft, SegmentCenter, SegmentBottomLeft),
	'q': NewDisplayState(SegmentTop, SegmentTopRight, SegmentTopLeft, SegmentCenter, SegmentBottomRight),
	'r': NewDisplayState(SegmentCenter, SegmentBottomLeft),
	's': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),
	't': NewDisplayState(SegmentTopLeft, SegmentBottomLeft, SegmentCenter, SegmentBottom),
	'u': NewDisplayState(SegmentBottomLeft, SegmentBottom, SegmentBottomRight),
	'y': NewDisplayState(SegmentTopLeft, SegmentTopRight, SegmentCenter, SegmentBottomRight, SegmentBottom),
	'z': NewDisplayState(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottom),

	' ':  Blank(),
	'-':  NewDisplayState(SegmentCenter),
	'_':  NewDisplayState(SegmentBottom),
	'=':  NewDisplayState(SegmentCenter, SegmentBottom),
	'\'': NewDisplayState(SegmentTopRight),
}

// Encode returns the display state resembling the character.
//
// The character is looked up verbatim first. If absent and allowCaseToggle
// is true, the case-toggled form is tried once (upper to lower or lower to
// upper; non-cased characters pass through unchanged). If the character is
// still absent the second result is false and callers must render a blank
// display; this is not an error condition.
//
// Encode is deterministic and safe for unsynchronized concurrent use.
func Encode(r rune, allowCaseToggle bool) (DisplayState, bool) {
	if d, ok := encodings[r]; ok {
		return d, true
	}
	if !allowCaseToggle {
		return Blank(), false
	}
	toggled := toggleCase(r)
	if toggled == r {
		return Blank(), false
	}
	if d, ok := encodings[toggled]; ok {
		return d, true
	}
	return Blank(), false
}

// toggleCase returns the opposite-case form of r using full Unicode case
// mapping. Where a mapping expands to several characters (never the case
// for Latin letters) only the first is used.
func toggleCase(r rune) rune {
	var caser cases.Caser
	switch {
	case unicode.IsUpper(r):
		caser = cases.Lower(language.Und)
	case unicode.IsLower(r):
		caser = cases.Upper(language.Und)
	default:
		return r
	}
	for _, first := range caser.String(string(r)) {
		return first
	}
	return r
}
