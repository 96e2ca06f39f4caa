package sevenseg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDigits(t *testing.T) {
	require := require.New(t)

	wants := map[rune]DisplayState{
		'0': NewDisplayState(SegmentTop, SegmentTopRight, SegmentBottomRight, SegmentBottom, SegmentBottomLeft, SegmentTopLeft),
		'1': NewDisplayState(SegmentTopRight, SegmentBottomRight),
		'2': NewDisplayState(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomLeft, SegmentBottom),
		'3': NewDisplayState(SegmentTop, SegmentTopRight, SegmentCenter, SegmentBottomRight, SegmentBottom),
		'4': NewDisplayState(SegmentTopLeft, SegmentCenter, SegmentTopRight, SegmentBottomRight),
		'5': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),
		'6': NewDisplayState(SegmentTop, SegmentTopLeft, SegmentCenter, SegmentBottomLeft, SegmentBottomRight, SegmentBottom),
		'7': NewDisplayState(SegmentTop, SegmentTopRight, SegmentBottomRight),
		'8': DisplayState(0x7F),
		'9': NewDisplayState(SegmentTop, SegmentTopRight, SegmentTopLeft, SegmentCenter, SegmentBottomRight, SegmentBottom),
	}
	for r, want := range wants {
		got, ok := Encode(r, false)
		require.True(ok, "digit %q must be representable", r)
		require.Equal(want, got, "digit %q", r)
	}
}

func TestEncodeSpaceIsBlank(t *testing.T) {
	got, ok := Encode(' ', false)
	require.True(t, ok)
	require.True(t, got.IsBlank())
}

func TestEncodePunctuation(t *testing.T) {
	require := require.New(t)

	got, ok := Encode('-', false)
	require.True(ok)
	require.Equal(SegmentCenter.State(), got)

	got, ok = Encode('_', false)
	require.True(ok)
	require.Equal(SegmentBottom.State(), got)

	got, ok = Encode('=', false)
	require.True(ok)
	require.Equal(NewDisplayState(SegmentCenter, SegmentBottom), got)

	_, ok = Encode('\'', false)
	require.True(ok)
}

// Letters absent from the uppercase table miss on verbatim lookup.
func TestEncodeUndefinedUppercaseVerbatim(t *testing.T) {
	for _, r := range "BDKMNQRTVWXY" {
		_, ok := Encode(r, false)
		require.False(t, ok, "uppercase %q must not be tabulated", r)
	}
}

// With the fallback enabled, an untabulated uppercase letter borrows its
// lowercase shape when one exists.
func TestEncodeCaseToggleFallback(t *testing.T) {
	require := require.New(t)

	for _, r := range "BDNQRTY" {
		upper, ok := Encode(r, true)
		require.True(ok, "%q should fall back to lowercase", r)
		lower, ok := Encode(toggleCase(r), false)
		require.True(ok)
		require.Equal(lower, upper, "%q and its lowercase must agree", r)
	}

	// Absent in both cases: still not representable.
	for _, r := range "KMVWX" {
		_, ok := Encode(r, true)
		require.False(ok, "%q has no shape in either case", r)
	}
}

// Both cases of A are tabulated with deliberately different shapes, so
// the fallback must not kick in for them.
func TestEncodeBothCasesTabulated(t *testing.T) {
	require := require.New(t)

	upper, ok := Encode('A', true)
	require.True(ok)
	lower, ok := Encode('a', true)
	require.True(ok)
	require.NotEqual(upper, lower, "'A' and 'a' are distinct glyphs")
}

func TestEncodeNonCasedCharacter(t *testing.T) {
	_, ok := Encode('%', true)
	require.False(t, ok, "'%' passes through case toggling unchanged and stays absent")
}

func TestEncodeLowercaseSubset(t *testing.T) {
	require := require.New(t)

	for _, r := range "abcdefghijlnopqrstuyz" {
		_, ok := Encode(r, false)
		require.True(ok, "lowercase %q must be tabulated", r)
	}
	for _, r := range "kmvwx" {
		_, ok := Encode(r, false)
		require.False(ok, "lowercase %q must not be tabulated", r)
	}
}

// The table is read-only after init; concurrent lookups need no locking.
func TestEncodeConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := rune(' '); r <= 'z'; r++ {
				Encode(r, true)
			}
		}()
	}
	wg.Wait()
}
