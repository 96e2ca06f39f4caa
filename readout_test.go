package sevenseg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReadoutSuite struct {
	suite.Suite
}

func (s *ReadoutSuite) TestSpacingSingleDisplay() {
	require.Zero(s.T(), ReadoutSpacing(200, 1))
	require.Zero(s.T(), ReadoutSpacing(200, 0))
}

func (s *ReadoutSuite) TestSpacingSplitsGapBudget() {
	require := require.New(s.T())
	// 5% of the width shared among the four gaps.
	require.InDelta(2.5, ReadoutSpacing(200, 5), 1e-9)
	require.InDelta(5.0, ReadoutSpacing(100, 2), 1e-9)
}

func (s *ReadoutSuite) TestAspectRatio() {
	require := require.New(s.T())
	require.InDelta(2.4, ReadoutAspectRatio(0.6, 4), 1e-9)
	require.InDelta(0.6, ReadoutAspectRatio(0.6, 1), 1e-9)
	// n of zero leaves the per-character ratio unchanged.
	require.InDelta(0.6, ReadoutAspectRatio(0.6, 0), 1e-9)
}

func (s *ReadoutSuite) TestLayoutEmptyText() {
	require.Nil(s.T(), LayoutReadout("", Sz(100, 50)))
}

func (s *ReadoutSuite) TestLayoutEncodesCharacters() {
	require := require.New(s.T())

	cells := LayoutReadout("01", Sz(200, 100))
	require.Len(cells, 2)

	zero, ok := Encode('0', false)
	require.True(ok)
	one, ok := Encode('1', false)
	require.True(ok)
	require.Equal(zero, cells[0].State)
	require.Equal(one, cells[1].State)

	// Non-overlapping frames with a real gap between them.
	gap := cells[1].Frame.X - cells[0].Frame.MaxX()
	require.InDelta(ReadoutSpacing(200, 2), gap, 1e-9)
	require.Positive(gap)
}

func (s *ReadoutSuite) TestLayoutFillsWidth() {
	require := require.New(s.T())

	size := Sz(300, 80)
	cells := LayoutReadout("123", size)
	require.Len(cells, 3)
	require.Zero(cells[0].Frame.X)
	require.InDelta(size.W, cells[2].Frame.MaxX(), 1e-9)
	for _, c := range cells {
		require.InDelta(size.H, c.Frame.H, 1e-9)
	}
}

func (s *ReadoutSuite) TestLayoutBlanksUnrepresentable() {
	require := require.New(s.T())

	cells := LayoutReadout("1%2", Sz(150, 60))
	require.Len(cells, 3)
	require.True(cells[1].State.IsBlank(), "unrepresentable character must render blank")
	require.False(cells[0].State.IsBlank())
}

func (s *ReadoutSuite) TestLayoutCaseFallback() {
	require := require.New(s.T())

	cells := LayoutReadout("N", Sz(50, 50))
	require.Len(cells, 1)
	lower, ok := Encode('n', false)
	require.True(ok)
	require.Equal(lower, cells[0].State)
}

func (s *ReadoutSuite) TestRenderReadoutTranslatesCells() {
	require := require.New(s.T())

	fills := RenderReadout("01", Red, SkewNone, Sz(200, 100))
	require.Len(fills, 16)

	// Fills 8..15 belong to the second cell; their transforms must move
	// the origin to the cell's frame.
	cells := LayoutReadout("01", Sz(200, 100))
	origin := fills[8].Transform.TransformPoint(Pt(0, 0))
	require.InDelta(cells[1].Frame.X, origin.X, 1e-9)
	require.Zero(origin.Y)
}

func (s *ReadoutSuite) TestRenderReadoutEmpty() {
	require.Nil(s.T(), RenderReadout("", Red, SkewNone, Sz(100, 50)))
}

func TestReadoutSuite(t *testing.T) {
	suite.Run(t, new(ReadoutSuite))
}
