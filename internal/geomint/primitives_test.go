package geomint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistPointToLineOnLine(t *testing.T) {
	d := DistPointToLine(Point{5, 0}, Point{0, 0}, Point{10, 0})
	assert.InDelta(t, 0.0, d, 1e-9)
}

func TestDistPointToLineDegenerate(t *testing.T) {
	d := DistPointToLine(Point{3, 4}, Point{0, 0}, Point{0, 0})
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestDistPointToLinePerpendicular(t *testing.T) {
	d := DistPointToLine(Point{5, 5}, Point{0, 0}, Point{10, 0})
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestRoundDivSignedHalfAwayFromZero(t *testing.T) {
	cases := []struct{ n, d, want int64 }{
		{5, 2, 3},
		{-5, 2, -3},
		{5, -2, -3},
		{-5, -2, 3},
		{4, 2, 2},
		{1, 3, 0},
		{2, 3, 1},
		{0, 7, 0},
	}
	for _, c := range cases {
		got := RoundDivSigned(c.n, c.d)
		assert.Equalf(t, c.want, got, "RoundDivSigned(%d,%d)", c.n, c.d)
	}
}

func TestLineLineIntersectionCrossing(t *testing.T) {
	p, ok := LineLineIntersection(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	require.True(t, ok)
	assert.Equal(t, Point{5, 5}, p)
}

func TestLineLineIntersectionParallel(t *testing.T) {
	_, ok := LineLineIntersection(Point{0, 0}, Point{10, 0}, Point{0, 1}, Point{10, 1})
	assert.False(t, ok)
}

func TestLineLineIntersectionOutOfInt32Range(t *testing.T) {
	// Two lines with almost identical slope (D == 1) whose intersection
	// point lies far beyond the signed 32-bit range.
	_, ok := LineLineIntersection(
		Point{0, 0}, Point{1, 100000},
		Point{1, 0}, Point{2, 100001},
	)
	assert.False(t, ok)
}

func TestCrossBasic(t *testing.T) {
	assert.Equal(t, int64(1), Cross(Point{1, 0}, Point{0, 1}))
	assert.Equal(t, int64(-1), Cross(Point{0, 1}, Point{1, 0}))
}

func TestDistancePythagorean(t *testing.T) {
	d := Distance(Point{0, 0}, Point{3, 4})
	assert.True(t, math.Abs(d-5) < 1e-9)
}
