package simplify

import (
	"testing"

	"github.com/polyforge/simplifyd/internal/geomint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(xy ...int64) []geomint.Point {
	if len(xy)%2 != 0 {
		panic("pts: odd number of coordinates")
	}
	out := make([]geomint.Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		out = append(out, geomint.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestDegenerateClosedRing(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 1, MaxDeviation: 1})
	r := Ring{Points: pts(0, 0, 10, 0), Closed: true}
	out := e.Simplify(r)
	assert.Empty(t, out.Points)
}

func TestMinimumSizeClosedRingUnchanged(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 1, MaxDeviation: 1})
	r := Ring{Points: pts(0, 0, 10, 0, 10, 10), Closed: true}
	out := e.Simplify(r)
	assert.Equal(t, r.Points, out.Points)
}

func TestColinearVertexRemoval(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 100, MaxDeviation: 1, MaxAreaDeviation: 0})
	r := Ring{Points: pts(0, 0, 5, 0, 10, 0, 10, 10, 0, 10), Closed: true}
	out := e.Simplify(r)
	assert.Equal(t, pts(0, 0, 10, 0, 10, 10, 0, 10), out.Points)
}

func TestTinyDeviationBelowFloor(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 10, MaxDeviation: 1})
	r := Ring{
		Points: pts(0, 0, 100, 0, 200, 2, 300, 0, 300, 100, 0, 100),
		Closed: true,
	}
	out := e.Simplify(r)
	require.Less(t, len(out.Points), len(r.Points))
	for _, p := range out.Points {
		assert.NotEqual(t, geomint.Point{X: 200, Y: 2}, p)
	}
}

// With these values (100,0) and (101,1) both fall within the MinResolution
// floor and are removed outright; this input does not reach the short-edge
// collapse path of remove().
func TestShortEdgeScenarioDropsNearCollinearVertices(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 5, MaxDeviation: 5})
	r := Ring{
		Points: pts(0, 0, 100, 0, 101, 1, 200, 0, 200, 100, 0, 100),
		Closed: true,
	}
	out := e.Simplify(r)
	for _, p := range out.Points {
		assert.NotEqual(t, geomint.Point{X: 101, Y: 1}, p)
	}
	assert.Less(t, len(out.Points), len(r.Points))
}

func TestOpenPolylineEndpointRetention(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 100, MaxDeviation: 5})
	r := Ring{Points: pts(0, 0, 50, 1, 100, 0), Closed: false}
	out := e.Simplify(r)
	require.NotEmpty(t, out.Points)
	assert.Equal(t, geomint.Point{X: 0, Y: 0}, out.Points[0])
	assert.Equal(t, geomint.Point{X: 100, Y: 0}, out.Points[len(out.Points)-1])
}

func TestZeroToleranceIdentity(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 0, MaxDeviation: 0})
	r := Ring{Points: pts(0, 0, 100, 50, 200, 0, 200, 200, 0, 200), Closed: true}
	out := e.Simplify(r)
	assert.Equal(t, r.Points, out.Points)
}

func TestIdempotenceOnLargeTolerances(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 1000, MaxDeviation: 1000})
	r := Ring{Points: pts(0, 0, 5, 0, 10, 0, 10, 10, 0, 10), Closed: true}
	once := e.Simplify(r)
	twice := e.Simplify(once)
	assert.Equal(t, once.Points, twice.Points)
}

func TestDeterminism(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 20, MaxDeviation: 3})
	r := Ring{Points: pts(0, 0, 20, 1, 40, 0, 60, 30, 80, 0, 0, 60), Closed: true}
	first := e.Simplify(r)
	second := e.Simplify(r)
	assert.Equal(t, first.Points, second.Points)
}

func TestEndpointPreservationOpenRingAlwaysHolds(t *testing.T) {
	e := NewEngine(Tolerances{MaxResolution: 1000, MaxDeviation: 1000})
	r := Ring{Points: pts(0, 0, 1, 1, 2, 2, 3, 3, 4, 50, 5, 5), Closed: false}
	out := e.Simplify(r)
	if len(out.Points) > 0 {
		assert.Equal(t, r.Points[0], out.Points[0])
		assert.Equal(t, r.Points[len(r.Points)-1], out.Points[len(out.Points)-1])
	}
}

func TestTolerancesValidateRejectsNegative(t *testing.T) {
	err := Tolerances{MaxResolution: -1}.Validate()
	assert.ErrorIs(t, err, ErrNegativeTolerance)
}
