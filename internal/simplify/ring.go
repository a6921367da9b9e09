// Package simplify implements the priority-queue-driven vertex-removal
// algorithm that is the core of the service: given a closed polygon ring or
// an open polyline, it removes vertices whose deviation from their live
// neighbors falls within the configured tolerances, relocating a vertex via
// line intersection when exactly one of its flanking edges is short.
package simplify

import (
	"errors"
	"fmt"

	"github.com/polyforge/simplifyd/internal/geomint"
)

// MinResolution is the fixed numerical floor below which a deviation is
// always considered noise, regardless of the caller's tolerances.
const MinResolution = 5

// Ring is an ordered sequence of vertices. Closed marks a polygon boundary
// whose last vertex implicitly connects back to the first; an open Ring is
// a polyline whose first and last vertices are fixed endpoints.
type Ring struct {
	Points []geomint.Point
	Closed bool
}

// MinSize is the smallest number of vertices a non-empty Ring of this kind
// may have in its output.
func (r Ring) MinSize() int {
	if r.Closed {
		return 3
	}
	return 2
}

// Tolerances bounds a simplification run. MaxAreaDeviation is accepted and
// validated for forward compatibility but is never consulted by Simplify.
type Tolerances struct {
	MaxResolution    int64
	MaxDeviation     int64
	MaxAreaDeviation int64
}

// ErrNegativeTolerance is returned by Validate when any tolerance is negative.
var ErrNegativeTolerance = errors.New("simplify: tolerance must be non-negative")

// Validate rejects negative tolerances before they ever reach the engine.
func (t Tolerances) Validate() error {
	if t.MaxResolution < 0 || t.MaxDeviation < 0 || t.MaxAreaDeviation < 0 {
		return fmt.Errorf("%w: max_resolution=%d max_deviation=%d max_area_deviation=%d",
			ErrNegativeTolerance, t.MaxResolution, t.MaxDeviation, t.MaxAreaDeviation)
	}
	return nil
}

// Engine holds the tolerances for one simplification run. Engines are cheap
// value objects created per request and hold no state that outlives a call
// to Simplify.
type Engine struct {
	Tolerances
}

// NewEngine constructs an Engine from the given tolerances.
func NewEngine(t Tolerances) Engine {
	return Engine{Tolerances: t}
}
