package simplify

import (
	"container/heap"
	"math"

	"github.com/polyforge/simplifyd/internal/geomint"
)

// Simplify returns a new Ring satisfying the package's minimum-size and
// endpoint-preservation invariants. It is deterministic: identical inputs
// always produce identical outputs.
func (e Engine) Simplify(r Ring) Ring {
	min := r.MinSize()
	n := len(r.Points)

	if n < min {
		return Ring{Closed: r.Closed}
	}
	if n == min {
		out := make([]geomint.Point, n)
		copy(out, r.Points)
		return Ring{Points: out, Closed: r.Closed}
	}

	s := newRun(e, r)
	s.simplify()
	return s.compact()
}

// run holds the mutable working state of one Simplify call: a repositionable
// copy of the ring's vertices, a liveness marker per original index, and the
// engine's tolerances. It is discarded once Simplify returns.
type run struct {
	engine  Engine
	w       []geomint.Point
	deleted []bool
	closed  bool
	n       int
}

func newRun(e Engine, r Ring) *run {
	w := make([]geomint.Point, len(r.Points))
	copy(w, r.Points)
	return &run{
		engine:  e,
		w:       w,
		deleted: make([]bool, len(w)),
		closed:  r.Closed,
		n:       len(w),
	}
}

// nextLive returns the smallest j > i (mod n) with deleted[j] == false.
func (s *run) nextLive(i int) int {
	j := (i + 1) % s.n
	for s.deleted[j] {
		j = (j + 1) % s.n
	}
	return j
}

// prevLive is the mirror of nextLive.
func (s *run) prevLive(i int) int {
	j := (i - 1 + s.n) % s.n
	for s.deleted[j] {
		j = (j - 1 + s.n) % s.n
	}
	return j
}

// importance computes the priority-queue key for vertex i against the
// current working state. Open-ring endpoints are pinned at +Inf so they are
// never removed.
//
// The second-edge length check below deliberately reuses the Δy of the
// prev→i edge when computing the hypotenuse of the i→next edge, rather than
// next edge's own Δy. This asymmetry is a documented, preserved behavior of
// the algorithm (see the "ℓ_next" decision in DESIGN.md), not a typo.
func (s *run) importance(i int) float64 {
	if !s.closed && (i == 0 || i == s.n-1) {
		return math.Inf(1)
	}

	prev := s.prevLive(i)
	next := s.nextLive(i)

	d := geomint.DistPointToLine(s.w[i], s.w[prev], s.w[next])
	if d <= MinResolution {
		return d
	}

	dxPrev := float64(s.w[prev].X - s.w[i].X)
	dyPrev := float64(s.w[prev].Y - s.w[i].Y)
	lPrev := math.Sqrt(dxPrev*dxPrev + dyPrev*dyPrev)

	dxNext := float64(s.w[next].X - s.w[i].X)
	lNext := math.Sqrt(dxNext*dxNext + dyPrev*dyPrev)

	maxRes := float64(s.engine.MaxResolution)
	if lPrev > maxRes && lNext > maxRes {
		return math.Inf(1)
	}
	return d
}

// simplify runs the lazy-rescoring priority-queue main loop until only
// MinSize entries remain unresolved.
func (s *run) simplify() {
	min := Ring{Closed: s.closed}.MinSize()

	q := make(removalQueue, s.n)
	for i := 0; i < s.n; i++ {
		q[i] = scoredIndex{index: i, score: s.importance(i)}
	}
	heap.Init(&q)

	threshold := float64(s.engine.MaxDeviation) * float64(s.engine.MaxDeviation)

	for q.Len() > min {
		top := heap.Pop(&q).(scoredIndex)
		i := top.index

		fresh := s.importance(i)
		if fresh != top.score {
			heap.Push(&q, scoredIndex{index: i, score: fresh})
			continue
		}

		// A deviation at or below the noise floor is always worth removing,
		// even when it exceeds the (squared) max-deviation threshold — see
		// the MinResolution decision in DESIGN.md.
		if fresh <= MinResolution || fresh <= threshold {
			s.remove(i, fresh)
		}
		// Otherwise the entry is dropped: i is kept, permanently.
	}
}

// remove commits vertex i for deletion, collapsing a short flanking edge
// into a relocated neighbor vertex when exactly one of i's flanking edges is
// short. Refusal cases (no live outer neighbor on an open ring, no
// intersection, or an intersection that deviates too far) silently leave i
// in place.
func (s *run) remove(i int, d float64) {
	if d <= MinResolution {
		s.deleted[i] = true
		return
	}

	a := s.prevLive(i)
	b := s.nextLive(i)
	lA := geomint.Distance(s.w[i], s.w[a])
	lB := geomint.Distance(s.w[i], s.w[b])
	maxRes := float64(s.engine.MaxResolution)

	if lA <= maxRes && lB <= maxRes {
		s.deleted[i] = true
		return
	}

	maxDev := float64(s.engine.MaxDeviation)

	if lA <= maxRes {
		if !s.closed && a == 0 {
			return
		}
		aa := s.prevLive(a)
		x, ok := geomint.LineLineIntersection(s.w[aa], s.w[a], s.w[i], s.w[b])
		if !ok {
			return
		}
		if geomint.DistPointToLine(x, s.w[a], s.w[i]) > maxDev {
			return
		}
		s.deleted[i] = true
		s.w[a] = x
		return
	}

	// lB <= maxRes: the i-b edge is short.
	if !s.closed && b == s.n-1 {
		return
	}
	bb := s.nextLive(b)
	x, ok := geomint.LineLineIntersection(s.w[a], s.w[i], s.w[b], s.w[bb])
	if !ok {
		return
	}
	if geomint.DistPointToLine(x, s.w[i], s.w[b]) > maxDev {
		return
	}
	s.deleted[i] = true
	s.w[b] = x
}

// compact concatenates every surviving vertex in order.
func (s *run) compact() Ring {
	out := make([]geomint.Point, 0, s.n)
	for i := 0; i < s.n; i++ {
		if !s.deleted[i] {
			out = append(out, s.w[i])
		}
	}
	return Ring{Points: out, Closed: s.closed}
}
