package service

import (
	"github.com/dhconnelly/rtreego"
	"go.uber.org/zap"

	"github.com/polyforge/simplifyd/internal/batch"
	"github.com/polyforge/simplifyd/internal/simplify"
)

// bboxEntry adapts one polygon's outline bounding box to rtreego.Spatial.
// It exists purely for the diagnostic below; nothing here reaches the
// simplification engine.
type bboxEntry struct {
	index int
	rect  rtreego.Rect
}

func (e *bboxEntry) Bounds() rtreego.Rect { return e.rect }

// logOverlapDiagnostics builds an ephemeral R-tree over a batch's outline
// bounding boxes and logs, at debug level, how many pairs of polygons have
// overlapping boxes. It never influences simplification output and any
// failure to build a box for a degenerate ring is simply skipped.
func logOverlapDiagnostics(log *zap.Logger, b batch.Batch) {
	if len(b) < 2 {
		return
	}

	tree := rtreego.NewTree(2, 4, 16)
	entries := make([]*bboxEntry, 0, len(b))
	for i, poly := range b {
		rect, ok := outlineRect(poly.Outline)
		if !ok {
			continue
		}
		e := &bboxEntry{index: i, rect: rect}
		entries = append(entries, e)
		tree.Insert(e)
	}

	overlaps := 0
	for _, e := range entries {
		hits := tree.SearchIntersect(e.rect)
		for _, h := range hits {
			other := h.(*bboxEntry)
			if other.index > e.index {
				overlaps++
			}
		}
	}

	log.Debug("batch bounding-box diagnostics",
		zap.Int("polygons", len(b)),
		zap.Int("indexed", len(entries)),
		zap.Int("overlapping_pairs", overlaps),
	)
}

// outlineRect computes the axis-aligned bounding box of a ring's points. It
// reports ok=false for rings with fewer than 1 point, mirroring rtreego's
// requirement of a strictly positive extent in every dimension by padding
// a zero-width box by a single unit.
func outlineRect(r simplify.Ring) (rtreego.Rect, bool) {
	if len(r.Points) == 0 {
		return rtreego.Rect{}, false
	}
	minX, minY := float64(r.Points[0].X), float64(r.Points[0].Y)
	maxX, maxY := minX, minY
	for _, p := range r.Points[1:] {
		x, y := float64(p.X), float64(p.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	width, height := maxX-minX, maxY-minY
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{width, height})
	if err != nil {
		return rtreego.Rect{}, false
	}
	return rect, true
}
