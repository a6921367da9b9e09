// Package batch applies the simplification engine across a batch of
// polygons-with-holes, one ring at a time, while preserving the positional
// correspondence between input and output.
package batch

import "github.com/polyforge/simplifyd/internal/simplify"

// Polygon is one outer boundary plus zero or more holes. No nesting
// relationship between the outline and its holes is modeled or validated
// here; each ring is simplified independently.
type Polygon struct {
	Outline simplify.Ring
	Holes   []simplify.Ring
}

// Batch is an ordered sequence of polygons.
type Batch []Polygon

// Run applies engine to the outline and every hole of every polygon in b,
// preserving polygon order, ring order, and the outline/holes partition. A
// ring whose simplification is empty is still included as an empty ring at
// its original position.
func Run(e simplify.Engine, b Batch) Batch {
	out := make(Batch, len(b))
	for i, poly := range b {
		simplified := Polygon{
			Outline: e.Simplify(poly.Outline),
			Holes:   make([]simplify.Ring, len(poly.Holes)),
		}
		for j, hole := range poly.Holes {
			simplified.Holes[j] = e.Simplify(hole)
		}
		out[i] = simplified
	}
	return out
}
