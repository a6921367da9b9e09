// Package loader reads offline GeoJSON fixtures into the in-memory batch
// form consumed by internal/batch, for the batch and inspect CLI
// subcommands. It has no role in the live request path.
package loader

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/polyforge/simplifyd/internal/batch"
	"github.com/polyforge/simplifyd/internal/geomint"
	"github.com/polyforge/simplifyd/internal/simplify"
)

// LoadBatch reads a GeoJSON FeatureCollection from path and converts every
// Polygon and MultiPolygon feature into a batch.Polygon. Coordinates are
// scaled by scale and rounded to the nearest integer, since the core works
// exclusively in integer coordinates. Within each polygon ring, the first
// ring is the outline and any remaining rings are holes, mirroring GeoJSON's
// own exterior/interior ring convention.
func LoadBatch(path string, scale int64) (batch.Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("loader: parse %s: %w", path, err)
	}

	var out batch.Batch
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			out = append(out, polygonFromOrb(g, scale))
		case orb.MultiPolygon:
			for _, p := range g {
				out = append(out, polygonFromOrb(p, scale))
			}
		}
	}
	return out, nil
}

func polygonFromOrb(p orb.Polygon, scale int64) batch.Polygon {
	if len(p) == 0 {
		return batch.Polygon{}
	}
	poly := batch.Polygon{
		Outline: ringFromOrb(p[0], scale),
		Holes:   make([]simplify.Ring, 0, len(p)-1),
	}
	for _, hole := range p[1:] {
		poly.Holes = append(poly.Holes, ringFromOrb(hole, scale))
	}
	return poly
}

// ringFromOrb converts a GeoJSON linear ring, which repeats its first point
// as its last to close the loop, into the package's closed-ring form, which
// stores each vertex exactly once.
func ringFromOrb(r orb.Ring, scale int64) simplify.Ring {
	coords := []orb.Point(r)
	if len(coords) > 1 && coords[0] == coords[len(coords)-1] {
		coords = coords[:len(coords)-1]
	}
	pts := make([]geomint.Point, len(coords))
	for i, c := range coords {
		pts[i] = geomint.Point{
			X: scaleCoord(c[0], scale),
			Y: scaleCoord(c[1], scale),
		}
	}
	return simplify.Ring{Points: pts, Closed: true}
}

func scaleCoord(v float64, scale int64) int64 {
	scaled := v * float64(scale)
	if scaled < 0 {
		return int64(scaled - 0.5)
	}
	return int64(scaled + 0.5)
}
