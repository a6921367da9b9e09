// Package service translates wire-level simplification requests into
// in-memory batches, drives the batch package, and translates the result
// back. It never runs the engine itself and knows nothing of how a request
// arrived — that belongs to internal/hostproc.
package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/polyforge/simplifyd/internal/batch"
	"github.com/polyforge/simplifyd/internal/geomint"
	"github.com/polyforge/simplifyd/internal/settings"
	"github.com/polyforge/simplifyd/internal/simplify"
)

// WirePoint is one (x, y) pair as it appears on the wire.
type WirePoint struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// WireRing is an ordered list of points.
type WireRing []WirePoint

// WirePolygon is one outline plus zero or more holes.
type WirePolygon struct {
	Outline WireRing   `json:"outline"`
	Holes   []WireRing `json:"holes,omitempty"`
}

// Request is the decoded form of a simplification request.
type Request struct {
	MaxDeviation     int64         `json:"max_deviation"`
	MaxResolution    int64         `json:"max_resolution"`
	MaxAreaDeviation int64         `json:"max_area_deviation"`
	Polygons         []WirePolygon `json:"polygons"`
}

// Response is the wire form of a simplification result: one output polygon
// per input polygon, one output ring per input ring, same order.
type Response struct {
	Polygons []WirePolygon `json:"polygons"`
}

// Adapter is stateless per request; it holds only the dependencies shared
// across requests (logger, settings store).
type Adapter struct {
	Log      *zap.Logger
	Settings *settings.Store
}

// NewAdapter builds an Adapter. log must not be nil.
func NewAdapter(log *zap.Logger, store *settings.Store) *Adapter {
	return &Adapter{Log: log, Settings: store}
}

// Handle decodes req, runs the batch driver, and returns the translated
// response. clientID identifies the settings bucket for this request; it is
// currently consulted for logging only (see internal/settings).
func (a *Adapter) Handle(clientID string, req Request) (Response, error) {
	tolerances := simplify.Tolerances{
		MaxResolution:    req.MaxResolution,
		MaxDeviation:     req.MaxDeviation,
		MaxAreaDeviation: req.MaxAreaDeviation,
	}
	if err := tolerances.Validate(); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidTolerances, err)
	}
	if len(req.Polygons) == 0 {
		return Response{}, fmt.Errorf("%w: empty polygon list", ErrBadRequest)
	}

	in, err := decodeBatch(req.Polygons)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	if snap := a.Settings.Snapshot(clientID); len(snap) > 0 {
		a.Log.Debug("client settings in effect", zap.String("client", clientID), zap.Int("keys", len(snap)))
	}

	engine := simplify.NewEngine(tolerances)
	logOverlapDiagnostics(a.Log, in)
	out := batch.Run(engine, in)

	return encodeBatch(out), nil
}

func decodeBatch(wps []WirePolygon) (batch.Batch, error) {
	b := make(batch.Batch, len(wps))
	for i, wp := range wps {
		if len(wp.Outline) == 0 {
			return nil, fmt.Errorf("polygon %d: empty outline", i)
		}
		poly := batch.Polygon{
			Outline: decodeRing(wp.Outline, true),
			Holes:   make([]simplify.Ring, len(wp.Holes)),
		}
		for j, h := range wp.Holes {
			poly.Holes[j] = decodeRing(h, true)
		}
		b[i] = poly
	}
	return b, nil
}

func decodeRing(wr WireRing, closed bool) simplify.Ring {
	pts := make([]geomint.Point, len(wr))
	for i, p := range wr {
		pts[i] = geomint.Point{X: p.X, Y: p.Y}
	}
	return simplify.Ring{Points: pts, Closed: closed}
}

func encodeBatch(b batch.Batch) Response {
	wps := make([]WirePolygon, len(b))
	for i, poly := range b {
		wps[i] = WirePolygon{
			Outline: encodeRing(poly.Outline),
			Holes:   make([]WireRing, len(poly.Holes)),
		}
		for j, h := range poly.Holes {
			wps[i].Holes[j] = encodeRing(h)
		}
	}
	return Response{Polygons: wps}
}

func encodeRing(r simplify.Ring) WireRing {
	wr := make(WireRing, len(r.Points))
	for i, p := range r.Points {
		wr[i] = WirePoint{X: p.X, Y: p.Y}
	}
	return wr
}
