package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/polyforge/simplifyd/internal/settings"
)

func newTestAdapter() *Adapter {
	return NewAdapter(zap.NewNop(), settings.NewStore())
}

func TestHandleRejectsEmptyPolygonList(t *testing.T) {
	a := newTestAdapter()
	_, err := a.Handle("client-1", Request{MaxResolution: 1, MaxDeviation: 1})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestHandleRejectsNegativeTolerances(t *testing.T) {
	a := newTestAdapter()
	req := Request{
		MaxResolution: -1,
		Polygons: []WirePolygon{
			{Outline: WireRing{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		},
	}
	_, err := a.Handle("client-1", req)
	assert.ErrorIs(t, err, ErrInvalidTolerances)
}

func TestHandleRejectsEmptyOutline(t *testing.T) {
	a := newTestAdapter()
	req := Request{
		MaxResolution: 1,
		MaxDeviation:  1,
		Polygons:      []WirePolygon{{Outline: WireRing{}}},
	}
	_, err := a.Handle("client-1", req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestHandlePreservesPolygonAndRingOrder(t *testing.T) {
	a := newTestAdapter()
	req := Request{
		MaxResolution: 1,
		MaxDeviation:  1,
		Polygons: []WirePolygon{
			{
				Outline: WireRing{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}},
				Holes:   []WireRing{{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}},
			},
			{
				Outline: WireRing{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
			},
		},
	}

	resp, err := a.Handle("client-1", req)
	require.NoError(t, err)
	require.Len(t, resp.Polygons, 2)
	assert.Len(t, resp.Polygons[0].Holes, 1)
	assert.Empty(t, resp.Polygons[1].Holes)
	assert.Equal(t, req.Polygons[0].Outline, resp.Polygons[0].Outline)
}

func TestHandleAppliedSettingsAreClientScoped(t *testing.T) {
	a := newTestAdapter()
	a.Settings.Apply("client-1", map[string]string{"verbosity": "debug"})

	snap := a.Settings.Snapshot("client-1")
	assert.Equal(t, "debug", snap["verbosity"])
	assert.Empty(t, a.Settings.Snapshot("client-2"))
}
