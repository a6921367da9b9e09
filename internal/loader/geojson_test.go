package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforge/simplifyd/internal/geomint"
)

const sampleFeatureCollection = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {},
			"geometry": {
				"type": "Polygon",
				"coordinates": [
					[[0, 0], [10, 0], [10, 10], [0, 10], [0, 0]],
					[[2, 2], [4, 2], [4, 4], [2, 2]]
				]
			}
		}
	]
}`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.geojson")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadBatchSplitsOutlineAndHoles(t *testing.T) {
	path := writeFixture(t, sampleFeatureCollection)

	b, err := LoadBatch(path, 1)
	require.NoError(t, err)
	require.Len(t, b, 1)

	assert.Equal(t, []geomint.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, b[0].Outline.Points)
	require.Len(t, b[0].Holes, 1)
	assert.Equal(t, []geomint.Point{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}}, b[0].Holes[0].Points)
}

func TestLoadBatchAppliesScale(t *testing.T) {
	path := writeFixture(t, sampleFeatureCollection)

	b, err := LoadBatch(path, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), b[0].Outline.Points[2].X)
}

func TestLoadBatchMissingFile(t *testing.T) {
	_, err := LoadBatch(filepath.Join(t.TempDir(), "missing.geojson"), 1)
	assert.Error(t, err)
}
