package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polyforge/simplifyd/internal/batch"
	"github.com/polyforge/simplifyd/internal/loader"
	"github.com/polyforge/simplifyd/internal/service"
	"github.com/polyforge/simplifyd/internal/simplify"
)

var (
	batchIn               string
	batchOut              string
	batchScale            int64
	batchMaxResolution    int64
	batchMaxDeviation     int64
	batchMaxAreaDeviation int64
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Simplify a GeoJSON fixture offline and write the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch()
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchIn, "in", "", "input GeoJSON file")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output JSON file")
	batchCmd.Flags().Int64Var(&batchScale, "scale", 1, "integer scale factor applied to input coordinates")
	batchCmd.Flags().Int64Var(&batchMaxResolution, "max-resolution", 0, "max_resolution tolerance")
	batchCmd.Flags().Int64Var(&batchMaxDeviation, "max-deviation", 0, "max_deviation tolerance")
	batchCmd.Flags().Int64Var(&batchMaxAreaDeviation, "max-area-deviation", 0, "max_area_deviation tolerance (reserved)")
	batchCmd.MarkFlagRequired("in")
	batchCmd.MarkFlagRequired("out")
}

func runBatch() error {
	b, err := loader.LoadBatch(batchIn, batchScale)
	if err != nil {
		return fmt.Errorf("load %s: %w", batchIn, err)
	}

	tolerances := simplify.Tolerances{
		MaxResolution:    batchMaxResolution,
		MaxDeviation:     batchMaxDeviation,
		MaxAreaDeviation: batchMaxAreaDeviation,
	}
	if err := tolerances.Validate(); err != nil {
		return fmt.Errorf("tolerances: %w", err)
	}

	engine := simplify.NewEngine(tolerances)
	out := batch.Run(engine, b)

	f, err := os.Create(batchOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", batchOut, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(wireResponse(out))
}

// wireResponse translates a simplified batch into the same wire shape the
// HTTP service emits, so batch-mode output is interchangeable with it.
func wireResponse(b batch.Batch) service.Response {
	wps := make([]service.WirePolygon, len(b))
	for i, poly := range b {
		wps[i] = service.WirePolygon{
			Outline: wireRing(poly.Outline),
			Holes:   make([]service.WireRing, len(poly.Holes)),
		}
		for j, h := range poly.Holes {
			wps[i].Holes[j] = wireRing(h)
		}
	}
	return service.Response{Polygons: wps}
}

func wireRing(r simplify.Ring) service.WireRing {
	wr := make(service.WireRing, len(r.Points))
	for i, p := range r.Points {
		wr[i] = service.WirePoint{X: p.X, Y: p.Y}
	}
	return wr
}
