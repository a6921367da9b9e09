package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/polyforge/simplifyd/internal/inspector"
	"github.com/polyforge/simplifyd/internal/loader"
	"github.com/polyforge/simplifyd/internal/simplify"
)

var (
	inspectScale         int64
	inspectMaxResolution int64
	inspectMaxDeviation  int64
	inspectPolygonIndex  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Render a before/after comparison of one polygon's simplification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	inspectCmd.Flags().Int64Var(&inspectScale, "scale", 1, "integer scale factor applied to input coordinates")
	inspectCmd.Flags().Int64Var(&inspectMaxResolution, "max-resolution", 0, "max_resolution tolerance")
	inspectCmd.Flags().Int64Var(&inspectMaxDeviation, "max-deviation", 0, "max_deviation tolerance")
	inspectCmd.Flags().IntVar(&inspectPolygonIndex, "polygon", 0, "index of the polygon to inspect within the file")
}

func runInspect(path string) error {
	b, err := loader.LoadBatch(path, inspectScale)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if inspectPolygonIndex < 0 || inspectPolygonIndex >= len(b) {
		return fmt.Errorf("polygon index %d out of range (file has %d)", inspectPolygonIndex, len(b))
	}

	tolerances := simplify.Tolerances{MaxResolution: inspectMaxResolution, MaxDeviation: inspectMaxDeviation}
	if err := tolerances.Validate(); err != nil {
		return fmt.Errorf("tolerances: %w", err)
	}

	engine := simplify.NewEngine(tolerances)
	before := b[inspectPolygonIndex].Outline
	after := engine.Simplify(before)

	p := tea.NewProgram(inspector.NewModel(before, after))
	_, err = p.Run()
	return err
}
