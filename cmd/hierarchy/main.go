// Package main provides the CLI entry point for hierarchy-go.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/output"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/parser"
)

var (
	outputPath      string
	pretty          bool
	chartType       string
	measure         string
	dimensions      []string
	sheetName       string
	rangeRef        string
	showParentNodes bool
	showLeafNodes   bool
	drill           bool
	drillField      string
	concurrency     int
	stage           string
	preview         bool
	fingerprint     bool
	verbose         bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	chartTypes := make([]string, 0, 3)
	for _, ct := range hierarchy.DefaultRegistry().Keys() {
		chartTypes = append(chartTypes, string(ct))
	}

	rootCmd := &cobra.Command{
		Use:   "hierarchy [input]",
		Short: "Build hierarchical chart specs from flat datasets",
		Long: `hierarchy-go folds a flat dataset (xlsx, csv, json or yaml) into a tree
and prints a treemap, sunburst or circle packing chart spec as JSON.

Supported chart types: ` + strings.Join(chartTypes, ", "),
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output (default: on when stdout is a terminal)")
	flags.StringVarP(&chartType, "chart-type", "t", string(models.ChartTreemap), "Chart type: "+strings.Join(chartTypes, ", "))
	flags.StringVarP(&measure, "measure", "m", "", "Numeric field to aggregate (default: last numeric field)")
	flags.StringSliceVarP(&dimensions, "dimensions", "d", nil, "Grouping fields, outermost first (default: all other fields)")
	flags.StringVar(&sheetName, "sheet", "", "Sheet to read from an xlsx input (default: first sheet)")
	flags.StringVar(&rangeRef, "range", "", "Cell range holding the table, e.g. 'Sheet1'!$A$1:$D$20")
	flags.BoolVar(&showParentNodes, "show-parent-nodes", true, "Treemap: render parent nodes")
	flags.BoolVar(&showLeafNodes, "show-leaf-nodes", true, "Sunburst: keep the innermost ring")
	flags.BoolVar(&drill, "drill", true, "Enable drill-down (default depends on chart type)")
	flags.StringVar(&drillField, "drill-field", "", "Node attribute drill-down keys on (default: name)")
	flags.IntVar(&concurrency, "concurrency", 0, "Parallel tree build width (0 or 1: sequential)")
	flags.StringVar(&stage, "stage", "spec", "Output stage: model or spec")
	flags.BoolVar(&preview, "preview", false, "Print the built tree to stderr")
	flags.BoolVar(&fingerprint, "fingerprint", false, "Print the spec fingerprint to stderr")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if stage != "model" && stage != "spec" {
		return fmt.Errorf("invalid stage: %s (must be model or spec)", stage)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	req, err := parser.ReadFile(inputPath, parser.SheetOptions{Sheet: sheetName, Range: rangeRef})
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	applyFlags(cmd, &req)

	b, err := hierarchy.NewBuilder(req, hierarchy.Options{Logger: logger, Concurrency: concurrency})
	if err != nil {
		return err
	}

	usePretty := pretty
	if !cmd.Flags().Changed("pretty") && outputPath == "" {
		usePretty = isTerminal(cmd.OutOrStdout())
	}

	var jsonData []byte
	if stage == "model" {
		m, err := b.BuildModel()
		if err != nil {
			return err
		}
		if jsonData, err = output.ModelToJSON(m, usePretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	} else {
		spec, err := b.Build()
		if err != nil {
			return err
		}
		if jsonData, err = output.ToJSON(spec, usePretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := report(cmd, spec); err != nil {
			return err
		}
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

// applyFlags overrides request settings with the flags given on the
// command line. Unset tri-state flags leave the request untouched.
func applyFlags(cmd *cobra.Command, req *models.Request) {
	flags := cmd.Flags()
	if flags.Changed("chart-type") || req.ChartType == "" {
		req.ChartType = models.ChartType(chartType)
	}
	if flags.Changed("measure") {
		req.Measure = measure
	}
	if flags.Changed("dimensions") {
		req.Dimensions = dimensions
	}
	if flags.Changed("show-parent-nodes") {
		v := showParentNodes
		req.ShowParentNodes = &v
	}
	if flags.Changed("show-leaf-nodes") {
		v := showLeafNodes
		req.ShowLeafNodes = &v
	}
	if flags.Changed("drill") {
		v := drill
		req.Drill = &v
	}
	if flags.Changed("drill-field") {
		req.DrillField = drillField
	}
}

func report(cmd *cobra.Command, spec *models.Spec) error {
	stderr := cmd.ErrOrStderr()
	if preview {
		fmt.Fprint(stderr, renderTree(spec.Values(), isTerminal(stderr)))
	}
	if fingerprint {
		h, err := output.Fingerprint(spec)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "fingerprint: %s\n", output.FormatFingerprint(h))
	}
	return nil
}

// isTerminal reports whether w writes to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
