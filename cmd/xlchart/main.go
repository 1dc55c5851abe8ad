// Package main provides the CLI entry point for xlchart.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlchart-go/internal/fixtures"
	"github.com/ukaji3/xlchart-go/internal/logging"
	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/loader"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/output"
)

// cli holds flag values shared by the subcommands.
type cli struct {
	logLevel string
	logger   *slog.Logger

	demo       string
	sheet      string
	rangeRef   string
	kind       string
	xColumn    string
	yColumn    string
	title      string
	format     string
	pretty     bool
	outputPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "xlchart",
		Short: "Turn spreadsheet columns into charts",
		Long: `xlchart loads a CSV file or Excel workbook, maps a category column and
a numeric column to a chart specification, and renders or exports it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(c.logLevel)
			if err != nil {
				return err
			}
			c.logger = logging.New(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newBuildCmd(c),
		newRenderCmd(c),
		newExportCmd(c),
		newInspectCmd(c),
		newDemosCmd(c),
		newServeCmd(c),
	)
	return rootCmd
}

// addSourceFlags registers the flags selecting the input table.
func (c *cli) addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.demo, "demo", "", "Use a built-in dataset instead of a file (see `xlchart demos`)")
	cmd.Flags().StringVar(&c.sheet, "sheet", "", "Workbook sheet (default: first sheet)")
	cmd.Flags().StringVar(&c.rangeRef, "range", "", "Cell range holding the table, e.g. A1:D10")
}

// addChartFlags registers the flags describing the chart request.
func (c *cli) addChartFlags(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVar(&c.kind, "kind", "", "Chart kind: "+kindNames())
	cmd.Flags().StringVar(&c.xColumn, "x", "", "Category (X axis) column")
	cmd.Flags().StringVar(&c.yColumn, "y", "", "Value (Y axis) column")
	cmd.Flags().StringVar(&c.title, "title", "", "Chart title (default: \"My Chart\")")
	if required {
		cmd.MarkFlagRequired("kind")
		cmd.MarkFlagRequired("x")
		cmd.MarkFlagRequired("y")
	}
}

func kindNames() string {
	var names []string
	for _, k := range xlchart.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// loadDataset reads the input table from the file argument or --demo.
func (c *cli) loadDataset(args []string) (*models.Dataset, error) {
	switch {
	case c.demo != "" && len(args) > 0:
		return nil, fmt.Errorf("use either an input file or --demo, not both")
	case c.demo != "":
		return fixtures.Get(c.demo)
	case len(args) == 0:
		return nil, fmt.Errorf("an input file or --demo is required")
	}

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	ds, err := loader.LoadFile(inputPath, loader.Options{Sheet: c.sheet, Range: c.rangeRef})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", inputPath, err)
	}
	c.logger.Debug("dataset loaded", "file", inputPath, "rows", ds.Len(), "columns", len(ds.Columns))
	return ds, nil
}

// buildSpec maps the loaded dataset and the chart flags to a spec.
func (c *cli) buildSpec(ds *models.Dataset) (*models.ChartSpec, error) {
	kind, err := xlchart.ParseKind(c.kind)
	if err != nil {
		// Let the builder report missing columns first.
		kind = xlchart.Kind(c.kind)
	}

	spec, err := xlchart.Build(ds, xlchart.Request{
		Kind:    kind,
		XColumn: c.xColumn,
		YColumn: c.yColumn,
		Title:   c.title,
	})
	if err != nil {
		if be, ok := xlchart.AsBuildError(err); ok && be.Code == xlchart.CodeColumnNotFound {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(ds.ColumnNames(), ", "))
		}
		return nil, err
	}
	if spec.Dropped > 0 {
		c.logger.Warn("rows without numeric values were dropped", "column", c.yColumn, "dropped", spec.Dropped)
	}
	return spec, nil
}

// encode serializes v in the selected output format.
func (c *cli) encode(v interface{}) ([]byte, error) {
	switch c.format {
	case "json":
		return output.ToJSON(v, c.pretty)
	case "yaml":
		return output.ToYAML(v)
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json or yaml)", c.format)
	}
}

// emit writes data to --output, or to out when no path is set.
func (c *cli) emit(out io.Writer, data []byte) error {
	if c.outputPath != "" {
		if err := os.WriteFile(c.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(out, strings.TrimRight(string(data), "\n"))
	return err
}
