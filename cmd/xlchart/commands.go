package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlchart-go/internal/fixtures"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/output"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/render"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/workbook"
)

func newBuildCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [input]",
		Short: "Print the chart specification for two columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := c.loadDataset(args)
			if err != nil {
				return err
			}
			spec, err := c.buildSpec(ds)
			if err != nil {
				return err
			}
			data, err := c.encode(spec)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return c.emit(cmd.OutOrStdout(), data)
		},
	}
	c.addSourceFlags(cmd)
	c.addChartFlags(cmd, true)
	cmd.Flags().StringVar(&c.format, "format", "json", "Output format: json, yaml")
	cmd.Flags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newRenderCmd(c *cli) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Render a chart as a PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := c.loadDataset(args)
			if err != nil {
				return err
			}
			spec, err := c.buildSpec(ds)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := render.PNG(&buf, spec, render.Options{Width: width, Height: height}); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			path := c.outputPath
			if path == "" {
				path = render.Filename(spec.Title)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			c.logger.Info("chart rendered", "kind", spec.Kind, "path", path)
			return nil
		},
	}
	c.addSourceFlags(cmd)
	c.addChartFlags(cmd, true)
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output PNG path (default: <title>.png)")
	cmd.Flags().IntVar(&width, "width", render.DefaultOptions().Width, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", render.DefaultOptions().Height, "Image height in pixels")
	return cmd
}

func newExportCmd(c *cli) *cobra.Command {
	var csvPath, xlsxPath string

	cmd := &cobra.Command{
		Use:   "export [input]",
		Short: "Export the dataset as CSV or as a workbook with a native chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" && xlsxPath == "" {
				return fmt.Errorf("nothing to export: set --csv and/or --xlsx")
			}
			ds, err := c.loadDataset(args)
			if err != nil {
				return err
			}

			if csvPath != "" {
				var buf bytes.Buffer
				if err := output.WriteCSV(&buf, ds); err != nil {
					return fmt.Errorf("csv export failed: %w", err)
				}
				if err := os.WriteFile(csvPath, buf.Bytes(), 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				c.logger.Info("dataset exported", "path", csvPath)
			}

			if xlsxPath != "" {
				spec, err := c.buildSpec(ds)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := workbook.Write(&buf, ds, spec); err != nil {
					return fmt.Errorf("workbook export failed: %w", err)
				}
				if err := os.WriteFile(xlsxPath, buf.Bytes(), 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				c.logger.Info("workbook exported", "kind", spec.Kind, "path", xlsxPath)
			}
			return nil
		},
	}
	c.addSourceFlags(cmd)
	c.addChartFlags(cmd, false)
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the dataset to this CSV file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the dataset and a native chart to this workbook")
	return cmd
}

func newInspectCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <workbook.xlsx>",
		Short: "List the sheets and charts of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			book, err := workbook.ReadChartsFile(inputPath)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			data, err := c.encode(book)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return c.emit(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVar(&c.format, "format", "json", "Output format: json, yaml")
	cmd.Flags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newDemosCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demos",
		Short: "List the built-in datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, fx := range fixtures.List() {
				ds, err := fixtures.Get(fx.Name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-20s %s (%s)\n", fx.Name, fx.Description, strings.Join(ds.ColumnNames(), ", "))
			}
			return nil
		},
	}
}
