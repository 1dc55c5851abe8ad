package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	content := "Month,Revenue,Status\nJanuary,65000,Good\nFebruary,n/a,Low\nMarch,80000,Good\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write csv: %v", err)
	}
	return path
}

func TestBuildJSON(t *testing.T) {
	out, err := execute(t, "build", writeCSV(t), "--kind", "bar", "--x", "Month", "--y", "Revenue")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var spec models.ChartSpec
	if err := json.Unmarshal([]byte(out), &spec); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, out)
	}
	if strings.Join(spec.Categories, ",") != "January,March" {
		t.Errorf("Unexpected categories %v", spec.Categories)
	}
	if spec.Dropped != 1 {
		t.Errorf("Expected 1 dropped row, got %d", spec.Dropped)
	}
	if spec.Title != "My Chart" {
		t.Errorf("Expected default title, got %q", spec.Title)
	}
}

func TestBuildYAMLFromDemo(t *testing.T) {
	out, err := execute(t, "build", "--demo", "market-demo", "--kind", "PIE", "--x", "Product", "--y", "Market Share", "--format", "yaml")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var spec models.ChartSpec
	if err := yaml.Unmarshal([]byte(out), &spec); err != nil {
		t.Fatalf("Invalid YAML output: %v\n%s", err, out)
	}
	if spec.Kind != models.KindPie {
		t.Errorf("Expected pie, got %q", spec.Kind)
	}
	if len(spec.Values) != 4 {
		t.Errorf("Expected 4 values, got %d", len(spec.Values))
	}
}

func TestBuildErrors(t *testing.T) {
	csvPath := writeCSV(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing column", []string{"build", csvPath, "--kind", "bar", "--x", "Month", "--y", "Profit"}, `column not found: "Profit"`},
		{"non-numeric", []string{"build", csvPath, "--kind", "bar", "--x", "Month", "--y", "Status"}, "no valid numeric data"},
		{"unknown kind", []string{"build", csvPath, "--kind", "radar", "--x", "Month", "--y", "Revenue"}, "unknown chart kind"},
		{"no input", []string{"build", "--kind", "bar", "--x", "Month", "--y", "Revenue"}, "input file or --demo is required"},
		{"file and demo", []string{"build", csvPath, "--demo", "inventory", "--kind", "bar", "--x", "a", "--y", "b"}, "not both"},
		{"missing file", []string{"build", "nope.csv", "--kind", "bar", "--x", "a", "--y", "b"}, "file not found"},
		{"bad format", []string{"build", csvPath, "--kind", "bar", "--x", "Month", "--y", "Revenue", "--format", "xml"}, "invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if _, err := execute(t, "render", "--demo", "growth-demo", "--kind", "area", "--x", "Year", "--y", "Customers", "-o", path); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read PNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("Output is not a PNG")
	}
}

func TestExportAndInspect(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "chart_data.csv")
	xlsxPath := filepath.Join(dir, "chart.xlsx")

	_, err := execute(t, "export", "--demo", "sales-dashboard", "--kind", "line", "--x", "Month", "--y", "Revenue",
		"--title", "Revenue Trend", "--csv", csvPath, "--xlsx", xlsxPath)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	csvData, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if !strings.HasPrefix(string(csvData), "Month,Revenue,Units Sold,Conversion Rate,Customer Acquisition\n") {
		t.Errorf("Unexpected CSV header: %q", strings.SplitN(string(csvData), "\n", 2)[0])
	}

	out, err := execute(t, "inspect", xlsxPath)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	var book models.WorkbookCharts
	if err := json.Unmarshal([]byte(out), &book); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, out)
	}
	charts := book.Charts["Chart"]
	if len(charts) != 1 || charts[0].ChartType != "Line" || charts[0].Title != "Revenue Trend" {
		t.Errorf("Unexpected charts %+v", book.Charts)
	}
}

func TestExportRequiresTarget(t *testing.T) {
	_, err := execute(t, "export", "--demo", "inventory")
	if err == nil || !strings.Contains(err.Error(), "nothing to export") {
		t.Errorf("Expected nothing-to-export error, got %v", err)
	}
}

func TestDemos(t *testing.T) {
	out, err := execute(t, "demos")
	if err != nil {
		t.Fatalf("demos failed: %v", err)
	}
	for _, name := range []string{"sales-demo", "inventory", "financial-report"} {
		if !strings.Contains(out, name) {
			t.Errorf("Expected %s in output:\n%s", name, out)
		}
	}
}

func TestInvalidLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "demos"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for invalid log level")
	}
}
