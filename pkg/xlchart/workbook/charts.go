package workbook

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

type relationshipsXML struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type workbookXML struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

type anchorXML struct {
	Frame *struct {
		Props struct {
			Name string `xml:"name,attr"`
		} `xml:"nvGraphicFramePr>cNvPr"`
		Chart struct {
			RID string `xml:"id,attr"`
		} `xml:"graphic>graphicData>chart"`
	} `xml:"graphicFrame"`
}

type drawingXML struct {
	TwoCell  []anchorXML `xml:"twoCellAnchor"`
	OneCell  []anchorXML `xml:"oneCellAnchor"`
	Absolute []anchorXML `xml:"absoluteAnchor"`
}

type rangeXML struct {
	StrRef string `xml:"strRef>f"`
	NumRef string `xml:"numRef>f"`
}

func (r rangeXML) ref() string {
	if r.StrRef != "" {
		return strings.TrimSpace(r.StrRef)
	}
	return strings.TrimSpace(r.NumRef)
}

type seriesXML struct {
	Tx struct {
		Ref   string   `xml:"strRef>f"`
		Cache []string `xml:"strRef>strCache>pt>v"`
		V     string   `xml:"v"`
	} `xml:"tx"`
	Cat  rangeXML `xml:"cat"`
	Val  rangeXML `xml:"val"`
	XVal rangeXML `xml:"xVal"`
	YVal rangeXML `xml:"yVal"`
}

type plotXML struct {
	Series []seriesXML `xml:"ser"`
}

type titleXML struct {
	Runs []string `xml:"tx>rich>p>r>t"`
}

// ReadChartsFile lists the charts of the workbook at path.
func ReadChartsFile(p string) (*models.WorkbookCharts, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return ReadCharts(bytes.NewReader(data), int64(len(data)), filepath.Base(p))
}

// ReadCharts lists the sheets of an xlsx package and the charts drawn on each.
func ReadCharts(r io.ReaderAt, size int64, bookName string) (*models.WorkbookCharts, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	result := &models.WorkbookCharts{
		BookName: bookName,
		Charts:   make(map[string][]models.Chart),
	}

	var wb workbookXML
	if err := decodeZipXML(zr, "xl/workbook.xml", &wb); err != nil {
		return nil, err
	}
	var wbRels relationshipsXML
	if err := decodeZipXML(zr, "xl/_rels/workbook.xml.rels", &wbRels); err != nil {
		return nil, err
	}
	sheetFiles := relTargets(wbRels, "xl/workbook.xml", "worksheet")

	for _, s := range wb.Sheets {
		result.Sheets = append(result.Sheets, s.Name)
		sheetPath, ok := sheetFiles[s.RID]
		if !ok {
			continue
		}
		charts, err := sheetCharts(zr, sheetPath)
		if err != nil {
			return nil, err
		}
		if len(charts) > 0 {
			result.Charts[s.Name] = charts
		}
	}

	return result, nil
}

// sheetCharts follows sheet -> drawing -> chart relationships.
func sheetCharts(zr *zip.Reader, sheetPath string) ([]models.Chart, error) {
	var sheetRels relationshipsXML
	if err := decodeZipXML(zr, relsPath(sheetPath), &sheetRels); err != nil {
		return nil, err
	}

	var charts []models.Chart
	for _, drawingPath := range relTargets(sheetRels, sheetPath, "drawing") {
		var drawing drawingXML
		if err := decodeZipXML(zr, drawingPath, &drawing); err != nil {
			return nil, err
		}
		var drawingRels relationshipsXML
		if err := decodeZipXML(zr, relsPath(drawingPath), &drawingRels); err != nil {
			return nil, err
		}
		chartPaths := relTargets(drawingRels, drawingPath, "chart")

		anchors := append(append(drawing.TwoCell, drawing.OneCell...), drawing.Absolute...)
		for _, a := range anchors {
			if a.Frame == nil {
				continue
			}
			chartPath, ok := chartPaths[a.Frame.Chart.RID]
			if !ok {
				continue
			}
			data, err := readZipFile(zr, chartPath)
			if err != nil {
				return nil, err
			}
			if data == nil {
				continue
			}
			chart := parseChartXML(data)
			chart.Name = a.Frame.Props.Name
			charts = append(charts, chart)
		}
	}
	return charts, nil
}

// parseChartXML reads the chart title, plot type and series of a chart part.
func parseChartXML(data []byte) models.Chart {
	chart := models.Chart{ChartType: "unknown"}
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch name := se.Name.Local; {
		case name == "title":
			var t titleXML
			if err := decoder.DecodeElement(&t, &se); err == nil {
				chart.Title = strings.TrimSpace(strings.Join(t.Runs, ""))
			}
		case strings.HasSuffix(name, "Ax"):
			// Axis titles are not chart titles.
			decoder.Skip()
		case ChartTypeMap[name] != "":
			var p plotXML
			if err := decoder.DecodeElement(&p, &se); err != nil {
				continue
			}
			if chart.ChartType == "unknown" {
				chart.ChartType = ChartTypeMap[name]
			}
			for _, s := range p.Series {
				chart.Series = append(chart.Series, seriesFromXML(s))
			}
		}
	}

	return chart
}

func seriesFromXML(s seriesXML) models.ChartSeries {
	out := models.ChartSeries{
		Name:      strings.TrimSpace(s.Tx.V),
		NameRange: strings.TrimSpace(s.Tx.Ref),
		XRange:    s.Cat.ref(),
		YRange:    s.Val.ref(),
	}
	if out.Name == "" && len(s.Tx.Cache) > 0 {
		out.Name = strings.TrimSpace(s.Tx.Cache[0])
	}
	if out.XRange == "" {
		out.XRange = s.XVal.ref()
	}
	if out.YRange == "" {
		out.YRange = s.YVal.ref()
	}
	return out
}

// relTargets returns rId -> part path for relationships whose type contains kind.
func relTargets(rels relationshipsXML, source, kind string) map[string]string {
	result := make(map[string]string)
	for _, rel := range rels.Items {
		relType := strings.ToLower(rel.Type)
		if !strings.HasSuffix(relType, "/"+kind) {
			continue
		}
		result[rel.ID] = resolvePart(source, rel.Target)
	}
	return result
}

// resolvePart resolves a relationship target against the part that owns it.
func resolvePart(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(path.Dir(source), target))
}

// relsPath returns the relationships part of a package part.
func relsPath(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// decodeZipXML decodes a package part into v. A missing part leaves v empty.
func decodeZipXML(zr *zip.Reader, name string, v interface{}) error {
	data, err := readZipFile(zr, name)
	if err != nil || data == nil {
		return err
	}
	return xml.Unmarshal(data, v)
}
