package export

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/isacmj7/stroke-prediction-analysis/internal/model"
)

var (
	colorGreen = color.NRGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	colorRed   = color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	colorBlue  = color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
)

// chartSpec names one chart and the function that draws it.
type chartSpec struct {
	name string
	draw func(w *Writer, in chartInput, path string) error
}

type chartInput struct {
	records []model.PatientRecord
	tables  map[string]model.AggregateTable
	stats   model.OverallStats
	corr    model.CorrelationMatrix
	display map[string]map[string]string // dimension -> category -> chart label
}

var chartSpecs = []chartSpec{
	{"01_stroke_distribution", drawStrokeDistribution},
	{"02_age_distribution", drawAgeDistribution},
	{"03_age_group_stroke_rate", rateChart("age_group", "Stroke Rate by Age Group", "Age Group")},
	{"04_gender_analysis", rateChart("gender", "Stroke Rate by Gender", "Gender")},
	{"05_medical_conditions", drawMedicalConditions},
	{"06_smoking_analysis", rateChart("smoking_status", "Stroke Rate by Smoking Status", "Smoking Status")},
	{"07_bmi_analysis", rateChart("bmi_category", "Stroke Rate by BMI Category", "BMI Category")},
	{"08_glucose_analysis", rateChart("glucose_category", "Stroke Rate by Glucose Level Category", "Glucose Category")},
	{"09_work_type_analysis", rateChart("work_type", "Stroke Rate by Work Type", "Work Type")},
	{"10_residence_analysis", rateChart("residence_type", "Stroke Rate by Residence Type", "Residence Type")},
	{"11_correlation_heatmap", drawCorrelationHeatmap},
}

// RenderCharts draws all charts as PNG files under <out>/charts/ with
// deterministic numbered names. Returns the written paths in order.
func (w *Writer) RenderCharts(
	records []model.PatientRecord,
	tables map[string]model.AggregateTable,
	stats model.OverallStats,
	corr model.CorrelationMatrix,
	display map[string]map[string]string,
) ([]string, error) {
	if err := w.Layout.Ensure(); err != nil {
		return nil, &OutputWriteError{Path: w.Layout.ChartsDir(), Err: err}
	}

	in := chartInput{records: records, tables: tables, stats: stats, corr: corr, display: display}
	paths := make([]string, 0, len(chartSpecs))
	for _, chart := range chartSpecs {
		path := w.Layout.ChartPath(chart.name)
		if err := chart.draw(w, in, path); err != nil {
			return paths, &OutputWriteError{Path: path, Err: err}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// rateChart builds a drawer for the standard per-dimension rate bar chart.
func rateChart(dimension, title, xLabel string) func(*Writer, chartInput, string) error {
	return func(w *Writer, in chartInput, path string) error {
		table := in.tables[dimension]
		var values plotter.Values
		var labels []string
		for _, row := range table.Rows {
			if row.Count == 0 {
				continue
			}
			values = append(values, row.Rate*100)
			labels = append(labels, displayLabel(in.display, dimension, row.Category))
		}
		return saveBarChart(path, title, xLabel, "Stroke Rate (%)", values, labels, colorBlue)
	}
}

func displayLabel(display map[string]map[string]string, dimension, category string) string {
	if m, ok := display[dimension]; ok {
		if label, ok := m[category]; ok {
			return label
		}
	}
	return category
}

func drawStrokeDistribution(w *Writer, in chartInput, path string) error {
	p := plot.New()
	p.Title.Text = "Distribution of Stroke Cases"
	p.X.Label.Text = "Stroke Status"
	p.Y.Label.Text = "Number of Patients"

	bars, err := plotter.NewBarChart(plotter.Values{
		float64(in.stats.NoStrokeCases),
		float64(in.stats.StrokeCases),
	}, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = colorGreen
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)
	p.NominalX("No Stroke", "Stroke")

	return p.Save(6*vg.Inch, 4.5*vg.Inch, path)
}

func drawAgeDistribution(w *Writer, in chartInput, path string) error {
	p := plot.New()
	p.Title.Text = "Age Distribution by Stroke Status"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Number of Patients"

	var noStroke, stroke plotter.Values
	minAge, maxAge := math.Inf(1), math.Inf(-1)
	for _, rec := range in.records {
		if rec.Stroke == 1 {
			stroke = append(stroke, rec.Age)
		} else {
			noStroke = append(noStroke, rec.Age)
		}
		minAge = math.Min(minAge, rec.Age)
		maxAge = math.Max(maxAge, rec.Age)
	}

	groups := []struct {
		values plotter.Values
		fill   color.NRGBA
	}{
		{noStroke, color.NRGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0x99}},
		{stroke, color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0x99}},
	}
	for _, g := range groups {
		if len(g.values) == 0 {
			continue
		}
		// both groups bin over the full age range so the bars line up
		p.Add(ageHistogram(g.values, minAge, maxAge, ageHistogramBins, g.fill))
	}

	return p.Save(7*vg.Inch, 4.5*vg.Inch, path)
}

const ageHistogramBins = 30

// ageHistogram builds a histogram over fixed bin edges spanning
// [min, max], so overlaid groups share the same bins.
func ageHistogram(values plotter.Values, min, max float64, n int, fill color.NRGBA) *plotter.Histogram {
	if max <= min {
		max = min + 1
	}
	width := (max - min) / float64(n)
	bins := make([]plotter.HistogramBin, n)
	for i := range bins {
		bins[i] = plotter.HistogramBin{Min: min + float64(i)*width, Max: min + float64(i+1)*width}
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Weight++
	}
	return &plotter.Histogram{
		Bins:      bins,
		Width:     width,
		FillColor: fill,
		LineStyle: plotter.DefaultLineStyle,
	}
}

func drawMedicalConditions(w *Writer, in chartInput, path string) error {
	var values plotter.Values
	var labels []string
	for _, dimension := range []string{"hypertension", "heart_disease"} {
		for _, row := range in.tables[dimension].Rows {
			if row.Count == 0 {
				continue
			}
			values = append(values, row.Rate*100)
			labels = append(labels, displayLabel(in.display, dimension, row.Category))
		}
	}
	return saveBarChart(path, "Stroke Rate by Medical Condition", "", "Stroke Rate (%)", values, labels, colorRed)
}

func drawCorrelationHeatmap(w *Writer, in chartInput, path string) error {
	p := plot.New()
	p.Title.Text = "Correlation Heatmap of Features"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(correlationGrid{in.corr}, cm.Palette(255))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)
	p.NominalX(in.corr.Features...)
	p.NominalY(in.corr.Features...)

	return p.Save(6.5*vg.Inch, 5.5*vg.Inch, path)
}

// correlationGrid adapts a CorrelationMatrix to the plotter grid
// interface; cells are unit-spaced.
type correlationGrid struct {
	m model.CorrelationMatrix
}

func (g correlationGrid) Dims() (int, int)   { return len(g.m.Features), len(g.m.Features) }
func (g correlationGrid) Z(c, r int) float64 { return g.m.Values[r][c] }
func (g correlationGrid) X(c int) float64    { return float64(c) }
func (g correlationGrid) Y(r int) float64    { return float64(r) }

func saveBarChart(path, title, xLabel, yLabel string, values plotter.Values, labels []string, fill color.NRGBA) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = fill
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(6.5*vg.Inch, 4.5*vg.Inch, path)
}
