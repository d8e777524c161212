package charts

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "not a PNG: %s", path)
}

func TestBarWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := NewRenderer(dir, 0, 0)

	path, err := r.Bar("tactics.png", BarChart{
		Title:  "Alerts by Tactic",
		YLabel: "Alert Count",
		Bars: []Bar{
			{Label: "Execution", Value: 12},
			{Label: "Persistence", Value: 4},
			{Label: "Discovery", Value: 7},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tactics.png"), path)
	requirePNG(t, path)
}

func TestBarSkipsEmptyInput(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 800, 600)

	path, err := r.Bar("empty.png", BarChart{Title: "nothing"})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Empty(t, path)

	_, statErr := os.Stat(filepath.Join(dir, "empty.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBarRendersFlatValues(t *testing.T) {
	r := NewRenderer(t.TempDir(), 800, 600)

	path, err := r.Bar("zeros.png", BarChart{
		Title: "zeros",
		Bars:  []Bar{{Label: "a", Value: 0}, {Label: "b", Value: 0}},
	})
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestGroupedBar(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0, 0)

	path, err := r.GroupedBar("timing.png", GroupedBarChart{
		Title:      "Timing",
		YLabel:     "Hours",
		Categories: []string{"low", "high"},
		Series: []Series{
			{Name: "MTTD", Values: []float64{1.5, 0.5}},
			{Name: "MTTR", Values: []float64{12, 4.25}},
		},
	})
	require.NoError(t, err)
	requirePNG(t, path)

	_, err = r.GroupedBar("none.png", GroupedBarChart{Title: "none"})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestStackedBar(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0, 0)

	path, err := r.StackedBar("stacked.png", StackedBarChart{
		Title: "FP vs real",
		Stacks: []Stack{
			{Label: "rule-a", Segments: []Segment{{Name: "false_positives", Value: 8}, {Name: "real_alerts", Value: 2}}},
			{Label: "rule-b", Segments: []Segment{{Name: "false_positives", Value: 1}, {Name: "real_alerts", Value: 5}}},
		},
	})
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestStackedBarAllZeroIsSkipped(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0, 0)

	_, err := r.StackedBar("zero.png", StackedBarChart{
		Stacks: []Stack{{Label: "x", Segments: []Segment{{Name: "a", Value: 0}}}},
	})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestScatter(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0, 0)

	path, err := r.Scatter("scatter.png", ScatterChart{
		Title:  "Alerts vs Score",
		XLabel: "Total Alerts",
		YLabel: "Score",
		Points: []Point{
			{X: 10, Y: 40, Size: 40, Group: "critical"},
			{X: 5, Y: 5, Size: 5, Group: "low"},
			{X: 8, Y: 16, Size: 16, Group: "medium"},
		},
	})
	require.NoError(t, err)
	requirePNG(t, path)
}

func TestScatterSinglePoint(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0, 0)

	path, err := r.Scatter("one.png", ScatterChart{Points: []Point{{X: 0, Y: 0, Group: "low"}}})
	require.NoError(t, err)
	requirePNG(t, path)

	_, err = r.Scatter("none.png", ScatterChart{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestValueRange(t *testing.T) {
	rng := valueRange([]float64{0, 0})
	assert.Equal(t, 0.0, rng.Min)
	assert.Equal(t, 1.0, rng.Max)

	rng = valueRange([]float64{-2, 10})
	assert.InDelta(t, -2.2, rng.Min, 1e-9)
	assert.InDelta(t, 11.0, rng.Max, 1e-9)
}

func TestDotWidth(t *testing.T) {
	assert.Equal(t, minDot, dotWidth(0, 10))
	assert.Equal(t, minDot, dotWidth(5, 0))
	assert.Equal(t, maxDot, dotWidth(10, 10))
}

func renderLegend(t *testing.T, entries []legendEntry) image.Image {
	t.Helper()
	font, err := chart.GetDefaultFont()
	require.NoError(t, err)
	rr, err := chart.PNG(400, 300)
	require.NoError(t, err)

	legend(entries)(rr, chart.Box{Top: 20, Left: 20, Right: 380, Bottom: 280}, chart.Style{Font: font})

	var buf bytes.Buffer
	require.NoError(t, rr.Save(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img
}

func hasColor(img image.Image, c drawing.Color) bool {
	wr, wg, wb, wa := c.RGBA()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r == wr && g == wg && bl == wb && a == wa {
				return true
			}
		}
	}
	return false
}

func TestLegendDrawsSwatchPerGroup(t *testing.T) {
	colors := newPalette()
	colors.color("Execution")
	colors.color("Discovery")
	colors.color("Execution")

	entries := colors.entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Execution", entries[0].Name)
	assert.Equal(t, "Discovery", entries[1].Name)

	img := renderLegend(t, entries)
	_, _, _, a := img.At(376, 24).RGBA()
	assert.NotZero(t, a, "legend box missing from the top right corner")
	for _, e := range entries {
		assert.True(t, hasColor(img, e.Color), "no swatch for %s", e.Name)
	}
}

func TestLegendSkipsWithoutEntries(t *testing.T) {
	img := renderLegend(t, nil)
	_, _, _, a := img.At(376, 24).RGBA()
	assert.Zero(t, a)
}

func TestGroupedBarChartWithLegend(t *testing.T) {
	r := NewRenderer(t.TempDir(), 0, 0)

	path, err := r.Bar("techniques.png", BarChart{
		Title:  "Top Techniques",
		YLabel: "Alert Count",
		Bars: []Bar{
			{Label: "T1059", Value: 20, Group: "Execution"},
			{Label: "T1110", Value: 14, Group: "Credential Access"},
			{Label: "T1204", Value: 6, Group: "Execution"},
		},
		ShowValues: true,
	})
	require.NoError(t, err)
	requirePNG(t, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.True(t, hasColor(img, chart.GetDefaultColor(0)))
	assert.True(t, hasColor(img, chart.GetDefaultColor(1)))
}

func TestBarLabel(t *testing.T) {
	assert.Equal(t, "Execution", barLabel(Bar{Label: "Execution", Value: 20}, false))
	assert.Equal(t, "Execution (20)", barLabel(Bar{Label: "Execution", Value: 20}, true))
	assert.Equal(t, "Rule (0.333)", barLabel(Bar{Label: "Rule", Value: 0.33333}, true))
	assert.Equal(t, "High (2.667)", barLabel(Bar{Label: "High", Value: 2.66666}, true))
}
