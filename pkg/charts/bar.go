package charts

import (
	"io"
	"math"

	"github.com/dustin/go-humanize"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Bar is one category on a bar chart. Bars sharing a Group share a color;
// an empty Group colors the bar by its Label.
type Bar struct {
	Label string
	Value float64
	Group string
}

// BarChart is a simple vertical bar chart. A legend is drawn when any bar
// is colored by a Group other than its own Label.
type BarChart struct {
	Title      string
	YLabel     string
	Bars       []Bar
	ShowValues bool
}

// Series is one named value per category of a grouped bar chart
type Series struct {
	Name   string
	Values []float64
}

// GroupedBarChart draws, for every category, one bar per series side by side
type GroupedBarChart struct {
	Title      string
	YLabel     string
	Categories []string
	Series     []Series
}

// Segment is one slice of a stacked bar
type Segment struct {
	Name  string
	Value float64
}

// Stack is one stacked bar
type Stack struct {
	Label    string
	Segments []Segment
}

// StackedBarChart stacks named segments per category
type StackedBarChart struct {
	Title  string
	Stacks []Stack
}

// Bar renders c to file inside the output directory and returns the written path
func (r *Renderer) Bar(file string, c BarChart) (string, error) {
	if len(c.Bars) == 0 {
		return "", ErrNoData
	}

	colors := newPalette()
	grouped := false
	values := make([]chart.Value, 0, len(c.Bars))
	raw := make([]float64, 0, len(c.Bars))
	for _, b := range c.Bars {
		group := b.Group
		if group == "" {
			group = b.Label
		}
		if group != b.Label {
			grouped = true
		}
		values = append(values, chart.Value{
			Label: barLabel(b, c.ShowValues),
			Value: b.Value,
			Style: fill(colors.color(group)),
		})
		raw = append(raw, b.Value)
	}

	bc := chart.BarChart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		Background: background(),
		BarWidth:   r.barWidth(len(values)),
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: valueRange(raw),
		},
		Bars: values,
	}
	if grouped {
		bc.Elements = []chart.Renderable{legend(colors.entries())}
	}
	return r.save(file, func(w io.Writer) error {
		return bc.Render(chart.PNG, w)
	})
}

// barLabel appends the value to the category so it reads under the bar
func barLabel(b Bar, showValue bool) string {
	if !showValue {
		return b.Label
	}
	return b.Label + " (" + humanize.FtoaWithDigits(math.Round(b.Value*1000)/1000, 3) + ")"
}

// GroupedBar renders c as consecutive bars per category, colored by series
func (r *Renderer) GroupedBar(file string, c GroupedBarChart) (string, error) {
	var bars []Bar
	for ci, category := range c.Categories {
		for _, s := range c.Series {
			if ci >= len(s.Values) {
				continue
			}
			bars = append(bars, Bar{
				Label: category + " " + s.Name,
				Value: s.Values[ci],
				Group: s.Name,
			})
		}
	}
	return r.Bar(file, BarChart{Title: c.Title, YLabel: c.YLabel, Bars: bars})
}

// StackedBar renders c with one color per segment name and a legend naming them
func (r *Renderer) StackedBar(file string, c StackedBarChart) (string, error) {
	if len(c.Stacks) == 0 {
		return "", ErrNoData
	}

	colors := newPalette()
	maxTotal := 0.0
	bars := make([]chart.StackedBar, 0, len(c.Stacks))
	for _, s := range c.Stacks {
		total := 0.0
		values := make([]chart.Value, 0, len(s.Segments))
		for _, seg := range s.Segments {
			total += seg.Value
			values = append(values, chart.Value{
				Label: seg.Name,
				Value: seg.Value,
				Style: fill(colors.color(seg.Name)),
			})
		}
		if total > maxTotal {
			maxTotal = total
		}
		bars = append(bars, chart.StackedBar{
			Name:   s.Label,
			Width:  r.barWidth(len(c.Stacks)),
			Values: values,
		})
	}
	// A stack of zeros has no height to scale against
	if maxTotal <= 0 {
		return "", ErrNoData
	}

	sbc := chart.StackedBarChart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		Background: background(),
		BarSpacing: 20,
		Bars:       bars,
		Elements:   []chart.Renderable{legend(colors.entries())},
	}
	return r.save(file, func(w io.Writer) error {
		return sbc.Render(chart.PNG, w)
	})
}
