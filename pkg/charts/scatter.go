package charts

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Point is one scatter marker; Size scales the dot relative to the largest Size
type Point struct {
	X     float64
	Y     float64
	Size  float64
	Group string
}

// ScatterChart plots points with one colored series per group
type ScatterChart struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

const (
	minDot = 4.0
	maxDot = 20.0
)

// Scatter renders c to file and returns the written path
func (r *Renderer) Scatter(file string, c ScatterChart) (string, error) {
	if len(c.Points) == 0 {
		return "", ErrNoData
	}

	maxSize := 0.0
	xs := make([]float64, 0, len(c.Points))
	ys := make([]float64, 0, len(c.Points))
	for _, p := range c.Points {
		if p.Size > maxSize {
			maxSize = p.Size
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	var order []string
	byGroup := make(map[string][]Point)
	for _, p := range c.Points {
		if _, ok := byGroup[p.Group]; !ok {
			order = append(order, p.Group)
		}
		byGroup[p.Group] = append(byGroup[p.Group], p)
	}

	colors := newPalette()
	series := make([]chart.Series, 0, len(order))
	for _, g := range order {
		points := byGroup[g]
		gx := make([]float64, len(points))
		gy := make([]float64, len(points))
		widths := make([]float64, len(points))
		for i, p := range points {
			gx[i], gy[i] = p.X, p.Y
			widths[i] = dotWidth(p.Size, maxSize)
		}
		col := colors.color(g)
		series = append(series, chart.ContinuousSeries{
			Name: g,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotColor:    col.WithAlpha(200),
				DotWidth:    minDot,
				DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
					if index < len(widths) {
						return widths[index]
					}
					return minDot
				},
			},
			XValues: gx,
			YValues: gy,
		})
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		Background: background(),
		XAxis:      chart.XAxis{Name: c.XLabel, Range: valueRange(xs)},
		YAxis:      chart.YAxis{Name: c.YLabel, Range: valueRange(ys)},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return r.save(file, func(w io.Writer) error {
		return ch.Render(chart.PNG, w)
	})
}

// dotWidth maps size onto [minDot, maxDot]
func dotWidth(size, maxSize float64) float64 {
	if maxSize <= 0 || size <= 0 {
		return minDot
	}
	return minDot + (maxDot-minDot)*size/maxSize
}
