package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	legendText   = drawing.Color{R: 51, G: 51, B: 51, A: 255}
	legendBorder = drawing.Color{R: 180, G: 180, B: 180, A: 255}
)

const (
	legendPadding = 6
	legendSwatch  = 10
	legendGap     = 6
)

// legendEntry is one color swatch and the group it stands for
type legendEntry struct {
	Name  string
	Color drawing.Color
}

// legend draws a swatch per entry in the top right corner of the plot area.
// BarChart and StackedBarChart have no series to feed chart.Legend, so the
// entries come from the palette that colored the bars.
func legend(entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}

		style := chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: legendBorder,
			StrokeWidth: 1,
			FontColor:   legendText,
			FontSize:    10,
		}.InheritFrom(defaults)

		style.GetTextOptions().WriteToRenderer(r)
		textWidth, lineHeight := 0, legendSwatch
		for _, e := range entries {
			tb := r.MeasureText(e.Name)
			textWidth = max(textWidth, tb.Width())
			lineHeight = max(lineHeight, tb.Height())
		}

		width := 2*legendPadding + legendSwatch + legendGap + textWidth
		height := 2*legendPadding + len(entries)*lineHeight + (len(entries)-1)*legendGap
		box := chart.Box{
			Top:    canvas.Top,
			Left:   canvas.Right - width,
			Right:  canvas.Right,
			Bottom: canvas.Top + height,
		}
		chart.Draw.Box(r, box, style)

		y := box.Top + legendPadding
		for _, e := range entries {
			swatch := chart.Box{Top: y + (lineHeight-legendSwatch)/2, Left: box.Left + legendPadding}
			swatch.Right = swatch.Left + legendSwatch
			swatch.Bottom = swatch.Top + legendSwatch
			chart.Draw.Box(r, swatch, fill(e.Color))

			style.GetTextOptions().WriteToRenderer(r)
			r.Text(e.Name, swatch.Right+legendGap, y+lineHeight)
			y += lineHeight + legendGap
		}
	}
}
