package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when a chart has nothing to plot; no file is written
var ErrNoData = errors.New("no data to plot")

const (
	DefaultWidth  = 1400
	DefaultHeight = 800
)

// Renderer writes PNG charts into one output directory
type Renderer struct {
	dir    string
	width  int
	height int
}

// NewRenderer returns a renderer for dir; non-positive sizes fall back to defaults
func NewRenderer(dir string, width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{dir: dir, width: width, height: height}
}

// Dir returns the output directory
func (r *Renderer) Dir() string {
	return r.dir
}

// EnsureDir creates the output directory when missing
func (r *Renderer) EnsureDir() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	return nil
}

// save renders into memory first so a failed render never leaves a partial file
func (r *Renderer) save(file string, render func(w io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return "", fmt.Errorf("render %s: %w", file, err)
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("render %s: empty image", file)
	}
	if err := r.EnsureDir(); err != nil {
		return "", err
	}
	outPath := filepath.Join(r.dir, file)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

// background leaves room for the title and rotated/wrapped category labels
func background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 60, Left: 24, Right: 24, Bottom: 24}}
}

// valueRange pads [min(0, lo), hi] so flat or single-valued data still has a visible span
func valueRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi > 0 {
		hi *= 1.1
	}
	if lo < 0 {
		lo *= 1.1
	}
	if hi-lo < 1e-9 {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// palette hands out library default colors per group in order of first use
type palette struct {
	index map[string]int
	order []string
}

func newPalette() *palette {
	return &palette{index: make(map[string]int)}
}

func (p *palette) color(group string) drawing.Color {
	i, ok := p.index[group]
	if !ok {
		i = len(p.index)
		p.index[group] = i
		p.order = append(p.order, group)
	}
	return chart.GetDefaultColor(i)
}

// entries lists every group handed a color, in order of first use
func (p *palette) entries() []legendEntry {
	out := make([]legendEntry, 0, len(p.order))
	for _, g := range p.order {
		out = append(out, legendEntry{Name: g, Color: chart.GetDefaultColor(p.index[g])})
	}
	return out
}

func fill(c drawing.Color) chart.Style {
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

// barWidth shrinks bars so n of them fit the canvas with spacing
func (r *Renderer) barWidth(n int) int {
	if n <= 0 {
		return 0
	}
	w := (r.width - 160) / n * 7 / 10
	switch {
	case w > 80:
		return 80
	case w < 4:
		return 4
	}
	return w
}
