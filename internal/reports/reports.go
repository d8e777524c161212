// Package reports holds what the analytical units share: the query source and
// chart renderer they depend on, and the result record each run produces.
package reports

import (
	"context"
	"errors"

	"github.com/benedict-erwin/soc-dashboard/internal/entities"
	"github.com/benedict-erwin/soc-dashboard/pkg/charts"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
)

// Source runs one named query and scans its rows into dest
type Source interface {
	RunQuery(ctx context.Context, name, query string, dest interface{}) error
}

// Renderer draws charts into the output directory and returns the written path
type Renderer interface {
	Bar(file string, c charts.BarChart) (string, error)
	GroupedBar(file string, c charts.GroupedBarChart) (string, error)
	StackedBar(file string, c charts.StackedBarChart) (string, error)
	Scatter(file string, c charts.ScatterChart) (string, error)
}

// Handler runs one analytical unit end to end. It never returns nil.
type Handler func(ctx context.Context, src Source, r Renderer) *Result

// Result records what one analytical unit produced
type Result struct {
	Key     string
	Name    string
	Rows    int
	Charts  []string
	Skipped []string
	Err     error
}

// NewResult starts an empty result for cfg
func NewResult(cfg entities.QueryConfig) *Result {
	return &Result{Key: cfg.Key, Name: cfg.Name}
}

// QueryLabel is the name a unit's query is logged under
func QueryLabel(cfg entities.QueryConfig) string {
	return cfg.Key + " - " + cfg.Name
}

// Save records the outcome of rendering one chart file; failures are logged and skipped
func (r *Result) Save(log *logger.ScopedLogger, file, path string, err error) {
	switch {
	case err == nil:
		r.Charts = append(r.Charts, path)
	case errors.Is(err, charts.ErrNoData):
		log.Warn().Str("chart", file).Msg("Nothing to plot, chart skipped")
		r.Skipped = append(r.Skipped, file)
	default:
		log.Error().Err(err).Str("chart", file).Msg("Error rendering chart")
		r.Skipped = append(r.Skipped, file)
	}
}

// OK reports whether the query succeeded
func (r *Result) OK() bool {
	return r.Err == nil
}
