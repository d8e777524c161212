// Package dashboard runs every registered analytical unit against one
// database session and collects what each of them produced.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/benedict-erwin/soc-dashboard/internal/reports"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

// Session is the query source for a run; it is closed once when the run ends
type Session interface {
	reports.Source
	Close() error
}

// Opener establishes the run's session
type Opener func(ctx context.Context) (Session, error)

// OutputRenderer is a chart renderer bound to an output directory
type OutputRenderer interface {
	reports.Renderer
	Dir() string
	EnsureDir() error
}

// Summary describes a finished run
type Summary struct {
	StartedAt  time.Time
	FinishedAt time.Time
	OutputDir  string
	Results    []*reports.Result
}

// ChartCount returns the number of chart files written
func (s *Summary) ChartCount() int {
	n := 0
	for _, r := range s.Results {
		n += len(r.Charts)
	}
	return n
}

// Failed returns the results whose query did not complete
func (s *Summary) Failed() []*reports.Result {
	var failed []*reports.Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Run opens one session, runs every registration in order and closes the
// session on every exit path. Only a failed open is returned as an error;
// per-query failures are recorded in the summary.
func Run(ctx context.Context, open Opener, renderer OutputRenderer, regs []Registration) (*Summary, error) {
	log := logger.WithScope("Dashboard")

	summary := &Summary{StartedAt: utils.Now(), OutputDir: renderer.Dir()}

	if err := renderer.EnsureDir(); err != nil {
		// Writes retry the directory, so each chart fails on its own
		log.Warn().Err(err).Str("dir", renderer.Dir()).Msg("Cannot create output directory")
	}

	session, err := open(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database. Exiting...")
		return nil, err
	}
	defer session.Close()

	for _, reg := range regs {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Str("query", reg.Config.Key).Msg("Run cancelled, remaining queries skipped")
			break
		}
		summary.Results = append(summary.Results, runStep(ctx, reg, session, renderer))
	}

	summary.FinishedAt = utils.Now()
	log.Info().
		Int("queries", len(summary.Results)).
		Int("failed", len(summary.Failed())).
		Int("charts", summary.ChartCount()).
		Str("output_dir", summary.OutputDir).
		Dur("elapsed", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("All charts generated")

	return summary, nil
}

func runStep(ctx context.Context, reg Registration, src reports.Source, r reports.Renderer) (res *reports.Result) {
	defer func() {
		if p := recover(); p != nil {
			logger.WithScope(reg.Config.Key).Error().Interface("panic", p).Msg("Query step aborted")
			res = &reports.Result{
				Key:  reg.Config.Key,
				Name: reg.Config.Name,
				Err:  fmt.Errorf("query %s panicked: %v", reg.Config.Key, p),
			}
		}
	}()

	res = reg.Handler(ctx, src, r)
	if res == nil {
		res = &reports.Result{Key: reg.Config.Key, Name: reg.Config.Name}
	}
	return res
}
