package responsetiming

import (
	"context"

	rt "github.com/benedict-erwin/soc-dashboard/internal/entities/response_timing"
	"github.com/benedict-erwin/soc-dashboard/internal/reports"
	"github.com/benedict-erwin/soc-dashboard/pkg/charts"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

// Handle charts MTTD, MTTC and MTTR per incident severity
func Handle(ctx context.Context, src reports.Source, r reports.Renderer) *reports.Result {
	cfg := rt.GetQueryConfig()
	log := logger.WithScope(cfg.Key)
	res := reports.NewResult(cfg)

	var rows []rt.ResponseTiming
	if err := src.RunQuery(ctx, reports.QueryLabel(cfg), cfg.SQL, &rows); err != nil {
		res.Err = err
		return res
	}
	res.Rows = len(rows)
	if len(rows) == 0 {
		log.Warn().Msg("Query returned no rows, charts skipped")
		return res
	}

	rows = rt.SortBySeverity(rows)
	severities := make([]string, len(rows))
	for i, row := range rows {
		severities[i] = utils.UcFirst(row.Severity)
	}

	// All metrics grouped per severity
	long := rt.Melt(rows)
	series := make([]charts.Series, 0, len(rt.Metrics()))
	for _, m := range rt.Metrics() {
		s := charts.Series{Name: rt.MetricName(m)}
		for _, l := range long {
			if l.Variable == m {
				s.Values = append(s.Values, l.Value)
			}
		}
		series = append(series, s)
	}
	path, err := r.GroupedBar(rt.ChartAllMetrics, charts.GroupedBarChart{
		Title:      "Q5: Incident Response Timing - MTTD / MTTC / MTTR by Severity",
		YLabel:     "Hours",
		Categories: severities,
		Series:     series,
	})
	res.Save(log, rt.ChartAllMetrics, path, err)

	// One chart per metric
	for _, m := range rt.Metrics() {
		bars := make([]charts.Bar, 0, len(rows))
		for i, row := range rows {
			bars = append(bars, charts.Bar{Label: severities[i], Value: row.Metric(m)})
		}
		file := rt.ChartForMetric(m)
		path, err := r.Bar(file, charts.BarChart{
			Title:      "Q5: " + rt.MetricName(m) + " by Severity",
			YLabel:     "Hours",
			Bars:       bars,
			ShowValues: true,
		})
		res.Save(log, file, path, err)
	}

	log.Info().Int("severities", len(rows)).Msg("Generated Q5 charts (MTTD, MTTC, MTTR by severity)")
	return res
}
