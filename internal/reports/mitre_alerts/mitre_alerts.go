package mitrealerts

import (
	"context"
	"fmt"

	ma "github.com/benedict-erwin/soc-dashboard/internal/entities/mitre_alerts"
	"github.com/benedict-erwin/soc-dashboard/internal/reports"
	"github.com/benedict-erwin/soc-dashboard/pkg/charts"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

// Handle charts high/critical alerts per MITRE ATT&CK tactic and technique
func Handle(ctx context.Context, src reports.Source, r reports.Renderer) *reports.Result {
	cfg := ma.GetQueryConfig()
	log := logger.WithScope(cfg.Key)
	res := reports.NewResult(cfg)

	var rows []ma.TacticAlerts
	if err := src.RunQuery(ctx, reports.QueryLabel(cfg), cfg.SQL, &rows); err != nil {
		res.Err = err
		return res
	}
	res.Rows = len(rows)
	if len(rows) == 0 {
		log.Warn().Msg("Query returned no rows, charts skipped")
		return res
	}

	// Tactic level
	tactics := ma.ByTactic(rows)
	bars := make([]charts.Bar, 0, len(tactics))
	for _, g := range tactics {
		bars = append(bars, charts.Bar{Label: g.Key, Value: g.Value})
	}
	path, err := r.Bar(ma.ChartAlertsByTactic, charts.BarChart{
		Title:      "Q1: High/Critical Alerts by MITRE ATT&CK Tactic",
		YLabel:     utils.Humanize("alert_count"),
		Bars:       bars,
		ShowValues: true,
	})
	res.Save(log, ma.ChartAlertsByTactic, path, err)

	// Technique level
	top := ma.TopTechniques(rows, ma.TopTechniquesLimit)
	bars = make([]charts.Bar, 0, len(top))
	for _, t := range top {
		bars = append(bars, charts.Bar{Label: t.Technique, Value: float64(t.AlertCount), Group: t.Tactic})
	}
	path, err = r.Bar(ma.ChartTopTechniques, charts.BarChart{
		Title:  fmt.Sprintf("Q1: Top %d MITRE Techniques by High/Critical Alerts", ma.TopTechniquesLimit),
		YLabel: utils.Humanize("alert_count"),
		Bars:   bars,
	})
	res.Save(log, ma.ChartTopTechniques, path, err)

	log.Info().Int("tactics", len(tactics)).Int("techniques", len(rows)).Msg("Generated Q1 charts")
	return res
}
