package assetrisk

import (
	"context"
	"fmt"

	ar "github.com/benedict-erwin/soc-dashboard/internal/entities/asset_risk"
	"github.com/benedict-erwin/soc-dashboard/internal/reports"
	"github.com/benedict-erwin/soc-dashboard/pkg/charts"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

// Handle charts assets ranked by criticality weighted alert volume
func Handle(ctx context.Context, src reports.Source, r reports.Renderer) *reports.Result {
	cfg := ar.GetQueryConfig()
	log := logger.WithScope(cfg.Key)
	res := reports.NewResult(cfg)

	var rows []ar.AssetRisk
	if err := src.RunQuery(ctx, reports.QueryLabel(cfg), cfg.SQL, &rows); err != nil {
		res.Err = err
		return res
	}
	res.Rows = len(rows)
	if len(rows) == 0 {
		log.Warn().Msg("Query returned no rows, charts skipped")
		return res
	}

	// Top assets
	top := ar.TopAssets(rows, ar.TopAssetsLimit)
	bars := make([]charts.Bar, 0, len(top))
	for _, a := range top {
		score, _ := a.Score()
		bars = append(bars, charts.Bar{Label: a.Hostname, Value: score, Group: a.AssetType})
	}
	path, err := r.Bar(ar.ChartTopAssets, charts.BarChart{
		Title:      fmt.Sprintf("Q2: Top %d Risky Assets (Normalized by Criticality)", ar.TopAssetsLimit),
		YLabel:     utils.Humanize("normalized_alert_score"),
		Bars:       bars,
		ShowValues: true,
	})
	res.Save(log, ar.ChartTopAssets, path, err)

	// Criticality vs score
	scored := ar.Scored(rows)
	points := make([]charts.Point, 0, len(scored))
	for _, a := range scored {
		score, _ := a.Score()
		points = append(points, charts.Point{
			X:     float64(a.TotalAlerts),
			Y:     score,
			Size:  score,
			Group: a.Criticality,
		})
	}
	path, err = r.Scatter(ar.ChartScatter, charts.ScatterChart{
		Title:  "Q2: Asset Criticality vs Alert Score (Scatter)",
		XLabel: utils.Humanize("total_alerts"),
		YLabel: "Normalized Score",
		Points: points,
	})
	res.Save(log, ar.ChartScatter, path, err)

	// Mean per asset type
	types := ar.MeanScoreByType(rows)
	bars = make([]charts.Bar, 0, len(types))
	for _, g := range types {
		bars = append(bars, charts.Bar{Label: g.Key, Value: g.Value})
	}
	path, err = r.Bar(ar.ChartScoreByAssetType, charts.BarChart{
		Title:  "Q2: Average Normalized Alert Score by Asset Type",
		YLabel: utils.Humanize("normalized_alert_score"),
		Bars:   bars,
	})
	res.Save(log, ar.ChartScoreByAssetType, path, err)

	log.Info().Int("assets", len(rows)).Int("shown", len(top)).Msg("Generated Q2 charts")
	return res
}
