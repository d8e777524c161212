package rulefalsepositives

import (
	"context"
	"fmt"

	rfp "github.com/benedict-erwin/soc-dashboard/internal/entities/rule_false_positives"
	"github.com/benedict-erwin/soc-dashboard/internal/reports"
	"github.com/benedict-erwin/soc-dashboard/pkg/charts"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

// Handle charts detection rules by false-positive rate
func Handle(ctx context.Context, src reports.Source, r reports.Renderer) *reports.Result {
	cfg := rfp.GetQueryConfig()
	log := logger.WithScope(cfg.Key)
	res := reports.NewResult(cfg)

	var rows []rfp.RuleFalsePositives
	if err := src.RunQuery(ctx, reports.QueryLabel(cfg), cfg.SQL, &rows); err != nil {
		res.Err = err
		return res
	}
	res.Rows = len(rows)
	if len(rows) == 0 {
		log.Warn().Msg("Query returned no rows, charts skipped")
		return res
	}

	top := rfp.TopRules(rows, rfp.TopRulesLimit)

	// Highest rates
	bars := make([]charts.Bar, 0, len(top))
	for _, rule := range top {
		bars = append(bars, charts.Bar{Label: rule.DetectionRule, Value: rule.Rate(), Group: rule.Tactic})
	}
	path, err := r.Bar(rfp.ChartTopRates, charts.BarChart{
		Title:  fmt.Sprintf("Q3: Detection Rules with Highest False-Positive Rate (Top %d)", rfp.TopRulesLimit),
		YLabel: "False Positive Rate",
		Bars:   bars,
	})
	res.Save(log, rfp.ChartTopRates, path, err)

	// Mean rate per tactic
	tactics := rfp.MeanRateByTactic(rows)
	bars = make([]charts.Bar, 0, len(tactics))
	for _, g := range tactics {
		bars = append(bars, charts.Bar{Label: g.Key, Value: g.Value})
	}
	path, err = r.Bar(rfp.ChartRateByTactic, charts.BarChart{
		Title:  "Q3: Average False Positive Rate by MITRE Tactic",
		YLabel: "False Positive Rate",
		Bars:   bars,
	})
	res.Save(log, rfp.ChartRateByTactic, path, err)

	// Volume vs rate
	points := make([]charts.Point, 0, len(rows))
	for _, rule := range rows {
		points = append(points, charts.Point{
			X:     float64(rule.TotalAlerts),
			Y:     rule.Rate(),
			Size:  float64(rule.FalsePositiveCount()),
			Group: rule.Tactic,
		})
	}
	path, err = r.Scatter(rfp.ChartScatter, charts.ScatterChart{
		Title:  "Q3: Alert Volume vs False Positive Rate (Scatter)",
		XLabel: utils.Humanize("total_alerts"),
		YLabel: "FP Rate",
		Points: points,
	})
	res.Save(log, rfp.ChartScatter, path, err)

	// False vs real for the top rules
	stacks := make([]charts.Stack, 0, len(top))
	for _, rule := range top {
		stacks = append(stacks, charts.Stack{
			Label: rule.DetectionRule,
			Segments: []charts.Segment{
				{Name: utils.Humanize("false_positives"), Value: float64(rule.FalsePositiveCount())},
				{Name: utils.Humanize("real_alerts"), Value: float64(rule.RealAlertCount())},
			},
		})
	}
	path, err = r.StackedBar(rfp.ChartFalseVsRealTop, charts.StackedBarChart{
		Title:  fmt.Sprintf("Q3: False Positives vs Real Alerts (Top %d Rules)", rfp.TopRulesLimit),
		Stacks: stacks,
	})
	res.Save(log, rfp.ChartFalseVsRealTop, path, err)

	log.Info().Int("rules", len(rows)).Int("shown", len(top)).Msg("Generated Q3 charts")
	return res
}
