package rulefalsepositives

import (
	"fmt"

	"github.com/benedict-erwin/soc-dashboard/internal/constants"
	"github.com/benedict-erwin/soc-dashboard/internal/entities"
)

// Chart files
const (
	ChartTopRates       = "Q3_false_positive_rate_top10.png"
	ChartRateByTactic   = "Q3_avg_fp_rate_by_tactic.png"
	ChartScatter        = "Q3_scatter_alerts_vs_fp_rate.png"
	ChartFalseVsRealTop = "Q3_false_vs_real_alerts.png"
)

var query = fmt.Sprintf(`
SELECT
    dr.rule_id,
    dr.name AS detection_rule,
    dr.tactic,
    dr.technique,
    COUNT(a.alert_id) AS total_alerts,
    SUM(a.status = '%[1]s') AS false_positives,
    SUM(a.status IN (%[2]s)) AS real_alerts,
    ROUND(
        SUM(a.status = '%[1]s') / COUNT(a.alert_id),
        3
    ) AS false_positive_rate
FROM detection_rules dr
LEFT JOIN alerts a
    ON a.rule_id = dr.rule_id
GROUP BY
    dr.rule_id, dr.name, dr.tactic, dr.technique
HAVING COUNT(a.alert_id) > 0
ORDER BY
    false_positive_rate DESC`, constants.StatusFalsePositive, entities.QuoteList(constants.GetRealAlertStatuses()))

// GetQueryConfig returns the query configuration for detection rule false positives
func GetQueryConfig() entities.QueryConfig {
	return entities.QueryConfig{
		Key:     "Q3",
		Name:    "Detection Rule False Positive Analysis",
		SQL:     query,
		Columns: entities.ColumnsOf(RuleFalsePositives{}),
		Charts: []string{
			ChartTopRates,
			ChartRateByTactic,
			ChartScatter,
			ChartFalseVsRealTop,
		},
	}
}
