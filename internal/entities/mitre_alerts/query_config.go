package mitrealerts

import (
	"github.com/benedict-erwin/soc-dashboard/internal/entities"
)

// Chart files
const (
	ChartAlertsByTactic = "Q1_pie_alerts_by_tactic.png"
	ChartTopTechniques  = "Q1_simple_chart_by_tactic.png"
)

const query = `
SELECT
    dr.tactic,
    dr.technique,
    COUNT(*) AS alert_count
FROM alerts AS a
JOIN detection_rules AS dr
    ON a.rule_id = dr.rule_id
WHERE a.severity IN ('high', 'critical')
GROUP BY dr.tactic, dr.technique
ORDER BY alert_count DESC`

// GetQueryConfig returns the query configuration for MITRE ATT&CK alert counts
func GetQueryConfig() entities.QueryConfig {
	return entities.QueryConfig{
		Key:     "Q1",
		Name:    "MITRE ATT&CK High/Critical Alerts",
		SQL:     query,
		Columns: entities.ColumnsOf(TacticAlerts{}),
		Charts: []string{
			ChartAlertsByTactic,
			ChartTopTechniques,
		},
	}
}
