package responsetiming

import (
	"strings"

	"github.com/benedict-erwin/soc-dashboard/internal/entities"
)

// Chart files
const (
	ChartAllMetrics = "Q5_mttd_mttc_mttr_by_severity.png"
)

// ChartForMetric returns the single metric chart file, e.g. Q5_mttd_by_severity.png
func ChartForMetric(metric string) string {
	return "Q5_" + strings.ToLower(MetricName(metric)) + "_by_severity.png"
}

const query = `
SELECT
    severity,
    ROUND(AVG(TIMESTAMPDIFF(HOUR, detected_at, opened_at)), 2) AS mttd_hours,
    ROUND(AVG(TIMESTAMPDIFF(HOUR, detected_at, contained_at)), 2) AS mttc_hours,
    ROUND(AVG(TIMESTAMPDIFF(HOUR, opened_at, closed_at)), 2) AS mttr_hours
FROM incidents
WHERE
    detected_at IS NOT NULL
    AND opened_at IS NOT NULL
    AND contained_at IS NOT NULL
    AND closed_at IS NOT NULL
GROUP BY severity
ORDER BY FIELD(severity, 'low', 'medium', 'high', 'critical')`

// GetQueryConfig returns the query configuration for incident response timing
func GetQueryConfig() entities.QueryConfig {
	charts := []string{ChartAllMetrics}
	for _, m := range Metrics() {
		charts = append(charts, ChartForMetric(m))
	}
	return entities.QueryConfig{
		Key:     "Q5",
		Name:    "Incident Response Timing (MTTD/MTTC/MTTR)",
		SQL:     query,
		Columns: entities.ColumnsOf(ResponseTiming{}),
		Charts:  charts,
	}
}
