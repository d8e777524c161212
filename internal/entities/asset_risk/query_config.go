package assetrisk

import (
	"fmt"
	"strings"

	"github.com/benedict-erwin/soc-dashboard/internal/constants"
	"github.com/benedict-erwin/soc-dashboard/internal/entities"
)

// Chart files
const (
	ChartTopAssets        = "Q2_top_assets_normalized_alert_score.png"
	ChartScatter          = "Q2_scatter_criticality_vs_alert_score.png"
	ChartScoreByAssetType = "Q2_normalized_score_by_asset_type.png"
)

var query = fmt.Sprintf(`
SELECT
    a.asset_id,
    a.hostname,
    a.asset_type,
    a.criticality,
    COUNT(al.alert_id) AS total_alerts,
    CASE
%s    END AS normalized_alert_score
FROM assets a
LEFT JOIN network_logs nl
    ON nl.asset_id = a.asset_id
LEFT JOIN alerts al
    ON al.log_id = nl.log_id
GROUP BY
    a.asset_id, a.hostname, a.asset_type, a.criticality
ORDER BY
    normalized_alert_score DESC`, criticalityWeights())

// criticalityWeights renders one CASE branch per criticality level
func criticalityWeights() string {
	var b strings.Builder
	for _, c := range constants.GetAllCriticalities() {
		fmt.Fprintf(&b, "        WHEN a.criticality = '%s' THEN COUNT(al.alert_id) * %d\n", c, constants.GetCriticalityWeight(c))
	}
	return b.String()
}

// GetQueryConfig returns the query configuration for criticality weighted asset risk
func GetQueryConfig() entities.QueryConfig {
	return entities.QueryConfig{
		Key:     "Q2",
		Name:    "Asset Risk by Normalized Alert Score",
		SQL:     query,
		Columns: entities.ColumnsOf(AssetRisk{}),
		Charts: []string{
			ChartTopAssets,
			ChartScatter,
			ChartScoreByAssetType,
		},
	}
}
