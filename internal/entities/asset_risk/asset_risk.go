package assetrisk

import (
	"database/sql"

	"github.com/benedict-erwin/soc-dashboard/internal/constants"
	"github.com/benedict-erwin/soc-dashboard/pkg/frame"
)

// TopAssetsLimit is how many assets the ranking chart shows
const TopAssetsLimit = 10

// AssetRisk is one asset with its alert volume weighted by criticality
type AssetRisk struct {
	AssetID              string        `db:"asset_id"`
	Hostname             string        `db:"hostname"`
	AssetType            string        `db:"asset_type"`
	Criticality          string        `db:"criticality"`
	TotalAlerts          int64         `db:"total_alerts"`
	NormalizedAlertScore sql.NullInt64 `db:"normalized_alert_score"`
}

// NormalizedScore is total alerts times the criticality weight (low=1 .. critical=4)
func NormalizedScore(totalAlerts int64, criticality string) int64 {
	return totalAlerts * int64(constants.GetCriticalityWeight(criticality))
}

// Score returns the normalized score; false when the database returned NULL
// because the criticality is outside the known levels
func (a AssetRisk) Score() (float64, bool) {
	if !a.NormalizedAlertScore.Valid {
		return 0, false
	}
	return float64(a.NormalizedAlertScore.Int64), true
}

// Scored drops assets without a normalized score
func Scored(rows []AssetRisk) []AssetRisk {
	out := make([]AssetRisk, 0, len(rows))
	for _, r := range rows {
		if _, ok := r.Score(); ok {
			out = append(out, r)
		}
	}
	return out
}

func score(a AssetRisk) float64 {
	s, _ := a.Score()
	return s
}

// TopAssets returns the n highest scored assets ordered lowest to highest for display
func TopAssets(rows []AssetRisk, n int) []AssetRisk {
	return frame.SortBy(frame.TopN(Scored(rows), n, score), score)
}

// MeanScoreByType averages the normalized score per asset type
func MeanScoreByType(rows []AssetRisk) []frame.Group {
	return frame.GroupBy(Scored(rows), func(a AssetRisk) string { return a.AssetType }, score, frame.Mean)
}
