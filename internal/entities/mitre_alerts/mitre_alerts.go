package mitrealerts

import (
	"github.com/benedict-erwin/soc-dashboard/pkg/frame"
)

// TopTechniquesLimit is how many techniques the technique chart shows
const TopTechniquesLimit = 15

// TacticAlerts counts high/critical alerts for one MITRE ATT&CK tactic and technique
type TacticAlerts struct {
	Tactic     string `db:"tactic"`
	Technique  string `db:"technique"`
	AlertCount int64  `db:"alert_count"`
}

func alertCount(r TacticAlerts) float64 { return float64(r.AlertCount) }

// ByTactic sums alert counts per tactic, tactics sorted by name
func ByTactic(rows []TacticAlerts) []frame.Group {
	return frame.GroupBy(rows, func(r TacticAlerts) string { return r.Tactic }, alertCount, frame.Sum)
}

// TopTechniques returns the n techniques with the most alerts
func TopTechniques(rows []TacticAlerts, n int) []TacticAlerts {
	return frame.TopN(rows, n, alertCount)
}
