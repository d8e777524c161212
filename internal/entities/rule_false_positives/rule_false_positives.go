package rulefalsepositives

import (
	"database/sql"
	"math"

	"github.com/benedict-erwin/soc-dashboard/pkg/frame"
)

// TopRulesLimit is how many rules the ranking charts show
const TopRulesLimit = 10

// RuleFalsePositives summarizes alert outcomes for one detection rule.
// The status sums are NULL when none of the rule's alerts has a status.
type RuleFalsePositives struct {
	RuleID            string          `db:"rule_id"`
	DetectionRule     string          `db:"detection_rule"`
	Tactic            string          `db:"tactic"`
	Technique         string          `db:"technique"`
	TotalAlerts       int64           `db:"total_alerts"`
	FalsePositives    sql.NullInt64   `db:"false_positives"`
	RealAlerts        sql.NullInt64   `db:"real_alerts"`
	FalsePositiveRate sql.NullFloat64 `db:"false_positive_rate"`
}

// FalsePositiveRate is false positives over total alerts, rounded to 3 decimals
func FalsePositiveRate(falsePositives, totalAlerts int64) float64 {
	if totalAlerts <= 0 {
		return 0
	}
	return math.Round(float64(falsePositives)/float64(totalAlerts)*1000) / 1000
}

// Rate returns the rate computed by the database, or the same formula applied locally
func (r RuleFalsePositives) Rate() float64 {
	if r.FalsePositiveRate.Valid {
		return r.FalsePositiveRate.Float64
	}
	return FalsePositiveRate(r.FalsePositiveCount(), r.TotalAlerts)
}

// FalsePositiveCount returns the false positive sum, 0 when NULL
func (r RuleFalsePositives) FalsePositiveCount() int64 {
	return r.FalsePositives.Int64
}

// RealAlertCount returns the real alert sum, 0 when NULL
func (r RuleFalsePositives) RealAlertCount() int64 {
	return r.RealAlerts.Int64
}

func rate(r RuleFalsePositives) float64 { return r.Rate() }

// TopRules returns the n rules with the highest false-positive rate
func TopRules(rows []RuleFalsePositives, n int) []RuleFalsePositives {
	return frame.TopN(rows, n, rate)
}

// MeanRateByTactic averages the false-positive rate per MITRE tactic
func MeanRateByTactic(rows []RuleFalsePositives) []frame.Group {
	return frame.GroupBy(rows, func(r RuleFalsePositives) string { return r.Tactic }, rate, frame.Mean)
}
