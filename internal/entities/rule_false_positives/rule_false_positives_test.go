package rulefalsepositives

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedict-erwin/soc-dashboard/internal/constants"
)

func rule(id, tactic string, total, fp, real int64) RuleFalsePositives {
	return RuleFalsePositives{
		RuleID:            id,
		DetectionRule:     "rule " + id,
		Tactic:            tactic,
		TotalAlerts:       total,
		FalsePositives:    sql.NullInt64{Int64: fp, Valid: true},
		RealAlerts:        sql.NullInt64{Int64: real, Valid: true},
		FalsePositiveRate: sql.NullFloat64{Float64: FalsePositiveRate(fp, total), Valid: true},
	}
}

func TestQueryConfigColumns(t *testing.T) {
	cfg := GetQueryConfig()
	assert.Equal(t, []string{
		"rule_id", "detection_rule", "tactic", "technique",
		"total_alerts", "false_positives", "real_alerts", "false_positive_rate",
	}, cfg.Columns)
	for _, col := range cfg.Columns {
		assert.Contains(t, cfg.SQL, col)
	}
	assert.Contains(t, cfg.SQL, "HAVING COUNT(a.alert_id) > 0")
	for _, status := range constants.GetRealAlertStatuses() {
		assert.Contains(t, cfg.SQL, "'"+status+"'")
	}
	assert.Contains(t, cfg.SQL, "SUM(a.status IN ('open','in_progress','contained','resolved')) AS real_alerts")
	assert.Contains(t, cfg.SQL, "SUM(a.status = 'false_positive') AS false_positives")
}

func TestFalsePositiveRate(t *testing.T) {
	assert.Equal(t, 0.333, FalsePositiveRate(1, 3))
	assert.Equal(t, 0.667, FalsePositiveRate(2, 3))
	assert.Equal(t, 1.0, FalsePositiveRate(4, 4))
	assert.Equal(t, 0.0, FalsePositiveRate(0, 9))
	assert.Equal(t, 0.0, FalsePositiveRate(3, 0))
}

func TestRateFallsBackToFormula(t *testing.T) {
	r := RuleFalsePositives{TotalAlerts: 8, FalsePositives: sql.NullInt64{Int64: 2, Valid: true}}
	assert.Equal(t, 0.25, r.Rate())

	r.FalsePositiveRate = sql.NullFloat64{Float64: 0.5, Valid: true}
	assert.Equal(t, 0.5, r.Rate())
}

func TestNullStatusSumsCountAsZero(t *testing.T) {
	r := RuleFalsePositives{RuleID: "R-2", Tactic: "Discovery", TotalAlerts: 4}
	assert.Equal(t, int64(0), r.FalsePositiveCount())
	assert.Equal(t, int64(0), r.RealAlertCount())
	assert.Equal(t, 0.0, r.Rate())

	top := TopRules([]RuleFalsePositives{r, rule("1", "Execution", 10, 3, 7)}, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "1", top[0].RuleID)
	assert.Equal(t, "R-2", top[1].RuleID)
}

func TestTopRulesAndMeanByTactic(t *testing.T) {
	rows := []RuleFalsePositives{
		rule("1", "Execution", 10, 9, 1),
		rule("2", "Discovery", 10, 1, 9),
		rule("3", "Execution", 4, 1, 3),
		rule("4", "Discovery", 5, 5, 0),
	}

	top := TopRules(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "4", top[0].RuleID)
	assert.Equal(t, "1", top[1].RuleID)

	groups := MeanRateByTactic(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, "Discovery", groups[0].Key)
	assert.InDelta(t, 0.55, groups[0].Value, 1e-9)
	assert.Equal(t, "Execution", groups[1].Key)
	assert.InDelta(t, 0.575, groups[1].Value, 1e-9)
}
