package responsetiming

import (
	"sort"
	"strings"

	"github.com/benedict-erwin/soc-dashboard/internal/constants"
	"github.com/benedict-erwin/soc-dashboard/pkg/frame"
)

// Metric columns, in display order
const (
	MetricMTTD = "mttd_hours"
	MetricMTTC = "mttc_hours"
	MetricMTTR = "mttr_hours"
)

// Metrics returns the timing metric columns
func Metrics() []string {
	return []string{MetricMTTD, MetricMTTC, MetricMTTR}
}

// ResponseTiming holds mean detect/contain/resolve hours for one incident severity
type ResponseTiming struct {
	Severity  string  `db:"severity"`
	MTTDHours float64 `db:"mttd_hours"`
	MTTCHours float64 `db:"mttc_hours"`
	MTTRHours float64 `db:"mttr_hours"`
}

// Metric returns the value of one metric column
func (r ResponseTiming) Metric(metric string) float64 {
	switch metric {
	case MetricMTTD:
		return r.MTTDHours
	case MetricMTTC:
		return r.MTTCHours
	case MetricMTTR:
		return r.MTTRHours
	}
	return 0
}

// MetricName turns mttd_hours into MTTD
func MetricName(metric string) string {
	return strings.ToUpper(strings.TrimSuffix(metric, "_hours"))
}

// SortBySeverity orders rows low, medium, high, critical; unknown severities go last
func SortBySeverity(rows []ResponseTiming) []ResponseTiming {
	out := make([]ResponseTiming, len(rows))
	copy(out, rows)
	rank := func(s string) int {
		if constants.IsValidSeverity(s) {
			return constants.GetSeverityRank(s)
		}
		return len(constants.GetAllSeverities()) + 1
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Severity) < rank(out[j].Severity)
	})
	return out
}

// Melt reshapes rows to (severity, metric, hours), one row per severity and metric
func Melt(rows []ResponseTiming) []frame.Long {
	return frame.Melt(rows, func(r ResponseTiming) string { return r.Severity }, Metrics(), ResponseTiming.Metric)
}
