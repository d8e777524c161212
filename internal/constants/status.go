package constants

// Alert triage statuses
const (
	StatusOpen          = "open"
	StatusInProgress    = "in_progress"
	StatusContained     = "contained"
	StatusResolved      = "resolved"
	StatusFalsePositive = "false_positive"
)

// GetRealAlertStatuses returns the statuses counted as true positives
func GetRealAlertStatuses() []string {
	return []string{
		StatusOpen,
		StatusInProgress,
		StatusContained,
		StatusResolved,
	}
}
