package constants

// Alert and incident severity levels
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Asset criticality levels share the severity vocabulary
const (
	CriticalityLow      = SeverityLow
	CriticalityMedium   = SeverityMedium
	CriticalityHigh     = SeverityHigh
	CriticalityCritical = SeverityCritical
)

// GetAllSeverities returns severity levels from least to most severe
func GetAllSeverities() []string {
	return []string{
		SeverityLow,
		SeverityMedium,
		SeverityHigh,
		SeverityCritical,
	}
}

// GetAllCriticalities returns asset criticality levels from least to most critical
func GetAllCriticalities() []string {
	return []string{
		CriticalityLow,
		CriticalityMedium,
		CriticalityHigh,
		CriticalityCritical,
	}
}

// IsValidSeverity checks if severity is a known level
func IsValidSeverity(severity string) bool {
	return GetSeverityRank(severity) > 0
}

// GetSeverityRank returns numeric rank for severity (higher = more severe, 0 = unknown)
func GetSeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// GetCriticalityWeight returns the multiplier applied to an asset's alert count
func GetCriticalityWeight(criticality string) int {
	return GetSeverityRank(criticality)
}
