package constants

import "testing"

func TestSeverityRankOrder(t *testing.T) {
	all := GetAllSeverities()
	for i := 1; i < len(all); i++ {
		if GetSeverityRank(all[i-1]) >= GetSeverityRank(all[i]) {
			t.Fatalf("%s should rank below %s", all[i-1], all[i])
		}
	}
	if IsValidSeverity("informational") {
		t.Fatal("unknown severity reported as valid")
	}
}

func TestCriticalityWeight(t *testing.T) {
	cases := map[string]int{
		CriticalityLow:      1,
		CriticalityMedium:   2,
		CriticalityHigh:     3,
		CriticalityCritical: 4,
		"unknown":           0,
		"":                  0,
	}
	for c, want := range cases {
		if got := GetCriticalityWeight(c); got != want {
			t.Errorf("GetCriticalityWeight(%q) = %d, want %d", c, got, want)
		}
	}
}

func TestRealAlertStatusesExcludeFalsePositive(t *testing.T) {
	for _, status := range GetRealAlertStatuses() {
		if status == StatusFalsePositive {
			t.Fatalf("%s counted as a real alert", status)
		}
	}
	if len(GetAllCriticalities()) != len(GetAllSeverities()) {
		t.Fatal("criticality and severity levels diverged")
	}
}
