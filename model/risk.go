package model

// RiskLevel is a heuristic severity label attached to messages and sessions
// so reviewers can prioritize attention. It is not a clinical assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

var riskSeverity = map[RiskLevel]int{
	RiskLow:    0,
	RiskMedium: 1,
	RiskHigh:   2,
}

func (r RiskLevel) Valid() bool {
	_, ok := riskSeverity[r]
	return ok
}

// Severity orders risk levels: Low < Medium < High.
func (r RiskLevel) Severity() int {
	return riskSeverity[r]
}

func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}
