package scoring

import (
	"fmt"

	"github.com/abhisek/triage/internal/catalog"
)

// Severity is the label derived from comparing a condition score against
// its thresholds.
type Severity string

const (
	Unlikely Severity = "unlikely"
	Mild     Severity = "mild"
	Moderate Severity = "moderate"
	Severe   Severity = "severe"
)

// Severities lists every label from least to most severe.
var Severities = []Severity{Unlikely, Mild, Moderate, Severe}

// String returns the display form of the label.
func (s Severity) String() string {
	switch s {
	case Unlikely:
		return "Unlikely"
	case Mild:
		return "Mild"
	case Moderate:
		return "Moderate"
	case Severe:
		return "Severe"
	default:
		return string(s)
	}
}

// ParseSeverity converts a stored label back into a Severity.
func ParseSeverity(s string) (Severity, error) {
	for _, sev := range Severities {
		if string(sev) == s {
			return sev, nil
		}
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

// Classify maps score onto a label. The highest threshold met wins; a score
// below Mild is Unlikely.
func Classify(score int, th catalog.Thresholds) Severity {
	switch {
	case score >= th.Severe:
		return Severe
	case score >= th.Moderate:
		return Moderate
	case score >= th.Mild:
		return Mild
	default:
		return Unlikely
	}
}
