package patterns

import (
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// ValueBag is the loosely-typed input of the pattern detector: a flat set of
// named figures assembled by the caller from trial-balance and declaration
// fields. Absence of a key means the field was not supplied; checks that
// need a missing key do not fire.
type ValueBag map[string]float64

// Get returns the value for a key and whether it was supplied.
func (b ValueBag) Get(key string) (float64, bool) {
	v, ok := b[key]
	return v, ok
}

// Has reports whether every listed key was supplied.
func (b ValueBag) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Finding is one detected bookkeeping error pattern.
type Finding struct {
	PatternID        string                `json:"pattern_id"`
	Name             string                `json:"name"`
	Severity         domain.Severity       `json:"severity"`
	Explanation      string                `json:"explanation"`
	CorrectTreatment string                `json:"correct_treatment"`
	AutoCorrectable  bool                  `json:"auto_correctable"`
	CorrectiveValue  *float64              `json:"corrective_value,omitempty"`
	Evidence         []domain.EvidenceItem `json:"evidence,omitempty"`
}

// Report is the aggregate outcome of one detector run.
type Report struct {
	Findings        []Finding       `json:"findings"`
	CriticalCount   int             `json:"critical_count"`
	HighCount       int             `json:"high_count"`
	MediumCount     int             `json:"medium_count"`
	OverallSeverity domain.Severity `json:"overall_severity"`
	Summary         string          `json:"summary"`
}
