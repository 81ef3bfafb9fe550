package benchmark

import (
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// Range is a sector benchmark range for one tracked ratio.
type Range struct {
	Min float64
	Max float64
	Avg float64
}

// Profile is the static benchmark record of one sector.
type Profile struct {
	Code     string
	Name     string
	RiskNote string
	Ranges   map[string]Range
}

// DeviationType marks which side of the benchmark range a value fell on.
type DeviationType string

const (
	DeviationBelow  DeviationType = "BELOW"
	DeviationAbove  DeviationType = "ABOVE"
	DeviationNormal DeviationType = "NORMAL"
)

// Deviation is the comparison outcome for one tracked ratio.
type Deviation struct {
	RatioID   string          `json:"ratio_id"`
	Name      string          `json:"name"`
	Value     float64         `json:"value"`
	Range     Range           `json:"range"`
	Type      DeviationType   `json:"type"`
	Percent   float64         `json:"percent"` // deviation from the nearest range bound
	Severity  domain.Severity `json:"severity"`
	Escalated bool            `json:"escalated"`
}

// Result is the full sector comparison for one taxpayer. When the sector
// code is unknown, Found is false, Message explains it, and everything else
// stays empty: there is no silent fallback profile.
type Result struct {
	SectorCode      string          `json:"sector_code"`
	SectorName      string          `json:"sector_name,omitempty"`
	Found           bool            `json:"found"`
	Message         string          `json:"message,omitempty"`
	Deviations      []Deviation     `json:"deviations,omitempty"`
	DeviatingCount  int             `json:"deviating_count"`
	Score           float64         `json:"score"`
	OverallSeverity domain.Severity `json:"overall_severity"`
	Recommendations []string        `json:"recommendations,omitempty"`
}
