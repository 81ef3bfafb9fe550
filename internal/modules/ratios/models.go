package ratios

import (
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// Category groups ratios for reporting.
type Category string

const (
	CategoryLiquidity     Category = "LIQUIDITY"
	CategoryActivity      Category = "ACTIVITY"
	CategoryStructure     Category = "STRUCTURE"
	CategoryProfitability Category = "PROFITABILITY"
)

// Polarity declares which direction outside the normal range is the
// dangerous one for a ratio.
type Polarity int

const (
	// LowIsBad: values below the range signal distress (liquidity ratios).
	LowIsBad Polarity = iota
	// HighIsBad: values above the range signal distress (leverage ratios).
	HighIsBad
)

// Definition is one immutable ratio definition. Definitions are loaded once
// at process start and shared read-only across concurrent evaluations.
type Definition struct {
	ID       string
	Name     string
	Category Category
	Min      float64
	Max      float64
	Polarity Polarity

	// CriterionID links the ratio to a regulator risk criterion. Linked
	// ratios are flagged regulator-relevant when their severity is not LOW.
	CriterionID string

	BelowComment  string
	WithinComment string
	AboveComment  string
}

// Result is the evaluated outcome of a single ratio. Ratios whose required
// denominator is zero are omitted entirely; a Result is never produced with
// a NaN or infinite value.
type Result struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Category          Category              `json:"category"`
	Value             float64               `json:"value"`
	Min               float64               `json:"min"`
	Max               float64               `json:"max"`
	Severity          domain.Severity       `json:"severity"`
	Comment           string                `json:"comment"`
	RegulatorRelevant bool                  `json:"regulator_relevant"`
	CriterionID       string                `json:"criterion_id,omitempty"`
	Evidence          []domain.EvidenceItem `json:"evidence"`
}

// CategorySummary rolls a category up to its worst severity.
type CategorySummary struct {
	Category      Category        `json:"category"`
	WorstSeverity domain.Severity `json:"worst_severity"`
	Evaluated     int             `json:"evaluated"`
	Flagged       int             `json:"flagged"` // severity above LOW
}

// Report is the full ratio-engine output for one analysis request.
type Report struct {
	Results         []Result          `json:"results"`
	Categories      []CategorySummary `json:"categories"`
	OverallSeverity domain.Severity   `json:"overall_severity"`
}
