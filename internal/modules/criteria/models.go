package criteria

import (
	"github.com/cemsak/lyntos-updated-sub001/internal/config"
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
)

// Definition is the immutable metadata of one regulator risk criterion.
// The catalog is loaded once at process start and never mutated.
type Definition struct {
	ID          string
	Name        string
	Description string

	// MessageTemplate embeds the formatted computed value via one %s verb.
	MessageTemplate string
	Recommendation  string

	// Statutes lists legal-reference ids resolved by the evidence builder.
	Statutes []string
}

// evaluation is the raw outcome of one criterion evaluator before it is
// folded into a Finding.
type evaluation struct {
	value     float64
	display   string // formatted value embedded into the message template
	severity  domain.Severity
	threshold float64
	evidence  []domain.EvidenceItem
}

// evaluator computes a criterion-specific value from the aggregate figures.
// Returns nil when the criterion cannot be evaluated (missing input or zero
// denominator); the criterion is then omitted, which is a normal outcome.
type evaluator func(f aggregation.Figures, a config.Assumptions) *evaluation

// criterion pairs a definition with its evaluator.
type criterion struct {
	def  Definition
	eval evaluator
}

// Finding is one triggered criterion. Findings are produced only when the
// evaluated severity exceeds LOW.
type Finding struct {
	CriterionID    string                `json:"criterion_id"`
	Name           string                `json:"name"`
	Severity       domain.Severity       `json:"severity"`
	Message        string                `json:"message"`
	Value          float64               `json:"value"`
	Threshold      float64               `json:"threshold"`
	Recommendation string                `json:"recommendation"`
	Statutes       []string              `json:"statutes"`
	Evidence       []domain.EvidenceItem `json:"evidence"`
}

// Report aggregates all findings of one evaluation run.
type Report struct {
	Findings        []Finding       `json:"findings"`
	Score           int             `json:"score"` // 0-100 weighted risk score
	CriticalCount   int             `json:"critical_count"`
	HighCount       int             `json:"high_count"`
	OtherCount      int             `json:"other_count"`
	OverallSeverity domain.Severity `json:"overall_severity"`
}
