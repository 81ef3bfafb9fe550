package evidence

import (
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/legalref"
)

// SectorBlock carries the sector comparison context of a benchmark finding.
type SectorBlock struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	RangeMin         float64 `json:"range_min"`
	RangeMax         float64 `json:"range_max"`
	DeviationType    string  `json:"deviation_type"`
	DeviationPercent float64 `json:"deviation_percent"`
}

// Bundle is a normalized, presentation-ready package of one finding: the
// finding's own evidence plus resolved legal citations, recommendations and
// next steps. Building a bundle performs lookups only, never computation.
type Bundle struct {
	ID              string                `json:"id"`
	FindingID       string                `json:"finding_id"`
	Title           string                `json:"title"`
	Summary         string                `json:"summary"`
	Severity        domain.Severity       `json:"severity"`
	Items           []domain.EvidenceItem `json:"items"`
	LegalReferences []legalref.Reference  `json:"legal_references,omitempty"`
	FormulaTrace    []string              `json:"formula_trace,omitempty"`
	Sector          *SectorBlock          `json:"sector,omitempty"`
	Recommendations []string              `json:"recommendations,omitempty"`
	NextSteps       []string              `json:"next_steps,omitempty"`
}
