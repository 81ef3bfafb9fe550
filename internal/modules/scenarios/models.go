package scenarios

import (
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// Definition is one static transaction-risk scenario. Definitions are loaded
// once at process start and never mutated.
type Definition struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	RiskScore            float64           `json:"risk_score"`
	Action               domain.RiskAction `json:"action"`
	StatutoryBasis       string            `json:"statutory_basis"`
	ResponseDeadlineDays int               `json:"response_deadline_days"`
	Recommendation       string            `json:"recommendation"`
}

// Input is everything the scorer needs for one taxpayer period. The flagged
// set holds counterparty tax ids known to the authority as risky issuers.
type Input struct {
	Transactions  []domain.Transaction
	FlaggedTaxIDs map[string]bool
	SectorCode    string
}

// Assessment is the scoring outcome for a single transaction.
type Assessment struct {
	Transaction domain.Transaction `json:"transaction"`
	ScenarioIDs []string           `json:"scenario_ids,omitempty"`
	Score       float64            `json:"score"`
	Action      domain.RiskAction  `json:"action"`
}

// ScenarioCount pairs a scenario with how many transactions matched it.
type ScenarioCount struct {
	ScenarioID string `json:"scenario_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// Profile is the taxpayer-level aggregate over all scored transactions.
type Profile struct {
	TransactionCount int               `json:"transaction_count"`
	FlaggedCount     int               `json:"flagged_count"`
	MeanScore        float64           `json:"mean_score"`
	TopScenarios     []ScenarioCount   `json:"top_scenarios,omitempty"`
	HighestAction    domain.RiskAction `json:"highest_action"`
	OverallSeverity  domain.Severity   `json:"overall_severity"`
	Recommendations  []string          `json:"recommendations,omitempty"`
	Assessments      []Assessment      `json:"assessments"`
}
