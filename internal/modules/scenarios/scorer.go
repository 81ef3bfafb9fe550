// Package scenarios scores individual transactions against the static
// transaction-risk scenario catalog and aggregates the results into a
// taxpayer risk profile.
package scenarios

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

const maxRecommendations = 3

// Score evaluates every transaction against every scenario predicate and
// builds the taxpayer profile. A transaction matching no scenario scores
// zero and keeps the lowest-priority action.
func Score(in Input) Profile {
	profile := Profile{
		TransactionCount: len(in.Transactions),
		HighestAction:    domain.ActionMonitor,
	}

	frequency := make(map[string]int)
	var scores []float64

	for _, tx := range in.Transactions {
		a := assess(tx, in)
		profile.Assessments = append(profile.Assessments, a)
		scores = append(scores, a.Score)

		if len(a.ScenarioIDs) > 0 {
			profile.FlaggedCount++
			profile.HighestAction = domain.MaxAction(profile.HighestAction, a.Action)
		}
		for _, id := range a.ScenarioIDs {
			frequency[id]++
		}
	}

	if len(scores) > 0 {
		profile.MeanScore = stat.Mean(scores, nil)
	}
	profile.TopScenarios = rankScenarios(frequency)
	profile.OverallSeverity = overallSeverity(profile)
	profile.Recommendations = recommendations(profile.TopScenarios)
	return profile
}

// assess runs one transaction through every predicate. The per-transaction
// score is the mean of the matched scenario scores and the action is the
// highest-priority action among matches.
func assess(tx domain.Transaction, in Input) Assessment {
	a := Assessment{
		Transaction: tx,
		Action:      domain.ActionMonitor,
	}

	var matched []float64
	for _, s := range catalog {
		if !s.match(tx, in) {
			continue
		}
		a.ScenarioIDs = append(a.ScenarioIDs, s.def.ID)
		matched = append(matched, s.def.RiskScore)
		a.Action = domain.MaxAction(a.Action, s.def.Action)
	}

	if len(matched) > 0 {
		a.Score = stat.Mean(matched, nil)
	}
	return a
}

// rankScenarios orders matched scenarios by frequency, most frequent first.
// Ties break on scenario id so the ranking is deterministic.
func rankScenarios(frequency map[string]int) []ScenarioCount {
	ranked := make([]ScenarioCount, 0, len(frequency))
	for id, count := range frequency {
		def, _ := DefinitionByID(id)
		ranked = append(ranked, ScenarioCount{ScenarioID: id, Name: def.Name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ScenarioID < ranked[j].ScenarioID
	})
	return ranked
}

func overallSeverity(p Profile) domain.Severity {
	flaggedShare := 0.0
	if p.TransactionCount > 0 {
		flaggedShare = float64(p.FlaggedCount) / float64(p.TransactionCount)
	}
	switch {
	case p.HighestAction == domain.ActionAuditReferral || p.MeanScore >= 75:
		return domain.SeverityCritical
	case p.MeanScore >= 50 || flaggedShare >= 0.5:
		return domain.SeverityHigh
	case p.FlaggedCount >= 1 || p.MeanScore >= 25:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// recommendations picks the fixed recommendation text of the most frequent
// scenarios, at most three.
func recommendations(top []ScenarioCount) []string {
	var recs []string
	for _, sc := range top {
		if len(recs) == maxRecommendations {
			break
		}
		if def, ok := DefinitionByID(sc.ScenarioID); ok {
			recs = append(recs, def.Recommendation)
		}
	}
	return recs
}
