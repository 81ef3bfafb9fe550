// Package criteria evaluates the regulator risk criteria directly against
// the aggregate figures of one taxpayer period.
package criteria

import (
	"fmt"

	"github.com/cemsak/lyntos-updated-sub001/internal/config"
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
)

// Score weights per finding severity.
const (
	criticalWeight = 30
	highWeight     = 15
	otherWeight    = 5
	maxScore       = 100
)

// Evaluate runs every registered criterion against the aggregate figures.
// A finding is produced only when a criterion's severity exceeds LOW;
// criteria that cannot be computed are omitted, which is a normal outcome.
func Evaluate(f aggregation.Figures, a config.Assumptions) Report {
	report := Report{}

	for _, c := range catalog {
		e := c.eval(f, a)
		if e == nil || e.severity == domain.SeverityLow {
			continue
		}

		report.Findings = append(report.Findings, Finding{
			CriterionID:    c.def.ID,
			Name:           c.def.Name,
			Severity:       e.severity,
			Message:        fmt.Sprintf(c.def.MessageTemplate, e.display),
			Value:          e.value,
			Threshold:      e.threshold,
			Recommendation: c.def.Recommendation,
			Statutes:       c.def.Statutes,
			Evidence:       e.evidence,
		})

		switch e.severity {
		case domain.SeverityCritical:
			report.CriticalCount++
		case domain.SeverityHigh:
			report.HighCount++
		default:
			report.OtherCount++
		}
	}

	report.Score = weightedScore(report.CriticalCount, report.HighCount, report.OtherCount)
	report.OverallSeverity = overallSeverity(report)
	return report
}

// weightedScore computes 30·critical + 15·high + 5·other, capped at 100.
func weightedScore(critical, high, other int) int {
	score := criticalWeight*critical + highWeight*high + otherWeight*other
	if score > maxScore {
		return maxScore
	}
	return score
}

func overallSeverity(r Report) domain.Severity {
	switch {
	case r.CriticalCount >= 2 || r.Score >= 80:
		return domain.SeverityCritical
	case r.CriticalCount >= 1 || r.Score >= 50:
		return domain.SeverityHigh
	case r.HighCount >= 2 || r.Score >= 30:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
