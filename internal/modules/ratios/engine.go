// Package ratios computes the standard financial ratios from aggregate
// figures and classifies each against its declared normal range.
package ratios

import (
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
)

// categoryOrder fixes the reporting order of category summaries.
var categoryOrder = []Category{
	CategoryLiquidity,
	CategoryActivity,
	CategoryStructure,
	CategoryProfitability,
}

// Evaluate runs every ratio definition against the aggregate figures.
// Ratios with a zero denominator are omitted, never reported as zero or
// NaN. Prior-period figures, when supplied, refine the average-based
// activity ratios.
func Evaluate(f aggregation.Figures, prior *domain.PriorPeriod) Report {
	report := Report{}

	for _, def := range definitions {
		formula, ok := formulas[def.ID]
		if !ok {
			continue
		}
		value, evidence, ok := formula(f, prior)
		if !ok {
			continue
		}

		severity := classify(def, value)
		result := Result{
			ID:                def.ID,
			Name:              def.Name,
			Category:          def.Category,
			Value:             value,
			Min:               def.Min,
			Max:               def.Max,
			Severity:          severity,
			Comment:           comment(def, value),
			CriterionID:       def.CriterionID,
			RegulatorRelevant: def.CriterionID != "" && severity != domain.SeverityLow,
			Evidence:          evidence,
		}
		report.Results = append(report.Results, result)
	}

	report.Categories = summarize(report.Results)
	report.OverallSeverity = overallSeverity(report.Results)
	return report
}

// classify maps a ratio value to a severity using the definition's normal
// range and polarity.
//
// LowIsBad:  value < 0.5·min CRITICAL, < min HIGH, > max MEDIUM, else LOW.
// HighIsBad: value > 2·max CRITICAL, > 1.5·max HIGH,
//            > max or < 0.5·min MEDIUM, else LOW.
func classify(def Definition, value float64) domain.Severity {
	switch def.Polarity {
	case LowIsBad:
		switch {
		case value < 0.5*def.Min:
			return domain.SeverityCritical
		case value < def.Min:
			return domain.SeverityHigh
		case value > def.Max:
			return domain.SeverityMedium
		default:
			return domain.SeverityLow
		}
	default: // HighIsBad
		switch {
		case value > 2*def.Max:
			return domain.SeverityCritical
		case value > 1.5*def.Max:
			return domain.SeverityHigh
		case value > def.Max || value < 0.5*def.Min:
			return domain.SeverityMedium
		default:
			return domain.SeverityLow
		}
	}
}

// comment picks the canned below/within/above commentary for the value.
func comment(def Definition, value float64) string {
	switch {
	case value < def.Min:
		return def.BelowComment
	case value > def.Max:
		return def.AboveComment
	default:
		return def.WithinComment
	}
}

func summarize(results []Result) []CategorySummary {
	byCategory := make(map[Category]*CategorySummary)
	for _, cat := range categoryOrder {
		byCategory[cat] = &CategorySummary{Category: cat, WorstSeverity: domain.SeverityLow}
	}

	for _, r := range results {
		s := byCategory[r.Category]
		if s == nil {
			continue
		}
		s.Evaluated++
		if r.Severity != domain.SeverityLow {
			s.Flagged++
		}
		s.WorstSeverity = domain.MaxSeverity(s.WorstSeverity, r.Severity)
	}

	summaries := make([]CategorySummary, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		summaries = append(summaries, *byCategory[cat])
	}
	return summaries
}

// overallSeverity rolls the individual results up to one severity:
// any CRITICAL ratio makes the whole report CRITICAL; two regulator-relevant
// or two HIGH ratios make it HIGH; three non-LOW ratios make it MEDIUM.
func overallSeverity(results []Result) domain.Severity {
	critical := 0
	high := 0
	flagged := 0
	regulator := 0

	for _, r := range results {
		switch r.Severity {
		case domain.SeverityCritical:
			critical++
		case domain.SeverityHigh:
			high++
		}
		if r.Severity != domain.SeverityLow {
			flagged++
		}
		if r.RegulatorRelevant {
			regulator++
		}
	}

	switch {
	case critical >= 1:
		return domain.SeverityCritical
	case regulator >= 2 || high >= 2:
		return domain.SeverityHigh
	case flagged >= 3:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
