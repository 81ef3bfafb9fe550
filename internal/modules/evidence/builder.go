// Package evidence assembles findings from the analysis engines into
// normalized evidence bundles with resolved legal citations.
package evidence

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/benchmark"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/criteria"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/legalref"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/patterns"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/ratios"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/scenarios"
)

// go-money ships TRY with English separators; reports render amounts with
// the Turkish convention, dotted thousands and a comma decimal.
func init() {
	money.AddCurrency(money.TRY, "₺", "$1", ",", ".", 2)
}

// Builder normalizes engine findings into bundles. The legal references of
// a bundle are exactly the repository subset cross-indexed by the
// originating finding's id.
type Builder struct {
	refs *legalref.Repository
}

// NewBuilder creates a builder backed by the given reference repository.
func NewBuilder(refs *legalref.Repository) *Builder {
	return &Builder{refs: refs}
}

// formatTRY renders an amount as Turkish lira for display.
func formatTRY(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.TRY).Display()
}

func (b *Builder) newBundle(findingID, title, summary string, severity domain.Severity) Bundle {
	return Bundle{
		ID:              uuid.NewString(),
		FindingID:       findingID,
		Title:           title,
		Summary:         summary,
		Severity:        severity,
		LegalReferences: b.refs.ForFinding(findingID),
	}
}

// FromRatio bundles one evaluated ratio. Legal references resolve through
// the linked criterion id; unlinked ratios carry no citations.
func (b *Builder) FromRatio(r ratios.Result) Bundle {
	bundle := b.newBundle(r.CriterionID, r.Name, r.Comment, r.Severity)
	bundle.Items = r.Evidence
	bundle.FormulaTrace = []string{
		fmt.Sprintf("%s = %.4f", r.ID, r.Value),
		fmt.Sprintf("normal aralık [%.2f, %.2f]", r.Min, r.Max),
	}
	if r.Severity >= domain.SeverityHigh {
		bundle.NextSteps = append(bundle.NextSteps, "Oranı oluşturan hesap bakiyeleri mizan üzerinden doğrulanmalıdır.")
	}
	return bundle
}

// FromCriterion bundles one triggered regulator criterion.
func (b *Builder) FromCriterion(f criteria.Finding) Bundle {
	bundle := b.newBundle(f.CriterionID, f.Name, f.Message, f.Severity)
	bundle.Items = f.Evidence
	bundle.FormulaTrace = []string{
		fmt.Sprintf("%s = %.4f", f.CriterionID, f.Value),
		fmt.Sprintf("eşik = %.4f", f.Threshold),
	}
	bundle.Recommendations = []string{f.Recommendation}
	if f.Severity == domain.SeverityCritical {
		bundle.NextSteps = append(bundle.NextSteps, "Bulgu, beyanname verilmeden önce yeminli mali müşavir ile değerlendirilmelidir.")
	}
	return bundle
}

// FromPattern bundles one detected bookkeeping error.
func (b *Builder) FromPattern(f patterns.Finding) Bundle {
	bundle := b.newBundle(f.PatternID, f.Name, f.Explanation, f.Severity)
	bundle.Items = f.Evidence
	bundle.Recommendations = []string{f.CorrectTreatment}
	if f.AutoCorrectable && f.CorrectiveValue != nil {
		bundle.NextSteps = append(bundle.NextSteps,
			fmt.Sprintf("Düzeltme kaydında esas alınacak tutar: %s.", formatTRY(*f.CorrectiveValue)))
	}
	return bundle
}

// FromAssessment bundles one scored transaction, producing one bundle per
// matched scenario so each bundle cites exactly its own scenario's statutes.
func (b *Builder) FromAssessment(a scenarios.Assessment) []Bundle {
	bundles := make([]Bundle, 0, len(a.ScenarioIDs))
	for _, id := range a.ScenarioIDs {
		def, ok := scenarios.DefinitionByID(id)
		if !ok {
			continue
		}
		bundle := b.newBundle(id, def.Name, def.Description, actionSeverity(a.Action))
		bundle.Items = []domain.EvidenceItem{
			{Category: "transaction", Label: "İşlem tarihi", Value: a.Transaction.Date.Format("2006-01-02")},
			{Category: "transaction", Label: "İşlem tutarı", Value: formatTRY(a.Transaction.Amount)},
			{Category: "transaction", Label: "Karşı taraf", Value: a.Transaction.Counterparty},
			{Category: "score", Label: "Senaryo risk puanı", Value: fmt.Sprintf("%.0f", def.RiskScore)},
			{Category: "action", Label: "Öngörülen işlem", Value: def.Action.String(), Critical: def.Action == domain.ActionAuditReferral},
		}
		bundle.Recommendations = []string{def.Recommendation}
		if def.ResponseDeadlineDays > 0 {
			bundle.NextSteps = append(bundle.NextSteps,
				fmt.Sprintf("İzaha davet halinde yanıt süresi %d gündür.", def.ResponseDeadlineDays))
		}
		bundles = append(bundles, bundle)
	}
	return bundles
}

// FromBenchmark bundles every deviating ratio of a sector comparison. An
// unfound sector yields no bundles.
func (b *Builder) FromBenchmark(result benchmark.Result) []Bundle {
	if !result.Found {
		return nil
	}
	var bundles []Bundle
	for _, d := range result.Deviations {
		if d.Type == benchmark.DeviationNormal {
			continue
		}
		summary := fmt.Sprintf("%s değeri (%.2f) sektör aralığından %%%.1f sapıyor.", d.Name, d.Value, d.Percent)
		bundle := b.newBundle(d.RatioID, d.Name, summary, d.Severity)
		bundle.Sector = &SectorBlock{
			Code:             result.SectorCode,
			Name:             result.SectorName,
			RangeMin:         d.Range.Min,
			RangeMax:         d.Range.Max,
			DeviationType:    string(d.Type),
			DeviationPercent: d.Percent,
		}
		bundle.Items = []domain.EvidenceItem{
			{Category: "ratio", Label: d.Name, Value: fmt.Sprintf("%.4f", d.Value)},
			{Category: "benchmark", Label: "Sektör aralığı", Value: fmt.Sprintf("[%.2f, %.2f]", d.Range.Min, d.Range.Max)},
		}
		bundle.Recommendations = result.Recommendations
		bundles = append(bundles, bundle)
	}
	return bundles
}

// actionSeverity maps a mandated regulator action onto the severity scale.
func actionSeverity(a domain.RiskAction) domain.Severity {
	switch a {
	case domain.ActionAuditReferral:
		return domain.SeverityCritical
	case domain.ActionExplanationRequest:
		return domain.SeverityHigh
	case domain.ActionInfoRequest:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
