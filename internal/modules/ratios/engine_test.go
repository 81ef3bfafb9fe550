package ratios

import (
	"testing"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findResult(t *testing.T, report Report, id string) *Result {
	t.Helper()
	for i := range report.Results {
		if report.Results[i].ID == id {
			return &report.Results[i]
		}
	}
	return nil
}

func TestEveryDefinitionHasExactlyOneFormula(t *testing.T) {
	assert.Equal(t, len(definitions), len(formulas))
	for _, def := range definitions {
		_, ok := formulas[def.ID]
		assert.True(t, ok, "missing formula for %s", def.ID)
	}
}

func TestEvaluate_ZeroDenominatorOmitsRatio(t *testing.T) {
	// No short-term liabilities: every ratio dividing by them must be
	// absent, not zero and not NaN.
	f := aggregation.Figures{
		CurrentAssets: 100000,
		TotalAssets:   100000,
	}

	report := Evaluate(f, nil)

	assert.Nil(t, findResult(t, report, "CURRENT_RATIO"))
	assert.Nil(t, findResult(t, report, "QUICK_RATIO"))
	assert.Nil(t, findResult(t, report, "CASH_RATIO"))
	// Total assets are present, so the cash share ratio still evaluates.
	assert.NotNil(t, findResult(t, report, "CASH_TO_ASSETS"))
}

func TestClassify_LowIsBadTiers(t *testing.T) {
	def := Definition{Min: 1.5, Max: 2.5, Polarity: LowIsBad}

	// Below half the minimum: 0.7 < 0.75
	assert.Equal(t, domain.SeverityCritical, classify(def, 0.7))
	// Below the minimum but above half of it
	assert.Equal(t, domain.SeverityHigh, classify(def, 1.0))
	// Inside the range
	assert.Equal(t, domain.SeverityLow, classify(def, 2.0))
	// Above the range is only mildly notable for a low-is-bad ratio
	assert.Equal(t, domain.SeverityMedium, classify(def, 3.0))
}

func TestClassify_HighIsBadTiers(t *testing.T) {
	def := Definition{Min: 0.4, Max: 0.6, Polarity: HighIsBad}

	// Above twice the maximum: 1.3 > 1.2
	assert.Equal(t, domain.SeverityCritical, classify(def, 1.3))
	// Above 1.5×max: 1.0 > 0.9
	assert.Equal(t, domain.SeverityHigh, classify(def, 1.0))
	// Just above the maximum
	assert.Equal(t, domain.SeverityMedium, classify(def, 0.7))
	// Unusually low is also notable: 0.1 < 0.2
	assert.Equal(t, domain.SeverityMedium, classify(def, 0.1))
	// Inside the range
	assert.Equal(t, domain.SeverityLow, classify(def, 0.5))
}

func TestEvaluate_RegulatorRelevantFlag(t *testing.T) {
	// Cash-heavy balance sheet: 350k of 1M in cash gives a 0.35 cash share,
	// beyond twice the 0.15 maximum, so CRITICAL and regulator-relevant via
	// the linked criterion.
	f := aggregation.Figures{
		Cash:          350000,
		CurrentAssets: 350000,
		TotalAssets:   1000000,
	}

	report := Evaluate(f, nil)

	r := findResult(t, report, "CASH_TO_ASSETS")
	require.NotNil(t, r)
	assert.InDelta(t, 0.35, r.Value, 1e-9)
	assert.Equal(t, domain.SeverityCritical, r.Severity)
	assert.True(t, r.RegulatorRelevant)
	assert.Equal(t, "K001", r.CriterionID)
}

func TestEvaluate_PriorPeriodRefinesTurnover(t *testing.T) {
	f := aggregation.Figures{
		NetSales:         1200000,
		TradeReceivables: 200000,
	}
	prior := &domain.PriorPeriod{TradeReceivables: 400000}

	report := Evaluate(f, prior)

	r := findResult(t, report, "RECEIVABLE_TURNOVER")
	require.NotNil(t, r)
	// Average receivables: (200000 + 400000) / 2 = 300000; 1200000/300000 = 4
	assert.InDelta(t, 4.0, r.Value, 1e-9)
}

func TestEvaluate_CommentMatchesPosition(t *testing.T) {
	f := aggregation.Figures{
		CurrentAssets:        100000,
		ShortTermLiabilities: 100000, // current ratio 1.0, below 1.5 minimum
		TotalAssets:          100000,
	}

	report := Evaluate(f, nil)

	r := findResult(t, report, "CURRENT_RATIO")
	require.NotNil(t, r)
	def, _ := DefinitionByID("CURRENT_RATIO")
	assert.Equal(t, def.BelowComment, r.Comment)
}

func TestOverallSeverity_SingleCriticalDominates(t *testing.T) {
	results := []Result{
		{Severity: domain.SeverityCritical},
		{Severity: domain.SeverityLow},
	}
	assert.Equal(t, domain.SeverityCritical, overallSeverity(results))
}

func TestOverallSeverity_TwoHighsEscalate(t *testing.T) {
	results := []Result{
		{Severity: domain.SeverityHigh},
		{Severity: domain.SeverityHigh},
	}
	assert.Equal(t, domain.SeverityHigh, overallSeverity(results))
}

func TestOverallSeverity_TwoRegulatorRelevantEscalate(t *testing.T) {
	results := []Result{
		{Severity: domain.SeverityMedium, RegulatorRelevant: true},
		{Severity: domain.SeverityMedium, RegulatorRelevant: true},
	}
	assert.Equal(t, domain.SeverityHigh, overallSeverity(results))
}

func TestOverallSeverity_ThreeFlaggedIsMedium(t *testing.T) {
	results := []Result{
		{Severity: domain.SeverityMedium},
		{Severity: domain.SeverityMedium},
		{Severity: domain.SeverityMedium},
	}
	assert.Equal(t, domain.SeverityMedium, overallSeverity(results))
}

func TestOverallSeverity_CleanReportIsLow(t *testing.T) {
	results := []Result{
		{Severity: domain.SeverityLow},
		{Severity: domain.SeverityLow},
	}
	assert.Equal(t, domain.SeverityLow, overallSeverity(results))
}

func TestSummarize_WorstSeverityPerCategory(t *testing.T) {
	results := []Result{
		{Category: CategoryLiquidity, Severity: domain.SeverityLow},
		{Category: CategoryLiquidity, Severity: domain.SeverityHigh},
		{Category: CategoryStructure, Severity: domain.SeverityMedium},
	}

	summaries := summarize(results)
	require.Len(t, summaries, 4)

	byCat := make(map[Category]CategorySummary)
	for _, s := range summaries {
		byCat[s.Category] = s
	}
	assert.Equal(t, domain.SeverityHigh, byCat[CategoryLiquidity].WorstSeverity)
	assert.Equal(t, 2, byCat[CategoryLiquidity].Evaluated)
	assert.Equal(t, 1, byCat[CategoryLiquidity].Flagged)
	assert.Equal(t, domain.SeverityMedium, byCat[CategoryStructure].WorstSeverity)
	assert.Equal(t, domain.SeverityLow, byCat[CategoryProfitability].WorstSeverity)
}
