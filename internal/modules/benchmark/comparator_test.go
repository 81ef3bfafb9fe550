package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
)

func findDeviation(result Result, ratioID string) *Deviation {
	for i := range result.Deviations {
		if result.Deviations[i].RatioID == ratioID {
			return &result.Deviations[i]
		}
	}
	return nil
}

func TestProfiles_CoverAllTrackedRatios(t *testing.T) {
	assert.Len(t, profiles, 17)
	for code, p := range profiles {
		assert.Equal(t, code, p.Code)
		assert.NotEmpty(t, p.RiskNote, "sector %s missing risk note", code)
		for _, tracked := range trackedRatios {
			rng, ok := p.Ranges[tracked.ID]
			require.True(t, ok, "sector %s missing range for %s", code, tracked.ID)
			assert.LessOrEqual(t, rng.Min, rng.Avg, "sector %s ratio %s", code, tracked.ID)
			assert.LessOrEqual(t, rng.Avg, rng.Max, "sector %s ratio %s", code, tracked.ID)
		}
	}
}

func TestCompare_UnknownSector(t *testing.T) {
	result := Compare("X-99", map[string]float64{RatioCurrentRatio: 1.5})

	assert.False(t, result.Found)
	assert.Contains(t, result.Message, "X-99")
	assert.Empty(t, result.Deviations)
	assert.Equal(t, domain.SeverityLow, result.OverallSeverity)
}

func TestCompare_ValueAtBoundIsNormal(t *testing.T) {
	// Retail current ratio range is [1.0, 2.0]; both bounds are inclusive.
	for _, value := range []float64{1.0, 2.0} {
		result := Compare("G-47", map[string]float64{RatioCurrentRatio: value})
		d := findDeviation(result, RatioCurrentRatio)
		require.NotNil(t, d)
		assert.Equal(t, DeviationNormal, d.Type)
		assert.Zero(t, d.Percent)
		assert.Equal(t, domain.SeverityLow, d.Severity)
	}
}

func TestCompare_BelowRangeDeviationPercent(t *testing.T) {
	// Retail gross margin minimum is 8. A margin of 5 is (8-5)/8 = 37.5%
	// below the range, which grades MEDIUM.
	result := Compare("G-47", map[string]float64{RatioGrossMargin: 5})

	d := findDeviation(result, RatioGrossMargin)
	require.NotNil(t, d)
	assert.Equal(t, DeviationBelow, d.Type)
	assert.InDelta(t, 37.5, d.Percent, 1e-9)
	assert.Equal(t, domain.SeverityMedium, d.Severity)
	assert.False(t, d.Escalated)
}

func TestCompare_AboveRangeDeviationPercent(t *testing.T) {
	// Retail debt ratio maximum is 0.78. A leverage of 1.17 is
	// (1.17-0.78)/0.78 = 50% above the range, which grades HIGH.
	result := Compare("G-47", map[string]float64{RatioDebtRatio: 1.17})

	d := findDeviation(result, RatioDebtRatio)
	require.NotNil(t, d)
	assert.Equal(t, DeviationAbove, d.Type)
	assert.InDelta(t, 50.0, d.Percent, 1e-9)
	assert.Equal(t, domain.SeverityHigh, d.Severity)
}

func TestCompare_EscalationBumpsOneLevel(t *testing.T) {
	// Retail cash-to-assets maximum is 0.14. A value of 0.20 deviates
	// (0.20-0.14)/0.14 ≈ 42.9%, normally MEDIUM, but the ratio is an
	// evasion-signature ratio and the deviation exceeds 30%, so it is
	// escalated to HIGH.
	result := Compare("G-47", map[string]float64{RatioCashToAssets: 0.20})

	d := findDeviation(result, RatioCashToAssets)
	require.NotNil(t, d)
	assert.Equal(t, domain.SeverityHigh, d.Severity)
	assert.True(t, d.Escalated)
}

func TestCompare_EscalationNeverExceedsCritical(t *testing.T) {
	// 0.30 against a maximum of 0.14 deviates over 100%: already CRITICAL,
	// escalation must not push past the top of the scale.
	result := Compare("G-47", map[string]float64{RatioCashToAssets: 0.30})

	d := findDeviation(result, RatioCashToAssets)
	require.NotNil(t, d)
	assert.Equal(t, domain.SeverityCritical, d.Severity)
	assert.False(t, d.Escalated)
}

func TestCompare_NoEscalationForOrdinaryRatio(t *testing.T) {
	// Current ratio is not an evasion-signature ratio: a 40% deviation
	// stays MEDIUM. Retail minimum is 1.0; 0.6 is 40% below.
	result := Compare("G-47", map[string]float64{RatioCurrentRatio: 0.6})

	d := findDeviation(result, RatioCurrentRatio)
	require.NotNil(t, d)
	assert.Equal(t, domain.SeverityMedium, d.Severity)
	assert.False(t, d.Escalated)
}

func TestCompare_ScoreIsMeanOverDeviatingRatios(t *testing.T) {
	// One MEDIUM (40 points) and one HIGH (70 points) deviation: mean score
	// 55. The in-range equity ratio is graded but must not dilute the mean.
	result := Compare("G-47", map[string]float64{
		RatioCurrentRatio: 0.6,  // 40% below, MEDIUM
		RatioDebtRatio:    1.17, // 50% above, HIGH
		RatioEquityRatio:  0.35, // inside range
	})

	require.Len(t, result.Deviations, 3)
	assert.Equal(t, 2, result.DeviatingCount)
	assert.InDelta(t, 55.0, result.Score, 1e-9)
}

func TestCompare_InRangeRatiosDoNotDiluteScore(t *testing.T) {
	// Three MEDIUM deviations among eight evaluated ratios: the score is the
	// mean over the deviating three (40), which grades the comparison MEDIUM.
	result := Compare("G-47", map[string]float64{
		RatioCurrentRatio:      0.6, // 40% below, MEDIUM
		RatioGrossMargin:       5,   // 37.5% below, MEDIUM
		RatioDebtRatio:         1.0, // ~28% above, MEDIUM
		RatioQuickRatio:        0.5,
		RatioCashToAssets:      0.08,
		RatioNetMargin:         3.5,
		RatioEquityRatio:       0.35,
		RatioInventoryTurnover: 11,
	})

	require.Len(t, result.Deviations, 8)
	assert.Equal(t, 3, result.DeviatingCount)
	assert.InDelta(t, 40.0, result.Score, 1e-9)
	assert.Equal(t, domain.SeverityMedium, result.OverallSeverity)
}

func TestCompare_ExactTierBoundaryGrades(t *testing.T) {
	// Deviations landing exactly on a tier threshold take that tier even
	// when the bound arithmetic is inexact in float64.
	result := Compare("G-47", map[string]float64{RatioDebtRatio: 1.17})
	d := findDeviation(result, RatioDebtRatio)
	require.NotNil(t, d)
	assert.InDelta(t, 50.0, d.Percent, 1e-9)
	assert.Equal(t, domain.SeverityHigh, d.Severity)

	// (1.56-0.78)/0.78 is exactly 100%: CRITICAL.
	result = Compare("G-47", map[string]float64{RatioDebtRatio: 1.56})
	d = findDeviation(result, RatioDebtRatio)
	require.NotNil(t, d)
	assert.InDelta(t, 100.0, d.Percent, 1e-9)
	assert.Equal(t, domain.SeverityCritical, d.Severity)
}

func TestCompare_MissingRatiosAreSkipped(t *testing.T) {
	result := Compare("G-47", map[string]float64{RatioCurrentRatio: 1.5})

	assert.Len(t, result.Deviations, 1)
	assert.Equal(t, 0, result.DeviatingCount)
}

func TestCompare_OverallSeverityThresholds(t *testing.T) {
	// Three HIGH-or-worse deviations push the overall grade to CRITICAL.
	result := Compare("G-47", map[string]float64{
		RatioDebtRatio:    1.17, // 50% above, HIGH
		RatioGrossMargin:  2,    // 75% below, HIGH
		RatioCashToAssets: 0.30, // >100% above, CRITICAL
		RatioCurrentRatio: 1.5,  // normal
		RatioEquityRatio:  0.35, // normal
	})
	assert.Equal(t, domain.SeverityCritical, result.OverallSeverity)

	// A single HIGH deviation grades the whole comparison HIGH.
	result = Compare("G-47", map[string]float64{
		RatioDebtRatio:    1.17,
		RatioCurrentRatio: 1.5,
	})
	assert.Equal(t, domain.SeverityHigh, result.OverallSeverity)
}

func TestCompare_RecommendationsWorstFirstCappedAtFive(t *testing.T) {
	result := Compare("G-47", map[string]float64{
		RatioCurrentRatio:      0.3,   // 70% below, HIGH
		RatioQuickRatio:        0.05,  // ~83% below, HIGH
		RatioCashToAssets:      0.30,  // CRITICAL
		RatioGrossMargin:       1,     // ~87% below, HIGH
		RatioDebtRatio:         1.8,   // >100% above, CRITICAL
		RatioInventoryTurnover: 1,     // ~83% below, HIGH
		RatioVATBurden:         0.1,   // 90% below, escalated to CRITICAL
	})

	require.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 5)
	// The first recommendation must come from a CRITICAL deviation.
	assert.Contains(t, result.Recommendations[0], "%")
}

func TestCompare_RiskNoteFallbackWhenHealthy(t *testing.T) {
	result := Compare("G-47", map[string]float64{
		RatioCurrentRatio: 1.5,
		RatioEquityRatio:  0.35,
	})

	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, profiles["G-47"].RiskNote, result.Recommendations[0])
}

func TestTaxpayerRatios_DerivesFromFigures(t *testing.T) {
	f := aggregation.Figures{
		CurrentAssets:        600000,
		Inventory:            200000,
		ShortTermLiabilities: 300000,
		Cash:                 40000,
		Banks:                60000,
		TotalAssets:          1000000,
		TotalLiabilities:     550000,
		Equity:               450000,
		NetSales:             2000000,
		GrossProfit:          300000,
		NetProfit:            100000,
		CalculatedVAT:        30000,
		CostOfSales:          1700000,
		TradeReceivables:     250000,
	}

	ratios := TaxpayerRatios(f, nil)

	// 600000 / 300000 = 2.0
	assert.InDelta(t, 2.0, ratios[RatioCurrentRatio], 1e-9)
	// (600000 - 200000) / 300000 ≈ 1.333
	assert.InDelta(t, 400000.0/300000.0, ratios[RatioQuickRatio], 1e-9)
	// (40000 + 60000) / 1000000 = 0.10
	assert.InDelta(t, 0.10, ratios[RatioCashToAssets], 1e-9)
	// 300000 / 2000000 × 100 = 15
	assert.InDelta(t, 15.0, ratios[RatioGrossMargin], 1e-9)
	// 30000 / 2000000 × 100 = 1.5
	assert.InDelta(t, 1.5, ratios[RatioVATBurden], 1e-9)
	// 1700000 / 200000 = 8.5
	assert.InDelta(t, 8.5, ratios[RatioInventoryTurnover], 1e-9)
}

func TestTaxpayerRatios_OmitsZeroDenominators(t *testing.T) {
	ratios := TaxpayerRatios(aggregation.Figures{}, nil)
	assert.Empty(t, ratios)
}

func TestTaxpayerRatios_AveragesWithPriorPeriod(t *testing.T) {
	f := aggregation.Figures{
		CostOfSales: 1200000,
		Inventory:   200000,
	}
	prior := &domain.PriorPeriod{Inventory: 400000}

	ratios := TaxpayerRatios(f, prior)

	// 1200000 / ((200000 + 400000) / 2) = 4.0
	assert.InDelta(t, 4.0, ratios[RatioInventoryTurnover], 1e-9)
}
