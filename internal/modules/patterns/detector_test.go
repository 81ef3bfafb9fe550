package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

func findPattern(report Report, id string) *Finding {
	for i := range report.Findings {
		if report.Findings[i].PatternID == id {
			return &report.Findings[i]
		}
	}
	return nil
}

func TestCatalog_UniqueOrderedIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range catalog {
		assert.False(t, seen[c.id], "duplicate pattern id %s", c.id)
		seen[c.id] = true
	}
	assert.Len(t, catalog, 20)
}

func TestBalanceSheetImbalance_FiresOnlyBeyondOneUnit(t *testing.T) {
	// A one-lira difference is within tolerance and must not fire.
	within := ValueBag{
		KeyTotalAssets:      1000001,
		KeyTotalLiabilities: 600000,
		KeyEquity:           400000,
	}
	report := Detect(within)
	assert.Nil(t, findPattern(report, "RAM01"))

	// Two liras beyond the sources total exceeds the tolerance.
	beyond := ValueBag{
		KeyTotalAssets:      1000002,
		KeyTotalLiabilities: 600000,
		KeyEquity:           400000,
	}
	report = Detect(beyond)
	finding := findPattern(report, "RAM01")
	require.NotNil(t, finding)
	assert.Equal(t, domain.SeverityCritical, finding.Severity)
	assert.False(t, finding.AutoCorrectable)
}

func TestTaxReconciliation_HundredUnitTolerance(t *testing.T) {
	// Declared 500100 vs expected 400000 + 100000 = 500000: the difference
	// is exactly the 100-lira tolerance, so no finding.
	within := ValueBag{
		KeyDeclaredProfit:        500100,
		KeyNetProfit:             400000,
		KeyNonDeductibleExpenses: 100000,
	}
	report := Detect(within)
	assert.Nil(t, findPattern(report, "RAM02"))

	// One more lira and the pattern fires with the expected value attached
	// as the corrective figure.
	beyond := ValueBag{
		KeyDeclaredProfit:        500101,
		KeyNetProfit:             400000,
		KeyNonDeductibleExpenses: 100000,
	}
	report = Detect(beyond)
	finding := findPattern(report, "RAM02")
	require.NotNil(t, finding)
	assert.True(t, finding.AutoCorrectable)
	require.NotNil(t, finding.CorrectiveValue)
	assert.InDelta(t, 500000, *finding.CorrectiveValue, 1e-9)
}

func TestMissingKeys_ChecksDoNotFire(t *testing.T) {
	// An empty bag must produce no findings at all: every check needs at
	// least one supplied key.
	report := Detect(ValueBag{})
	assert.Empty(t, report.Findings)
	assert.Equal(t, domain.SeverityLow, report.OverallSeverity)
	assert.Contains(t, report.Summary, "tespit edilmedi")
}

func TestDepreciationExceedsCost(t *testing.T) {
	bag := ValueBag{
		KeyFixedAssetCost:          500000,
		KeyAccumulatedDepreciation: 520000,
	}
	report := Detect(bag)

	finding := findPattern(report, "RAM04")
	require.NotNil(t, finding)
	assert.Equal(t, domain.SeverityHigh, finding.Severity)
	require.NotNil(t, finding.CorrectiveValue)
	// Depreciation is capped at the asset cost.
	assert.InDelta(t, 500000, *finding.CorrectiveValue, 1e-9)
}

func TestUnpaidSocialSecurity_FiresOnPositiveOnly(t *testing.T) {
	report := Detect(ValueBag{KeyUnpaidSocialSecurity: 0})
	assert.Nil(t, findPattern(report, "RAM05"))

	report = Detect(ValueBag{KeyUnpaidSocialSecurity: 25000})
	finding := findPattern(report, "RAM05")
	require.NotNil(t, finding)
	assert.True(t, finding.AutoCorrectable)
	assert.InDelta(t, 25000, *finding.CorrectiveValue, 1e-9)
}

func TestNegativeCashPattern(t *testing.T) {
	report := Detect(ValueBag{KeyCash: -12000})

	finding := findPattern(report, "RAM06")
	require.NotNil(t, finding)
	assert.Equal(t, domain.SeverityCritical, finding.Severity)
}

func TestVATOffset_CorrectiveIsSmallerSide(t *testing.T) {
	bag := ValueBag{
		KeyDeductibleVAT: 80000,
		KeyCalculatedVAT: 120000,
	}
	report := Detect(bag)

	finding := findPattern(report, "RAM12")
	require.NotNil(t, finding)
	require.NotNil(t, finding.CorrectiveValue)
	// The offsettable amount is the smaller of the two balances.
	assert.InDelta(t, 80000, *finding.CorrectiveValue, 1e-9)
}

func TestRentWithoutWithholding(t *testing.T) {
	// Rent expensed with a declared withholding: compliant, no finding.
	report := Detect(ValueBag{KeyRentExpense: 60000, KeyRentWithholding: 12000})
	assert.Nil(t, findPattern(report, "RAM17"))

	report = Detect(ValueBag{KeyRentExpense: 60000, KeyRentWithholding: 0})
	finding := findPattern(report, "RAM17")
	require.NotNil(t, finding)
	assert.Equal(t, domain.SeverityHigh, finding.Severity)
}

func TestChecksAreIndependent(t *testing.T) {
	// A bag that triggers RAM01 and RAM06 together must yield both
	// findings, each built from its own inputs.
	bag := ValueBag{
		KeyTotalAssets:      900000,
		KeyTotalLiabilities: 600000,
		KeyEquity:           400000,
		KeyCash:             -5000,
	}
	report := Detect(bag)

	assert.NotNil(t, findPattern(report, "RAM01"))
	assert.NotNil(t, findPattern(report, "RAM06"))
	assert.Equal(t, 2, report.CriticalCount)
	assert.Equal(t, domain.SeverityCritical, report.OverallSeverity)
}

func TestSummaryCountsBySeverity(t *testing.T) {
	bag := ValueBag{
		KeyCash:             -5000,  // RAM06 CRITICAL
		KeyClearingAccounts: 15000,  // RAM03 MEDIUM
		KeyLandDepreciation: 30000,  // RAM19 HIGH
	}
	report := Detect(bag)

	assert.Equal(t, 1, report.CriticalCount)
	assert.Equal(t, 1, report.HighCount)
	assert.Equal(t, 1, report.MediumCount)
	assert.Contains(t, report.Summary, "3 hata kalıbı")
	assert.Contains(t, report.Summary, "1 kritik")
}
