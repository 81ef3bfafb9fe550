package analysis

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemsak/lyntos-updated-sub001/internal/config"
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/legalref"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/patterns"
)

func newTestService() *Service {
	cfg := &config.Config{Assumptions: config.DefaultAssumptions()}
	return NewService(cfg, legalref.New(), zerolog.Nop())
}

// retailBalances is a small but complete retail trial balance: debit
// balances positive, credit balances negative.
func retailBalances() []domain.AccountBalance {
	return []domain.AccountBalance{
		{Code: "100", Balance: 50000},    // kasa
		{Code: "102", Balance: 150000},   // bankalar
		{Code: "120", Balance: 200000},   // alıcılar
		{Code: "153", Balance: 250000},   // ticari mallar
		{Code: "254", Balance: 400000},   // taşıtlar
		{Code: "320", Balance: -180000},  // satıcılar
		{Code: "500", Balance: -500000},  // sermaye
		{Code: "600", Balance: -2000000}, // yurtiçi satışlar
		{Code: "621", Balance: 1500000},  // satılan ticari mal maliyeti
		{Code: "631", Balance: 200000},   // pazarlama giderleri
	}
}

func TestAnalyze_RequiresBalances(t *testing.T) {
	svc := newTestService()

	_, err := svc.Analyze(Request{})
	assert.Error(t, err)
}

func TestAnalyze_CoreEnginesAlwaysRun(t *testing.T) {
	svc := newTestService()

	report, err := svc.Analyze(Request{Balances: retailBalances()})
	require.NoError(t, err)

	// 50000 + 150000 + 200000 + 250000 = 650000
	assert.InDelta(t, 650000, report.Figures.CurrentAssets, 1e-9)
	// 2000000 - 1500000 = 500000 gross profit
	assert.InDelta(t, 500000, report.Figures.GrossProfit, 1e-9)

	assert.NotEmpty(t, report.Ratios.Results)
	// Optional engines stay off without their inputs.
	assert.Nil(t, report.Benchmark)
	assert.Nil(t, report.Patterns)
	assert.Nil(t, report.Scenarios)
}

func TestAnalyze_UnknownSectorIsNotAnError(t *testing.T) {
	svc := newTestService()

	report, err := svc.Analyze(Request{
		Balances:   retailBalances(),
		SectorCode: "Z-00",
	})
	require.NoError(t, err)

	require.NotNil(t, report.Benchmark)
	assert.False(t, report.Benchmark.Found)
	assert.NotEmpty(t, report.Benchmark.Message)
}

func TestAnalyze_KnownSectorProducesComparison(t *testing.T) {
	svc := newTestService()

	report, err := svc.Analyze(Request{
		Balances:   retailBalances(),
		SectorCode: "G-47",
	})
	require.NoError(t, err)

	require.NotNil(t, report.Benchmark)
	assert.True(t, report.Benchmark.Found)
	assert.Equal(t, "Perakende Ticaret", report.Benchmark.SectorName)
	assert.NotEmpty(t, report.Benchmark.Deviations)
}

func TestAnalyze_OptionalEnginesRunWithInputs(t *testing.T) {
	svc := newTestService()

	report, err := svc.Analyze(Request{
		Balances: retailBalances(),
		Declaration: patterns.ValueBag{
			patterns.KeyCash: -5000,
		},
		Transactions: []domain.Transaction{
			{
				Date:          time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
				Type:          domain.TxGoodsPurchase,
				Amount:        45000,
				PaymentMethod: domain.PaymentCash,
				HasInvoice:    true,
			},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, report.Patterns)
	assert.NotEmpty(t, report.Patterns.Findings)
	require.NotNil(t, report.Scenarios)
	assert.Equal(t, 1, report.Scenarios.TransactionCount)
}

func TestAnalyze_BundlesCoverEveryFinding(t *testing.T) {
	svc := newTestService()

	report, err := svc.Analyze(Request{
		Balances: retailBalances(),
		Declaration: patterns.ValueBag{
			patterns.KeyCash: -5000,
		},
	})
	require.NoError(t, err)

	// Every criterion finding and every pattern finding yields a bundle.
	want := len(report.Criteria.Findings) + len(report.Patterns.Findings)
	for _, r := range report.Ratios.Results {
		if r.RegulatorRelevant {
			want++
		}
	}
	assert.Len(t, report.Bundles, want)

	for _, bundle := range report.Bundles {
		assert.NotEmpty(t, bundle.ID)
		assert.NotEmpty(t, bundle.Title)
	}
}

func TestAnalyze_OverallSeverityIsWorstEngine(t *testing.T) {
	svc := newTestService()

	// A negative declared cash balance forces a CRITICAL pattern finding,
	// which must dominate the overall grade.
	report, err := svc.Analyze(Request{
		Balances: retailBalances(),
		Declaration: patterns.ValueBag{
			patterns.KeyCash: -5000,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SeverityCritical, report.OverallSeverity)
}
