package aggregation

import (
	"testing"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_BalanceSheetGroups(t *testing.T) {
	balances := []domain.AccountBalance{
		{Code: "100", Balance: 50000},    // kasa
		{Code: "102", Balance: 150000},   // bankalar
		{Code: "153", Balance: 80000},    // ticari mallar
		{Code: "254", Balance: 300000},   // taşıtlar
		{Code: "320", Balance: -120000},  // satıcılar
		{Code: "400", Balance: -60000},   // banka kredileri (uzun vadeli)
		{Code: "500", Balance: -200000},  // sermaye
	}

	f := Aggregate(balances)

	// Current assets: 50000 + 150000 + 80000 = 280000
	assert.Equal(t, 280000.0, f.CurrentAssets)
	assert.Equal(t, 300000.0, f.FixedAssets)
	assert.Equal(t, 580000.0, f.TotalAssets)
	assert.Equal(t, 120000.0, f.ShortTermLiabilities)
	assert.Equal(t, 60000.0, f.LongTermLiabilities)
	assert.Equal(t, 180000.0, f.TotalLiabilities)
	assert.Equal(t, 200000.0, f.Equity)
}

func TestAggregate_IncomeStatementDerivation(t *testing.T) {
	balances := []domain.AccountBalance{
		{Code: "600", Balance: -1000000}, // yurtiçi satışlar
		{Code: "610", Balance: 50000},    // satıştan iadeler
		{Code: "621", Balance: 700000},   // satılan ticari mal maliyeti
		{Code: "632", Balance: 100000},   // genel yönetim giderleri
		{Code: "642", Balance: -5000},    // faiz gelirleri
		{Code: "660", Balance: 25000},    // kısa vadeli borçlanma giderleri
	}

	f := Aggregate(balances)

	// Net sales: 1000000 - 50000 = 950000
	assert.Equal(t, 950000.0, f.NetSales)
	// Gross profit: 950000 - 700000 = 250000
	assert.Equal(t, 250000.0, f.GrossProfit)
	// Operating profit: 250000 - 100000 = 150000
	assert.Equal(t, 150000.0, f.OperatingProfit)
	// Net profit: 150000 + 5000 - 25000 = 130000
	assert.Equal(t, 130000.0, f.NetProfit)
}

func TestAggregate_OutOfConventionBalancesExcluded(t *testing.T) {
	balances := []domain.AccountBalance{
		{Code: "102", Balance: -40000}, // credit balance on a bank account
		{Code: "320", Balance: 10000},  // debit balance on a payable account
	}

	f := Aggregate(balances)

	// Neither balance follows its group's normal side, so neither aggregate
	// picks it up.
	assert.Equal(t, 0.0, f.CurrentAssets)
	assert.Equal(t, 0.0, f.ShortTermLiabilities)
	assert.Equal(t, 0.0, f.Banks)
	assert.Equal(t, 0.0, f.TradePayables)
}

func TestAggregate_NegativeCashStaysVisible(t *testing.T) {
	balances := []domain.AccountBalance{
		{Code: "100", Balance: -15000},
	}

	f := Aggregate(balances)

	// Excluded from current assets but kept signed on the detail figure.
	assert.Equal(t, 0.0, f.CurrentAssets)
	assert.Equal(t, -15000.0, f.Cash)
}

func TestAggregate_RelatedPartyDetail(t *testing.T) {
	balances := []domain.AccountBalance{
		{Code: "131", Balance: 90000},   // ortaklardan alacaklar
		{Code: "231", Balance: 30000},   // uzun vadeli ortaklardan alacaklar
		{Code: "331", Balance: -250000}, // ortaklara borçlar
	}

	f := Aggregate(balances)

	assert.Equal(t, 120000.0, f.RelatedPartyReceivables)
	assert.Equal(t, 250000.0, f.RelatedPartyPayables)
}

func TestAggregate_MissingCodesResolveToZero(t *testing.T) {
	f := Aggregate(nil)

	assert.Equal(t, 0.0, f.TotalAssets)
	assert.Equal(t, 0.0, f.NetSales)
	assert.Equal(t, 0.0, f.Cash)
}

func TestAggregateWith_CustomClassifier(t *testing.T) {
	// A single-prefix chart: everything starting with "A" is a current asset.
	classify := func(code string) (Group, Side, bool) {
		if len(code) > 0 && code[0] == 'A' {
			return GroupCurrentAssets, DebitNormal, true
		}
		return GroupNone, DebitNormal, false
	}

	f := AggregateWith(classify, []domain.AccountBalance{
		{Code: "A100", Balance: 1000},
		{Code: "B200", Balance: 2000},
	})

	assert.Equal(t, 1000.0, f.CurrentAssets)
	assert.Equal(t, 1000.0, f.TotalAssets)
}

func TestAggregate_AccumulatedDepreciationAndCapital(t *testing.T) {
	balances := []domain.AccountBalance{
		{Code: "252", Balance: 500000},  // binalar
		{Code: "257", Balance: -200000}, // birikmiş amortisman
		{Code: "500", Balance: -400000}, // sermaye
		{Code: "580", Balance: 120000},  // geçmiş yıllar zararları
	}

	f := Aggregate(balances)

	assert.Equal(t, 500000.0, f.FixedAssetCost)
	assert.Equal(t, 200000.0, f.AccumulatedDepreciation)
	assert.Equal(t, 400000.0, f.PaidInCapital)
	assert.Equal(t, 120000.0, f.PreviousYearsLosses)
}
