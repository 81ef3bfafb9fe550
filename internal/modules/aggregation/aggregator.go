// Package aggregation groups raw trial-balance account balances into the
// named aggregate figures consumed by every downstream risk engine.
package aggregation

import (
	"math"
	"strings"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// Aggregate computes the aggregate figures for one trial balance using the
// Turkish Uniform Chart of Accounts.
func Aggregate(balances []domain.AccountBalance) Figures {
	return AggregateWith(TurkishUniformChart, balances)
}

// AggregateWith computes the aggregate figures using a caller-supplied
// chart-of-accounts classifier.
//
// Sign convention: a trial balance reports debit balances as positive and
// credit balances as negative. For debit-normal groups only positive
// balances contribute; for credit-normal groups only the absolute value of
// negative balances contributes. Out-of-convention balances signal posting
// errors and are excluded from aggregates rather than corrected; the
// bookkeeping-pattern detector surfaces them separately.
func AggregateWith(classify Classifier, balances []domain.AccountBalance) Figures {
	var f Figures
	groups := make(map[Group]float64)

	for _, b := range balances {
		group, side, ok := classify(b.Code)
		if ok {
			if v, in := contribution(side, b.Balance); in {
				groups[group] += v
			}
		}
		captureDetail(&f, b)
	}

	f.CurrentAssets = groups[GroupCurrentAssets]
	f.FixedAssets = groups[GroupFixedAssets]
	f.TotalAssets = f.CurrentAssets + f.FixedAssets
	f.ShortTermLiabilities = groups[GroupShortTermLiabilities]
	f.LongTermLiabilities = groups[GroupLongTermLiabilities]
	f.TotalLiabilities = f.ShortTermLiabilities + f.LongTermLiabilities
	f.Equity = groups[GroupEquity]

	f.GrossSales = groups[GroupGrossSales]
	f.SalesDeductions = groups[GroupSalesDeductions]
	f.NetSales = f.GrossSales - f.SalesDeductions
	f.CostOfSales = groups[GroupCostOfSales]
	f.GrossProfit = f.NetSales - f.CostOfSales
	f.OperatingExpenses = groups[GroupOperatingExpenses]
	f.OperatingProfit = f.GrossProfit - f.OperatingExpenses
	f.OtherIncome = groups[GroupOtherIncome]
	f.OtherExpenses = groups[GroupOtherExpenses]
	f.FinancingExpenses = groups[GroupFinancingExpenses]
	f.NetProfit = f.OperatingProfit + f.OtherIncome - f.OtherExpenses - f.FinancingExpenses

	return f
}

func contribution(side Side, balance float64) (float64, bool) {
	switch side {
	case DebitNormal:
		if balance > 0 {
			return balance, true
		}
	case CreditNormal:
		if balance < 0 {
			return math.Abs(balance), true
		}
	}
	return 0, false
}

// detailRule captures a named account balance onto Figures. Detail capture
// follows the Turkish chart account codes regardless of the group
// classifier: the rule-criterion and pattern engines reference these
// specific accounts.
type detailRule struct {
	prefixes []string
	side     Side
	signed   bool // capture the raw signed balance instead of the normal-side contribution
	apply    func(*Figures, float64)
}

var detailRules = []detailRule{
	// Kasa 100 keeps its raw signed balance (negative cash is a criterion).
	{[]string{"100"}, DebitNormal, true, func(f *Figures, v float64) { f.Cash += v }},
	{[]string{"102"}, DebitNormal, false, func(f *Figures, v float64) { f.Banks += v }},
	{[]string{"120", "121"}, DebitNormal, false, func(f *Figures, v float64) { f.TradeReceivables += v }},
	{[]string{"131", "132", "133", "231", "232", "233"}, DebitNormal, false, func(f *Figures, v float64) { f.RelatedPartyReceivables += v }},
	{[]string{"15"}, DebitNormal, false, func(f *Figures, v float64) { f.Inventory += v }},
	{[]string{"190", "191"}, DebitNormal, false, func(f *Figures, v float64) { f.DeductibleVAT += v }},
	{[]string{"250", "251", "252", "253", "254", "255", "256", "258"}, DebitNormal, false, func(f *Figures, v float64) { f.FixedAssetCost += v }},
	{[]string{"257", "268"}, CreditNormal, false, func(f *Figures, v float64) { f.AccumulatedDepreciation += v }},
	{[]string{"320", "321"}, CreditNormal, false, func(f *Figures, v float64) { f.TradePayables += v }},
	{[]string{"331", "332", "333", "431", "432", "433"}, CreditNormal, false, func(f *Figures, v float64) { f.RelatedPartyPayables += v }},
	{[]string{"391"}, CreditNormal, false, func(f *Figures, v float64) { f.CalculatedVAT += v }},
	{[]string{"500"}, CreditNormal, false, func(f *Figures, v float64) { f.PaidInCapital += v }},
	{[]string{"570"}, CreditNormal, false, func(f *Figures, v float64) { f.RetainedEarnings += v }},
	// Accumulated losses 580/581 are contra-equity and carry debit balances.
	{[]string{"580", "581"}, DebitNormal, false, func(f *Figures, v float64) { f.PreviousYearsLosses += v }},
}

func captureDetail(f *Figures, b domain.AccountBalance) {
	for _, rule := range detailRules {
		for _, prefix := range rule.prefixes {
			if !strings.HasPrefix(b.Code, prefix) {
				continue
			}
			if rule.signed {
				rule.apply(f, b.Balance)
			} else if v, in := contribution(rule.side, b.Balance); in {
				rule.apply(f, v)
			}
			break
		}
	}
}
