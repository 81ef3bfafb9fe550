package aggregation

import "strings"

// Side is the normal balance side of an account group.
type Side int

const (
	// DebitNormal accounts carry positive balances in a healthy trial
	// balance (assets, expenses).
	DebitNormal Side = iota
	// CreditNormal accounts carry negative balances (liabilities, equity,
	// revenue).
	CreditNormal
)

// Group identifies an aggregate an account contributes to.
type Group int

const (
	GroupNone Group = iota
	GroupCurrentAssets
	GroupFixedAssets
	GroupShortTermLiabilities
	GroupLongTermLiabilities
	GroupEquity
	GroupGrossSales
	GroupSalesDeductions
	GroupCostOfSales
	GroupOperatingExpenses
	GroupOtherIncome
	GroupOtherExpenses
	GroupFinancingExpenses
)

// Classifier maps an account code to its aggregate group and normal side.
// Returns ok=false for codes that do not contribute to any aggregate.
// Supplying a different classifier supports alternate charts of accounts
// without touching engine logic.
type Classifier func(code string) (Group, Side, bool)

// TurkishUniformChart classifies account codes per the Turkish Uniform
// Chart of Accounts (Tek Düzen Hesap Planı) prefix convention:
// 1xx current assets, 2xx fixed assets, 3xx short-term liabilities,
// 4xx long-term liabilities, 5xx equity, 6xx income-statement detail.
// Cost-accounting classes 7-9 do not feed balance-sheet aggregates.
func TurkishUniformChart(code string) (Group, Side, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GroupNone, DebitNormal, false
	}

	// Income-statement detail needs three-digit resolution.
	if code[0] == '6' {
		return classifyIncomeCode(code)
	}

	switch code[0] {
	case '1':
		return GroupCurrentAssets, DebitNormal, true
	case '2':
		return GroupFixedAssets, DebitNormal, true
	case '3':
		return GroupShortTermLiabilities, CreditNormal, true
	case '4':
		return GroupLongTermLiabilities, CreditNormal, true
	case '5':
		return GroupEquity, CreditNormal, true
	default:
		return GroupNone, DebitNormal, false
	}
}

func classifyIncomeCode(code string) (Group, Side, bool) {
	if len(code) < 2 {
		return GroupNone, DebitNormal, false
	}
	switch {
	case strings.HasPrefix(code, "60"):
		return GroupGrossSales, CreditNormal, true
	case strings.HasPrefix(code, "61"):
		return GroupSalesDeductions, DebitNormal, true
	case strings.HasPrefix(code, "62"):
		return GroupCostOfSales, DebitNormal, true
	case strings.HasPrefix(code, "63"):
		return GroupOperatingExpenses, DebitNormal, true
	case strings.HasPrefix(code, "64"), strings.HasPrefix(code, "67"):
		return GroupOtherIncome, CreditNormal, true
	case strings.HasPrefix(code, "65"), strings.HasPrefix(code, "68"):
		return GroupOtherExpenses, DebitNormal, true
	case strings.HasPrefix(code, "66"):
		return GroupFinancingExpenses, DebitNormal, true
	default:
		return GroupNone, DebitNormal, false
	}
}
