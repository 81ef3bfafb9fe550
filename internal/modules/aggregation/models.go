package aggregation

// Figures is the fixed set of named aggregates derived from one trial
// balance. Every downstream engine consumes this struct. It is recomputed
// for each analysis request and never cached: the underlying trial balance
// changes on every call.
type Figures struct {
	// Balance-sheet group totals
	CurrentAssets        float64 `json:"current_assets"`
	FixedAssets          float64 `json:"fixed_assets"`
	TotalAssets          float64 `json:"total_assets"`
	ShortTermLiabilities float64 `json:"short_term_liabilities"`
	LongTermLiabilities  float64 `json:"long_term_liabilities"`
	TotalLiabilities     float64 `json:"total_liabilities"`
	Equity               float64 `json:"equity"`

	// Income-statement group totals
	GrossSales        float64 `json:"gross_sales"`
	SalesDeductions   float64 `json:"sales_deductions"`
	NetSales          float64 `json:"net_sales"`
	CostOfSales       float64 `json:"cost_of_sales"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingExpenses float64 `json:"operating_expenses"`
	OperatingProfit   float64 `json:"operating_profit"`
	OtherIncome       float64 `json:"other_income"`
	OtherExpenses     float64 `json:"other_expenses"`
	FinancingExpenses float64 `json:"financing_expenses"`
	NetProfit         float64 `json:"net_profit"`

	// Named account detail. Cash keeps its raw signed balance: a credit
	// (negative) cash balance is itself a risk signal and must stay visible.
	Cash                    float64 `json:"cash"`
	Banks                   float64 `json:"banks"`
	TradeReceivables        float64 `json:"trade_receivables"`
	RelatedPartyReceivables float64 `json:"related_party_receivables"`
	Inventory               float64 `json:"inventory"`
	DeductibleVAT           float64 `json:"deductible_vat"`
	CalculatedVAT           float64 `json:"calculated_vat"`
	FixedAssetCost          float64 `json:"fixed_asset_cost"`
	AccumulatedDepreciation float64 `json:"accumulated_depreciation"`
	TradePayables           float64 `json:"trade_payables"`
	RelatedPartyPayables    float64 `json:"related_party_payables"`
	PaidInCapital           float64 `json:"paid_in_capital"`
	RetainedEarnings        float64 `json:"retained_earnings"`
	PreviousYearsLosses     float64 `json:"previous_years_losses"`
}
