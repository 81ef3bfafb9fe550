package ratios

import (
	"strconv"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
)

// Formula computes one ratio from the aggregate figures. It returns
// ok=false when a required denominator is zero, in which case the ratio is
// omitted from the report. The evidence slice carries the raw figures that
// entered the calculation.
type Formula func(f aggregation.Figures, prior *domain.PriorPeriod) (value float64, evidence []domain.EvidenceItem, ok bool)

// formulas maps each ratio id to its formula. Keeping the mapping explicit
// (instead of string-keyed dispatch inside the engine) lets tests assert
// that every definition has exactly one formula.
var formulas = map[string]Formula{
	"CURRENT_RATIO": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.CurrentAssets, f.ShortTermLiabilities,
			fig("Dönen Varlıklar", f.CurrentAssets),
			fig("Kısa Vadeli Yabancı Kaynaklar", f.ShortTermLiabilities))
	},
	"QUICK_RATIO": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.CurrentAssets-f.Inventory, f.ShortTermLiabilities,
			fig("Dönen Varlıklar", f.CurrentAssets),
			fig("Stoklar", f.Inventory),
			fig("Kısa Vadeli Yabancı Kaynaklar", f.ShortTermLiabilities))
	},
	"CASH_RATIO": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.Cash+f.Banks, f.ShortTermLiabilities,
			fig("Hazır Değerler", f.Cash+f.Banks),
			fig("Kısa Vadeli Yabancı Kaynaklar", f.ShortTermLiabilities))
	},
	"CASH_TO_ASSETS": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.Cash+f.Banks, f.TotalAssets,
			fig("Hazır Değerler", f.Cash+f.Banks),
			fig("Aktif Toplamı", f.TotalAssets))
	},
	"NWC_TO_ASSETS": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.CurrentAssets-f.ShortTermLiabilities, f.TotalAssets,
			fig("Net İşletme Sermayesi", f.CurrentAssets-f.ShortTermLiabilities),
			fig("Aktif Toplamı", f.TotalAssets))
	},
	"INVENTORY_TO_CURRENT": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.Inventory, f.CurrentAssets,
			fig("Stoklar", f.Inventory),
			fig("Dönen Varlıklar", f.CurrentAssets))
	},

	"RECEIVABLE_TURNOVER": func(f aggregation.Figures, prior *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		den := f.TradeReceivables
		if prior != nil {
			den = (den + prior.TradeReceivables) / 2
		}
		return divide(f.NetSales, den,
			fig("Net Satışlar", f.NetSales),
			fig("Ticari Alacaklar (ortalama)", den))
	},
	"INVENTORY_TURNOVER": func(f aggregation.Figures, prior *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		den := f.Inventory
		if prior != nil {
			den = (den + prior.Inventory) / 2
		}
		return divide(f.CostOfSales, den,
			fig("Satılan Malın Maliyeti", f.CostOfSales),
			fig("Stoklar (ortalama)", den))
	},
	"PAYABLE_TURNOVER": func(f aggregation.Figures, prior *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		den := f.TradePayables
		if prior != nil {
			den = (den + prior.TradePayables) / 2
		}
		return divide(f.CostOfSales, den,
			fig("Satılan Malın Maliyeti", f.CostOfSales),
			fig("Ticari Borçlar (ortalama)", den))
	},
	"ASSET_TURNOVER": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.NetSales, f.TotalAssets,
			fig("Net Satışlar", f.NetSales),
			fig("Aktif Toplamı", f.TotalAssets))
	},
	"EQUITY_TURNOVER": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.NetSales, f.Equity,
			fig("Net Satışlar", f.NetSales),
			fig("Özkaynaklar", f.Equity))
	},
	"WC_TURNOVER": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.NetSales, f.CurrentAssets-f.ShortTermLiabilities,
			fig("Net Satışlar", f.NetSales),
			fig("Net İşletme Sermayesi", f.CurrentAssets-f.ShortTermLiabilities))
	},

	"DEBT_RATIO": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.TotalLiabilities, f.TotalAssets,
			fig("Toplam Yabancı Kaynaklar", f.TotalLiabilities),
			fig("Aktif Toplamı", f.TotalAssets))
	},
	"DEBT_TO_EQUITY": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.TotalLiabilities, f.Equity,
			fig("Toplam Yabancı Kaynaklar", f.TotalLiabilities),
			fig("Özkaynaklar", f.Equity))
	},
	"STD_TO_ASSETS": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.ShortTermLiabilities, f.TotalAssets,
			fig("Kısa Vadeli Yabancı Kaynaklar", f.ShortTermLiabilities),
			fig("Aktif Toplamı", f.TotalAssets))
	},
	"EQUITY_RATIO": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.Equity, f.TotalAssets,
			fig("Özkaynaklar", f.Equity),
			fig("Aktif Toplamı", f.TotalAssets))
	},
	"FIXED_TO_EQUITY": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.FixedAssets, f.Equity,
			fig("Duran Varlıklar", f.FixedAssets),
			fig("Özkaynaklar", f.Equity))
	},
	"INTEREST_COVERAGE": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.OperatingProfit, f.FinancingExpenses,
			fig("Faaliyet Kârı", f.OperatingProfit),
			fig("Finansman Giderleri", f.FinancingExpenses))
	},
	"RELATED_PAYABLE_TO_EQUITY": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return divide(f.RelatedPartyPayables, f.Equity,
			fig("Ortaklara Borçlar", f.RelatedPartyPayables),
			fig("Özkaynaklar", f.Equity))
	},

	"GROSS_MARGIN": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return percentage(f.GrossProfit, f.NetSales,
			fig("Brüt Kâr", f.GrossProfit),
			fig("Net Satışlar", f.NetSales))
	},
	"OPERATING_MARGIN": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return percentage(f.OperatingProfit, f.NetSales,
			fig("Faaliyet Kârı", f.OperatingProfit),
			fig("Net Satışlar", f.NetSales))
	},
	"NET_MARGIN": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return percentage(f.NetProfit, f.NetSales,
			fig("Dönem Kârı", f.NetProfit),
			fig("Net Satışlar", f.NetSales))
	},
	"ROA": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return percentage(f.NetProfit, f.TotalAssets,
			fig("Dönem Kârı", f.NetProfit),
			fig("Aktif Toplamı", f.TotalAssets))
	},
	"ROE": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return percentage(f.NetProfit, f.Equity,
			fig("Dönem Kârı", f.NetProfit),
			fig("Özkaynaklar", f.Equity))
	},
	"COST_TO_SALES": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return percentage(f.CostOfSales, f.NetSales,
			fig("Satılan Malın Maliyeti", f.CostOfSales),
			fig("Net Satışlar", f.NetSales))
	},
	"FINANCING_TO_SALES": func(f aggregation.Figures, _ *domain.PriorPeriod) (float64, []domain.EvidenceItem, bool) {
		return percentage(f.FinancingExpenses, f.NetSales,
			fig("Finansman Giderleri", f.FinancingExpenses),
			fig("Net Satışlar", f.NetSales))
	},
}

// divide returns num/den with its evidence, or ok=false when den is zero.
func divide(num, den float64, evidence ...domain.EvidenceItem) (float64, []domain.EvidenceItem, bool) {
	if den == 0 {
		return 0, nil, false
	}
	return num / den, evidence, true
}

// percentage returns 100*num/den with its evidence, or ok=false when den is zero.
func percentage(num, den float64, evidence ...domain.EvidenceItem) (float64, []domain.EvidenceItem, bool) {
	v, ev, ok := divide(num, den, evidence...)
	return v * 100, ev, ok
}

// fig builds a figure evidence item.
func fig(label string, value float64) domain.EvidenceItem {
	return domain.EvidenceItem{
		Category: "figure",
		Label:    label,
		Value:    strconv.FormatFloat(value, 'f', 2, 64),
	}
}
