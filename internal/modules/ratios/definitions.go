package ratios

// definitions is the static ratio catalog, evaluated in declaration order.
// Normal ranges follow the published guidance values for Turkish SMEs;
// profitability ratios are expressed as percentages.
var definitions = []Definition{
	// Liquidity
	{
		ID: "CURRENT_RATIO", Name: "Cari Oran", Category: CategoryLiquidity,
		Min: 1.5, Max: 2.5, Polarity: LowIsBad,
		BelowComment:  "Cari oran normal aralığın altında; kısa vadeli borç ödeme gücü zayıf.",
		WithinComment: "Cari oran normal aralıkta.",
		AboveComment:  "Cari oran normal aralığın üzerinde; dönen varlıklar atıl kalıyor olabilir.",
	},
	{
		ID: "QUICK_RATIO", Name: "Asit-Test Oranı", Category: CategoryLiquidity,
		Min: 0.8, Max: 1.5, Polarity: LowIsBad,
		BelowComment:  "Asit-test oranı düşük; stoklar çıkarıldığında borç ödeme gücü yetersiz.",
		WithinComment: "Asit-test oranı normal aralıkta.",
		AboveComment:  "Asit-test oranı yüksek; likit varlık fazlası mevcut.",
	},
	{
		ID: "CASH_RATIO", Name: "Nakit Oranı", Category: CategoryLiquidity,
		Min: 0.2, Max: 0.6, Polarity: LowIsBad,
		BelowComment:  "Nakit oranı düşük; acil yükümlülükler için hazır değer yetersiz.",
		WithinComment: "Nakit oranı normal aralıkta.",
		AboveComment:  "Nakit oranı yüksek; nakit fazlası değerlendirilmiyor.",
	},
	{
		ID: "CASH_TO_ASSETS", Name: "Hazır Değerler / Aktif Toplamı", Category: CategoryLiquidity,
		Min: 0.05, Max: 0.15, Polarity: HighIsBad, CriterionID: "K001",
		BelowComment:  "Hazır değerlerin aktif içindeki payı düşük.",
		WithinComment: "Hazır değerlerin aktif içindeki payı normal aralıkta.",
		AboveComment:  "Hazır değerlerin aktif içindeki payı yüksek; kasa-banka şişkinliği riski.",
	},
	{
		ID: "NWC_TO_ASSETS", Name: "Net İşletme Sermayesi / Aktif Toplamı", Category: CategoryLiquidity,
		Min: 0.1, Max: 0.4, Polarity: LowIsBad,
		BelowComment:  "Net işletme sermayesi yetersiz; faaliyetler kısa vadeli borçla finanse ediliyor.",
		WithinComment: "Net işletme sermayesi normal aralıkta.",
		AboveComment:  "Net işletme sermayesi yüksek.",
	},
	{
		ID: "INVENTORY_TO_CURRENT", Name: "Stoklar / Dönen Varlıklar", Category: CategoryLiquidity,
		Min: 0.1, Max: 0.5, Polarity: HighIsBad, CriterionID: "K008",
		BelowComment:  "Stokların dönen varlıklar içindeki payı düşük.",
		WithinComment: "Stok payı normal aralıkta.",
		AboveComment:  "Stok payı yüksek; satılamayan veya fiktif stok riski.",
	},

	// Activity
	{
		ID: "RECEIVABLE_TURNOVER", Name: "Alacak Devir Hızı", Category: CategoryActivity,
		Min: 4, Max: 12, Polarity: LowIsBad,
		BelowComment:  "Alacak devir hızı düşük; tahsilat süreci yavaş veya alacaklar şişkin.",
		WithinComment: "Alacak devir hızı normal aralıkta.",
		AboveComment:  "Alacak devir hızı yüksek.",
	},
	{
		ID: "INVENTORY_TURNOVER", Name: "Stok Devir Hızı", Category: CategoryActivity,
		Min: 4, Max: 10, Polarity: LowIsBad, CriterionID: "K013",
		BelowComment:  "Stok devir hızı düşük; stoklar satışa dönüşmüyor.",
		WithinComment: "Stok devir hızı normal aralıkta.",
		AboveComment:  "Stok devir hızı yüksek.",
	},
	{
		ID: "PAYABLE_TURNOVER", Name: "Borç Devir Hızı", Category: CategoryActivity,
		Min: 4, Max: 12, Polarity: LowIsBad,
		BelowComment:  "Ticari borç devir hızı düşük; tedarikçi ödemeleri gecikiyor.",
		WithinComment: "Ticari borç devir hızı normal aralıkta.",
		AboveComment:  "Ticari borç devir hızı yüksek.",
	},
	{
		ID: "ASSET_TURNOVER", Name: "Aktif Devir Hızı", Category: CategoryActivity,
		Min: 1.0, Max: 2.5, Polarity: LowIsBad, CriterionID: "K018",
		BelowComment:  "Aktif devir hızı düşük; varlıklar satış üretmiyor.",
		WithinComment: "Aktif devir hızı normal aralıkta.",
		AboveComment:  "Aktif devir hızı yüksek.",
	},
	{
		ID: "EQUITY_TURNOVER", Name: "Özkaynak Devir Hızı", Category: CategoryActivity,
		Min: 2, Max: 6, Polarity: LowIsBad,
		BelowComment:  "Özkaynak devir hızı düşük.",
		WithinComment: "Özkaynak devir hızı normal aralıkta.",
		AboveComment:  "Özkaynak devir hızı yüksek; özkaynak yetersizliğine işaret edebilir.",
	},
	{
		ID: "WC_TURNOVER", Name: "İşletme Sermayesi Devir Hızı", Category: CategoryActivity,
		Min: 3, Max: 8, Polarity: LowIsBad,
		BelowComment:  "İşletme sermayesi devir hızı düşük.",
		WithinComment: "İşletme sermayesi devir hızı normal aralıkta.",
		AboveComment:  "İşletme sermayesi devir hızı yüksek.",
	},

	// Structure
	{
		ID: "DEBT_RATIO", Name: "Kaldıraç Oranı", Category: CategoryStructure,
		Min: 0.4, Max: 0.6, Polarity: HighIsBad, CriterionID: "K010",
		BelowComment:  "Kaldıraç oranı düşük; borç kullanımı sınırlı.",
		WithinComment: "Kaldıraç oranı normal aralıkta.",
		AboveComment:  "Kaldıraç oranı yüksek; varlıklar ağırlıkla borçla finanse ediliyor.",
	},
	{
		ID: "DEBT_TO_EQUITY", Name: "Borç / Özkaynak Oranı", Category: CategoryStructure,
		Min: 0.5, Max: 1.5, Polarity: HighIsBad,
		BelowComment:  "Borç / özkaynak oranı düşük.",
		WithinComment: "Borç / özkaynak oranı normal aralıkta.",
		AboveComment:  "Borç / özkaynak oranı yüksek; finansal yapı kırılgan.",
	},
	{
		ID: "STD_TO_ASSETS", Name: "Kısa Vadeli Borç / Aktif Toplamı", Category: CategoryStructure,
		Min: 0.2, Max: 0.4, Polarity: HighIsBad,
		BelowComment:  "Kısa vadeli borç payı düşük.",
		WithinComment: "Kısa vadeli borç payı normal aralıkta.",
		AboveComment:  "Kısa vadeli borç payı yüksek; vade uyumsuzluğu riski.",
	},
	{
		ID: "EQUITY_RATIO", Name: "Özkaynak / Aktif Toplamı", Category: CategoryStructure,
		Min: 0.4, Max: 0.6, Polarity: LowIsBad,
		BelowComment:  "Özkaynak oranı düşük; sermaye yapısı zayıf.",
		WithinComment: "Özkaynak oranı normal aralıkta.",
		AboveComment:  "Özkaynak oranı yüksek.",
	},
	{
		ID: "FIXED_TO_EQUITY", Name: "Duran Varlıklar / Özkaynak", Category: CategoryStructure,
		Min: 0.5, Max: 1.0, Polarity: HighIsBad,
		BelowComment:  "Duran varlıkların özkaynağa oranı düşük.",
		WithinComment: "Duran varlıkların özkaynağa oranı normal aralıkta.",
		AboveComment:  "Duran varlıklar özkaynağı aşıyor; borçla duran varlık finansmanı.",
	},
	{
		ID: "INTEREST_COVERAGE", Name: "Faiz Karşılama Oranı", Category: CategoryStructure,
		Min: 3, Max: 10, Polarity: LowIsBad,
		BelowComment:  "Faiz karşılama oranı düşük; faaliyet kârı finansman giderini karşılamıyor.",
		WithinComment: "Faiz karşılama oranı normal aralıkta.",
		AboveComment:  "Faiz karşılama oranı yüksek.",
	},
	{
		ID: "RELATED_PAYABLE_TO_EQUITY", Name: "Ortaklara Borçlar / Özkaynak", Category: CategoryStructure,
		Min: 0, Max: 1.0, Polarity: HighIsBad, CriterionID: "K004",
		BelowComment:  "Ortaklara borç bulunmuyor.",
		WithinComment: "Ortaklara borçların özkaynağa oranı makul düzeyde.",
		AboveComment:  "Ortaklara borçlar özkaynağı aşıyor; örtülü sermaye riski.",
	},

	// Profitability (percentages)
	{
		ID: "GROSS_MARGIN", Name: "Brüt Kâr Marjı", Category: CategoryProfitability,
		Min: 8, Max: 40, Polarity: LowIsBad, CriterionID: "K006",
		BelowComment:  "Brüt kâr marjı düşük; maliyet-hasılat dengesi sektör beklentisinin altında.",
		WithinComment: "Brüt kâr marjı normal aralıkta.",
		AboveComment:  "Brüt kâr marjı yüksek.",
	},
	{
		ID: "OPERATING_MARGIN", Name: "Faaliyet Kâr Marjı", Category: CategoryProfitability,
		Min: 5, Max: 25, Polarity: LowIsBad,
		BelowComment:  "Faaliyet kâr marjı düşük.",
		WithinComment: "Faaliyet kâr marjı normal aralıkta.",
		AboveComment:  "Faaliyet kâr marjı yüksek.",
	},
	{
		ID: "NET_MARGIN", Name: "Net Kâr Marjı", Category: CategoryProfitability,
		Min: 2, Max: 15, Polarity: LowIsBad,
		BelowComment:  "Net kâr marjı düşük; vergiye tabi kazanç beyanı sektör altında kalabilir.",
		WithinComment: "Net kâr marjı normal aralıkta.",
		AboveComment:  "Net kâr marjı yüksek.",
	},
	{
		ID: "ROA", Name: "Aktif Kârlılığı", Category: CategoryProfitability,
		Min: 2, Max: 12, Polarity: LowIsBad,
		BelowComment:  "Aktif kârlılığı düşük.",
		WithinComment: "Aktif kârlılığı normal aralıkta.",
		AboveComment:  "Aktif kârlılığı yüksek.",
	},
	{
		ID: "ROE", Name: "Özkaynak Kârlılığı", Category: CategoryProfitability,
		Min: 8, Max: 25, Polarity: LowIsBad,
		BelowComment:  "Özkaynak kârlılığı düşük.",
		WithinComment: "Özkaynak kârlılığı normal aralıkta.",
		AboveComment:  "Özkaynak kârlılığı yüksek.",
	},
	{
		ID: "COST_TO_SALES", Name: "Satılan Malın Maliyeti / Net Satışlar", Category: CategoryProfitability,
		Min: 60, Max: 92, Polarity: HighIsBad,
		BelowComment:  "Maliyet oranı düşük.",
		WithinComment: "Maliyet oranı normal aralıkta.",
		AboveComment:  "Maliyet oranı yüksek; sahte veya şişirilmiş alış faturası riski.",
	},
	{
		ID: "FINANCING_TO_SALES", Name: "Finansman Giderleri / Net Satışlar", Category: CategoryProfitability,
		Min: 0, Max: 8, Polarity: HighIsBad, CriterionID: "K015",
		BelowComment:  "Finansman gideri bulunmuyor.",
		WithinComment: "Finansman giderlerinin satışlara oranı normal aralıkta.",
		AboveComment:  "Finansman giderleri satışlara göre yüksek; borçlanma kaynağı sorgulanmalı.",
	},
}

// Definitions returns the static ratio catalog.
func Definitions() []Definition {
	return definitions
}

// DefinitionByID returns the definition for a ratio id.
func DefinitionByID(id string) (Definition, bool) {
	for _, d := range definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
