package patterns

import (
	"fmt"
	"math"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// ValueBag keys. Callers assemble the bag from trial-balance totals and
// declaration fields using exactly these names.
const (
	KeyTotalAssets             = "total_assets"
	KeyTotalLiabilities        = "total_liabilities"
	KeyEquity                  = "equity"
	KeyDeclaredProfit          = "declared_accounting_profit"
	KeyNetProfit               = "net_profit"
	KeyNonDeductibleExpenses   = "non_deductible_expenses"
	KeyClearingAccounts        = "clearing_accounts"
	KeyFixedAssetCost          = "fixed_asset_cost"
	KeyAccumulatedDepreciation = "accumulated_depreciation"
	KeyUnpaidSocialSecurity    = "unpaid_social_security_premiums"
	KeyCash                    = "cash"
	KeyVATCarryforward         = "vat_carryforward"
	KeyVATCarryforwardPrior    = "vat_carryforward_prior"
	KeyRelatedReceivables      = "related_party_receivables"
	KeyRelatedPayables         = "related_party_payables"
	KeyRetainedEarnings        = "retained_earnings"
	KeyPriorYearNetProfit      = "prior_year_net_profit"
	KeyInventory               = "inventory"
	KeyDepreciationExpense     = "depreciation_expense"
	KeyDeductibleVAT           = "deductible_vat"
	KeyCalculatedVAT           = "calculated_vat"
	KeyDonations               = "donations"
	KeyPaidInCapital           = "paid_in_capital"
	KeyExpiredLossOffset       = "expired_loss_carryforward_offset"
	KeyRentExpense             = "rent_expense"
	KeyRentWithholding         = "rent_withholding_declared"
	KeyFinancingExpenses       = "financing_expenses"
	KeyFinancingAddback        = "financing_expense_addback"
	KeyLandDepreciation        = "land_depreciation"
	KeyIncomeStatementProfit   = "income_statement_net_profit"
	KeyBalanceSheetProfit      = "balance_sheet_net_profit"
)

// Tolerances. Balance-sheet equality holds to one currency unit; the
// corporate-tax reconciliation holds to one hundred.
const (
	balanceTolerance        = 1.0
	reconciliationTolerance = 100.0
)

// check is one registered error pattern. Checks are independent: no check
// reads another's outcome, and each returns nil when its inputs are missing
// or the pattern is absent.
type check struct {
	id   string
	name string
	run  func(b ValueBag) *Finding
}

func correct(v float64) *float64 { return &v }

func amountItem(label string, v float64) domain.EvidenceItem {
	return domain.EvidenceItem{Category: "figure", Label: label, Value: fmt.Sprintf("%.2f TL", v)}
}

// catalog is the fixed, ordered list of bookkeeping error patterns.
var catalog = []check{
	{"RAM01", "Bilanço eşitliği bozuk", func(b ValueBag) *Finding {
		if !b.Has(KeyTotalAssets, KeyTotalLiabilities, KeyEquity) {
			return nil
		}
		assets := b[KeyTotalAssets]
		sources := b[KeyTotalLiabilities] + b[KeyEquity]
		diff := assets - sources
		if math.Abs(diff) <= balanceTolerance {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityCritical,
			Explanation:      fmt.Sprintf("Aktif toplamı (%.2f TL) ile pasif toplamı (%.2f TL) arasında %.2f TL fark var.", assets, sources, diff),
			CorrectTreatment: "Mizan yeniden kontrol edilmeli, kayıt dışı bırakılan veya mükerrer kaydedilen fişler bulunarak aktif-pasif eşitliği sağlanmalıdır.",
			Evidence: []domain.EvidenceItem{
				amountItem("Aktif toplamı", assets),
				amountItem("Pasif toplamı", sources),
				{Category: "difference", Label: "Fark", Value: fmt.Sprintf("%.2f TL", diff), Critical: true},
			},
		}
	}},
	{"RAM02", "Kurumlar vergisi matrah mutabakatı tutmuyor", func(b ValueBag) *Finding {
		if !b.Has(KeyDeclaredProfit, KeyNetProfit, KeyNonDeductibleExpenses) {
			return nil
		}
		expected := b[KeyNetProfit] + b[KeyNonDeductibleExpenses]
		declared := b[KeyDeclaredProfit]
		if math.Abs(declared-expected) <= reconciliationTolerance {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Beyan edilen ticari kâr (%.2f TL), dönem net kârı ile KKEG toplamından (%.2f TL) %.2f TL sapıyor.", declared, expected, declared-expected),
			CorrectTreatment: "Kurumlar vergisi beyannamesindeki ticari bilanço kârı, gelir tablosu net kârı artı KKEG toplamına eşitlenmelidir.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(expected),
			Evidence: []domain.EvidenceItem{
				amountItem("Beyan edilen kâr", declared),
				amountItem("Net kâr + KKEG", expected),
			},
		}
	}},
	{"RAM03", "Dönem sonunda geçici hesap bakiyesi", func(b ValueBag) *Finding {
		v, ok := b.Get(KeyClearingAccounts)
		if !ok || v == 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityMedium,
			Explanation:      fmt.Sprintf("Geçici (nazım dışı köprü) hesaplarda dönem sonunda %.2f TL bakiye kalmış.", v),
			CorrectTreatment: "İş ve personel avansları ile sayım-tesellüm farkları dönem kapanışından önce ilgili kesin hesaplara aktarılarak kapatılmalıdır.",
			Evidence:         []domain.EvidenceItem{amountItem("Geçici hesap bakiyesi", v)},
		}
	}},
	{"RAM04", "Birikmiş amortisman maliyeti aşıyor", func(b ValueBag) *Finding {
		if !b.Has(KeyFixedAssetCost, KeyAccumulatedDepreciation) {
			return nil
		}
		cost := b[KeyFixedAssetCost]
		dep := b[KeyAccumulatedDepreciation]
		if dep <= cost {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Birikmiş amortisman (%.2f TL) maddi duran varlık maliyetini (%.2f TL) aşıyor.", dep, cost),
			CorrectTreatment: "Amortisman bir iktisadi kıymetin maliyet bedelini aşamaz; fazla ayrılan tutar düzeltme kaydı ile iptal edilmelidir.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(cost),
			Evidence: []domain.EvidenceItem{
				amountItem("Duran varlık maliyeti", cost),
				amountItem("Birikmiş amortisman", dep),
			},
		}
	}},
	{"RAM05", "Ödenmemiş SGK primleri giderleştirilmiş", func(b ValueBag) *Finding {
		v, ok := b.Get(KeyUnpaidSocialSecurity)
		if !ok || v <= 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Fiilen ödenmemiş %.2f TL SGK primi gider yazılmış görünüyor.", v),
			CorrectTreatment: "Ödenmeyen sigorta primleri ödendiği dönemde gider yazılır; ödenmemiş tutar KKEG olarak matraha eklenmelidir.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(v),
			Evidence:         []domain.EvidenceItem{amountItem("Ödenmemiş SGK primi", v)},
		}
	}},
	{"RAM06", "Kasa hesabı ters bakiye veriyor", func(b ValueBag) *Finding {
		v, ok := b.Get(KeyCash)
		if !ok || v >= 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityCritical,
			Explanation:      fmt.Sprintf("Kasa hesabı %.2f TL alacak bakiyesi veriyor; fiziken mümkün değildir.", v),
			CorrectTreatment: "Kayda alınmamış tahsilatlar veya belgesiz ödemeler araştırılmalı, kasa sayımı ile mutabakat sağlanmalıdır.",
			Evidence:         []domain.EvidenceItem{{Category: "figure", Label: "Kasa bakiyesi", Value: fmt.Sprintf("%.2f TL", v), Critical: true}},
		}
	}},
	{"RAM07", "Devreden KDV zinciri kopuk", func(b ValueBag) *Finding {
		if !b.Has(KeyVATCarryforward, KeyVATCarryforwardPrior) {
			return nil
		}
		cur := b[KeyVATCarryforward]
		prior := b[KeyVATCarryforwardPrior]
		if math.Abs(cur-prior) <= balanceTolerance {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Dönem başı devreden KDV (%.2f TL) önceki beyannamede devreden tutarla (%.2f TL) uyuşmuyor.", cur, prior),
			CorrectTreatment: "Devreden KDV zinciri dönemler arasında kesintisiz olmalıdır; farkın kaynağı bulunup düzeltme beyannamesi verilmelidir.",
			Evidence: []domain.EvidenceItem{
				amountItem("Dönem başı devreden KDV", cur),
				amountItem("Önceki beyan devreden KDV", prior),
			},
		}
	}},
	{"RAM08", "Ortak cari hesapları karşılıklı bakiye taşıyor", func(b ValueBag) *Finding {
		if !b.Has(KeyRelatedReceivables, KeyRelatedPayables) {
			return nil
		}
		rec := b[KeyRelatedReceivables]
		pay := b[KeyRelatedPayables]
		if rec <= 0 || pay <= 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityMedium,
			Explanation:      fmt.Sprintf("Ortaklardan alacaklar (%.2f TL) ile ortaklara borçlar (%.2f TL) aynı anda bakiye veriyor.", rec, pay),
			CorrectTreatment: "Aynı ortakla olan alacak ve borç bakiyeleri cari hesap mutabakatı yapılarak netleştirilmeli, kalan bakiye için adat faizi hesaplanmalıdır.",
			Evidence: []domain.EvidenceItem{
				amountItem("Ortaklardan alacaklar", rec),
				amountItem("Ortaklara borçlar", pay),
			},
		}
	}},
	{"RAM09", "Geçmiş yıl kârı devri uyuşmuyor", func(b ValueBag) *Finding {
		if !b.Has(KeyRetainedEarnings, KeyPriorYearNetProfit) {
			return nil
		}
		retained := b[KeyRetainedEarnings]
		prior := b[KeyPriorYearNetProfit]
		if retained >= prior-balanceTolerance {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityMedium,
			Explanation:      fmt.Sprintf("Geçmiş yıllar kârları (%.2f TL) önceki dönem net kârının (%.2f TL) altında; aradaki fark kâr dağıtımına işaret edebilir.", retained, prior),
			CorrectTreatment: "Kâr dağıtımı yapıldıysa dağıtım kararı, stopaj beyanı ve yedek akçe ayrımı kayıtlarla belgelendirilmelidir.",
			Evidence: []domain.EvidenceItem{
				amountItem("Geçmiş yıllar kârları", retained),
				amountItem("Önceki dönem net kârı", prior),
			},
		}
	}},
	{"RAM10", "Stok hesabı eksi bakiye veriyor", func(b ValueBag) *Finding {
		v, ok := b.Get(KeyInventory)
		if !ok || v >= 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityCritical,
			Explanation:      fmt.Sprintf("Stok hesapları toplamı %.2f TL eksi bakiye veriyor; fiilen olmayan stok satılmış görünüyor.", v),
			CorrectTreatment: "Belgesiz alışlar veya kayda alınmamış imalat araştırılmalı, stok sayımı ile kayıtlar uyumlandırılmalıdır.",
			Evidence:         []domain.EvidenceItem{{Category: "figure", Label: "Stok bakiyesi", Value: fmt.Sprintf("%.2f TL", v), Critical: true}},
		}
	}},
	{"RAM11", "Dönem amortismanı olağan sınırın üzerinde", func(b ValueBag) *Finding {
		if !b.Has(KeyDepreciationExpense, KeyFixedAssetCost) {
			return nil
		}
		exp := b[KeyDepreciationExpense]
		cost := b[KeyFixedAssetCost]
		if cost <= 0 || exp <= cost*0.25 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityMedium,
			Explanation:      fmt.Sprintf("Dönem amortisman gideri (%.2f TL) duran varlık maliyetinin (%.2f TL) dörtte birini aşıyor.", exp, cost),
			CorrectTreatment: "Uygulanan amortisman oranları faydalı ömür listeleriyle karşılaştırılmalı, oran aşımı varsa fazla gider KKEG yazılmalıdır.",
			Evidence: []domain.EvidenceItem{
				amountItem("Dönem amortisman gideri", exp),
				amountItem("Duran varlık maliyeti", cost),
			},
		}
	}},
	{"RAM12", "İndirilecek ve hesaplanan KDV mahsup edilmemiş", func(b ValueBag) *Finding {
		if !b.Has(KeyDeductibleVAT, KeyCalculatedVAT) {
			return nil
		}
		ded := b[KeyDeductibleVAT]
		calc := b[KeyCalculatedVAT]
		if ded <= 0 || calc <= 0 {
			return nil
		}
		offset := math.Min(ded, calc)
		return &Finding{
			Severity:         domain.SeverityMedium,
			Explanation:      fmt.Sprintf("İndirilecek KDV (%.2f TL) ve hesaplanan KDV (%.2f TL) dönem sonunda birlikte bakiye veriyor.", ded, calc),
			CorrectTreatment: "Dönem sonunda 191 ve 391 hesaplar karşılıklı mahsup edilerek kalan tutar devreden veya ödenecek KDV hesabına aktarılmalıdır.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(offset),
			Evidence: []domain.EvidenceItem{
				amountItem("İndirilecek KDV", ded),
				amountItem("Hesaplanan KDV", calc),
			},
		}
	}},
	{"RAM13", "Kasa bakiyesi işletme ölçeğine göre aşırı", func(b ValueBag) *Finding {
		if !b.Has(KeyCash, KeyTotalAssets) {
			return nil
		}
		cash := b[KeyCash]
		assets := b[KeyTotalAssets]
		if assets <= 0 || cash <= assets*0.30 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Kasa bakiyesi (%.2f TL) aktif toplamının (%.2f TL) yüzde otuzunu aşıyor.", cash, assets),
			CorrectTreatment: "Fiilen kasada bulunmayan tutarlar ortaklara kullandırılmış sayılır; kasa sayımı yapılmalı ve fazlalık için adat faizi hesaplanmalıdır.",
			Evidence: []domain.EvidenceItem{
				amountItem("Kasa bakiyesi", cash),
				amountItem("Aktif toplamı", assets),
			},
		}
	}},
	{"RAM14", "Bağış indirimi yasal sınırı aşıyor", func(b ValueBag) *Finding {
		if !b.Has(KeyDonations, KeyDeclaredProfit) {
			return nil
		}
		don := b[KeyDonations]
		profit := b[KeyDeclaredProfit]
		if don <= 0 || profit <= 0 || don <= profit*0.05 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityMedium,
			Explanation:      fmt.Sprintf("İndirilen bağış tutarı (%.2f TL) beyan edilen kârın (%.2f TL) yüzde beşini aşıyor.", don, profit),
			CorrectTreatment: "Genel bağış indirimi kurum kazancının yüzde beşi ile sınırlıdır; aşan kısım matraha eklenmelidir.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(profit * 0.05),
			Evidence: []domain.EvidenceItem{
				amountItem("İndirilen bağış", don),
				amountItem("Beyan edilen kâr", profit),
			},
		}
	}},
	{"RAM15", "Özkaynaklar sermayenin yarısının altında", func(b ValueBag) *Finding {
		if !b.Has(KeyEquity, KeyPaidInCapital) {
			return nil
		}
		equity := b[KeyEquity]
		capital := b[KeyPaidInCapital]
		if capital <= 0 || equity >= capital*0.5 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Özkaynak toplamı (%.2f TL) ödenmiş sermayenin (%.2f TL) yarısının altına düşmüş.", equity, capital),
			CorrectTreatment: "Sermaye kaybı halinde genel kurul derhal toplantıya çağrılmalı ve iyileştirici önlemler karara bağlanmalıdır.",
			Evidence: []domain.EvidenceItem{
				amountItem("Özkaynak toplamı", equity),
				amountItem("Ödenmiş sermaye", capital),
			},
		}
	}},
	{"RAM16", "Süresi geçmiş zarar mahsubu", func(b ValueBag) *Finding {
		v, ok := b.Get(KeyExpiredLossOffset)
		if !ok || v <= 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Beş yıllık mahsup süresi dolmuş %.2f TL geçmiş yıl zararı matrahtan indirilmiş.", v),
			CorrectTreatment: "Zarar mahsubu en fazla beş hesap dönemi ileriye taşınabilir; süresi dolan tutar matraha eklenmelidir.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(v),
			Evidence:         []domain.EvidenceItem{amountItem("Süresi geçmiş zarar mahsubu", v)},
		}
	}},
	{"RAM17", "Kira gideri var, stopaj beyanı yok", func(b ValueBag) *Finding {
		if !b.Has(KeyRentExpense, KeyRentWithholding) {
			return nil
		}
		rent := b[KeyRentExpense]
		withheld := b[KeyRentWithholding]
		if rent <= 0 || withheld > 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("%.2f TL kira gideri kaydedilmiş ancak muhtasar beyannamede kira stopajı görünmüyor.", rent),
			CorrectTreatment: "Gerçek kişiden kiralanan işyeri için brüt kira üzerinden gelir vergisi tevkifatı yapılıp muhtasar beyanname ile beyan edilmelidir.",
			Evidence: []domain.EvidenceItem{
				amountItem("Kira gideri", rent),
				amountItem("Beyan edilen kira stopajı", withheld),
			},
		}
	}},
	{"RAM18", "Finansman gider kısıtlaması uygulanmamış", func(b ValueBag) *Finding {
		if !b.Has(KeyFinancingExpenses, KeyFinancingAddback, KeyTotalLiabilities, KeyEquity) {
			return nil
		}
		fin := b[KeyFinancingExpenses]
		addback := b[KeyFinancingAddback]
		if fin <= 0 || addback > 0 || b[KeyTotalLiabilities] <= b[KeyEquity] {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityMedium,
			Explanation:      fmt.Sprintf("Yabancı kaynaklar özkaynağı aştığı halde %.2f TL finansman giderine kısıtlama KKEG'i uygulanmamış.", fin),
			CorrectTreatment: "Özkaynağı aşan yabancı kaynağa isabet eden finansman giderinin yüzde onu KKEG olarak matraha eklenmelidir.",
			Evidence: []domain.EvidenceItem{
				amountItem("Finansman giderleri", fin),
				amountItem("Uygulanan kısıtlama", addback),
			},
		}
	}},
	{"RAM19", "Arsa ve araziye amortisman ayrılmış", func(b ValueBag) *Finding {
		v, ok := b.Get(KeyLandDepreciation)
		if !ok || v <= 0 {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Amortismana tabi olmayan arsa ve araziler için %.2f TL amortisman ayrılmış.", v),
			CorrectTreatment: "Boş arsa ve araziler amortismana tabi değildir; ayrılan tutar iptal edilip KKEG olarak matraha eklenmelidir.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(0),
			Evidence:         []domain.EvidenceItem{amountItem("Arsa amortismanı", v)},
		}
	}},
	{"RAM20", "Gelir tablosu ile bilanço dönem kârı uyuşmuyor", func(b ValueBag) *Finding {
		if !b.Has(KeyIncomeStatementProfit, KeyBalanceSheetProfit) {
			return nil
		}
		income := b[KeyIncomeStatementProfit]
		balance := b[KeyBalanceSheetProfit]
		if math.Abs(income-balance) <= balanceTolerance {
			return nil
		}
		return &Finding{
			Severity:         domain.SeverityHigh,
			Explanation:      fmt.Sprintf("Gelir tablosu net kârı (%.2f TL) bilançodaki dönem net kârından (%.2f TL) farklı.", income, balance),
			CorrectTreatment: "Dönem net kârı her iki tabloda aynı tutarla raporlanmalıdır; kapanış kayıtları gözden geçirilmelidir.",
			AutoCorrectable:  true,
			CorrectiveValue:  correct(income),
			Evidence: []domain.EvidenceItem{
				amountItem("Gelir tablosu net kârı", income),
				amountItem("Bilanço dönem kârı", balance),
			},
		}
	}},
}
