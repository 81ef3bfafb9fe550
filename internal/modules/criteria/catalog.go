package criteria

import (
	"strconv"

	"github.com/cemsak/lyntos-updated-sub001/internal/config"
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
)

// catalog is the static criterion list, evaluated in declaration order.
// Each entry computes a criterion-specific value directly from the
// aggregate figures and compares it against the criterion's warning and
// critical thresholds. Boolean hard conditions (negative cash, negative
// equity) skip the threshold comparison entirely.
var catalog = []criterion{
	{
		def: Definition{
			ID:              "K001",
			Name:            "Kasa ve banka bakiyesinin aktife oranı yüksek",
			Description:     "Hazır değerlerin aktif toplamına oranı, kayıt dışı ödeme veya fiktif kasa şişkinliğine işaret edebilecek düzeyde.",
			MessageTemplate: "Hazır değerlerin aktif toplamına oranı %s seviyesinde.",
			Recommendation:  "Fiili kasa sayımı yapılmalı, kasa fazlasının kaynağı belgelendirilmeli ve adat faizi hesaplanmalıdır.",
			Statutes:        []string{"VUK-134"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.TotalAssets == 0 {
				return nil
			}
			v := (f.Cash + f.Banks) / f.TotalAssets
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.08, 0.15),
				threshold: 0.15,
				evidence: []domain.EvidenceItem{
					fig("Hazır Değerler", f.Cash+f.Banks),
					fig("Aktif Toplamı", f.TotalAssets),
					threshold("Kritik eşik", 0.15),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K002",
			Name:            "Kasa hesabı negatif bakiye veriyor",
			Description:     "Kasa hesabının alacak bakiyesi vermesi fiilen imkânsızdır; kayıt dışı tahsilat veya belgesiz ödeme göstergesidir.",
			MessageTemplate: "Kasa hesabı %s TL negatif bakiye veriyor.",
			Recommendation:  "Kasa hesabının dönem içi hareketleri gün bazında incelenmeli, negatif bakiyeye düşülen günlerdeki ödemelerin kaynağı tespit edilmelidir.",
			Statutes:        []string{"VUK-134", "VUK-30"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.Cash >= 0 {
				return nil
			}
			// Hard condition: always CRITICAL regardless of magnitude.
			return &evaluation{
				value:     f.Cash,
				display:   formatAmount(-f.Cash),
				severity:  domain.SeverityCritical,
				threshold: 0,
				evidence: []domain.EvidenceItem{
					fig("Kasa (100)", f.Cash),
					threshold("Eşik", 0),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K003",
			Name:            "Ortaklardan alacakların sermayeye oranı yüksek",
			Description:     "Ortaklardan alacakların ödenmiş sermayeye oranı, işletme kaynaklarının ortaklara aktarıldığına işaret eder.",
			MessageTemplate: "Ortaklardan alacaklar ödenmiş sermayenin %s katına ulaştı.",
			Recommendation:  "Ortaklardan alacaklara emsal faiz işletilmeli, transfer fiyatlandırması belgelendirmesi hazırlanmalıdır.",
			Statutes:        []string{"KVK-13"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.PaidInCapital == 0 {
				return nil
			}
			v := f.RelatedPartyReceivables / f.PaidInCapital
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.5, 1.0),
				threshold: 1.0,
				evidence: []domain.EvidenceItem{
					fig("Ortaklardan Alacaklar", f.RelatedPartyReceivables),
					fig("Ödenmiş Sermaye", f.PaidInCapital),
					threshold("Kritik eşik", 1.0),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K004",
			Name:            "Ortaklara borçlar örtülü sermaye sınırını aşıyor",
			Description:     "İlişkili kişilerden alınan borçların özkaynağın üç katını aşan kısmı örtülü sermaye sayılır.",
			MessageTemplate: "Ortaklara borçlar özkaynağın %s katına ulaştı.",
			Recommendation:  "Örtülü sermayeye isabet eden faiz ve kur farkı giderleri kanunen kabul edilmeyen gider olarak dikkate alınmalıdır.",
			Statutes:        []string{"KVK-12"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.Equity == 0 {
				return nil
			}
			v := f.RelatedPartyPayables / f.Equity
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 2.0, 3.0),
				threshold: 3.0,
				evidence: []domain.EvidenceItem{
					fig("Ortaklara Borçlar", f.RelatedPartyPayables),
					fig("Özkaynaklar", f.Equity),
					threshold("Örtülü sermaye sınırı (kat)", 3.0),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K005",
			Name:            "Sermaye kaybı",
			Description:     "Özkaynakların ödenmiş sermayenin yarısının altına inmesi teknik iflas göstergesidir.",
			MessageTemplate: "Özkaynaklar ödenmiş sermayenin %s katına geriledi.",
			Recommendation:  "Genel kurul toplantıya çağrılmalı, sermaye tamamlama veya iyileştirici önlem kararı alınmalıdır.",
			Statutes:        []string{"TTK-376"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.PaidInCapital == 0 {
				return nil
			}
			v := f.Equity / f.PaidInCapital
			var sev domain.Severity
			switch {
			case v < 0.5:
				sev = domain.SeverityCritical
			case v < 2.0/3.0:
				sev = domain.SeverityHigh
			default:
				sev = domain.SeverityLow
			}
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  sev,
				threshold: 0.5,
				evidence: []domain.EvidenceItem{
					fig("Özkaynaklar", f.Equity),
					fig("Ödenmiş Sermaye", f.PaidInCapital),
					threshold("Kritik eşik", 0.5),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K006",
			Name:            "Brüt kâr marjı negatif veya çok düşük",
			Description:     "Sürekli zararına satış, belgesiz hasılat veya şişirilmiş maliyet göstergesidir.",
			MessageTemplate: "Brüt kâr marjı %%%s olarak gerçekleşti.",
			Recommendation:  "Maliyet kayıtları ve alış faturaları örneklemle incelenmeli, zararına satışların ticari icabı belgelendirilmelidir.",
			Statutes:        []string{"KVK-13", "VUK-30"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.NetSales == 0 {
				return nil
			}
			v := f.GrossProfit / f.NetSales * 100
			var sev domain.Severity
			switch {
			case v < 0:
				sev = domain.SeverityCritical
			case v < 3:
				sev = domain.SeverityHigh
			default:
				sev = domain.SeverityLow
			}
			return &evaluation{
				value:     v,
				display:   formatPercent(v),
				severity:  sev,
				threshold: 0,
				evidence: []domain.EvidenceItem{
					fig("Brüt Kâr", f.GrossProfit),
					fig("Net Satışlar", f.NetSales),
					threshold("Kritik eşik (%)", 0),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K007",
			Name:            "Süreklilik arz eden zarar beyanı",
			Description:     "Cari dönem zararının geçmiş yıl zararlarıyla birleşmesi, faaliyetin gerçekliğini sorgulatır.",
			MessageTemplate: "Birikmiş zarar ödenmiş sermayenin %s katına ulaştı.",
			Recommendation:  "Zararın kaynağı faaliyet bazında analiz edilmeli, devreden zarar tutarlarının beyanname ile uyumu kontrol edilmelidir.",
			Statutes:        []string{"KVK-9", "VUK-30"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.NetProfit >= 0 || f.PreviousYearsLosses <= 0 || f.PaidInCapital == 0 {
				return nil
			}
			losses := f.PreviousYearsLosses - f.NetProfit // NetProfit negative here
			v := losses / f.PaidInCapital
			sev := domain.SeverityHigh
			if v > 0.5 {
				sev = domain.SeverityCritical
			}
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  sev,
				threshold: 0.5,
				evidence: []domain.EvidenceItem{
					fig("Geçmiş Yıllar Zararları", f.PreviousYearsLosses),
					fig("Dönem Zararı", -f.NetProfit),
					fig("Ödenmiş Sermaye", f.PaidInCapital),
					threshold("Kritik eşik", 0.5),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K008",
			Name:            "Stokların dönen varlıklar içindeki payı yüksek",
			Description:     "Satışa dönüşmeyen stok birikimi, fiktif stok veya belgesiz satış göstergesi olabilir.",
			MessageTemplate: "Stokların dönen varlıklara oranı %s seviyesinde.",
			Recommendation:  "Fiili envanter sayımı yapılmalı, stok değerleme yöntemleri ve fire oranları gözden geçirilmelidir.",
			Statutes:        []string{"VUK-186"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.CurrentAssets == 0 {
				return nil
			}
			v := f.Inventory / f.CurrentAssets
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.5, 0.7),
				threshold: 0.7,
				evidence: []domain.EvidenceItem{
					fig("Stoklar", f.Inventory),
					fig("Dönen Varlıklar", f.CurrentAssets),
					threshold("Kritik eşik", 0.7),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K009",
			Name:            "İndirilecek KDV hesaplanan KDV'yi sürekli aşıyor",
			Description:     "Sürekli devreden KDV pozisyonu, sahte belge kullanımı veya hasılat gizleme göstergesi olabilir.",
			MessageTemplate: "İndirilecek KDV hesaplanan KDV'nin %s katı.",
			Recommendation:  "KDV indirim listesindeki yüksek tutarlı faturalar ve tedarikçilerin mükellefiyet durumu doğrulanmalıdır.",
			Statutes:        []string{"KDV-29", "KDV-34"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.CalculatedVAT == 0 {
				return nil
			}
			v := f.DeductibleVAT / f.CalculatedVAT
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 1.2, 1.5),
				threshold: 1.5,
				evidence: []domain.EvidenceItem{
					fig("İndirilecek KDV", f.DeductibleVAT),
					fig("Hesaplanan KDV", f.CalculatedVAT),
					threshold("Kritik eşik (kat)", 1.5),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K010",
			Name:            "Kaldıraç oranı sektör ortalamasının üzerinde",
			Description:     "Toplam borcun aktife oranının varsayılan sektör ortalamasını aşması finansal kırılganlık göstergesidir.",
			MessageTemplate: "Kaldıraç oranı %s seviyesinde.",
			Recommendation:  "Borçlanmanın kaynağı ve ilişkili taraf payı incelenmeli, finansman gider kısıtlaması hesaplanmalıdır.",
			Statutes:        []string{"VUK-134", "KVK-11"},
		},
		eval: func(f aggregation.Figures, a config.Assumptions) *evaluation {
			if f.TotalAssets == 0 {
				return nil
			}
			v := f.TotalLiabilities / f.TotalAssets
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, a.SectorLeverage, 0.85),
				threshold: 0.85,
				evidence: []domain.EvidenceItem{
					fig("Toplam Yabancı Kaynaklar", f.TotalLiabilities),
					fig("Aktif Toplamı", f.TotalAssets),
					threshold("Varsayılan sektör ortalaması", a.SectorLeverage),
					threshold("Kritik eşik", 0.85),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K011",
			Name:            "Borçların vade yapısı kısa vadeye yığılmış",
			Description:     "Kısa vadeli borçların toplam borç içindeki payının aşırı yüksekliği vade uyumsuzluğu riskidir.",
			MessageTemplate: "Kısa vadeli borçların toplam borca oranı %s seviyesinde.",
			Recommendation:  "Borç yapılandırması değerlendirilmeli, ortaklara borçların vade ve faiz koşulları belgelendirilmelidir.",
			Statutes:        []string{"VUK-134"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.TotalLiabilities == 0 {
				return nil
			}
			v := f.ShortTermLiabilities / f.TotalLiabilities
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.8, 0.9),
				threshold: 0.9,
				evidence: []domain.EvidenceItem{
					fig("Kısa Vadeli Yabancı Kaynaklar", f.ShortTermLiabilities),
					fig("Toplam Yabancı Kaynaklar", f.TotalLiabilities),
					threshold("Kritik eşik", 0.9),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K012",
			Name:            "Ticari alacakların satışlara oranı yüksek",
			Description:     "Tahsil edilmeyen alacak birikimi fiktif satış veya muvazaalı işlem göstergesi olabilir.",
			MessageTemplate: "Ticari alacaklar net satışların %s katına ulaştı.",
			Recommendation:  "Yaşlandırma analizi yapılmalı, şüpheli alacak karşılığı koşulları ve ilişkili taraf alacakları incelenmelidir.",
			Statutes:        []string{"VUK-323"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.NetSales == 0 {
				return nil
			}
			v := f.TradeReceivables / f.NetSales
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.5, 0.8),
				threshold: 0.8,
				evidence: []domain.EvidenceItem{
					fig("Ticari Alacaklar", f.TradeReceivables),
					fig("Net Satışlar", f.NetSales),
					threshold("Kritik eşik", 0.8),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K013",
			Name:            "Stok devir hızı düşük",
			Description:     "Stokların satışa dönüşmemesi, fiktif stok veya kayıt dışı satış göstergesi olabilir.",
			MessageTemplate: "Stok devir hızı %s olarak gerçekleşti.",
			Recommendation:  "Stok kalemleri bazında devir analizi yapılmalı, değer düşüklüğü ve fire kayıtları belgelendirilmelidir.",
			Statutes:        []string{"VUK-186"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.Inventory == 0 {
				return nil
			}
			v := f.CostOfSales / f.Inventory
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTierLow(v, 2.0, 1.0),
				threshold: 1.0,
				evidence: []domain.EvidenceItem{
					fig("Satılan Malın Maliyeti", f.CostOfSales),
					fig("Stoklar", f.Inventory),
					threshold("Kritik eşik (alt sınır)", 1.0),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K014",
			Name:            "Hazır değerler kasada yoğunlaşmış",
			Description:     "Nakdin bankacılık sistemi dışında kasada tutulması tevsik yükümlülüğü ihlali riskini artırır.",
			MessageTemplate: "Kasanın hazır değerler içindeki payı %s seviyesinde.",
			Recommendation:  "Tahsilat ve ödemelerin banka kanalıyla yapılması sağlanmalı, kasada tutulan nakdin nedeni açıklanmalıdır.",
			Statutes:        []string{"VUK-M257"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			total := f.Cash + f.Banks
			if total <= 0 || f.Cash <= 0 {
				return nil
			}
			v := f.Cash / total
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.8, 0.95),
				threshold: 0.95,
				evidence: []domain.EvidenceItem{
					fig("Kasa", f.Cash),
					fig("Bankalar", f.Banks),
					threshold("Kritik eşik", 0.95),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K015",
			Name:            "Finansman giderlerinin satışlara oranı yüksek",
			Description:     "Satış hacmiyle orantısız finansman gideri, ilişkili taraf borçlanması veya gider şişirme göstergesi olabilir.",
			MessageTemplate: "Finansman giderlerinin net satışlara oranı %s seviyesinde.",
			Recommendation:  "Kredi sözleşmeleri ve faiz tahakkukları incelenmeli, finansman gider kısıtlaması tutarı hesaplanmalıdır.",
			Statutes:        []string{"KVK-11"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.NetSales == 0 {
				return nil
			}
			v := f.FinancingExpenses / f.NetSales
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.08, 0.15),
				threshold: 0.15,
				evidence: []domain.EvidenceItem{
					fig("Finansman Giderleri", f.FinancingExpenses),
					fig("Net Satışlar", f.NetSales),
					threshold("Kritik eşik", 0.15),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K016",
			Name:            "Ortaklardan alacaklara faiz işletilmemiş",
			Description:     "İlişkili kişilere kullandırılan kaynaklara emsal faiz işletilmemesi transfer fiyatlandırması yoluyla örtülü kazanç dağıtımıdır.",
			MessageTemplate: "Faiz geliri kaydı bulunmayan %s TL ortak alacağı mevcut.",
			Recommendation:  "Emsal faiz oranı üzerinden adat hesaplanmalı ve fatura düzenlenmelidir.",
			Statutes:        []string{"KVK-13"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.RelatedPartyReceivables <= 0 || f.OtherIncome > 0 {
				return nil
			}
			return &evaluation{
				value:     f.RelatedPartyReceivables,
				display:   formatAmount(f.RelatedPartyReceivables),
				severity:  domain.SeverityHigh,
				threshold: 0,
				evidence: []domain.EvidenceItem{
					fig("Ortaklardan Alacaklar", f.RelatedPartyReceivables),
					fig("Diğer Faaliyet Gelirleri", f.OtherIncome),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K017",
			Name:            "Özkaynaklar negatif",
			Description:     "Negatif özkaynak borca batıklık göstergesidir.",
			MessageTemplate: "Özkaynak toplamı %s TL seviyesinde.",
			Recommendation:  "Borca batıklık bilançosu çıkarılmalı ve sermaye artırımı değerlendirilmelidir.",
			Statutes:        []string{"TTK-376"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			net := f.Equity - f.PreviousYearsLosses
			if f.PaidInCapital == 0 || net > 0 {
				return nil
			}
			return &evaluation{
				value:     net,
				display:   formatAmount(net),
				severity:  domain.SeverityCritical,
				threshold: 0,
				evidence: []domain.EvidenceItem{
					fig("Özkaynaklar (zarar düşülmüş)", net),
					fig("Geçmiş Yıllar Zararları", f.PreviousYearsLosses),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K018",
			Name:            "Aktif devir hızı düşük",
			Description:     "Varlık büyüklüğüne göre düşük satış hacmi, faaliyetsizlik veya hasılat gizleme göstergesi olabilir.",
			MessageTemplate: "Aktif devir hızı %s olarak gerçekleşti.",
			Recommendation:  "Hasılatın tamamının kayıtlara alındığı doğrulanmalı, atıl varlıkların niteliği açıklanmalıdır.",
			Statutes:        []string{"VUK-134"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.TotalAssets == 0 {
				return nil
			}
			v := f.NetSales / f.TotalAssets
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTierLow(v, 0.3, 0.1),
				threshold: 0.1,
				evidence: []domain.EvidenceItem{
					fig("Net Satışlar", f.NetSales),
					fig("Aktif Toplamı", f.TotalAssets),
					threshold("Kritik eşik (alt sınır)", 0.1),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K019",
			Name:            "Satış iade ve iskontoları yüksek",
			Description:     "Brüt satışların önemli bölümünün iade veya iskontoyla geri alınması belge düzeni sorununa işaret eder.",
			MessageTemplate: "Satış indirimleri brüt satışların %s katına ulaştı.",
			Recommendation:  "İade faturalarının gerçek bir iade işlemine dayandığı ve karşı taraf kayıtlarıyla uyumu doğrulanmalıdır.",
			Statutes:        []string{"VUK-229"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.GrossSales == 0 {
				return nil
			}
			v := f.SalesDeductions / f.GrossSales
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.1, 0.2),
				threshold: 0.2,
				evidence: []domain.EvidenceItem{
					fig("Satış İndirimleri", f.SalesDeductions),
					fig("Brüt Satışlar", f.GrossSales),
					threshold("Kritik eşik", 0.2),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K020",
			Name:            "Faaliyet giderlerinin satışlara oranı yüksek",
			Description:     "Satış hacmiyle orantısız faaliyet gideri, belgesiz veya şahsi harcamaların gider yazılması göstergesi olabilir.",
			MessageTemplate: "Faaliyet giderlerinin net satışlara oranı %s seviyesinde.",
			Recommendation:  "Gider hesapları alt kırılımda incelenmeli, KKEG niteliğindeki kalemler ayrıştırılmalıdır.",
			Statutes:        []string{"GVK-40"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.NetSales == 0 {
				return nil
			}
			v := f.OperatingExpenses / f.NetSales
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.3, 0.5),
				threshold: 0.5,
				evidence: []domain.EvidenceItem{
					fig("Faaliyet Giderleri", f.OperatingExpenses),
					fig("Net Satışlar", f.NetSales),
					threshold("Kritik eşik", 0.5),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K021",
			Name:            "Geçmiş yıl zararları sermayeyi eritmiş",
			Description:     "Birikmiş zararların ödenmiş sermayeye oranı sermaye kaybı düzeyine yaklaşıyor.",
			MessageTemplate: "Geçmiş yıl zararları ödenmiş sermayenin %s katına ulaştı.",
			Recommendation:  "Devreden zararların beyanname dökümü çıkarılmalı, TTK 376 kapsamındaki yükümlülükler değerlendirilmelidir.",
			Statutes:        []string{"KVK-9", "TTK-376"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.PaidInCapital == 0 || f.PreviousYearsLosses <= 0 {
				return nil
			}
			v := f.PreviousYearsLosses / f.PaidInCapital
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.5, 1.0),
				threshold: 1.0,
				evidence: []domain.EvidenceItem{
					fig("Geçmiş Yıllar Zararları", f.PreviousYearsLosses),
					fig("Ödenmiş Sermaye", f.PaidInCapital),
					threshold("Kritik eşik", 1.0),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K022",
			Name:            "Ticari borçların aktife oranı yüksek",
			Description:     "Faaliyetin ağırlıkla tedarikçi finansmanıyla yürütülmesi ödeme güçlüğü ve sahte belge riskine işaret eder.",
			MessageTemplate: "Ticari borçların aktif toplamına oranı %s seviyesinde.",
			Recommendation:  "Yüksek tutarlı tedarikçi bakiyeleri mutabakatla doğrulanmalı, uzun süre kapanmayan borçlar incelenmelidir.",
			Statutes:        []string{"VUK-134"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.TotalAssets == 0 {
				return nil
			}
			v := f.TradePayables / f.TotalAssets
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.5, 0.7),
				threshold: 0.7,
				evidence: []domain.EvidenceItem{
					fig("Ticari Borçlar", f.TradePayables),
					fig("Aktif Toplamı", f.TotalAssets),
					threshold("Kritik eşik", 0.7),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K023",
			Name:            "Atıl nakit satışlara göre yüksek",
			Description:     "Satış hacmine göre yüksek nakit pozisyonu kayıt dışı hasılat göstergesi olabilir.",
			MessageTemplate: "Hazır değerlerin net satışlara oranı %s seviyesinde.",
			Recommendation:  "Nakit giriş kaynakları dönem bazında incelenmeli, ortak cari hesap hareketleriyle karşılaştırılmalıdır.",
			Statutes:        []string{"VUK-134"},
		},
		eval: func(f aggregation.Figures, a config.Assumptions) *evaluation {
			if f.NetSales == 0 {
				return nil
			}
			v := (f.Cash + f.Banks) / f.NetSales
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, a.SectorCashRatio/2, a.SectorCashRatio),
				threshold: a.SectorCashRatio,
				evidence: []domain.EvidenceItem{
					fig("Hazır Değerler", f.Cash+f.Banks),
					fig("Net Satışlar", f.NetSales),
					threshold("Varsayılan sektör ortalaması", a.SectorCashRatio),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K024",
			Name:            "Ortaklardan alacakların özkaynağa oranı yüksek",
			Description:     "Özkaynağın önemli kısmının ortaklara kullandırılması işletmeden kaynak çekilmesi göstergesidir.",
			MessageTemplate: "Ortaklardan alacaklar özkaynağın %s katına ulaştı.",
			Recommendation:  "Ortak cari hesap sözleşmeleri ve geri ödeme planları belgelendirilmeli, emsal faiz uygulanmalıdır.",
			Statutes:        []string{"KVK-13"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.Equity == 0 {
				return nil
			}
			v := f.RelatedPartyReceivables / f.Equity
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 0.5, 1.0),
				threshold: 1.0,
				evidence: []domain.EvidenceItem{
					fig("Ortaklardan Alacaklar", f.RelatedPartyReceivables),
					fig("Özkaynaklar", f.Equity),
					threshold("Kritik eşik", 1.0),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K025",
			Name:            "KDV yükü sektör ortalamasının altında",
			Description:     "Ödenecek KDV çıkmaması veya KDV yükünün varsayılan sektör ortalamasının çok altında kalması hasılat gizleme göstergesi olabilir.",
			MessageTemplate: "Net KDV yükü %s seviyesinde.",
			Recommendation:  "KDV beyannameleri ile yasal defter kayıtları karşılaştırılmalı, indirim listesi doğrulanmalıdır.",
			Statutes:        []string{"KDV-1", "KDV-29"},
		},
		eval: func(f aggregation.Figures, a config.Assumptions) *evaluation {
			if f.NetSales == 0 || f.CalculatedVAT == 0 {
				return nil
			}
			v := (f.CalculatedVAT - f.DeductibleVAT) / f.NetSales
			var sev domain.Severity
			switch {
			case v <= 0:
				sev = domain.SeverityCritical
			case v < a.SectorVATBurden/2:
				sev = domain.SeverityHigh
			default:
				sev = domain.SeverityLow
			}
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  sev,
				threshold: a.SectorVATBurden,
				evidence: []domain.EvidenceItem{
					fig("Hesaplanan KDV", f.CalculatedVAT),
					fig("İndirilecek KDV", f.DeductibleVAT),
					fig("Net Satışlar", f.NetSales),
					threshold("Varsayılan sektör KDV yükü", a.SectorVATBurden),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K026",
			Name:            "İşletme sermayesi yetersiz",
			Description:     "Dönen varlıkların kısa vadeli borçları karşılayamaması ödeme güçlüğü göstergesidir.",
			MessageTemplate: "Dönen varlıkların kısa vadeli borçlara oranı %s seviyesinde.",
			Recommendation:  "Nakit akış planlaması yapılmalı, borçların vade yapısı yeniden değerlendirilmelidir.",
			Statutes:        []string{"TTK-376"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.ShortTermLiabilities == 0 {
				return nil
			}
			v := f.CurrentAssets / f.ShortTermLiabilities
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTierLow(v, 1.0, 0.7),
				threshold: 0.7,
				evidence: []domain.EvidenceItem{
					fig("Dönen Varlıklar", f.CurrentAssets),
					fig("Kısa Vadeli Yabancı Kaynaklar", f.ShortTermLiabilities),
					threshold("Kritik eşik (alt sınır)", 0.7),
				},
			}
		},
	},
	{
		def: Definition{
			ID:              "K027",
			Name:            "Aktif büyüklüğü özkaynağın çok üzerinde",
			Description:     "Aktifin özkaynağa oranının aşırı yüksekliği, faaliyetin neredeyse tamamen borçla finanse edildiğini gösterir.",
			MessageTemplate: "Aktif toplamı özkaynağın %s katına ulaştı.",
			Recommendation:  "Sermaye yapısı güçlendirilmeli, ilişkili taraf borçlanmaları örtülü sermaye yönünden test edilmelidir.",
			Statutes:        []string{"KVK-12"},
		},
		eval: func(f aggregation.Figures, _ config.Assumptions) *evaluation {
			if f.Equity == 0 {
				return nil
			}
			v := f.TotalAssets / f.Equity
			return &evaluation{
				value:     v,
				display:   formatRatio(v),
				severity:  twoTier(v, 5, 10),
				threshold: 10,
				evidence: []domain.EvidenceItem{
					fig("Aktif Toplamı", f.TotalAssets),
					fig("Özkaynaklar", f.Equity),
					threshold("Kritik eşik (kat)", 10),
				},
			}
		},
	},
}

// Definitions returns the metadata of every registered criterion.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(catalog))
	for _, c := range catalog {
		defs = append(defs, c.def)
	}
	return defs
}

// twoTier classifies a value against warning/critical lower-bound-exceeded
// thresholds: >= crit CRITICAL, >= warn HIGH, else LOW.
func twoTier(v, warn, crit float64) domain.Severity {
	switch {
	case v >= crit:
		return domain.SeverityCritical
	case v >= warn:
		return domain.SeverityHigh
	default:
		return domain.SeverityLow
	}
}

// twoTierLow classifies a value where falling below the thresholds is the
// dangerous direction: < crit CRITICAL, < warn HIGH, else LOW.
func twoTierLow(v, warn, crit float64) domain.Severity {
	switch {
	case v < crit:
		return domain.SeverityCritical
	case v < warn:
		return domain.SeverityHigh
	default:
		return domain.SeverityLow
	}
}

func fig(label string, value float64) domain.EvidenceItem {
	return domain.EvidenceItem{
		Category: "figure",
		Label:    label,
		Value:    strconv.FormatFloat(value, 'f', 2, 64),
	}
}

func threshold(label string, value float64) domain.EvidenceItem {
	return domain.EvidenceItem{
		Category: "threshold",
		Label:    label,
		Value:    strconv.FormatFloat(value, 'f', 2, 64),
	}
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
