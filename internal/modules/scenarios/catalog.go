package scenarios

import (
	"time"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// Statutory value thresholds used by the scenario predicates, in TRY.
const (
	cashDocumentationThreshold = 30000
	deliveryNoteThreshold      = 50000
	invoiceThreshold           = 10000
	missingTaxIDThreshold      = 50000
	partnerLoanThreshold       = 250000
	largeTransactionThreshold  = 500000
	veryLargeThreshold         = 1000000
)

// yearEndWindowDays is how close to December 31 a transaction must fall to
// count as a year-end transaction.
const yearEndWindowDays = 5

// scenario binds a definition to its transaction predicate. Predicates are
// independent; each sees only the transaction and the request input.
type scenario struct {
	def   Definition
	match func(tx domain.Transaction, in Input) bool
}

func isYearEnd(date time.Time, windowDays int) bool {
	end := time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location())
	return !date.Before(end.AddDate(0, 0, -windowDays+1))
}

func isDecember(date time.Time) bool {
	return date.Month() == time.December
}

var catalog = []scenario{
	{
		Definition{
			ID: "S01", Name: "Riskli mükelleften alım",
			Description:          "Sahte veya yanıltıcı belge düzenleme riski tespit edilmiş bir mükelleften mal veya hizmet alınmıştır.",
			RiskScore:            95,
			Action:               domain.ActionAuditReferral,
			StatutoryBasis:       "VUK md. 359, 213 sayılı Kanun md. 153/A",
			ResponseDeadlineDays: 15,
			Recommendation:       "Riskli mükelleflerden yapılan alımların gerçekliği sevk irsaliyesi, ödeme dekontu ve taşıma belgeleriyle ispatlanmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.CounterpartyTaxID != "" && in.FlaggedTaxIDs[tx.CounterpartyTaxID]
		},
	},
	{
		Definition{
			ID: "S02", Name: "Tevsik zorunluluğu üzerinde nakit ödeme",
			Description:          "Tevsik zorunluluğu sınırını aşan tutar banka veya finans kurumu aracılığı olmaksızın nakit ödenmiştir.",
			RiskScore:            70,
			Action:               domain.ActionExplanationRequest,
			StatutoryBasis:       "VUK mük. md. 257, 459 sıra no.lu VUK Genel Tebliği",
			ResponseDeadlineDays: 30,
			Recommendation:       "Sınırı aşan tüm tahsilat ve ödemeler banka, PTT veya finans kurumları aracılığıyla yapılmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.PaymentMethod == domain.PaymentCash && tx.Amount >= cashDocumentationThreshold
		},
	},
	{
		Definition{
			ID: "S03", Name: "Sevk irsaliyesi bulunmayan mal hareketi",
			Description:          "Önemli tutarlı bir mal alım veya satımında sevk irsaliyesi ibraz edilememektedir.",
			RiskScore:            65,
			Action:               domain.ActionExplanationRequest,
			StatutoryBasis:       "VUK md. 230",
			ResponseDeadlineDays: 30,
			Recommendation:       "Her mal sevkiyatı için sevk irsaliyesi düzenlenmeli ve taşıma sırasında araçta bulundurulmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			isGoods := tx.Type == domain.TxGoodsPurchase || tx.Type == domain.TxGoodsSale
			return isGoods && tx.Amount >= deliveryNoteThreshold && !tx.HasDeliveryNote
		},
	},
	{
		Definition{
			ID: "S04", Name: "Yıl sonunda sözleşmesiz hizmet faturası",
			Description:          "Hesap döneminin son ayında, yazılı sözleşmeye dayanmayan hizmet veya komisyon faturası kaydedilmiştir.",
			RiskScore:            75,
			Action:               domain.ActionExplanationRequest,
			StatutoryBasis:       "KVK md. 13, VUK md. 3/B",
			ResponseDeadlineDays: 30,
			Recommendation:       "Hizmet ve komisyon ödemeleri yazılı sözleşme, hakediş ve hizmetin fiilen alındığını gösteren belgelerle desteklenmelidir.",
		},
		func(tx domain.Transaction, in Input) bool {
			isService := tx.Type == domain.TxService || tx.Type == domain.TxCommission
			return isService && isDecember(tx.Date) && !tx.HasContract
		},
	},
	{
		Definition{
			ID: "S05", Name: "Yılın son günlerinde büyük tutarlı işlem",
			Description:          "Hesap döneminin son günlerinde olağan işlem hacminin üzerinde bir işlem gerçekleştirilmiştir.",
			RiskScore:            45,
			Action:               domain.ActionMonitor,
			StatutoryBasis:       "VUK md. 134",
			ResponseDeadlineDays: 0,
			Recommendation:       "Dönem sonu işlemlerin ticari gerekçeleri ve karşı taraf mutabakatları dosyalanmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Amount >= largeTransactionThreshold && isYearEnd(tx.Date, yearEndWindowDays)
		},
	},
	{
		Definition{
			ID: "S06", Name: "Faturasız işlem",
			Description:          "Fatura düzenleme sınırını aşan bir işlem için fatura ibraz edilememektedir.",
			RiskScore:            85,
			Action:               domain.ActionAuditReferral,
			StatutoryBasis:       "VUK md. 229, md. 232",
			ResponseDeadlineDays: 15,
			Recommendation:       "Fatura sınırını aşan her teslim ve hizmet için yedi gün içinde fatura düzenlenmelidir.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Amount >= invoiceThreshold && !tx.HasInvoice
		},
	},
	{
		Definition{
			ID: "S07", Name: "Ortağa nakit borç verme",
			Description:          "Ortağa veya ilişkili kişiye banka sistemi dışında nakit borç kullandırılmıştır.",
			RiskScore:            60,
			Action:               domain.ActionInfoRequest,
			StatutoryBasis:       "KVK md. 13, KVK md. 12",
			ResponseDeadlineDays: 30,
			Recommendation:       "Ortaklara kullandırılan fonlar banka üzerinden aktarılmalı ve emsal faiz oranı üzerinden faturalandırılmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Type == domain.TxPartnerLoan && tx.PaymentMethod == domain.PaymentCash
		},
	},
	{
		Definition{
			ID: "S08", Name: "Yüksek tutarlı yuvarlak işlem",
			Description:          "İşlem tutarı dikkat çekici biçimde yuvarlaktır; gerçek bir ticari hesaplamaya dayanmayabilir.",
			RiskScore:            40,
			Action:               domain.ActionMonitor,
			StatutoryBasis:       "VUK md. 3/B",
			ResponseDeadlineDays: 0,
			Recommendation:       "Yuvarlak tutarlı faturaların dayanağı olan miktar ve birim fiyat hesaplamaları saklanmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			if tx.Amount < 100000 {
				return false
			}
			return tx.Amount == float64(int64(tx.Amount/100000))*100000
		},
	},
	{
		Definition{
			ID: "S09", Name: "Hizmet bedelinin senetle ödenmesi",
			Description:          "Bir hizmet bedeli, ticari teamüllere aykırı olarak bono ile ödenmiştir.",
			RiskScore:            35,
			Action:               domain.ActionMonitor,
			StatutoryBasis:       "VUK md. 3/B",
			ResponseDeadlineDays: 0,
			Recommendation:       "Hizmet ödemelerinde kullanılan kıymetli evrakın düzenlenme ve ciro zinciri belgelenmelidir.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Type == domain.TxService && tx.PaymentMethod == domain.PaymentNote
		},
	},
	{
		Definition{
			ID: "S10", Name: "Kira bedelinin nakit ödenmesi",
			Description:          "İşyeri kirası banka veya PTT aracılığı olmaksızın nakit ödenmiştir.",
			RiskScore:            55,
			Action:               domain.ActionInfoRequest,
			StatutoryBasis:       "GVK md. 94, 268 seri no.lu GVK Genel Tebliği",
			ResponseDeadlineDays: 30,
			Recommendation:       "İşyeri kira ödemeleri tutarına bakılmaksızın banka veya PTT aracılığıyla yapılmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Type == domain.TxRent && tx.PaymentMethod == domain.PaymentCash
		},
	},
	{
		Definition{
			ID: "S11", Name: "Vergi kimliği bilinmeyen tarafa komisyon",
			Description:          "Vergi kimlik numarası tespit edilemeyen bir tarafa komisyon ödemesi yapılmıştır.",
			RiskScore:            80,
			Action:               domain.ActionExplanationRequest,
			StatutoryBasis:       "VUK mük. md. 257, KVK md. 13",
			ResponseDeadlineDays: 30,
			Recommendation:       "Komisyon ödenen tarafların kimlik ve mükellefiyet bilgileri işlem öncesinde teyit edilmelidir.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Type == domain.TxCommission && tx.CounterpartyTaxID == ""
		},
	},
	{
		Definition{
			ID: "S12", Name: "Çok yüksek tutarlı tekil işlem",
			Description:          "Tek bir işlemin tutarı mükellefin olağan işlem hacmine göre çok yüksektir.",
			RiskScore:            50,
			Action:               domain.ActionInfoRequest,
			StatutoryBasis:       "VUK md. 134",
			ResponseDeadlineDays: 30,
			Recommendation:       "Yüksek tutarlı işlemlerin finansman kaynağı ve ticari gerekçesi belgelenmelidir.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Amount >= veryLargeThreshold
		},
	},
	{
		Definition{
			ID: "S13", Name: "Sözleşmesiz çekle hizmet ödemesi",
			Description:          "Yazılı sözleşmesi bulunmayan bir hizmet bedeli çekle ödenmiştir.",
			RiskScore:            30,
			Action:               domain.ActionMonitor,
			StatutoryBasis:       "VUK md. 3/B",
			ResponseDeadlineDays: 0,
			Recommendation:       "Süreklilik arz eden hizmet alımları yazılı sözleşmeye bağlanmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Type == domain.TxService && tx.PaymentMethod == domain.PaymentCheck && !tx.HasContract
		},
	},
	{
		Definition{
			ID: "S14", Name: "Resmi tatil gününde düzenlenen belge",
			Description:          "İşlem tarihi yılbaşı resmi tatiline denk gelmektedir; fiili teslim tarihi ile belge tarihi uyuşmayabilir.",
			RiskScore:            30,
			Action:               domain.ActionMonitor,
			StatutoryBasis:       "VUK md. 231",
			ResponseDeadlineDays: 0,
			Recommendation:       "Belge düzenleme tarihleri fiili teslim ve hizmet tarihleriyle uyumlu olmalıdır.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Date.Month() == time.January && tx.Date.Day() == 1
		},
	},
	{
		Definition{
			ID: "S15", Name: "Yüksek tutarlı ortak finansmanı",
			Description:          "Ortakla yapılan borç işleminin tutarı örtülü sermaye ve transfer fiyatlandırması yönünden incelemeyi gerektirecek düzeydedir.",
			RiskScore:            65,
			Action:               domain.ActionExplanationRequest,
			StatutoryBasis:       "KVK md. 12, KVK md. 13",
			ResponseDeadlineDays: 30,
			Recommendation:       "Ortaklarla yapılan borçlanmalarda emsal faiz uygulanmalı ve borcun özkaynağa oranı izlenmelidir.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Type == domain.TxPartnerLoan && tx.Amount >= partnerLoanThreshold
		},
	},
	{
		Definition{
			ID: "S16", Name: "Vergi kimliği eksik yüksek tutarlı işlem",
			Description:          "Önemli tutarlı bir işlemde karşı tarafın vergi kimlik numarası kaydedilmemiştir.",
			RiskScore:            55,
			Action:               domain.ActionInfoRequest,
			StatutoryBasis:       "VUK mük. md. 257",
			ResponseDeadlineDays: 30,
			Recommendation:       "Belirli tutarın üzerindeki işlemlerde karşı tarafın vergi kimlik numarası belge üzerinde gösterilmelidir.",
		},
		func(tx domain.Transaction, in Input) bool {
			return tx.Type != domain.TxCommission && tx.CounterpartyTaxID == "" && tx.Amount >= missingTaxIDThreshold
		},
	},
}

// DefinitionByID returns a scenario definition by id.
func DefinitionByID(id string) (Definition, bool) {
	for _, s := range catalog {
		if s.def.ID == id {
			return s.def, true
		}
	}
	return Definition{}, false
}

// Definitions returns every scenario definition in catalog order.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(catalog))
	for _, s := range catalog {
		defs = append(defs, s.def)
	}
	return defs
}
