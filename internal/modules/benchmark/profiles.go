package benchmark

// Tracked ratio ids. The comparator evaluates exactly this set, in this
// order, against whichever of them the taxpayer ratio set contains.
const (
	RatioCurrentRatio       = "CURRENT_RATIO"
	RatioQuickRatio         = "QUICK_RATIO"
	RatioCashToAssets       = "CASH_TO_ASSETS"
	RatioGrossMargin        = "GROSS_MARGIN"
	RatioNetMargin          = "NET_MARGIN"
	RatioDebtRatio          = "DEBT_RATIO"
	RatioEquityRatio        = "EQUITY_RATIO"
	RatioInventoryTurnover  = "INVENTORY_TURNOVER"
	RatioReceivableTurnover = "RECEIVABLE_TURNOVER"
	RatioRelatedReceivable  = "RELATED_RECEIVABLE_RATIO"
	RatioRelatedPayable     = "RELATED_PAYABLE_RATIO"
	RatioVATBurden          = "VAT_BURDEN"
)

// trackedRatios fixes the evaluation order and display names.
var trackedRatios = []struct {
	ID   string
	Name string
}{
	{RatioCurrentRatio, "Cari Oran"},
	{RatioQuickRatio, "Asit-Test Oranı"},
	{RatioCashToAssets, "Hazır Değerler / Aktif"},
	{RatioGrossMargin, "Brüt Kâr Marjı (%)"},
	{RatioNetMargin, "Net Kâr Marjı (%)"},
	{RatioDebtRatio, "Kaldıraç Oranı"},
	{RatioEquityRatio, "Özkaynak Oranı"},
	{RatioInventoryTurnover, "Stok Devir Hızı"},
	{RatioReceivableTurnover, "Alacak Devir Hızı"},
	{RatioRelatedReceivable, "Ortaklardan Alacaklar / Aktif"},
	{RatioRelatedPayable, "Ortaklara Borçlar / Özkaynak"},
	{RatioVATBurden, "KDV Yükü (%)"},
}

// escalationRatios carry a severity multiplier: they map to known evasion
// signatures (cash hoarding, related-party financing, missing VAT burden),
// so a deviation beyond 30% is escalated one severity level.
var escalationRatios = map[string]bool{
	RatioCashToAssets:      true,
	RatioRelatedReceivable: true,
	RatioRelatedPayable:    true,
	RatioVATBurden:         true,
}

// profiles is the static sector benchmark table, keyed by NACE-style
// sector code. Ranges are {min, max, avg}.
var profiles = map[string]Profile{
	"A-01": {
		Code: "A-01", Name: "Bitkisel ve Hayvansal Üretim",
		RiskNote: "Tarım sektöründe müstahsil makbuzu düzeni ve stok değerlemesi başlıca risk alanlarıdır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.2, 2.8, 1.9},
			RatioQuickRatio:         {0.6, 1.4, 0.9},
			RatioCashToAssets:       {0.03, 0.12, 0.07},
			RatioGrossMargin:        {10, 35, 21},
			RatioNetMargin:          {2, 12, 6},
			RatioDebtRatio:          {0.35, 0.65, 0.50},
			RatioEquityRatio:        {0.35, 0.65, 0.50},
			RatioInventoryTurnover:  {2, 6, 4},
			RatioReceivableTurnover: {3, 9, 6},
			RatioRelatedReceivable:  {0, 0.08, 0.03},
			RatioRelatedPayable:     {0, 0.6, 0.2},
			RatioVATBurden:          {0.5, 2.5, 1.2},
		},
	},
	"B-08": {
		Code: "B-08", Name: "Madencilik ve Taş Ocakçılığı",
		RiskNote: "Madencilikte amortisman ve ruhsat giderlerinin aktifleştirilmesi sık denetim konusudur.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.0, 2.2, 1.5},
			RatioQuickRatio:         {0.7, 1.6, 1.1},
			RatioCashToAssets:       {0.02, 0.10, 0.05},
			RatioGrossMargin:        {15, 45, 28},
			RatioNetMargin:          {4, 18, 10},
			RatioDebtRatio:          {0.40, 0.70, 0.55},
			RatioEquityRatio:        {0.30, 0.60, 0.45},
			RatioInventoryTurnover:  {4, 10, 7},
			RatioReceivableTurnover: {4, 10, 7},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.8, 0.3},
			RatioVATBurden:          {1.0, 3.5, 2.0},
		},
	},
	"C-10": {
		Code: "C-10", Name: "Gıda Ürünleri İmalatı",
		RiskNote: "Gıda imalatında fire oranları ve müstahsilden alımların belgelendirilmesi kritik risk alanlarıdır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.2, 2.4, 1.7},
			RatioQuickRatio:         {0.6, 1.3, 0.9},
			RatioCashToAssets:       {0.03, 0.11, 0.06},
			RatioGrossMargin:        {12, 30, 19},
			RatioNetMargin:          {2, 10, 5},
			RatioDebtRatio:          {0.45, 0.70, 0.58},
			RatioEquityRatio:        {0.30, 0.55, 0.42},
			RatioInventoryTurnover:  {5, 12, 8},
			RatioReceivableTurnover: {5, 12, 8},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.7, 0.25},
			RatioVATBurden:          {0.8, 2.8, 1.6},
		},
	},
	"C-13": {
		Code: "C-13", Name: "Tekstil Ürünleri İmalatı",
		RiskNote: "Tekstilde fason üretim faturaları ve ihracat iade talepleri yoğun incelenen alanlardır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.1, 2.3, 1.6},
			RatioQuickRatio:         {0.5, 1.2, 0.8},
			RatioCashToAssets:       {0.02, 0.10, 0.05},
			RatioGrossMargin:        {10, 28, 17},
			RatioNetMargin:          {1.5, 9, 4},
			RatioDebtRatio:          {0.50, 0.75, 0.62},
			RatioEquityRatio:        {0.25, 0.50, 0.38},
			RatioInventoryTurnover:  {3, 8, 5},
			RatioReceivableTurnover: {4, 9, 6},
			RatioRelatedReceivable:  {0, 0.07, 0.03},
			RatioRelatedPayable:     {0, 0.9, 0.35},
			RatioVATBurden:          {0.6, 2.4, 1.3},
		},
	},
	"C-25": {
		Code: "C-25", Name: "Metal Ürünleri İmalatı",
		RiskNote: "Metal sektöründe hurda alımları ve KDV tevkifatı uygulaması başlıca risk kaynaklarıdır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.2, 2.5, 1.8},
			RatioQuickRatio:         {0.6, 1.4, 0.9},
			RatioCashToAssets:       {0.03, 0.12, 0.06},
			RatioGrossMargin:        {12, 32, 20},
			RatioNetMargin:          {3, 12, 6},
			RatioDebtRatio:          {0.45, 0.70, 0.57},
			RatioEquityRatio:        {0.30, 0.55, 0.43},
			RatioInventoryTurnover:  {4, 10, 6},
			RatioReceivableTurnover: {4, 10, 7},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.8, 0.3},
			RatioVATBurden:          {0.9, 3.0, 1.8},
		},
	},
	"F-41": {
		Code: "F-41", Name: "Bina İnşaatı",
		RiskNote: "İnşaatta yıllara sari iş hakedişleri, taşeron faturaları ve arsa payı karşılığı işlemler yüksek risk taşır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.0, 2.0, 1.4},
			RatioQuickRatio:         {0.4, 1.0, 0.6},
			RatioCashToAssets:       {0.02, 0.09, 0.05},
			RatioGrossMargin:        {15, 40, 25},
			RatioNetMargin:          {4, 18, 9},
			RatioDebtRatio:          {0.55, 0.80, 0.68},
			RatioEquityRatio:        {0.20, 0.45, 0.32},
			RatioInventoryTurnover:  {1, 4, 2},
			RatioReceivableTurnover: {3, 8, 5},
			RatioRelatedReceivable:  {0, 0.10, 0.04},
			RatioRelatedPayable:     {0, 1.2, 0.5},
			RatioVATBurden:          {0.4, 2.0, 1.0},
		},
	},
	"G-45": {
		Code: "G-45", Name: "Motorlu Taşıtların Ticareti ve Onarımı",
		RiskNote: "Araç ticaretinde noter satışı-fatura uyumu ve ikinci el KDV matrahı sık incelenir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.1, 2.0, 1.5},
			RatioQuickRatio:         {0.4, 1.0, 0.6},
			RatioCashToAssets:       {0.03, 0.12, 0.07},
			RatioGrossMargin:        {6, 16, 10},
			RatioNetMargin:          {1, 6, 3},
			RatioDebtRatio:          {0.50, 0.78, 0.64},
			RatioEquityRatio:        {0.22, 0.50, 0.36},
			RatioInventoryTurnover:  {5, 14, 9},
			RatioReceivableTurnover: {8, 20, 13},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.7, 0.25},
			RatioVATBurden:          {0.8, 2.6, 1.5},
		},
	},
	"G-46": {
		Code: "G-46", Name: "Toptan Ticaret",
		RiskNote: "Toptan ticarette sahte belge ile alış maliyeti şişirme ve zincirleme fatura riski belirgindir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.1, 2.2, 1.6},
			RatioQuickRatio:         {0.6, 1.4, 0.9},
			RatioCashToAssets:       {0.03, 0.13, 0.07},
			RatioGrossMargin:        {6, 18, 11},
			RatioNetMargin:          {1, 6, 3},
			RatioDebtRatio:          {0.50, 0.75, 0.63},
			RatioEquityRatio:        {0.25, 0.50, 0.37},
			RatioInventoryTurnover:  {6, 16, 10},
			RatioReceivableTurnover: {6, 14, 9},
			RatioRelatedReceivable:  {0, 0.07, 0.03},
			RatioRelatedPayable:     {0, 0.8, 0.3},
			RatioVATBurden:          {0.7, 2.4, 1.4},
		},
	},
	"G-47": {
		Code: "G-47", Name: "Perakende Ticaret",
		RiskNote: "Perakendede ÖKC hasılatı ile beyan uyumu ve kayıt dışı nakit satış başlıca risk alanlarıdır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.0, 2.0, 1.4},
			RatioQuickRatio:         {0.3, 0.9, 0.5},
			RatioCashToAssets:       {0.04, 0.14, 0.08},
			RatioGrossMargin:        {8, 24, 15},
			RatioNetMargin:          {1, 7, 3.5},
			RatioDebtRatio:          {0.50, 0.78, 0.65},
			RatioEquityRatio:        {0.22, 0.50, 0.35},
			RatioInventoryTurnover:  {6, 18, 11},
			RatioReceivableTurnover: {12, 40, 24},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.7, 0.25},
			RatioVATBurden:          {1.0, 3.2, 1.9},
		},
	},
	"H-49": {
		Code: "H-49", Name: "Kara Taşımacılığı",
		RiskNote: "Taşımacılıkta akaryakıt faturaları ve araç amortismanları yoğun incelenen kalemlerdir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {0.9, 1.8, 1.3},
			RatioQuickRatio:         {0.7, 1.6, 1.1},
			RatioCashToAssets:       {0.03, 0.11, 0.06},
			RatioGrossMargin:        {10, 28, 18},
			RatioNetMargin:          {2, 10, 5},
			RatioDebtRatio:          {0.50, 0.78, 0.64},
			RatioEquityRatio:        {0.22, 0.50, 0.36},
			RatioInventoryTurnover:  {15, 40, 25},
			RatioReceivableTurnover: {5, 12, 8},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.8, 0.3},
			RatioVATBurden:          {0.6, 2.2, 1.2},
		},
	},
	"I-55": {
		Code: "I-55", Name: "Konaklama",
		RiskNote: "Konaklamada doluluk-hasılat uyumu ve acente komisyonlarının belgelendirilmesi risklidir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {0.8, 1.6, 1.1},
			RatioQuickRatio:         {0.6, 1.4, 0.9},
			RatioCashToAssets:       {0.02, 0.09, 0.05},
			RatioGrossMargin:        {20, 50, 33},
			RatioNetMargin:          {3, 15, 8},
			RatioDebtRatio:          {0.45, 0.75, 0.60},
			RatioEquityRatio:        {0.25, 0.55, 0.40},
			RatioInventoryTurnover:  {20, 60, 35},
			RatioReceivableTurnover: {8, 24, 14},
			RatioRelatedReceivable:  {0, 0.07, 0.03},
			RatioRelatedPayable:     {0, 1.0, 0.4},
			RatioVATBurden:          {1.2, 3.8, 2.2},
		},
	},
	"I-56": {
		Code: "I-56", Name: "Yiyecek ve İçecek Hizmetleri",
		RiskNote: "Yiyecek-içecek hizmetlerinde ÖKC kullanımı ve nakit hasılatın kayda alınması temel risktir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {0.8, 1.6, 1.1},
			RatioQuickRatio:         {0.4, 1.0, 0.6},
			RatioCashToAssets:       {0.05, 0.15, 0.09},
			RatioGrossMargin:        {25, 55, 38},
			RatioNetMargin:          {2, 12, 6},
			RatioDebtRatio:          {0.45, 0.75, 0.60},
			RatioEquityRatio:        {0.25, 0.55, 0.40},
			RatioInventoryTurnover:  {15, 45, 26},
			RatioReceivableTurnover: {20, 60, 35},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.8, 0.3},
			RatioVATBurden:          {1.5, 4.5, 2.8},
		},
	},
	"J-62": {
		Code: "J-62", Name: "Bilgisayar Programlama ve Danışmanlık",
		RiskNote: "Yazılım sektöründe yurt dışı hizmet ihracı istisnası ve ilişkili şirket faturalaşması incelenir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.5, 3.5, 2.3},
			RatioQuickRatio:         {1.4, 3.2, 2.1},
			RatioCashToAssets:       {0.08, 0.25, 0.15},
			RatioGrossMargin:        {30, 70, 48},
			RatioNetMargin:          {8, 30, 17},
			RatioDebtRatio:          {0.20, 0.50, 0.35},
			RatioEquityRatio:        {0.50, 0.80, 0.65},
			RatioInventoryTurnover:  {30, 90, 55},
			RatioReceivableTurnover: {4, 10, 7},
			RatioRelatedReceivable:  {0, 0.10, 0.04},
			RatioRelatedPayable:     {0, 0.5, 0.15},
			RatioVATBurden:          {1.8, 5.0, 3.0},
		},
	},
	"L-68": {
		Code: "L-68", Name: "Gayrimenkul Faaliyetleri",
		RiskNote: "Gayrimenkulde tapu harcı matrahı ile fatura bedeli uyumsuzluğu ve kira geliri beyanı risklidir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {0.8, 2.0, 1.3},
			RatioQuickRatio:         {0.5, 1.5, 0.9},
			RatioCashToAssets:       {0.02, 0.08, 0.04},
			RatioGrossMargin:        {25, 60, 40},
			RatioNetMargin:          {8, 30, 17},
			RatioDebtRatio:          {0.40, 0.70, 0.55},
			RatioEquityRatio:        {0.30, 0.60, 0.45},
			RatioInventoryTurnover:  {0.5, 2.5, 1.2},
			RatioReceivableTurnover: {3, 9, 5},
			RatioRelatedReceivable:  {0, 0.12, 0.05},
			RatioRelatedPayable:     {0, 1.5, 0.6},
			RatioVATBurden:          {0.5, 2.0, 1.1},
		},
	},
	"M-69": {
		Code: "M-69", Name: "Hukuk ve Muhasebe Faaliyetleri",
		RiskNote: "Serbest meslek kazançlarında tahsilat esası ve serbest meslek makbuzu düzeni temel inceleme alanıdır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.5, 3.5, 2.4},
			RatioQuickRatio:         {1.4, 3.3, 2.2},
			RatioCashToAssets:       {0.08, 0.22, 0.14},
			RatioGrossMargin:        {40, 80, 58},
			RatioNetMargin:          {10, 35, 21},
			RatioDebtRatio:          {0.15, 0.45, 0.30},
			RatioEquityRatio:        {0.55, 0.85, 0.70},
			RatioInventoryTurnover:  {40, 120, 70},
			RatioReceivableTurnover: {5, 12, 8},
			RatioRelatedReceivable:  {0, 0.08, 0.03},
			RatioRelatedPayable:     {0, 0.4, 0.12},
			RatioVATBurden:          {2.0, 5.5, 3.4},
		},
	},
	"N-78": {
		Code: "N-78", Name: "İstihdam Faaliyetleri",
		RiskNote: "İstihdam hizmetlerinde SGK prim yükümlülükleri ve fatura-bordro uyumu yakından izlenir.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.2, 2.4, 1.7},
			RatioQuickRatio:         {1.1, 2.3, 1.6},
			RatioCashToAssets:       {0.05, 0.16, 0.09},
			RatioGrossMargin:        {12, 30, 20},
			RatioNetMargin:          {2, 10, 5},
			RatioDebtRatio:          {0.35, 0.65, 0.50},
			RatioEquityRatio:        {0.35, 0.65, 0.50},
			RatioInventoryTurnover:  {50, 150, 90},
			RatioReceivableTurnover: {6, 14, 9},
			RatioRelatedReceivable:  {0, 0.06, 0.02},
			RatioRelatedPayable:     {0, 0.5, 0.18},
			RatioVATBurden:          {1.4, 4.0, 2.5},
		},
	},
	"S-95": {
		Code: "S-95", Name: "Bilgisayar ve Ev Eşyası Onarımı",
		RiskNote: "Onarım hizmetlerinde yedek parça alış belgeleri ve nakit hasılat kaydı başlıca risk alanlarıdır.",
		Ranges: map[string]Range{
			RatioCurrentRatio:       {1.0, 2.0, 1.4},
			RatioQuickRatio:         {0.5, 1.2, 0.8},
			RatioCashToAssets:       {0.05, 0.15, 0.09},
			RatioGrossMargin:        {20, 45, 31},
			RatioNetMargin:          {3, 12, 7},
			RatioDebtRatio:          {0.40, 0.70, 0.55},
			RatioEquityRatio:        {0.30, 0.60, 0.45},
			RatioInventoryTurnover:  {6, 18, 11},
			RatioReceivableTurnover: {10, 30, 18},
			RatioRelatedReceivable:  {0, 0.05, 0.02},
			RatioRelatedPayable:     {0, 0.6, 0.2},
			RatioVATBurden:          {1.2, 3.6, 2.2},
		},
	},
}

// ProfileByCode returns the benchmark profile for a sector code.
func ProfileByCode(code string) (Profile, bool) {
	p, ok := profiles[code]
	return p, ok
}

// SectorCodes lists every sector with a benchmark profile.
func SectorCodes() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	return codes
}
