package legalref

// Reference is one statute excerpt. References are static reference data:
// loaded once, never mutated, shared across concurrent evaluations.
type Reference struct {
	ID      string `json:"id"`
	Statute string `json:"statute"`
	Article string `json:"article"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

// references is the built-in statute catalog. Excerpts are abridged; the
// full texts ship as data in deployed systems and can be loaded over this
// catalog via LoadFromDB.
var references = []Reference{
	{"VUK-30", "Vergi Usul Kanunu", "Madde 30", "Re'sen vergi tarhı",
		"Vergi matrahının tamamen veya kısmen defter, kayıt ve belgelere dayanılarak tespitine imkan bulunmayan hallerde matrah re'sen takdir olunur."},
	{"VUK-134", "Vergi Usul Kanunu", "Madde 134", "Vergi incelemesinin maksadı",
		"Vergi incelemesinden maksat, ödenmesi gereken vergilerin doğruluğunu araştırmak, tespit etmek ve sağlamaktır."},
	{"VUK-153A", "Vergi Usul Kanunu", "Madde 153/A", "Teminat uygulaması",
		"Sahte belge düzenleme fiili nedeniyle mükellefiyeti terkin edilenlerin yeniden işe başlamalarında teminat istenir."},
	{"VUK-186", "Vergi Usul Kanunu", "Madde 186", "Envanter çıkarmak",
		"Envanter çıkarmak, bilanço günündeki mevcutları, alacakları ve borçları saymak, ölçmek, tartmak ve değerlemek suretiyle kesin bir şekilde tespit etmektir."},
	{"VUK-229", "Vergi Usul Kanunu", "Madde 229", "Faturanın tarifi",
		"Fatura, satılan emtia veya yapılan iş karşılığında müşterinin borçlandığı meblağı göstermek üzere düzenlenen ticari vesikadır."},
	{"VUK-230", "Vergi Usul Kanunu", "Madde 230", "Faturanın şekli ve sevk irsaliyesi",
		"Malın alıcıya teslim edilmek üzere satıcı tarafından taşındığı hallerde sevk irsaliyesi düzenlenmesi ve taşıtta bulundurulması şarttır."},
	{"VUK-231", "Vergi Usul Kanunu", "Madde 231", "Fatura nizamı",
		"Fatura, malın teslimi veya hizmetin yapıldığı tarihten itibaren azami yedi gün içinde düzenlenir."},
	{"VUK-232", "Vergi Usul Kanunu", "Madde 232", "Fatura kullanma mecburiyeti",
		"Birinci ve ikinci sınıf tüccarlar sattıkları emtia veya yaptıkları işler için fatura vermek, satın aldıkları emtia ve hizmetler için fatura istemek mecburiyetindedirler."},
	{"VUK-320", "Vergi Usul Kanunu", "Madde 320", "Amortisman uygulama süresi",
		"Amortisman süresi, kıymetlerin aktife girdiği yıldan başlar ve her yılın amortismanı ancak o yıla ait değerlemede nazara alınabilir."},
	{"VUK-323", "Vergi Usul Kanunu", "Madde 323", "Şüpheli alacaklar",
		"Dava veya icra safhasında bulunan alacaklar ile yapılan protestoya veya yazı ile bir defadan fazla istenilmesine rağmen borçlu tarafından ödenmemiş küçük alacaklar şüpheli alacak sayılır."},
	{"VUK-359", "Vergi Usul Kanunu", "Madde 359", "Kaçakçılık suçları",
		"Muhteviyatı itibariyle yanıltıcı belge düzenleyenler veya bu belgeleri kullananlar hakkında hapis cezasına hükmolunur."},
	{"VUK-3B", "Vergi Usul Kanunu", "Madde 3/B", "İspat ve iktisadi gerçeklik",
		"Vergilendirmede vergiyi doğuran olay ve bu olaya ilişkin muamelelerin gerçek mahiyeti esastır."},
	{"VUK-M257", "Vergi Usul Kanunu", "Mükerrer Madde 257", "Yetki ve tevsik zorunluluğu",
		"Maliye Bakanlığı, mükelleflere muameleleri ile ilgili tahsilat ve ödemelerini banka veya benzeri finans kurumlarınca düzenlenen belgelerle tevsik etmeleri zorunluluğunu getirmeye yetkilidir."},
	{"KVK-9", "Kurumlar Vergisi Kanunu", "Madde 9", "Zarar mahsubu",
		"Kurumlar vergisi beyannamesinde her yıla ilişkin tutarlar ayrı ayrı gösterilmek şartıyla, beş yıldan fazla nakledilmemek üzere geçmiş yılların zararları indirim konusu yapılır."},
	{"KVK-10", "Kurumlar Vergisi Kanunu", "Madde 10", "Diğer indirimler",
		"Genel ve özel bütçeli kamu idarelerine makbuz karşılığında yapılan bağış ve yardımların toplamının o yıla ait kurum kazancının yüzde beşine kadar olan kısmı indirim konusu yapılır."},
	{"KVK-11", "Kurumlar Vergisi Kanunu", "Madde 11", "Kabul edilmeyen indirimler",
		"Öz sermaye üzerinden ödenen veya hesaplanan faizler ile örtülü sermaye üzerinden ödenen faizler kurum kazancının tespitinde indirim olarak kabul edilmez."},
	{"KVK-12", "Kurumlar Vergisi Kanunu", "Madde 12", "Örtülü sermaye",
		"Kurumların ortaklarından veya ortaklarla ilişkili kişilerden temin ederek işletmede kullandıkları borçların, hesap dönemi içinde herhangi bir tarihte kurumun öz sermayesinin üç katını aşan kısmı örtülü sermaye sayılır."},
	{"KVK-13", "Kurumlar Vergisi Kanunu", "Madde 13", "Transfer fiyatlandırması yoluyla örtülü kazanç dağıtımı",
		"Kurumlar, ilişkili kişilerle emsallere uygunluk ilkesine aykırı olarak tespit ettikleri bedel üzerinden mal veya hizmet alım satımında bulunursa, kazanç tamamen veya kısmen transfer fiyatlandırması yoluyla örtülü olarak dağıtılmış sayılır."},
	{"KDV-1", "Katma Değer Vergisi Kanunu", "Madde 1", "Verginin konusu",
		"Türkiye'de ticari, sınai, zirai faaliyet ve serbest meslek faaliyeti çerçevesinde yapılan teslim ve hizmetler katma değer vergisine tabidir."},
	{"KDV-29", "Katma Değer Vergisi Kanunu", "Madde 29", "Vergi indirimi",
		"Mükellefler, yaptıkları vergiye tabi işlemler üzerinden hesaplanan katma değer vergisinden, kendilerine yapılan teslim ve hizmetler dolayısıyla hesaplanarak düzenlenen fatura ve benzeri vesikalarda gösterilen katma değer vergisini indirebilirler."},
	{"KDV-34", "Katma Değer Vergisi Kanunu", "Madde 34", "İndirimin belgelendirilmesi",
		"Yurt içinden sağlanan veya ithal olunan mal ve hizmetlere ait katma değer vergisi, alış faturası veya benzeri vesikalar üzerinde ayrıca gösterilmek ve bu vesikalar kanuni defterlere kaydedilmek şartıyla indirilebilir."},
	{"GVK-40", "Gelir Vergisi Kanunu", "Madde 40", "İndirilecek giderler",
		"Safi kazancın tespit edilmesi için ticari kazancın elde edilmesi ve idame ettirilmesi için yapılan genel giderler indirilir."},
	{"GVK-94", "Gelir Vergisi Kanunu", "Madde 94", "Vergi tevkifatı",
		"Ticaret şirketleri, maddede sayılan ödemeleri nakden veya hesaben yaptıkları sırada, istihkak sahiplerinin gelir vergilerine mahsuben tevkifat yapmaya mecburdurlar."},
	{"TTK-376", "Türk Ticaret Kanunu", "Madde 376", "Sermayenin kaybı, borca batıklık",
		"Son yıllık bilançodan, sermaye ile kanuni yedek akçeler toplamının yarısının zarar sebebiyle karşılıksız kaldığı anlaşılırsa, yönetim kurulu genel kurulu hemen toplantıya çağırır ve uygun gördüğü iyileştirici önlemleri sunar."},
	{"5510-88", "Sosyal Sigortalar ve Genel Sağlık Sigortası Kanunu", "Madde 88", "Primlerin ödenmesi",
		"Kuruma fiilen ödenmeyen prim tutarları, gelir vergisi ve kurumlar vergisi uygulamasında gider yazılamaz."},
}

// crossIndex maps a finding id (rule criterion, bookkeeping pattern or
// transaction scenario) to the statute references supporting it, in
// citation order. An evidence bundle's reference list is exactly this
// subset, resolved through the repository.
var crossIndex = map[string][]string{
	// Rule criteria
	"K001": {"VUK-134"},
	"K002": {"VUK-134", "VUK-30"},
	"K003": {"KVK-13"},
	"K004": {"KVK-12"},
	"K005": {"TTK-376"},
	"K006": {"KVK-13", "VUK-30"},
	"K007": {"KVK-9", "VUK-30"},
	"K008": {"VUK-186"},
	"K009": {"KDV-29", "KDV-34"},
	"K010": {"VUK-134", "KVK-11"},
	"K011": {"VUK-134"},
	"K012": {"VUK-323"},
	"K013": {"VUK-186"},
	"K014": {"VUK-M257"},
	"K015": {"KVK-11"},
	"K016": {"KVK-13"},
	"K017": {"TTK-376"},
	"K018": {"VUK-134"},
	"K019": {"VUK-229"},
	"K020": {"GVK-40"},
	"K021": {"KVK-9", "TTK-376"},
	"K022": {"VUK-134"},
	"K023": {"VUK-134"},
	"K024": {"KVK-13"},
	"K025": {"KDV-1", "KDV-29"},
	"K026": {"TTK-376"},
	"K027": {"KVK-12"},

	// Bookkeeping patterns
	"RAM01": {"VUK-30"},
	"RAM02": {"KVK-11"},
	"RAM03": {"VUK-186"},
	"RAM04": {"VUK-320"},
	"RAM05": {"5510-88"},
	"RAM06": {"VUK-30", "VUK-134"},
	"RAM07": {"KDV-29"},
	"RAM08": {"KVK-13", "KVK-12"},
	"RAM09": {"GVK-94"},
	"RAM10": {"VUK-186", "VUK-30"},
	"RAM11": {"VUK-320"},
	"RAM12": {"KDV-29", "KDV-34"},
	"RAM13": {"KVK-13"},
	"RAM14": {"KVK-10"},
	"RAM15": {"TTK-376"},
	"RAM16": {"KVK-9"},
	"RAM17": {"GVK-94"},
	"RAM18": {"KVK-11"},
	"RAM19": {"VUK-320"},
	"RAM20": {"VUK-134"},

	// Transaction scenarios
	"S01": {"VUK-359", "VUK-153A"},
	"S02": {"VUK-M257"},
	"S03": {"VUK-230"},
	"S04": {"KVK-13", "VUK-3B"},
	"S05": {"VUK-134"},
	"S06": {"VUK-229", "VUK-232"},
	"S07": {"KVK-13", "KVK-12"},
	"S08": {"VUK-3B"},
	"S09": {"VUK-3B"},
	"S10": {"GVK-94"},
	"S11": {"VUK-M257", "KVK-13"},
	"S12": {"VUK-134"},
	"S13": {"VUK-3B"},
	"S14": {"VUK-231"},
	"S15": {"KVK-12", "KVK-13"},
	"S16": {"VUK-M257"},
}
