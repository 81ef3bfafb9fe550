package evidence

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/benchmark"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/criteria"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/legalref"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/patterns"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/scenarios"
)

func newTestBuilder() (*Builder, *legalref.Repository) {
	repo := legalref.New()
	return NewBuilder(repo), repo
}

func sampleCriterionFinding() criteria.Finding {
	return criteria.Finding{
		CriterionID:    "K004",
		Name:           "Örtülü sermaye riski",
		Severity:       domain.SeverityCritical,
		Message:        "Ortaklara borçlar özkaynağın 3.00 katına ulaşmış.",
		Value:          3.0,
		Threshold:      3.0,
		Recommendation: "Ortak borçları sermayeye dönüştürülmeli veya kapatılmalıdır.",
		Statutes:       []string{"KVK-12"},
		Evidence: []domain.EvidenceItem{
			{Category: "figure", Label: "Ortaklara borçlar", Value: "900000.00 TL"},
			{Category: "threshold", Label: "Yasal eşik", Value: "3.00"},
		},
	}
}

func TestFromCriterion_LegalRefsAreExactlyCrossIndexedSubset(t *testing.T) {
	builder, repo := newTestBuilder()
	finding := sampleCriterionFinding()

	bundle := builder.FromCriterion(finding)

	expected := repo.ForFinding("K004")
	require.NotEmpty(t, expected)
	assert.Equal(t, expected, bundle.LegalReferences)
	assert.Equal(t, "K004", bundle.FindingID)
	assert.Equal(t, domain.SeverityCritical, bundle.Severity)
	assert.NotEmpty(t, bundle.ID)
	assert.Equal(t, []string{finding.Recommendation}, bundle.Recommendations)
}

func TestFromCriterion_CarriesEvidenceUnchanged(t *testing.T) {
	builder, _ := newTestBuilder()
	finding := sampleCriterionFinding()

	bundle := builder.FromCriterion(finding)

	// Assembly only: the bundle carries the finding's evidence untouched
	// and records value and threshold in the formula trace.
	assert.Equal(t, finding.Evidence, bundle.Items)
	require.Len(t, bundle.FormulaTrace, 2)
	assert.Contains(t, bundle.FormulaTrace[0], "K004")
	assert.Contains(t, bundle.FormulaTrace[1], "3.0000")
}

func TestFromPattern_CorrectiveValueInNextSteps(t *testing.T) {
	builder, repo := newTestBuilder()
	corrective := 25000.0
	finding := patterns.Finding{
		PatternID:        "RAM05",
		Name:             "Ödenmemiş SGK primleri giderleştirilmiş",
		Severity:         domain.SeverityHigh,
		Explanation:      "Fiilen ödenmemiş 25000.00 TL SGK primi gider yazılmış görünüyor.",
		CorrectTreatment: "Ödenmemiş tutar KKEG olarak matraha eklenmelidir.",
		AutoCorrectable:  true,
		CorrectiveValue:  &corrective,
	}

	bundle := builder.FromPattern(finding)

	assert.Equal(t, repo.ForFinding("RAM05"), bundle.LegalReferences)
	require.Len(t, bundle.NextSteps, 1)
	// The corrective amount is rendered with Turkish separators.
	assert.Contains(t, bundle.NextSteps[0], "₺25.000,00")
}

func TestFromAssessment_OneBundlePerMatchedScenario(t *testing.T) {
	builder, repo := newTestBuilder()
	a := scenarios.Assessment{
		Transaction: domain.Transaction{
			Date:         time.Date(2024, time.December, 29, 0, 0, 0, 0, time.UTC),
			Amount:       550000,
			Counterparty: "Satıcı Ltd.",
		},
		ScenarioIDs: []string{"S02", "S05"},
		Score:       57.5,
		Action:      domain.ActionExplanationRequest,
	}

	bundles := builder.FromAssessment(a)

	require.Len(t, bundles, 2)
	assert.Equal(t, "S02", bundles[0].FindingID)
	assert.Equal(t, repo.ForFinding("S02"), bundles[0].LegalReferences)
	assert.Equal(t, "S05", bundles[1].FindingID)
	assert.Equal(t, repo.ForFinding("S05"), bundles[1].LegalReferences)
	// The explanation-request action maps to HIGH severity.
	assert.Equal(t, domain.SeverityHigh, bundles[0].Severity)
}

func TestFromBenchmark_SkipsNormalAndUnfound(t *testing.T) {
	builder, _ := newTestBuilder()

	assert.Nil(t, builder.FromBenchmark(benchmark.Result{Found: false}))

	result := benchmark.Result{
		SectorCode: "G-47",
		SectorName: "Perakende Ticaret",
		Found:      true,
		Deviations: []benchmark.Deviation{
			{RatioID: "CURRENT_RATIO", Name: "Cari Oran", Value: 1.5, Type: benchmark.DeviationNormal},
			{
				RatioID:  "GROSS_MARGIN",
				Name:     "Brüt Kâr Marjı (%)",
				Value:    5,
				Range:    benchmark.Range{Min: 8, Max: 24},
				Type:     benchmark.DeviationBelow,
				Percent:  37.5,
				Severity: domain.SeverityMedium,
			},
		},
	}

	bundles := builder.FromBenchmark(result)

	require.Len(t, bundles, 1)
	b := bundles[0]
	assert.Equal(t, "GROSS_MARGIN", b.FindingID)
	require.NotNil(t, b.Sector)
	assert.Equal(t, "G-47", b.Sector.Code)
	assert.Equal(t, "BELOW", b.Sector.DeviationType)
	assert.InDelta(t, 37.5, b.Sector.DeviationPercent, 1e-9)
}

func TestRenderMarkdown_SectionsPresent(t *testing.T) {
	builder, _ := newTestBuilder()
	bundle := builder.FromCriterion(sampleCriterionFinding())

	md := RenderMarkdown(bundle)

	assert.True(t, strings.HasPrefix(md, "# Örtülü sermaye riski"))
	assert.Contains(t, md, "**Önem derecesi:** CRITICAL")
	assert.Contains(t, md, "## Kanıtlar")
	assert.Contains(t, md, "## Yasal dayanak")
	assert.Contains(t, md, "Kurumlar Vergisi Kanunu Madde 12")
	assert.Contains(t, md, "## Öneriler")
}

func TestRenderHTML_ConvertsMarkdown(t *testing.T) {
	builder, _ := newTestBuilder()
	bundle := builder.FromCriterion(sampleCriterionFinding())

	html, err := RenderHTML(bundle)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "<h2>Kanıtlar</h2>")
}

func TestMsgpackRoundTrip(t *testing.T) {
	builder, _ := newTestBuilder()
	bundle := builder.FromCriterion(sampleCriterionFinding())

	data, err := EncodeMsgpack(bundle)
	require.NoError(t, err)

	decoded, err := DecodeMsgpack(data)
	require.NoError(t, err)

	assert.Equal(t, bundle.ID, decoded["id"])
	assert.Equal(t, "CRITICAL", decoded["severity"])
	assert.Equal(t, "K004", decoded["finding_id"])
}

func TestToMap_OmitsEmptyOptionalBlocks(t *testing.T) {
	builder, _ := newTestBuilder()
	bundle := builder.FromPattern(patterns.Finding{
		PatternID:   "RAM03",
		Name:        "Dönem sonunda geçici hesap bakiyesi",
		Severity:    domain.SeverityMedium,
		Explanation: "Geçici hesaplarda bakiye kalmış.",
	})

	m := ToMap(bundle)

	_, hasSector := m["sector"]
	assert.False(t, hasSector)
	_, hasTrace := m["formula_trace"]
	assert.False(t, hasTrace)
}
