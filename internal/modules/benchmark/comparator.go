// Package benchmark compares a taxpayer's financial ratios against static
// sector benchmark ranges and grades the deviations.
package benchmark

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
)

// Deviation-percent thresholds for the per-ratio severity grade.
const (
	mediumDeviationPct   = 25.0
	highDeviationPct     = 50.0
	criticalDeviationPct = 100.0

	// Escalation-eligible ratios get bumped one level past this point.
	escalationPct = 30.0
)

// Severity points for deviating ratios, averaged into the benchmark score.
// In-range ratios contribute nothing.
var severityPoints = map[domain.Severity]float64{
	domain.SeverityLow:      10,
	domain.SeverityMedium:   40,
	domain.SeverityHigh:     70,
	domain.SeverityCritical: 100,
}

const maxRecommendations = 5

// TaxpayerRatios derives the tracked ratio values from the aggregate
// figures. Ratios whose denominator is zero are left out of the map and
// are silently skipped by Compare.
func TaxpayerRatios(f aggregation.Figures, prior *domain.PriorPeriod) map[string]float64 {
	ratios := make(map[string]float64)

	put := func(id string, numerator, denominator float64) {
		if denominator == 0 {
			return
		}
		ratios[id] = numerator / denominator
	}

	put(RatioCurrentRatio, f.CurrentAssets, f.ShortTermLiabilities)
	put(RatioQuickRatio, f.CurrentAssets-f.Inventory, f.ShortTermLiabilities)
	put(RatioCashToAssets, f.Cash+f.Banks, f.TotalAssets)
	put(RatioDebtRatio, f.TotalLiabilities, f.TotalAssets)
	put(RatioEquityRatio, f.Equity, f.TotalAssets)
	put(RatioRelatedReceivable, f.RelatedPartyReceivables, f.TotalAssets)
	put(RatioRelatedPayable, f.RelatedPartyPayables, f.Equity)

	if f.NetSales != 0 {
		ratios[RatioGrossMargin] = f.GrossProfit / f.NetSales * 100
		ratios[RatioNetMargin] = f.NetProfit / f.NetSales * 100
		ratios[RatioVATBurden] = f.CalculatedVAT / f.NetSales * 100
	}

	put(RatioInventoryTurnover, f.CostOfSales, averaged(f.Inventory, prior, func(p *domain.PriorPeriod) float64 { return p.Inventory }))
	put(RatioReceivableTurnover, f.NetSales, averaged(f.TradeReceivables, prior, func(p *domain.PriorPeriod) float64 { return p.TradeReceivables }))

	return ratios
}

// averaged returns the average of the closing balance and the prior-period
// closing balance when a prior period is supplied, else the closing balance.
func averaged(closing float64, prior *domain.PriorPeriod, pick func(*domain.PriorPeriod) float64) float64 {
	if prior == nil {
		return closing
	}
	return (closing + pick(prior)) / 2
}

// Compare grades the taxpayer ratios against the sector's benchmark ranges.
// An unknown sector code yields Found=false with an explanatory message and
// no deviations; it is never treated as an error.
func Compare(sectorCode string, ratios map[string]float64) Result {
	profile, ok := ProfileByCode(sectorCode)
	if !ok {
		return Result{
			SectorCode:      sectorCode,
			Found:           false,
			Message:         fmt.Sprintf("'%s' sektör kodu için karşılaştırma verisi bulunamadı, sektör kıyaslaması yapılamadı", sectorCode),
			OverallSeverity: domain.SeverityLow,
		}
	}

	result := Result{
		SectorCode: profile.Code,
		SectorName: profile.Name,
		Found:      true,
	}

	var points []float64
	for _, tracked := range trackedRatios {
		value, ok := ratios[tracked.ID]
		if !ok {
			continue
		}
		rng, ok := profile.Ranges[tracked.ID]
		if !ok {
			continue
		}

		d := grade(tracked.ID, tracked.Name, value, rng)
		result.Deviations = append(result.Deviations, d)
		if d.Type != DeviationNormal {
			result.DeviatingCount++
			points = append(points, severityPoints[d.Severity])
		}
	}

	if len(points) > 0 {
		result.Score = stat.Mean(points, nil)
	}
	result.OverallSeverity = overallSeverity(result)
	result.Recommendations = recommendations(profile, result.Deviations)
	return result
}

// grade computes the deviation record for one tracked ratio. The deviation
// percent is measured from the nearest violated bound; a value inside the
// range (bounds inclusive) deviates by zero.
func grade(id, name string, value float64, rng Range) Deviation {
	d := Deviation{
		RatioID: id,
		Name:    name,
		Value:   value,
		Range:   rng,
		Type:    DeviationNormal,
	}

	switch {
	case value < rng.Min:
		d.Type = DeviationBelow
		if rng.Min != 0 {
			d.Percent = (rng.Min - value) / rng.Min * 100
		} else {
			d.Percent = 100
		}
	case value > rng.Max:
		d.Type = DeviationAbove
		if rng.Max != 0 {
			d.Percent = (value - rng.Max) / rng.Max * 100
		} else {
			d.Percent = 100
		}
	}

	// The bound division can land a hair under an exact tier threshold in
	// float64; round away the representation error before grading.
	d.Percent = math.Round(d.Percent*1e6) / 1e6

	d.Severity = deviationSeverity(d.Percent)
	if d.Type != DeviationNormal && escalationRatios[id] && d.Percent > escalationPct && d.Severity < domain.SeverityCritical {
		d.Severity++
		d.Escalated = true
	}
	return d
}

func deviationSeverity(percent float64) domain.Severity {
	switch {
	case percent >= criticalDeviationPct:
		return domain.SeverityCritical
	case percent >= highDeviationPct:
		return domain.SeverityHigh
	case percent >= mediumDeviationPct:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func overallSeverity(r Result) domain.Severity {
	critHigh := 0
	for _, d := range r.Deviations {
		if d.Severity >= domain.SeverityHigh {
			critHigh++
		}
	}
	switch {
	case critHigh >= 3 || r.Score >= 80:
		return domain.SeverityCritical
	case critHigh >= 1 || r.Score >= 60:
		return domain.SeverityHigh
	case r.DeviatingCount >= 4 || r.Score >= 35:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// recommendations produces at most five short follow-up notes, worst
// deviations first. When nothing deviates badly enough, the sector's own
// risk note is returned so the caller always has something actionable.
func recommendations(profile Profile, deviations []Deviation) []string {
	ranked := make([]Deviation, 0, len(deviations))
	for _, d := range deviations {
		if d.Severity >= domain.SeverityHigh {
			ranked = append(ranked, d)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Severity > ranked[j].Severity
	})

	var recs []string
	for _, d := range ranked {
		if len(recs) == maxRecommendations {
			break
		}
		direction := "altında"
		if d.Type == DeviationAbove {
			direction = "üzerinde"
		}
		recs = append(recs, fmt.Sprintf(
			"%s değeri (%.2f) sektör aralığının %%%.0f %s; fark için açıklayıcı belge hazırlanmalıdır.",
			d.Name, d.Value, d.Percent, direction))
	}

	if len(recs) == 0 && profile.RiskNote != "" {
		recs = append(recs, profile.RiskNote)
	}
	return recs
}
