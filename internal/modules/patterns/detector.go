// Package patterns detects common bookkeeping errors in a loosely-typed bag
// of trial-balance and declaration figures.
package patterns

import (
	"fmt"

	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
)

// Detect runs every registered pattern check against the value bag, in
// catalog order. Checks are independent of one another; a check whose
// inputs are missing simply does not fire.
func Detect(bag ValueBag) Report {
	report := Report{}

	for _, c := range catalog {
		f := c.run(bag)
		if f == nil {
			continue
		}
		f.PatternID = c.id
		f.Name = c.name
		report.Findings = append(report.Findings, *f)

		switch f.Severity {
		case domain.SeverityCritical:
			report.CriticalCount++
		case domain.SeverityHigh:
			report.HighCount++
		default:
			report.MediumCount++
		}
	}

	report.OverallSeverity = overallSeverity(report)
	report.Summary = summary(report)
	return report
}

func overallSeverity(r Report) domain.Severity {
	switch {
	case r.CriticalCount >= 1:
		return domain.SeverityCritical
	case r.HighCount >= 2:
		return domain.SeverityHigh
	case r.HighCount == 1 || r.MediumCount >= 2:
		return domain.SeverityMedium
	case len(r.Findings) > 0:
		return domain.SeverityLow
	default:
		return domain.SeverityLow
	}
}

func summary(r Report) string {
	if len(r.Findings) == 0 {
		return "Muhasebe kayıtlarında bilinen hata kalıplarından hiçbiri tespit edilmedi."
	}
	return fmt.Sprintf(
		"Muhasebe kayıtlarında %d hata kalıbı tespit edildi (%d kritik, %d yüksek, %d orta). Kritik bulgular beyanname verilmeden önce düzeltilmelidir.",
		len(r.Findings), r.CriticalCount, r.HighCount, r.MediumCount)
}
