// Package analysis orchestrates a full taxpayer-period risk evaluation
// across every analysis engine.
package analysis

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cemsak/lyntos-updated-sub001/internal/config"
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/aggregation"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/benchmark"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/criteria"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/evidence"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/legalref"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/patterns"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/ratios"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/scenarios"
)

// Request is one taxpayer-period evaluation. Balances are mandatory; the
// sector code, prior period, transactions and declaration bag are optional
// and enable their respective engines when present.
type Request struct {
	Balances      []domain.AccountBalance
	SectorCode    string
	Prior         *domain.PriorPeriod
	Transactions  []domain.Transaction
	FlaggedTaxIDs map[string]bool
	Declaration   patterns.ValueBag
}

// Report is the combined outcome of every engine plus the assembled
// evidence bundles.
type Report struct {
	Figures         aggregation.Figures `json:"figures"`
	Ratios          ratios.Report       `json:"ratios"`
	Criteria        criteria.Report     `json:"criteria"`
	Benchmark       *benchmark.Result   `json:"benchmark,omitempty"`
	Patterns        *patterns.Report    `json:"patterns,omitempty"`
	Scenarios       *scenarios.Profile  `json:"scenarios,omitempty"`
	Bundles         []evidence.Bundle   `json:"bundles"`
	OverallSeverity domain.Severity     `json:"overall_severity"`
}

// Service runs the analysis pipeline. It is stateless apart from the static
// reference catalogs, so one instance serves concurrent requests.
type Service struct {
	assumptions config.Assumptions
	builder     *evidence.Builder
	log         zerolog.Logger
}

// NewService creates an analysis service.
func NewService(cfg *config.Config, refs *legalref.Repository, log zerolog.Logger) *Service {
	return &Service{
		assumptions: cfg.Assumptions,
		builder:     evidence.NewBuilder(refs),
		log:         log.With().Str("module", "analysis").Logger(),
	}
}

// Analyze evaluates one request end to end: aggregation first, then the
// figure-driven engines, then the engines running off their own inputs, and
// finally bundle assembly for every finding.
func (s *Service) Analyze(req Request) (*Report, error) {
	if len(req.Balances) == 0 {
		return nil, fmt.Errorf("no account balances supplied")
	}

	figures := aggregation.Aggregate(req.Balances)

	report := &Report{
		Figures:  figures,
		Ratios:   ratios.Evaluate(figures, req.Prior),
		Criteria: criteria.Evaluate(figures, s.assumptions),
	}

	if req.SectorCode != "" {
		result := benchmark.Compare(req.SectorCode, benchmark.TaxpayerRatios(figures, req.Prior))
		report.Benchmark = &result
		if !result.Found {
			s.log.Warn().Str("sector", req.SectorCode).Msg("No benchmark profile for sector")
		}
	}

	if len(req.Declaration) > 0 {
		patternReport := patterns.Detect(req.Declaration)
		report.Patterns = &patternReport
	}

	if len(req.Transactions) > 0 {
		profile := scenarios.Score(scenarios.Input{
			Transactions:  req.Transactions,
			FlaggedTaxIDs: req.FlaggedTaxIDs,
			SectorCode:    req.SectorCode,
		})
		report.Scenarios = &profile
	}

	report.Bundles = s.assembleBundles(report)
	report.OverallSeverity = overallSeverity(report)

	s.log.Info().
		Int("ratio_results", len(report.Ratios.Results)).
		Int("criteria_findings", len(report.Criteria.Findings)).
		Int("bundles", len(report.Bundles)).
		Str("overall_severity", report.OverallSeverity.String()).
		Msg("Analysis completed")

	return report, nil
}

// assembleBundles builds one evidence bundle per finding across every
// engine. Ratio results only produce bundles when regulator-relevant.
func (s *Service) assembleBundles(r *Report) []evidence.Bundle {
	var bundles []evidence.Bundle

	for _, result := range r.Ratios.Results {
		if result.RegulatorRelevant {
			bundles = append(bundles, s.builder.FromRatio(result))
		}
	}
	for _, finding := range r.Criteria.Findings {
		bundles = append(bundles, s.builder.FromCriterion(finding))
	}
	if r.Patterns != nil {
		for _, finding := range r.Patterns.Findings {
			bundles = append(bundles, s.builder.FromPattern(finding))
		}
	}
	if r.Scenarios != nil {
		for _, a := range r.Scenarios.Assessments {
			bundles = append(bundles, s.builder.FromAssessment(a)...)
		}
	}
	if r.Benchmark != nil {
		bundles = append(bundles, s.builder.FromBenchmark(*r.Benchmark)...)
	}

	return bundles
}

// overallSeverity is the worst severity reported by any engine.
func overallSeverity(r *Report) domain.Severity {
	worst := domain.MaxSeverity(r.Ratios.OverallSeverity, r.Criteria.OverallSeverity)
	if r.Benchmark != nil {
		worst = domain.MaxSeverity(worst, r.Benchmark.OverallSeverity)
	}
	if r.Patterns != nil {
		worst = domain.MaxSeverity(worst, r.Patterns.OverallSeverity)
	}
	if r.Scenarios != nil {
		worst = domain.MaxSeverity(worst, r.Scenarios.OverallSeverity)
	}
	return worst
}
