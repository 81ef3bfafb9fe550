// Package main is the command-line entry point of the risk analyzer. It
// reads one analysis request as JSON, runs the full evaluation pipeline and
// writes the combined report as JSON to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cemsak/lyntos-updated-sub001/internal/analysis"
	"github.com/cemsak/lyntos-updated-sub001/internal/config"
	"github.com/cemsak/lyntos-updated-sub001/internal/database"
	"github.com/cemsak/lyntos-updated-sub001/internal/domain"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/evidence"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/legalref"
	"github.com/cemsak/lyntos-updated-sub001/internal/modules/patterns"
	"github.com/cemsak/lyntos-updated-sub001/pkg/logger"
)

// request is the JSON shape accepted on stdin or from -input.
type request struct {
	Balances      []domain.AccountBalance `json:"balances"`
	SectorCode    string                  `json:"sector_code,omitempty"`
	Prior         *domain.PriorPeriod     `json:"prior,omitempty"`
	Transactions  []domain.Transaction    `json:"transactions,omitempty"`
	FlaggedTaxIDs []string                `json:"flagged_tax_ids,omitempty"`
	Declaration   map[string]float64      `json:"declaration,omitempty"`
}

func main() {
	inputPath := flag.String("input", "-", "Request JSON file, or - for stdin")
	refsPath := flag.String("legal-db", "", "Optional sqlite database with full statute texts")
	markdown := flag.Bool("markdown", false, "Emit evidence bundles as markdown instead of the JSON report")
	pretty := flag.Bool("pretty", false, "Pretty console log output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: *pretty})

	refs := legalref.New()
	if *refsPath != "" {
		db, err := database.OpenReference(*refsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open legal reference database")
		}
		defer db.Close()

		refs, err = legalref.LoadFromDB(db)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load legal references")
		}
		log.Info().Int("references", refs.Len()).Msg("Legal references loaded from database")
	}

	req, err := readRequest(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read request")
	}

	svc := analysis.NewService(cfg, refs, log)
	report, err := svc.Analyze(toAnalysisRequest(req))
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	if *markdown {
		for _, bundle := range report.Bundles {
			fmt.Println(evidence.RenderMarkdown(bundle))
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode report")
	}
}

func readRequest(path string) (request, error) {
	var req request

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("failed to open request file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request: %w", err)
	}
	return req, nil
}

func toAnalysisRequest(req request) analysis.Request {
	flagged := make(map[string]bool, len(req.FlaggedTaxIDs))
	for _, id := range req.FlaggedTaxIDs {
		flagged[id] = true
	}
	return analysis.Request{
		Balances:      req.Balances,
		SectorCode:    req.SectorCode,
		Prior:         req.Prior,
		Transactions:  req.Transactions,
		FlaggedTaxIDs: flagged,
		Declaration:   patterns.ValueBag(req.Declaration),
	}
}
