// Package pipeline orchestrates a complete tally run: line source,
// normalization, online ledger, batch consolidation, rendering.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pashkov/veche/internal/llm"
	"github.com/pashkov/veche/internal/model"
	"github.com/pashkov/veche/internal/normalize"
	"github.com/pashkov/veche/internal/tally"
)

// Pipeline ties the tally stages together for one or more runs.
type Pipeline struct {
	source     *Source
	normalizer *normalize.Normalizer
	renderer   *Renderer
	summarizer *llm.Summarizer // nil when the LLM summary is disabled
	config     *model.Config
}

// NewPipeline creates a pipeline from the given configuration.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	source, err := NewSource(cfg.Input.Pattern, cfg.Input.MaxLineBytes)
	if err != nil {
		return nil, err
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summarizer disabled: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		source:     source,
		normalizer: normalize.New(),
		renderer:   NewRenderer(),
		summarizer: summarizer,
		config:     cfg,
	}, nil
}

// TallyFile tallies a single log file.
func (p *Pipeline) TallyFile(ctx context.Context, path string) (*model.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	return p.TallyReader(ctx, filepath.Base(path), f)
}

// TallyReader tallies a vote stream. Each line is fully processed before
// the next is read; the ledger and its tree see exactly one writer.
func (p *Pipeline) TallyReader(ctx context.Context, subject string, r io.Reader) (*model.Report, error) {
	start := time.Now()

	ledger := tally.NewLedger()
	stats, err := p.source.Scan(r, func(rawName string) {
		name := strings.TrimSpace(p.normalizer.Clean(rawName))
		if name == "" {
			// A token that was entirely noise identifies nobody.
			return
		}
		ledger.Add(name)
	})
	if err != nil {
		return nil, err
	}

	consolidated := tally.NewConsolidator().Consolidate(ledger.Votes(), ledger.Occurrences())

	report := &model.Report{
		Subject:           subject,
		ProcessedAt:       time.Now().UTC(),
		LinesRead:         stats.LinesRead,
		VotesCounted:      ledger.TotalVotes(),
		DistinctSpellings: len(ledger.Occurrences()),
		CanonicalNames:    len(consolidated),
		Results:           sortedResults(consolidated),
	}
	report.Elapsed = time.Since(start)

	// The summary is generated after tallying and can never change counts.
	if p.summarizer != nil {
		summary, err := p.summarizer.Summarize(ctx, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: summary generation failed: %v\n", err)
		} else {
			report.LLM = summary
		}
	}

	return report, nil
}

// Render writes the report to stdout and, when configured, to a JSON file.
func (p *Pipeline) Render(report *model.Report) error {
	if path := p.config.Output.JSONPath; path != "" {
		if err := p.renderer.RenderJSON(report, path); err != nil {
			return err
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", path)
		}
	}

	return p.renderer.RenderText(os.Stdout, report)
}

// Renderer exposes the pipeline's renderer for callers that write reports
// to custom destinations, such as the batch command's per-file outputs.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// sortedResults orders the consolidated tally by descending votes, then by
// name so equal counts render stably.
func sortedResults(consolidated map[string]int) []model.Result {
	results := make([]model.Result, 0, len(consolidated))
	for name, votes := range consolidated {
		results = append(results, model.Result{Name: name, Votes: votes})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Votes != results[j].Votes {
			return results[i].Votes > results[j].Votes
		}
		return results[i].Name < results[j].Name
	})

	return results
}
