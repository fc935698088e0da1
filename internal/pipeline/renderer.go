package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pashkov/veche/internal/model"
)

// Renderer writes tally reports as a human-readable summary or as JSON.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderText writes the canonical tally in descending vote order, followed
// by the grand total and timing.
func (r *Renderer) RenderText(w io.Writer, report *model.Report) error {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  Vote Tally: %s\n", report.Subject)
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n")

	for _, result := range report.Results {
		fmt.Fprintf(w, "  %-40s %6d\n", result.Name, result.Votes)
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Total votes:        %d\n", report.VotesCounted)
	fmt.Fprintf(w, "  Lines read:         %d\n", report.LinesRead)
	fmt.Fprintf(w, "  Distinct spellings: %d\n", report.DistinctSpellings)
	fmt.Fprintf(w, "  Canonical names:    %d\n", report.CanonicalNames)
	fmt.Fprintf(w, "  Elapsed:            %v\n", report.Elapsed)
	fmt.Fprintf(w, "\n")

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Fprintf(w, "───────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "  Summary (%s/%s)\n", report.LLM.Provider, report.LLM.Model)
		fmt.Fprintf(w, "───────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "%s\n\n", report.LLM.SummaryMD)
	}

	return nil
}

// RenderJSON writes the report to path as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
