package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pashkov/veche/internal/model"
	"github.com/pashkov/veche/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	votePattern string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// tallyCmd represents the tally command
var tallyCmd = &cobra.Command{
	Use:   "tally <logfile>",
	Short: "Tally votes from a single log file",
	Long: `Tally reads a log file line by line, extracts voter names from
"vote => <name>" lines, fuzzy-matches spellings against each other, and
prints consolidated vote counts in descending order.

Matching happens in two phases: an online pass merges obvious near
duplicates as lines stream in, and a batch pass reconciles all observed
spellings once the log is exhausted.

Example:
  veche tally votes.log
  veche tally votes.log --json report.json
  veche tally votes.log --pattern 'ballot:\s*(.+)'
  veche tally votes.log --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runTally,
}

func init() {
	rootCmd.AddCommand(tallyCmd)

	// Output flags
	tallyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")

	// Input flags
	tallyCmd.Flags().StringVar(&votePattern, "pattern", "", "vote-line pattern override (first capture group is the name)")

	// LLM flags
	tallyCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	tallyCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	tallyCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runTally(cmd *cobra.Command, args []string) error {
	path := args[0]

	if verbose {
		fmt.Fprintf(os.Stderr, "Tallying: %s\n", path)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	report, err := p.TallyFile(context.Background(), path)
	if err != nil {
		return fmt.Errorf("tally failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Read %d lines, counted %d votes\n", report.LinesRead, report.VotesCounted)
		fmt.Fprintf(os.Stderr, "✓ Consolidated %d spellings into %d names\n", report.DistinctSpellings, report.CanonicalNames)
		fmt.Fprintln(os.Stderr)
	}

	if err := p.Render(report); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the effective configuration from defaults and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Output.JSONPath = outJSON

	if votePattern != "" {
		cfg.Input.Pattern = votePattern
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		default:
			return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", llmProvider)
		}
	}

	return cfg, nil
}
