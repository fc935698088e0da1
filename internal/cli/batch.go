package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pashkov/veche/internal/pipeline"
	"github.com/pashkov/veche/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency int
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Tally multiple log files from a list in parallel",
	Long: `Batch tallies several vote logs concurrently:
- Read log file paths from the input file (one per line, # comments allowed)
- Tally files in parallel with a configurable worker count
- Every file gets its own isolated ledger; nothing is shared between jobs
- Write one JSON report per log into the output directory

Example:
  veche batch logs.txt
  veche batch logs.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./veche-reports", "output directory for JSON reports")
	batchCmd.Flags().StringVar(&votePattern, "pattern", "", "vote-line pattern override (first capture group is the name)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx := context.Background()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Veche Batch Tally\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:  %s\n", listFile)
	fmt.Fprintf(os.Stderr, "  Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:  %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessListFile(ctx, listFile)
	if err != nil {
		return fmt.Errorf("process list file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		jsonPath := filepath.Join(outputDir, reportName(result.Path))
		if err := p.Renderer().RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}

		winner, ok := result.Report.Winner()
		if ok {
			fmt.Fprintf(os.Stderr, "✓ %s: %d votes, winner %s (%d)\n",
				result.Report.Subject, result.Report.VotesCounted, winner.Name, winner.Votes)
		} else {
			fmt.Fprintf(os.Stderr, "✓ %s: no votes\n", result.Report.Subject)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d logs\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// reportName derives a JSON report filename from a log path.
func reportName(logPath string) string {
	base := filepath.Base(logPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "report"
	}
	return base + ".json"
}
