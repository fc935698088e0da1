package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pashkov/veche/internal/model"
)

// Tallier tallies one log file. Implemented by pipeline.Pipeline.
type Tallier interface {
	TallyFile(ctx context.Context, path string) (*model.Report, error)
}

// TallyJob tallies a single log file.
type TallyJob struct {
	Path    string
	Tallier Tallier
}

// Execute runs the tally.
func (j *TallyJob) Execute(ctx context.Context) Result {
	report, err := j.Tallier.TallyFile(ctx, j.Path)
	return &TallyResult{Path: j.Path, Report: report, Error: err}
}

// TallyResult is the outcome of tallying one file.
type TallyResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any.
func (r *TallyResult) GetError() error {
	return r.Error
}

// BatchProcessor tallies multiple log files concurrently. Concurrency is
// strictly per file: ledgers are never shared between jobs.
type BatchProcessor struct {
	tallier     Tallier
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(tallier Tallier, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		tallier:     tallier,
		concurrency: concurrency,
	}
}

// ProcessPaths tallies the given log files on the pool.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*TallyResult {
	if len(paths) == 0 {
		return []*TallyResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&TallyJob{Path: path, Tallier: b.tallier})
	}

	results := pool.Wait()

	tallyResults := make([]*TallyResult, len(results))
	for i, result := range results {
		tallyResults[i] = result.(*TallyResult)
	}

	return tallyResults
}

// ProcessListFile reads log paths from a list file and tallies them.
func (b *BatchProcessor) ProcessListFile(ctx context.Context, listPath string) ([]*TallyResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read log list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a list file, one per line,
// skipping blanks, comments, and duplicates.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
