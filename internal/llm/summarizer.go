package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/pashkov/veche/internal/model"
	"golang.org/x/time/rate"
)

// Summarizer wraps a Provider with rate limiting. Batch processing shares a
// single summarizer across workers, so API calls are throttled here rather
// than at each call site.
type Summarizer struct {
	provider Provider
	limiter  *rate.Limiter
	config   Config
}

// NewSummarizer creates a summarizer for the configured provider. An empty
// provider name yields a disabled summarizer and no error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := newProvider(config)
	if err != nil {
		return nil, err
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Summarizer{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		config:   config,
	}, nil
}

// newProvider selects the backend by name.
func newProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the active provider's name, or "" when disabled.
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// Summarize generates a summary of the report. A disabled summarizer
// returns nil without error.
func (s *Summarizer) Summarize(ctx context.Context, report *model.Report) (*model.LLMSummary, error) {
	if s.provider == nil {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}, nil
}

// BuildPrompt renders the report facts a provider is allowed to use.
func BuildPrompt(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Summarize this vote tally in at most three sentences.\n\n")
	fmt.Fprintf(&b, "Log: %s\n", report.Subject)
	fmt.Fprintf(&b, "Total votes: %d\n", report.VotesCounted)
	fmt.Fprintf(&b, "Distinct spellings observed: %d\n", report.DistinctSpellings)
	fmt.Fprintf(&b, "Participants after deduplication: %d\n\n", report.CanonicalNames)

	fmt.Fprintf(&b, "Results (descending):\n")
	for _, result := range report.Results {
		fmt.Fprintf(&b, "- %s: %d\n", result.Name, result.Votes)
	}

	return b.String()
}
