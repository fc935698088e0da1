// Package llm generates an optional natural-language summary of a finished
// tally. The summary is decorative: it is produced after counting and can
// never change a count.
package llm

import (
	"context"

	"github.com/pashkov/veche/internal/model"
)

// Provider is a text-generation backend for tally summaries.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a summary for the request.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks that the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest carries everything a provider may use. Providers must
// derive the summary from the report alone.
type SummarizeRequest struct {
	Report    *model.Report
	Model     string
	MaxTokens int
}

// SummarizeResponse is a provider's generated summary.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds summarizer configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled).
	Provider string

	Model     string
	APIKey    string
	BaseURL   string
	TimeoutS  int
	MaxTokens int

	// RequestsPerSecond and Burst bound API call rate when batch workers
	// share one summarizer.
	RequestsPerSecond float64
	Burst             int
}

// ConfigFromModel converts the pipeline-level LLM config.
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:          c.Provider,
		Model:             c.Model,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		TimeoutS:          int(c.Timeout.Seconds()),
		MaxTokens:         c.MaxTokens,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
	}
}
