// Package model holds the configuration and report types shared across the
// veche pipeline.
package model

import "time"

// Config is the complete veche configuration.
type Config struct {
	Input       InputConfig       `yaml:"input" json:"input"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// InputConfig controls how vote lines are recognized in the log.
type InputConfig struct {
	// Pattern is the regular expression matching a vote line; its first
	// capture group is the raw name token.
	Pattern string `yaml:"pattern" json:"pattern"`

	// MaxLineBytes bounds the scanner buffer for a single log line.
	MaxLineBytes int `yaml:"max_line_bytes" json:"max_line_bytes"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose" json:"verbose"`
	JSONPath string `yaml:"json_path,omitempty" json:"json_path,omitempty"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	// Workers is the number of log files processed in parallel by the
	// batch command. Each file still gets its own single-writer ledger.
	Workers int `yaml:"workers" json:"workers"`
}

// LLMConfig controls the optional report summary.
type LLMConfig struct {
	// Provider name: "openai" or "" (disabled).
	Provider string `yaml:"provider,omitempty" json:"provider,omitempty"`

	Model   string        `yaml:"model,omitempty" json:"model,omitempty"`
	APIKey  string        `yaml:"-" json:"-"` // env only, never persisted
	BaseURL string        `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// RequestsPerSecond and Burst rate-limit API calls when several batch
	// workers share one summarizer.
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Pattern:      `vote\s*=>\s*(.+)`,
			MaxLineBytes: 64 * 1024,
		},
		Output: OutputConfig{
			Verbose: false,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Model:             "gpt-4o-mini",
			Timeout:           30 * time.Second,
			MaxTokens:         500,
			RequestsPerSecond: 1,
			Burst:             2,
		},
	}
}
