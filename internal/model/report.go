package model

import "time"

// Report is the complete result of tallying one vote log.
type Report struct {
	Subject     string        `json:"subject"`      // Log file name or stream label
	ProcessedAt time.Time     `json:"processed_at"` // When the tally ran
	Elapsed     time.Duration `json:"elapsed_ns"`   // Wall-clock processing time

	LinesRead    int `json:"lines_read"`    // All lines seen, matching or not
	VotesCounted int `json:"votes_counted"` // Lines matching the vote pattern

	DistinctSpellings int `json:"distinct_spellings"` // Spellings ever observed
	CanonicalNames    int `json:"canonical_names"`    // Participants after consolidation

	// Results are canonical name / vote count pairs in descending vote
	// order. The counts always sum to VotesCounted.
	Results []Result `json:"results"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional summary, never affects counts
}

// Result is one consolidated participant.
type Result struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

// Winner returns the top result, or false for an empty tally.
func (r *Report) Winner() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	return r.Results[0], true
}

// LLMSummary contains the optional generated summary of a tally.
type LLMSummary struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
}
