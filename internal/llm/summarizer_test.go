package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pashkov/veche/internal/model"
)

// mockProvider implements Provider for testing
type mockProvider struct {
	name      string
	available bool
	response  *SummarizeResponse
	err       error
	calls     int
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func testReport() *model.Report {
	return &model.Report{
		Subject:           "votes.log",
		VotesCounted:      3,
		DistinctSpellings: 3,
		CanonicalNames:    1,
		Results:           []model.Result{{Name: "John Smith", Votes: 3}},
	}
}

func TestNewSummarizer_Disabled(t *testing.T) {
	s, err := NewSummarizer(Config{Provider: ""})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if s.IsEnabled() {
		t.Error("expected summarizer to be disabled")
	}
	if s.ProviderName() != "" {
		t.Error("expected empty provider name when disabled")
	}

	summary, err := s.Summarize(context.Background(), testReport())
	if err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
	if summary != nil {
		t.Errorf("expected nil summary when disabled, got %+v", summary)
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "psychic"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewSummarizer_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "openai"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestSummarizer_UsesProviderResponse(t *testing.T) {
	mock := &mockProvider{
		name:      "mock",
		available: true,
		response:  &SummarizeResponse{Summary: "John Smith won with 3 votes.", Model: "mock-1"},
	}

	s, err := NewSummarizer(Config{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	s.provider = mock

	summary, err := s.Summarize(context.Background(), testReport())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if !summary.Enabled || summary.Provider != "mock" || summary.Model != "mock-1" {
		t.Errorf("unexpected summary metadata: %+v", summary)
	}
	if summary.SummaryMD != "John Smith won with 3 votes." {
		t.Errorf("unexpected summary text: %q", summary.SummaryMD)
	}
	if mock.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.calls)
	}
}

func TestSummarizer_PropagatesProviderError(t *testing.T) {
	s, err := NewSummarizer(Config{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	s.provider = &mockProvider{name: "mock", err: errors.New("boom")}

	if _, err := s.Summarize(context.Background(), testReport()); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestBuildPrompt_ContainsReportFacts(t *testing.T) {
	prompt := BuildPrompt(testReport())

	for _, want := range []string{"votes.log", "Total votes: 3", "John Smith: 3"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
