package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pashkov/veche/internal/model"
)

// mockTallier implements Tallier
type mockTallier struct {
	failPath string
}

func (m *mockTallier) TallyFile(ctx context.Context, path string) (*model.Report, error) {
	if path == m.failPath {
		return nil, fmt.Errorf("unreadable: %s", path)
	}
	return &model.Report{Subject: filepath.Base(path), VotesCounted: 1}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	b := NewBatchProcessor(&mockTallier{failPath: "bad.log"}, 2)

	results := b.ProcessPaths(context.Background(), []string{"a.log", "bad.log", "c.log"})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
			if r.Path != "bad.log" {
				t.Errorf("unexpected failing path %q", r.Path)
			}
		} else if r.Report == nil {
			t.Errorf("successful result for %q has no report", r.Path)
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	b := NewBatchProcessor(&mockTallier{}, 2)

	if results := b.ProcessPaths(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results for no paths, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "logs.txt")

	content := "a.log\n\n# comment\nb.log\na.log\n  c.log  \n"
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatalf("write list file: %v", err)
	}

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("ReadPathsFromFile: %v", err)
	}

	want := []string{"a.log", "b.log", "c.log"}
	if len(paths) != len(want) {
		t.Fatalf("expected %v, got %v", want, paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: got %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing list file")
	}
}
