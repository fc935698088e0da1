package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Source reads a vote log line by line and yields the raw name token from
// every line matching the vote pattern. The stream is consumed strictly
// sequentially and cannot be restarted.
type Source struct {
	pattern      *regexp.Regexp
	maxLineBytes int
}

// NewSource compiles the vote-line pattern. The pattern's first capture
// group must hold the name token.
func NewSource(pattern string, maxLineBytes int) (*Source, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile vote pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("vote pattern %q has no capture group for the name", pattern)
	}
	if maxLineBytes <= 0 {
		maxLineBytes = 64 * 1024
	}

	return &Source{pattern: re, maxLineBytes: maxLineBytes}, nil
}

// ScanStats reports what a scan consumed.
type ScanStats struct {
	LinesRead int // every line, matching or not
	Matched   int // lines that produced a name token
}

// Scan reads r to exhaustion, calling fn with the trimmed raw name token of
// each matching line. Non-matching lines are counted and skipped.
func (s *Source) Scan(r io.Reader, fn func(rawName string)) (ScanStats, error) {
	var stats ScanStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), s.maxLineBytes)

	for scanner.Scan() {
		stats.LinesRead++

		m := s.pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		stats.Matched++
		fn(strings.TrimSpace(m[1]))
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read log: %w", err)
	}

	return stats, nil
}
