// Package tally implements online vote ingestion and batch name
// consolidation over fuzzy-matched voter names.
package tally

import (
	"github.com/pashkov/veche/internal/textdist"
)

// Online matching radius: spellings within two edits of a known
// participant are treated as the same person during ingestion.
const onlineRadius = 2

// Ledger ingests normalized names one at a time, fuzzy-matching each
// against the participants seen so far. It keeps two parallel tallies:
// votes, which merges move between entries, and occurrences, which records
// how often each spelling was credited and later drives canonical-name
// selection.
//
// The ledger is single-writer: Add must not be called concurrently.
type Ledger struct {
	tree        *textdist.Tree
	votes       map[string]int
	occurrences map[string]int
	total       int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		tree:        textdist.NewTree(),
		votes:       make(map[string]int),
		occurrences: make(map[string]int),
	}
}

// Add credits one vote to the participant matching the given normalized
// name, registering a new participant when nothing matches within the
// online radius.
func (l *Ledger) Add(name string) {
	l.total++

	matches := l.tree.Search(name, onlineRadius)
	if len(matches) == 0 {
		l.register(name)
		return
	}

	closest := closestMatch(matches)

	// The search already bounds the distance, but the gate is re-verified
	// here: if the index ever returned an out-of-radius word, degrading to
	// an independent registration loses nothing, while a bad merge would
	// silently corrupt the tally.
	if closest.Distance > onlineRadius {
		l.register(name)
		return
	}

	if len(name) > len(closest.Word) {
		// The incoming spelling is longer, so treat it as the more complete
		// form and move the existing count under it. The tree keeps the old
		// spelling; it is never pruned, so future lookups match either form.
		l.votes[name] += l.votes[closest.Word] + 1
		delete(l.votes, closest.Word)
		l.occurrences[name]++
		l.tree.Insert(name)
		return
	}

	l.votes[closest.Word]++
	l.occurrences[closest.Word]++
}

// register records name as a brand-new participant.
func (l *Ledger) register(name string) {
	l.tree.Insert(name)
	l.votes[name]++
	l.occurrences[name]++
}

// closestMatch picks the nearest match, breaking distance ties in favor of
// the longer existing spelling.
func closestMatch(matches []textdist.Match) textdist.Match {
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance ||
			(m.Distance == best.Distance && len(m.Word) > len(best.Word)) {
			best = m
		}
	}
	return best
}

// Votes returns a copy of the current vote tally.
func (l *Ledger) Votes() map[string]int {
	out := make(map[string]int, len(l.votes))
	for name, count := range l.votes {
		out[name] = count
	}
	return out
}

// Occurrences returns a copy of the occurrence tally. It covers every
// spelling ever credited, including ones whose votes were merged away.
func (l *Ledger) Occurrences() map[string]int {
	out := make(map[string]int, len(l.occurrences))
	for name, count := range l.occurrences {
		out[name] = count
	}
	return out
}

// TotalVotes returns the number of names ingested.
func (l *Ledger) TotalVotes() int {
	return l.total
}
