package tally

import (
	"sort"

	"github.com/pashkov/veche/internal/cache"
	"github.com/pashkov/veche/internal/textdist"
)

// Batch clustering radius: the consolidation pass is more permissive than
// online matching so that spellings the single-pass ledger kept apart can
// still be reconciled.
const consolidateRadius = 5

// Consolidator clusters near-duplicate spellings after ingestion completes
// and remaps all votes onto one canonical spelling per cluster. The
// clustering is a best-effort heuristic, not an exact algorithm.
type Consolidator struct {
	distances *cache.Distances
}

// NewConsolidator creates a consolidator with a fresh distance memo.
func NewConsolidator() *Consolidator {
	return &Consolidator{
		distances: cache.NewDistances(textdist.Distance),
	}
}

// Consolidate clusters every spelling in occurrences (including spellings
// whose votes were fully merged away online) and rebuilds the vote tally
// under canonical names. The sum of the returned counts equals the sum of
// the input votes: remapping moves counts, never drops or creates them.
func (c *Consolidator) Consolidate(votes, occurrences map[string]int) map[string]int {
	names := namesByFrequency(occurrences)

	// Cluster seeding walks spellings from most to least frequent, so the
	// strongest spelling claims its neighborhood first and the result does
	// not depend on map iteration order.
	canonical := make(map[string]string, len(names))
	for _, name := range names {
		if _, mapped := canonical[name]; mapped {
			continue
		}

		cluster := c.gather(name, names)
		winner := chooseCanonical(cluster, occurrences)
		for _, member := range cluster {
			canonical[member] = winner
		}
	}

	consolidated := make(map[string]int, len(votes))
	for name, count := range votes {
		target, ok := canonical[name]
		if !ok {
			target = name
		}
		consolidated[target] += count
	}

	return consolidated
}

// gather returns every spelling within the consolidation radius of name,
// name itself included. This is a plain linear scan over all spellings;
// the online tree is not reused here.
func (c *Consolidator) gather(name string, names []string) []string {
	var cluster []string
	for _, other := range names {
		if c.distances.Get(name, other) <= consolidateRadius {
			cluster = append(cluster, other)
		}
	}
	return cluster
}

// chooseCanonical picks the cluster member with the highest occurrence
// count, breaking ties in favor of the longer spelling.
func chooseCanonical(cluster []string, occurrences map[string]int) string {
	winner := cluster[0]
	for _, member := range cluster[1:] {
		switch {
		case occurrences[member] > occurrences[winner]:
			winner = member
		case occurrences[member] == occurrences[winner] && len(member) > len(winner):
			winner = member
		}
	}
	return winner
}

// namesByFrequency returns all observed spellings ordered by descending
// occurrence count, with longer-then-lexicographic tie-breaks so the order
// is total.
func namesByFrequency(occurrences map[string]int) []string {
	names := make([]string, 0, len(occurrences))
	for name := range occurrences {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := names[i], names[j]
		if occurrences[a] != occurrences[b] {
			return occurrences[a] > occurrences[b]
		}
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return names
}
