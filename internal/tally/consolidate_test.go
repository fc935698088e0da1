package tally

import "testing"

func TestConsolidator_MergesNearDuplicates(t *testing.T) {
	votes := map[string]int{
		"John Smith": 2,
		"Jon Smith":  1,
	}
	occurrences := map[string]int{
		"John Smith": 2,
		"Jon Smith":  1,
	}

	c := NewConsolidator()
	out := c.Consolidate(votes, occurrences)

	if len(out) != 1 {
		t.Fatalf("expected one canonical name, got %v", out)
	}
	if out["John Smith"] != 3 {
		t.Errorf("expected 3 votes under the most frequent spelling, got %v", out)
	}
}

func TestConsolidator_RecoversMergedAwaySpellings(t *testing.T) {
	// "Jonh Smith" was merged away online (no vote entry) but keeps its
	// occurrence record; consolidation must still consider it.
	votes := map[string]int{
		"John Smith": 3,
	}
	occurrences := map[string]int{
		"John Smith": 1,
		"Jonh Smith": 2,
	}

	c := NewConsolidator()
	out := c.Consolidate(votes, occurrences)

	if len(out) != 1 {
		t.Fatalf("expected one canonical name, got %v", out)
	}
	if out["Jonh Smith"] != 3 {
		t.Errorf("expected canonical pick by occurrence count, got %v", out)
	}
}

func TestConsolidator_PreservesVoteSum(t *testing.T) {
	votes := map[string]int{
		"John Smith":    5,
		"Jon Smith":     2,
		"Jhon Smith":    1,
		"Alice Johnson": 4,
		"Alice Jonson":  1,
		"Bob Martinez":  3,
	}
	occurrences := map[string]int{
		"John Smith":    5,
		"Jon Smith":     2,
		"Jhon Smith":    1,
		"Alice Johnson": 4,
		"Alice Jonson":  1,
		"Bob Martinez":  3,
	}

	want := 0
	for _, count := range votes {
		want += count
	}

	c := NewConsolidator()
	out := c.Consolidate(votes, occurrences)

	got := 0
	for _, count := range out {
		got += count
	}

	if got != want {
		t.Errorf("consolidation changed the vote sum: got %d, want %d (%v)", got, want, out)
	}
}

func TestConsolidator_DistantNamesNeverMerge(t *testing.T) {
	votes := map[string]int{
		"Alice Johnson": 2,
		"Bob Martinez":  3,
	}
	occurrences := map[string]int{
		"Alice Johnson": 2,
		"Bob Martinez":  3,
	}

	c := NewConsolidator()
	out := c.Consolidate(votes, occurrences)

	if out["Alice Johnson"] != 2 || out["Bob Martinez"] != 3 {
		t.Errorf("clearly distinct names must survive consolidation, got %v", out)
	}
}

func TestConsolidator_Idempotent(t *testing.T) {
	votes := map[string]int{
		"John Smith":    3,
		"Jon Smith":     1,
		"Alice Johnson": 2,
		"Bob Martinez":  4,
	}
	occurrences := map[string]int{
		"John Smith":    3,
		"Jon Smith":     1,
		"Alice Johnson": 2,
		"Bob Martinez":  4,
	}

	first := NewConsolidator().Consolidate(votes, occurrences)
	second := NewConsolidator().Consolidate(first, first)

	if len(first) != len(second) {
		t.Fatalf("second pass changed the result: %v then %v", first, second)
	}
	for name, count := range first {
		if second[name] != count {
			t.Errorf("second pass changed %q: %d then %d", name, count, second[name])
		}
	}
}

func TestConsolidator_EmptyInput(t *testing.T) {
	c := NewConsolidator()
	out := c.Consolidate(map[string]int{}, map[string]int{})

	if len(out) != 0 {
		t.Errorf("expected empty result for empty input, got %v", out)
	}
}
