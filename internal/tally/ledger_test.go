package tally

import "testing"

func TestLedger_RegistersNewParticipants(t *testing.T) {
	l := NewLedger()
	l.Add("Alice Johnson")
	l.Add("Bob Martinez")

	votes := l.Votes()
	if votes["Alice Johnson"] != 1 || votes["Bob Martinez"] != 1 {
		t.Errorf("expected one vote each, got %v", votes)
	}
	if l.TotalVotes() != 2 {
		t.Errorf("expected total 2, got %d", l.TotalVotes())
	}
}

func TestLedger_MatchesWithinRadius(t *testing.T) {
	l := NewLedger()
	l.Add("John Smith")
	l.Add("Jonh Smith") // transposition, distance 1, same length

	votes := l.Votes()
	if len(votes) != 1 {
		t.Fatalf("expected a single participant, got %v", votes)
	}
	if votes["John Smith"] != 2 {
		t.Errorf("expected 2 votes for %q, got %v", "John Smith", votes)
	}
}

func TestLedger_LongerSpellingTakesOver(t *testing.T) {
	l := NewLedger()
	l.Add("Jon Smith")
	l.Add("Jon Smith")
	l.Add("John Smith") // longer and within radius: inherits the count

	votes := l.Votes()
	if votes["John Smith"] != 3 {
		t.Errorf("expected 3 votes under the longer spelling, got %v", votes)
	}
	if _, stillThere := votes["Jon Smith"]; stillThere {
		t.Errorf("expected shorter spelling to be merged away, got %v", votes)
	}

	// The occurrence tally keeps the merged-away spelling.
	occ := l.Occurrences()
	if occ["Jon Smith"] != 2 || occ["John Smith"] != 1 {
		t.Errorf("unexpected occurrence tally: %v", occ)
	}
}

func TestLedger_ShorterIncomingCreditsExisting(t *testing.T) {
	l := NewLedger()
	l.Add("John Smith")
	l.Add("Jon Smith") // shorter: existing spelling stays canonical

	votes := l.Votes()
	if votes["John Smith"] != 2 {
		t.Errorf("expected 2 votes for existing spelling, got %v", votes)
	}
	if len(votes) != 1 {
		t.Errorf("expected one participant, got %v", votes)
	}
}

func TestLedger_DistantNamesStayApart(t *testing.T) {
	l := NewLedger()
	l.Add("Alice Johnson")
	l.Add("Bob Martinez")
	l.Add("Alice Johnson")

	votes := l.Votes()
	if votes["Alice Johnson"] != 2 || votes["Bob Martinez"] != 1 {
		t.Errorf("distinct names must not merge, got %v", votes)
	}
}

func TestLedger_VoteSumEqualsLineCount(t *testing.T) {
	names := []string{
		"John Smith", "Jonh Smith", "John Smith", "Jon Smith",
		"Alice Johnson", "Alice Jonson", "Bob Martinez",
		"John Smithe", "Bob Martinez", "A", "Ab", "Abc",
	}

	l := NewLedger()
	for _, n := range names {
		l.Add(n)
	}

	sum := 0
	for _, count := range l.Votes() {
		sum += count
	}

	if sum != len(names) {
		t.Errorf("vote sum %d does not equal ingested line count %d", sum, len(names))
	}
	if l.TotalVotes() != len(names) {
		t.Errorf("TotalVotes() = %d, want %d", l.TotalVotes(), len(names))
	}
}

func TestLedger_TieBreakPrefersLongerExisting(t *testing.T) {
	l := NewLedger()
	l.Add("Smith")
	l.Add("Smithee") // absorbs "Smith" (distance 2, longer incoming)
	// "Smithe" is distance 1 from both indexed spellings; the longer one
	// wins the tie, and the incoming name is shorter, so it just credits.
	l.Add("Smithe")

	votes := l.Votes()
	if votes["Smithee"] != 3 {
		t.Errorf("expected tie-break toward longer spelling, got %v", votes)
	}
	if len(votes) != 1 {
		t.Errorf("expected a single participant, got %v", votes)
	}
}
