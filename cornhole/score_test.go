package cornhole

import "testing"

func TestScoreTally(t *testing.T) {
	var s ScoreTally
	if _, ok := s.Accuracy(); ok {
		t.Fatal("no accuracy before the first flight")
	}
	if got, want := s.String(), "Hits: 0  Misses: 0  Accuracy: --"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	s.Record(OutcomeHit)
	s.Record(OutcomeMiss)
	s.Record(OutcomeMiss)
	s.Record(OutcomeNone)

	if s.Total() != 3 {
		t.Fatalf("total = %d, want 3", s.Total())
	}
	if got, want := s.String(), "Hits: 1  Misses: 2  Accuracy: 33.33%"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
