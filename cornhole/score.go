package cornhole

import "fmt"

// ScoreTally counts resolved flights. It only grows; Reset does not clear it.
type ScoreTally struct {
	Hits   int
	Misses int
}

// Record adds one resolved flight
func (s *ScoreTally) Record(o Outcome) {
	switch o {
	case OutcomeHit:
		s.Hits++
	case OutcomeMiss:
		s.Misses++
	}
}

// Total returns the number of resolved flights
func (s ScoreTally) Total() int {
	return s.Hits + s.Misses
}

// Accuracy returns the hit percentage, or false before the first flight
func (s ScoreTally) Accuracy() (float64, bool) {
	n := s.Total()
	if n == 0 {
		return 0, false
	}
	return 100 * float64(s.Hits) / float64(n), true
}

// String renders the status line readout
func (s ScoreTally) String() string {
	acc := "--"
	if a, ok := s.Accuracy(); ok {
		acc = fmt.Sprintf("%.2f%%", a)
	}
	return fmt.Sprintf("Hits: %d  Misses: %d  Accuracy: %s", s.Hits, s.Misses, acc)
}
