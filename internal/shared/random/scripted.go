package random

import "sync"

// Scripted is a Source that replays queued values, for tests that need to
// force a particular branch. Once a queue is drained it returns 0.
type Scripted struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

// NewScripted creates a Scripted source with the given float and int queues.
func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{
		floats: append([]float64(nil), floats...),
		ints:   append([]int(nil), ints...),
	}
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// IntN returns the next queued int reduced modulo n.
func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return ((v % n) + n) % n
}
