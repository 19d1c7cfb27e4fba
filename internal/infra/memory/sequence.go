package memory

import "sync/atomic"

// sequence hands out ids starting at 1, like a Postgres bigserial.
type sequence struct {
	last atomic.Int64
}

func (s *sequence) next() int64 {
	return s.last.Add(1)
}
