package services

import (
	"sync"
	"time"
)

// IDSequence выдаёт идентификаторы заказов на основе времени в миллисекундах.
// Значения строго возрастают даже при нескольких заказах в одну миллисекунду.
type IDSequence struct {
	mu   sync.Mutex
	last int64
}

func (s *IDSequence) Next(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
