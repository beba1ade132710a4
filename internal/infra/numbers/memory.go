package numbers

import (
	"context"
	"sync"
)

// MemorySet used-set в памяти процесса (когда redis не настроен)
type MemorySet struct {
	mu   sync.Mutex
	used map[string]struct{}
}

func NewMemorySet() *MemorySet {
	return &MemorySet{used: make(map[string]struct{})}
}

func (s *MemorySet) Reserve(_ context.Context, number string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.used[number]; ok {
		return false, nil
	}
	s.used[number] = struct{}{}
	return true, nil
}
