package persist

import (
	"context"
	"sync"
)

// memorySlot keeps the snapshot in process memory.
type memorySlot struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemorySlot creates a slot that lives as long as the process.
func NewMemorySlot() Slot {
	return &memorySlot{}
}

func (s *memorySlot) Get(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *memorySlot) Put(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *memorySlot) Close() error { return nil }
