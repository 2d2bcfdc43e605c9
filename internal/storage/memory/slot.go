package memory

import (
	"context"
	"sync"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage"
)

// Slot keeps the value in process memory.
type Slot struct {
	mu    sync.Mutex
	value []byte
	set   bool
	saves int
}

func NewSlot() *Slot {
	return &Slot{}
}

// NewSlotWith returns a slot that already holds value.
func NewSlotWith(value []byte) *Slot {
	s := &Slot{}
	s.store(value)
	return s
}

func (s *Slot) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		return nil, storage.ErrSlotEmpty
	}
	return append([]byte(nil), s.value...), nil
}

func (s *Slot) Save(_ context.Context, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(value)
	s.saves++
	return nil
}

func (s *Slot) Ping(_ context.Context) error { return nil }

func (s *Slot) Close() error { return nil }

// Saves reports how many times Save was called.
func (s *Slot) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saves
}

func (s *Slot) store(value []byte) {
	s.value = append([]byte(nil), value...)
	s.set = true
}
