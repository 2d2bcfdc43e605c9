package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage"
)

// Slot stores the value as a plain string key with no expiry
type Slot struct {
	client *goredis.Client
	key    string
}

// NewSlot creates a Slot bound to key
func NewSlot(client *goredis.Client, key string) *Slot {
	return &Slot{
		client: client,
		key:    key,
	}
}

// Key returns the redis key the slot reads and writes
func (s *Slot) Key() string {
	return s.key
}

// Load retrieves the stored value
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.key, err)
	}
	return data, nil
}

// Save overwrites the stored value
func (s *Slot) Save(ctx context.Context, value []byte) error {
	if err := s.client.Set(ctx, s.key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", s.key, err)
	}
	return nil
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close is a no-op; the client is shared and closed by its owner.
func (s *Slot) Close() error {
	return nil
}
