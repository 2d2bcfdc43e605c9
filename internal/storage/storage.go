package storage

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Slot.Load when nothing has been saved under the key.
var ErrSlotEmpty = errors.New("storage slot is empty")

// Slot is a single key/value entry in a durable backend.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
