package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage"
)

const schema = `
create table if not exists kv_slots (
	key        text primary key,
	value      text not null,
	updated_at timestamptz not null default now()
);
`

// Slot stores the value as one row of kv_slots
type Slot struct {
	db  *sql.DB
	key string
}

// NewSlot creates a Slot bound to key
func NewSlot(db *sql.DB, key string) *Slot {
	return &Slot{db: db, key: key}
}

// EnsureSchema creates the kv_slots table when missing
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create kv_slots: %w", err)
	}
	return nil
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	const q = `select value from kv_slots where key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, q, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %s: %w", s.key, err)
	}
	return []byte(value), nil
}

func (s *Slot) Save(ctx context.Context, value []byte) error {
	const q = `
insert into kv_slots (key, value, updated_at)
values ($1, $2, now())
on conflict (key) do update
set value = excluded.value, updated_at = now();
`
	if _, err := s.db.ExecContext(ctx, q, s.key, string(value)); err != nil {
		return fmt.Errorf("failed to save slot %s: %w", s.key, err)
	}
	return nil
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close is a no-op; the *sql.DB is shared and closed by its owner.
func (s *Slot) Close() error {
	return nil
}
