package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/memory"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/postgres"
	redisslot "github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/redis"
)

// Storage holds the slots opened for the configured driver
type Storage struct {
	Driver  string
	Primary storage.Slot
	Backup  storage.Slot

	close func() error
}

// Close releases the backend connection shared by both slots.
func (s *Storage) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage connects to the configured backend and binds the primary
// and backup slot keys.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		client, err := redisslot.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Driver:  config.DriverRedis,
			Primary: redisslot.NewSlot(client, cfg.Storage.Key),
			Backup:  redisslot.NewSlot(client, cfg.Storage.BackupKey()),
			close:   client.Close,
		}, nil

	case config.DriverPostgres:
		db, err := postgres.NewConnection(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := ensureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Storage{
			Driver:  config.DriverPostgres,
			Primary: postgres.NewSlot(db, cfg.Storage.Key),
			Backup:  postgres.NewSlot(db, cfg.Storage.BackupKey()),
			close:   db.Close,
		}, nil

	case config.DriverMemory:
		return &Storage{
			Driver:  config.DriverMemory,
			Primary: memory.NewSlot(),
			Backup:  memory.NewSlot(),
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// NewRedisStorage wraps an existing client; used by tests and tools that
// already hold one.
func NewRedisStorage(client *goredis.Client, key string) *Storage {
	return &Storage{
		Driver:  config.DriverRedis,
		Primary: redisslot.NewSlot(client, key),
		Backup:  redisslot.NewSlot(client, key+":backup"),
	}
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return postgres.EnsureSchema(sctx, db)
}
