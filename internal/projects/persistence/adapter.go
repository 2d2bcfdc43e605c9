// Package persistence mirrors the project store into a durable storage slot.
//
// The slot holds {"projects": [...]}. It is rewritten after every mutation and
// read back once at startup; a missing or unreadable entry starts an empty store.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/store"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage"
)

const defaultTimeout = 2 * time.Second

// ErrMalformedState wraps every reason a persisted entry is rejected.
var ErrMalformedState = errors.New("malformed persisted state")

// State is the persisted layout
type State struct {
	Projects []domain.Project `json:"projects"`
}

type Option func(*Adapter)

// WithTimeout bounds each slot call. Saves run while the store holds its
// write lock, so d is also the longest a reader waits on a slow slot.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		a.timeout = d
	}
}

// WithFailureHandler is called whenever a save fails.
func WithFailureHandler(fn func(op store.Operation, err error)) Option {
	return func(a *Adapter) {
		a.onFailure = fn
	}
}

// Adapter is a store.Hook writing every mutation to the slot
type Adapter struct {
	slot      storage.Slot
	logger    *zap.Logger
	timeout   time.Duration
	onFailure func(op store.Operation, err error)
}

func NewAdapter(slot storage.Slot, logger *zap.Logger, opts ...Option) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Adapter{
		slot:    slot,
		logger:  logger.Named("persistence"),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AfterMutation saves the snapshot. Failures are logged, never returned.
func (a *Adapter) AfterMutation(op store.Operation, snapshot []domain.Project) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.Save(ctx, snapshot); err != nil {
		a.logger.Warn("failed to persist projects",
			zap.String("op", string(op)),
			zap.Int("count", len(snapshot)),
			zap.Error(err),
		)
		if a.onFailure != nil {
			a.onFailure(op, err)
		}
	}
}

// Save encodes projects and writes them to the slot
func (a *Adapter) Save(ctx context.Context, projects []domain.Project) error {
	if projects == nil {
		projects = []domain.Project{}
	}
	data, err := json.Marshal(State{Projects: projects})
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	return a.slot.Save(ctx, data)
}

// Load reads and validates the persisted projects.
func (a *Adapter) Load(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	data, err := a.slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Restore replaces the store's collection with the persisted one and returns
// how many projects were restored. Any problem with the stored entry leaves
// the store empty with its counter at 1.
func (a *Adapter) Restore(ctx context.Context, s *store.Store) int {
	projects, err := a.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrSlotEmpty):
		a.logger.Info("no persisted projects, starting empty")
		projects = nil
	case err != nil:
		a.logger.Warn("ignoring persisted projects", zap.Error(err))
		projects = nil
	}

	s.Restore(projects)
	a.logger.Info("restored projects",
		zap.Int("count", len(projects)),
		zap.Int("next_id", s.NextID()),
	)
	return len(projects)
}

// Decode parses the persisted layout and checks id uniqueness.
func Decode(data []byte) ([]domain.Project, error) {
	var raw struct {
		Projects *[]domain.Project `json:"projects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if raw.Projects == nil {
		return nil, fmt.Errorf("%w: missing projects", ErrMalformedState)
	}

	seen := make(map[int]struct{}, len(*raw.Projects))
	for _, p := range *raw.Projects {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: invalid id %d", ErrMalformedState, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrMalformedState, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return *raw.Projects, nil
}
