package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/persistence"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/store"
)

type AppOptions struct {
	SeedDemo bool
}

// App is the project store wired to persistence and metrics
type App struct {
	Store       *store.Store
	Storage     *Storage
	Persistence *persistence.Adapter
	Metrics     *metrics.Recorder
	Logger      *zap.Logger
}

// NewApp builds the store, restores it from the primary slot and seeds the
// demo projects when asked to and the store is empty.
func NewApp(ctx context.Context, st *Storage, logger *zap.Logger, opt AppOptions) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	recorder := metrics.NewRecorder()
	adapter := persistence.NewAdapter(st.Primary, logger,
		persistence.WithFailureHandler(recorder.PersistFailed),
	)
	s := store.New(store.WithHooks(adapter, recorder))

	adapter.Restore(ctx, s)
	recorder.Observe(s.List())

	if opt.SeedDemo && !s.HasAny() {
		seeded := s.AddMany(domain.SeedProjects())
		logger.Info("seeded demo projects", zap.Int("count", len(seeded)))
	}

	return &App{
		Store:       s,
		Storage:     st,
		Persistence: adapter,
		Metrics:     recorder,
		Logger:      logger,
	}
}
