package http

import (
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/store"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

func New(s *store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: s, logger: logger.Named("projects")}
}

type statsResponse struct {
	OK        bool `json:"ok"`
	Count     int  `json:"count"`
	HasAny    bool `json:"has_any"`
	Completed int  `json:"completed"`
}
