package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage"
)

// Exporter is the part of the project store a backup needs
type Exporter interface {
	Export() (string, error)
}

// Scheduler periodically copies the store's export into a backup slot
type Scheduler struct {
	source  Exporter
	backup  storage.Slot
	logger  *zap.Logger
	timeout time.Duration
	cron    *cron.Cron
}

func NewScheduler(source Exporter, backup storage.Slot, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		source:  source,
		backup:  backup,
		logger:  logger.Named("jobs"),
		timeout: 5 * time.Second,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start registers the backup job on spec (six fields, seconds first) and
// starts the cron loop. An empty spec disables the job.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		s.logger.Info("backup job disabled")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.RunBackup(ctx); err != nil {
			s.logger.Error("backup failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}

	s.logger.Info("backup job scheduled", zap.String("spec", spec))
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunBackup writes one export to the backup slot
func (s *Scheduler) RunBackup(ctx context.Context) error {
	text, err := s.source.Export()
	if err != nil {
		return fmt.Errorf("export projects: %w", err)
	}
	if err := s.backup.Save(ctx, []byte(text)); err != nil {
		return fmt.Errorf("save backup: %w", err)
	}

	s.logger.Info("backup completed",
		zap.Int("bytes", len(text)),
		zap.String("at", time.Now().Format(time.RFC1123)),
	)
	return nil
}
