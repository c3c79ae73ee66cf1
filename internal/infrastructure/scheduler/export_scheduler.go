// Package scheduler runs the periodic enquiry export.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clinicfinder/backend/internal/application/export"
	"github.com/clinicfinder/backend/internal/infrastructure/config"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Exporter produces one enquiry export
type Exporter interface {
	Run(ctx context.Context) (*export.Result, error)
}

// ExportScheduler triggers an Exporter on a cron schedule
type ExportScheduler struct {
	cfg      config.ExportConfig
	exporter Exporter
	logger   *zap.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
}

// NewExportScheduler validates the schedule and builds the scheduler
func NewExportScheduler(cfg config.ExportConfig, exporter Exporter, logger *zap.Logger) (*ExportScheduler, error) {
	if exporter == nil {
		return nil, fmt.Errorf("%w: exporter is required", ErrInvalidConfig)
	}
	if _, err := cron.ParseStandard(cfg.CronSchedule); err != nil {
		return nil, fmt.Errorf("%w: cron schedule %q: %v", ErrInvalidConfig, cfg.CronSchedule, err)
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportScheduler{cfg: cfg, exporter: exporter, logger: logger}, nil
}

// Start registers the job and starts the cron loop
func (s *ExportScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return ErrSchedulerRunning
	}

	cl := cronLogger{s.logger.Sugar()}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(
		cron.Recover(cl),
		cron.SkipIfStillRunning(cl),
	))
	id, err := c.AddFunc(s.cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
		defer cancel()
		_, _ = s.RunNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.Start()

	s.cron = c
	s.entryID = id
	s.logger.Info("export scheduler started",
		zap.String("schedule", s.cfg.CronSchedule),
		zap.Time("next_run", c.Entry(id).Next),
	)
	return nil
}

// Stop stops the cron loop and waits for a running export until ctx is done
func (s *ExportScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return ErrSchedulerNotRunning
	}

	select {
	case <-c.Stop().Done():
		s.logger.Info("export scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NextRun returns the next scheduled run, or zero when stopped
func (s *ExportScheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// RunNow runs one export synchronously and logs its outcome
func (s *ExportScheduler) RunNow(ctx context.Context) (*export.Result, error) {
	start := time.Now()
	res, err := s.exporter.Run(ctx)
	if err != nil {
		s.logger.Error("enquiry export failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	s.logger.Info("enquiry export finished",
		zap.String("key", res.Key),
		zap.Int("rows", res.Rows),
		zap.Duration("duration", time.Since(start)),
	)
	return res, nil
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
