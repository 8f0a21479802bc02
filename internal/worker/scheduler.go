package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Job плановая задача; ее реализует domain.ReconcileService
type Job interface {
	RunScheduled(ctx context.Context) error
}

// Scheduler периодически запускает сверку заказов с провайдером и очистку журнала.
// Запуски не перекрываются: следующий тик ждет завершения текущего.
type Scheduler struct {
	job      Job
	interval time.Duration
	logger   *zap.Logger
}

// NewScheduler создает новый Scheduler; interval <= 0 отключает запуски
func NewScheduler(job Job, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

// Run блокируется до отмены ctx
func (s *Scheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("scheduler disabled")
		<-ctx.Done()
		return nil
	}

	s.logger.Info("scheduler started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopping")
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	start := time.Now()
	err := s.job.RunScheduled(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return
		}
		s.logger.Error("scheduled reconcile failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return
	}
	s.logger.Debug("scheduled reconcile finished", zap.Duration("elapsed", time.Since(start)))
}
