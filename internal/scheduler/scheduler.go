package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	schedulerTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "scheduler",
		Name:      "ticks_total",
		Help:      "Total number of scheduler ticks.",
	})

	schedulerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "scheduler",
		Name:      "errors_total",
		Help:      "Total number of failed due-autoship runs.",
	})

	deliveriesScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "scheduler",
		Name:      "deliveries_scheduled_total",
		Help:      "Total number of orders spawned from due autoships.",
	})
)

type AutoshipRunner interface {
	DueAutoships(ctx context.Context, asOf time.Time) ([]string, error)
	RunOne(ctx context.Context, autoshipID string, asOf time.Time) (bool, error)
}

// Scheduler периодически обрабатывает подписки с подошедшим next_run_at.
// Exactly-once обеспечивается CAS-ом внутри сервиса, поэтому несколько
// инстансов планировщика могут работать одновременно.
type Scheduler struct {
	logger      *slog.Logger
	runner      AutoshipRunner
	interval    time.Duration
	concurrency int
}

func New(logger *slog.Logger, runner AutoshipRunner, cfg config.Scheduler) *Scheduler {
	return &Scheduler{
		logger:      logger.With(slog.String("service", "scheduler")),
		runner:      runner,
		interval:    cfg.Interval,
		concurrency: cfg.Concurrency,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	go s.run(ctx)
	return nil
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	schedulerTicks.Inc()

	asOf := time.Now().UTC()
	ids, err := s.runner.DueAutoships(ctx, asOf)
	if err != nil {
		schedulerErrors.Inc()
		s.logger.Error("failed to list due autoships", slog.Any("error", err))
		return
	}
	if len(ids) == 0 {
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			created, err := s.runner.RunOne(ctx, id, asOf)
			if err != nil {
				// одна сломанная подписка не должна останавливать остальные
				schedulerErrors.Inc()
				s.logger.Error("failed to process due autoship",
					slog.String("autoship_id", id), slog.Any("error", err))
				return nil
			}
			if created {
				deliveriesScheduled.Inc()
			}
			return nil
		})
	}
	g.Wait()

	s.logger.Debug("scheduler tick finished", slog.Int("due", len(ids)))
}
