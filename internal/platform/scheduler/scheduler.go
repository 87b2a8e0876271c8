package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
)

const checkInterval = 24 * time.Hour

// Scheduler periodically materializes recurring expenses for the current
// month. Generation is idempotent per (parent, month, year), so firing daily
// is safe: only the first tick of a month creates anything.
type Scheduler struct {
	expenses portssvc.ExpenseSvcFacade
	logger   *slog.Logger
}

// New creates a Scheduler over the expense service.
func New(expenses portssvc.ExpenseSvcFacade, logger *slog.Logger) *Scheduler {
	return &Scheduler{expenses: expenses, logger: logger}
}

// Run generates for the current month immediately, then once per day until
// the context is cancelled. It blocks; run it on its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	s.generate(ctx)

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Recurring expense scheduler stopped")
			return
		case <-ticker.C:
			s.generate(ctx)
		}
	}
}

func (s *Scheduler) generate(ctx context.Context) {
	now := time.Now().UTC()
	created, err := s.expenses.GenerateRecurringExpenses(ctx, now.Year(), now.Month())
	if err != nil {
		s.logger.Error("Recurring expense generation failed", slog.String("error", err.Error()))
		return
	}
	if len(created) > 0 {
		s.logger.Info("Recurring expenses materialized", slog.Int("count", len(created)))
	}
}
