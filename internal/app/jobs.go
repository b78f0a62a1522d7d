/**
 * @description
 * Scheduled job implementations for the enrollment-service.
 */
package app

import (
	"context"
	"log/slog"
	"time"
)

// SubscriptionExpirer deactivates subscriptions whose period has ended.
type SubscriptionExpirer interface {
	DeactivateExpiredSubscriptions(ctx context.Context, now time.Time) (int64, error)
}

// Jobs contains the logic for all scheduled tasks.
type Jobs struct {
	repo    SubscriptionExpirer
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewJobs creates a new Jobs runner.
func NewJobs(repo SubscriptionExpirer, logger *slog.Logger, timeout time.Duration) *Jobs {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Jobs{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// ExpireSubscriptions deactivates every subscription past its expire date.
func (j *Jobs) ExpireSubscriptions() {
	j.logger.Info("starting subscription expiry job")
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	count, err := j.repo.DeactivateExpiredSubscriptions(ctx, j.now().UTC())
	if err != nil {
		j.logger.Error("failed to deactivate expired subscriptions", "error", err)
		return
	}

	j.logger.Info("subscription expiry job finished", "deactivated", count)
}
