package retention

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"earlywarn/internal/ports"
)

// Run prunes scan records older than maxAge on a fixed interval until
// the context is cancelled. The first sweep happens immediately so a
// restart never waits a full interval to enforce the policy.
func Run(ctx context.Context, repo ports.ScanRepository, maxAge, interval time.Duration, log *logrus.Logger) {
	if maxAge <= 0 || interval <= 0 {
		return
	}
	RunOnce(ctx, repo, maxAge, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			RunOnce(ctx, repo, maxAge, log)
		}
	}
}

// RunOnce performs a single retention sweep.
func RunOnce(ctx context.Context, repo ports.ScanRepository, maxAge time.Duration, log *logrus.Logger) {
	cutoff := time.Now().UTC().Add(-maxAge)
	n, err := repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.WithError(err).Warn("retention sweep failed")
		return
	}
	if n > 0 {
		log.WithFields(logrus.Fields{
			"deleted": n,
			"cutoff":  cutoff.Format(time.RFC3339),
		}).Info("pruned old scan records")
	}
}
