package ports

import (
	"context"
	"time"

	"earlywarn/internal/domain"
)

// ErrNotFound is returned by repositories when the requested record is gone.
const ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }

// ScanRepository persists composed verdicts and answers the aggregate
// queries dashboards consume. The engine itself never touches it; only the
// HTTP layer and the retention worker do.
type ScanRepository interface {
	Save(ctx context.Context, rec domain.ScanRecord) error
	Recent(ctx context.Context, limit int) ([]domain.ScanRecord, error)
	Delete(ctx context.Context, id string) error
	Analytics(ctx context.Context, days int) (domain.ScanAnalytics, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
