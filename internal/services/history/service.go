package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

// Listing and analytics windows. Callers may ask for less, never more.
const (
	DefaultLimit = 50
	MaxLimit     = 200

	DefaultAnalyticsDays = 7
	MaxAnalyticsDays     = 90
)

// Service owns the persisted scan history: recording composed verdicts,
// listing them for review, deleting them, and answering the aggregate
// queries dashboards consume.
type Service struct {
	scans ports.ScanRepository
}

func New(scans ports.ScanRepository) *Service { return &Service{scans: scans} }

// Record persists a composed verdict under a fresh id and returns the stored
// row. The verdict itself is never mutated.
func (s *Service) Record(ctx context.Context, v domain.ThreatVerdict, userID *string) (domain.ScanRecord, error) {
	rec := domain.ScanRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Verdict:   v,
	}
	if err := s.scans.Save(ctx, rec); err != nil {
		return domain.ScanRecord{}, fmt.Errorf("save scan record: %w", err)
	}
	return rec, nil
}

// List returns the most recent records, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.scans.Recent(ctx, limit)
}

// Remove deletes one record. Returns ports.ErrNotFound when it is gone.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.scans.Delete(ctx, id)
}

// Analytics aggregates the stored scans over a trailing day window.
func (s *Service) Analytics(ctx context.Context, days int) (domain.ScanAnalytics, error) {
	if days <= 0 {
		days = DefaultAnalyticsDays
	}
	if days > MaxAnalyticsDays {
		days = MaxAnalyticsDays
	}
	return s.scans.Analytics(ctx, days)
}
