package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

// memRepo is a minimal in-memory ScanRepository for unit tests.
type memRepo struct {
	records    []domain.ScanRecord
	lastLimit  int
	lastDays   int
	lastSaved  domain.ScanRecord
	saveErr    error
	deletedIDs []string
}

func (m *memRepo) Save(_ context.Context, rec domain.ScanRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lastSaved = rec
	m.records = append(m.records, rec)
	return nil
}

func (m *memRepo) Recent(_ context.Context, limit int) ([]domain.ScanRecord, error) {
	m.lastLimit = limit
	if limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	for i, rec := range m.records {
		if rec.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			m.deletedIDs = append(m.deletedIDs, id)
			return nil
		}
	}
	return ports.ErrNotFound
}

func (m *memRepo) Analytics(_ context.Context, days int) (domain.ScanAnalytics, error) {
	m.lastDays = days
	return domain.ScanAnalytics{TotalScans: int64(len(m.records))}, nil
}

func (m *memRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []domain.ScanRecord
	var removed int64
	for _, rec := range m.records {
		if rec.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	m.records = kept
	return removed, nil
}

func sampleVerdict(url string) domain.ThreatVerdict {
	return domain.ThreatVerdict{
		URL:         url,
		ThreatScore: 0.12,
		ThreatLevel: domain.LevelSafe,
		Confidence:  domain.ConfidenceLow,
		Indicators:  []string{"No specific threat indicators detected."},
		SafeToVisit: true,
	}
}

func TestRecord_AssignsIDAndTimestamp(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)

	before := time.Now().UTC()
	rec, err := svc.Record(context.Background(), sampleVerdict("https://example.com"), nil)
	require.NoError(t, err)

	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err, "record id must be a uuid")
	assert.False(t, rec.CreatedAt.Before(before))
	assert.Nil(t, rec.UserID)
	assert.Equal(t, rec, repo.lastSaved)
	assert.Equal(t, "https://example.com", rec.Verdict.URL)
}

func TestRecord_PropagatesSaveFailure(t *testing.T) {
	repo := &memRepo{saveErr: assert.AnError}
	_, err := New(repo).Record(context.Background(), sampleVerdict("https://example.com"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestList_ClampsLimit(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)

	_, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, repo.lastLimit)

	_, err = svc.List(context.Background(), 10_000)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, repo.lastLimit)

	_, err = svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastLimit)
}

func TestRemove_MissingRecord(t *testing.T) {
	svc := New(&memRepo{})
	err := svc.Remove(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAnalytics_ClampsWindow(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)

	_, err := svc.Analytics(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, DefaultAnalyticsDays, repo.lastDays)

	_, err = svc.Analytics(context.Background(), 365)
	require.NoError(t, err)
	assert.Equal(t, MaxAnalyticsDays, repo.lastDays)
}
