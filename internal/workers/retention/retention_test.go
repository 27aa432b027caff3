package retention

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

type sweepRepo struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
	deleted int64
}

func (r *sweepRepo) Save(context.Context, domain.ScanRecord) error { return nil }
func (r *sweepRepo) Recent(context.Context, int) ([]domain.ScanRecord, error) {
	return nil, nil
}
func (r *sweepRepo) Delete(context.Context, string) error { return ports.ErrNotFound }
func (r *sweepRepo) Analytics(context.Context, int) (domain.ScanAnalytics, error) {
	return domain.ScanAnalytics{}, nil
}

func (r *sweepRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cutoffs = append(r.cutoffs, cutoff)
	return r.deleted, r.err
}

func (r *sweepRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cutoffs)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunOnceUsesMaxAgeCutoff(t *testing.T) {
	repo := &sweepRepo{deleted: 3}

	RunOnce(context.Background(), repo, 30*24*time.Hour, quietLogger())

	require.Equal(t, 1, repo.calls())
	want := time.Now().UTC().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, want, repo.cutoffs[0], time.Second)
}

func TestRunOnceSwallowsRepositoryErrors(t *testing.T) {
	repo := &sweepRepo{err: assert.AnError}

	RunOnce(context.Background(), repo, time.Hour, quietLogger())

	assert.Equal(t, 1, repo.calls())
}

func TestRunSweepsImmediatelyThenOnInterval(t *testing.T) {
	repo := &sweepRepo{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx, repo, time.Hour, 20*time.Millisecond, quietLogger())
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.calls() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	after := repo.calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, repo.calls(), "sweeps continued after cancellation")
}

func TestRunDisabledWithoutMaxAge(t *testing.T) {
	repo := &sweepRepo{}

	Run(context.Background(), repo, 0, time.Minute, quietLogger())

	assert.Zero(t, repo.calls())
}
