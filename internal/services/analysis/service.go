package analysis

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"earlywarn/internal/classifier"
	"earlywarn/internal/domain"
	"earlywarn/internal/features"
	"earlywarn/internal/fusion"
	"earlywarn/internal/ports"
)

// MaxBatchSize caps one AnalyzeBatch call.
const MaxBatchSize = 25

// batchWorkers bounds concurrent analyses within a batch so a large request
// cannot fan out to the reputation vendors all at once.
const batchWorkers = 4

var ErrBatchTooLarge = errString("batch exceeds maximum size")

type errString string

func (e errString) Error() string { return string(e) }

// Service runs the analysis pipeline: extract features, then compute
// indicators and the model probability locally while the intel lookup runs
// concurrently, then fuse and compose. The model handle is read-only; the
// service is safe for concurrent use.
type Service struct {
	model *classifier.Model
	intel ports.ThreatIntel
	log   *logrus.Logger
}

func New(model *classifier.Model, intel ports.ThreatIntel, log *logrus.Logger) *Service {
	return &Service{model: model, intel: intel, log: log}
}

// Analyze produces a verdict for one URL. Malformed input never fails; the
// only error is the caller's context expiring.
func (s *Service) Analyze(ctx context.Context, rawURL string) (domain.ThreatVerdict, error) {
	intelCh := make(chan domain.ThreatIntelSignal, 1)
	go func() { intelCh <- s.intel.Lookup(ctx, rawURL) }()

	f := features.Extract(rawURL)
	indicators := features.Indicators(f)
	prob := s.model.Predict(f)

	var sig domain.ThreatIntelSignal
	select {
	case sig = <-intelCh:
	case <-ctx.Done():
		return domain.ThreatVerdict{}, ctx.Err()
	}

	score, level, conf := fusion.Classify(prob, s.model.Loaded(), indicators, sig)
	return fusion.Compose(rawURL, f, indicators, score, level, conf, sig), nil
}

// AnalyzeBatch analyzes up to MaxBatchSize URLs with bounded concurrency.
// Results keep the order of the input.
func (s *Service) AnalyzeBatch(ctx context.Context, rawURLs []string) ([]domain.ThreatVerdict, error) {
	if len(rawURLs) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}
	out := make([]domain.ThreatVerdict, len(rawURLs))

	workers := batchWorkers
	if len(rawURLs) < workers {
		workers = len(rawURLs)
	}
	jobsCh := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobsCh {
				v, err := s.Analyze(ctx, rawURLs[idx])
				if err != nil {
					continue
				}
				out[idx] = v
			}
		}()
	}

dispatch:
	for i := range rawURLs {
		select {
		case jobsCh <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobsCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ ports.Analyzer = (*Service)(nil)
