package intel

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

// Multi fans a lookup out to every configured vendor concurrently, bounded by
// one overall timeout. A vendor failure degrades that vendor to unknown and
// is logged; it never reaches the analysis pipeline.
type Multi struct {
	sb      *SafeBrowsing
	vt      *VirusTotal
	timeout time.Duration
	log     *logrus.Logger
}

// NewMulti builds the fan-out provider. Either vendor may be nil.
func NewMulti(sb *SafeBrowsing, vt *VirusTotal, timeout time.Duration, log *logrus.Logger) *Multi {
	return &Multi{sb: sb, vt: vt, timeout: timeout, log: log}
}

func (m *Multi) Lookup(ctx context.Context, rawURL string) domain.ThreatIntelSignal {
	if m.sb == nil && m.vt == nil {
		return domain.ThreatIntelSignal{}
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var (
		mu  sync.Mutex
		out domain.ThreatIntelSignal
	)
	g, ctx := errgroup.WithContext(ctx)
	if m.sb != nil {
		g.Go(func() error {
			flagged, err := m.sb.Check(ctx, rawURL)
			if err != nil {
				m.log.Warnf("safe browsing lookup degraded to unknown: %v", err)
				return nil
			}
			mu.Lock()
			out.FlaggedBySafeBrowsing = &flagged
			if flagged {
				out.VendorHitCount++
			}
			mu.Unlock()
			return nil
		})
	}
	if m.vt != nil {
		g.Go(func() error {
			flagged, engines, err := m.vt.Check(ctx, rawURL)
			if err != nil {
				m.log.Warnf("virustotal lookup degraded to unknown: %v", err)
				return nil
			}
			mu.Lock()
			out.FlaggedByVirusTotal = &flagged
			out.VendorHitCount += engines
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

var _ ports.ThreatIntel = (*Multi)(nil)
