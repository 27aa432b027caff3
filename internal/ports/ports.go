package ports

import (
	"context"

	"earlywarn/internal/domain"
)

// Analyzer runs the threat analysis engine.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (domain.ThreatVerdict, error)
	AnalyzeBatch(ctx context.Context, rawURLs []string) ([]domain.ThreatVerdict, error)
}

// ThreatIntel answers reputation lookups for a URL. Implementations never
// surface transport, auth or quota failures: a failed or disabled lookup
// collapses to the unknown signal.
type ThreatIntel interface {
	Lookup(ctx context.Context, rawURL string) domain.ThreatIntelSignal
}
