package intel

import (
	"context"

	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
)

// Disabled is the provider wired when no vendor credentials are configured.
// It always reports the unknown signal.
type Disabled struct{}

func (Disabled) Lookup(context.Context, string) domain.ThreatIntelSignal {
	return domain.ThreatIntelSignal{}
}

var _ ports.ThreatIntel = Disabled{}
