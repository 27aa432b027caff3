package features

import (
	"fmt"

	"earlywarn/internal/domain"
)

// Thresholds for the heuristic indicator rules. Tunable constants, not
// derived from training.
const (
	longURLThreshold      = 75
	dotCountThreshold     = 3
	subdomainThreshold    = 2
	entropyThreshold      = 4.0
	fallbackNoneIndicator = "No specific threat indicators detected."
)

// RuleCount is the number of independent indicator rules, used to normalize
// indicator density during score fusion.
const RuleCount = 8

// Indicators derives human-readable threat indicators from a feature vector.
// Evaluation order is fixed (length, dots, IP, keywords, TLD, HTTPS,
// subdomains, entropy) so output ordering is stable. Each rule contributes at
// most one entry; when nothing triggers the result is a single placeholder.
func Indicators(f domain.URLFeatures) []string {
	out := make([]string, 0, RuleCount)
	if f.Length > longURLThreshold {
		out = append(out, "Unusually long URL")
	}
	if f.DotCount > dotCountThreshold {
		out = append(out, "Excessive number of dots in URL")
	}
	if f.HasIPHost {
		out = append(out, "IP address used instead of domain name")
	}
	if f.SuspiciousKeywordCount > 0 {
		out = append(out, fmt.Sprintf("Suspicious keywords detected (%d found)", f.SuspiciousKeywordCount))
	}
	if f.TLDRiskScore > 0 {
		out = append(out, "High-risk TLD detected")
	}
	if !f.UsesHTTPS {
		out = append(out, "No HTTPS encryption")
	}
	if f.SubdomainCount > subdomainThreshold {
		out = append(out, "Excessive subdomain depth")
	}
	if f.Entropy > entropyThreshold {
		out = append(out, "High URL entropy (possible obfuscation)")
	}
	if len(out) == 0 {
		out = append(out, fallbackNoneIndicator)
	}
	return out
}

// Triggered counts how many real rules fired. The placeholder emitted when
// nothing triggers does not count.
func Triggered(indicators []string) int {
	if len(indicators) == 1 && indicators[0] == fallbackNoneIndicator {
		return 0
	}
	return len(indicators)
}
