package fusion

import (
	"earlywarn/internal/domain"
	"earlywarn/internal/features"
)

// Fusion policy. Named constants so the blend can be recalibrated without
// touching the algorithm's structure.
const (
	ModelWeight     = 0.65
	IndicatorWeight = 0.35

	// Tier boundaries, inclusive on the lower bound of each tier.
	SafeBelow     = 0.4
	HighRiskAbove = 0.7

	// IntelFloor is the minimum score once a reputation vendor confirms the
	// URL. It sits above HighRiskAbove so a confirmed hit can never read as
	// Safe or Suspicious.
	IntelFloor = 0.85
)

// Classify fuses the model probability, the triggered indicators and the
// intel signal into the final score, tier and confidence label.
func Classify(modelProb float64, modelLoaded bool, indicators []string, intel domain.ThreatIntelSignal) (float64, domain.ThreatLevel, domain.Confidence) {
	triggered := features.Triggered(indicators)
	density := float64(triggered) / float64(features.RuleCount)

	score := clamp01(ModelWeight*modelProb + IndicatorWeight*density)
	if intel.Positive() && score < IntelFloor {
		score = IntelFloor
	}
	return score, LevelFor(score), confidenceFor(modelProb, density, triggered, modelLoaded, intel)
}

// LevelFor maps a score onto the tier partition of [0,1].
func LevelFor(score float64) domain.ThreatLevel {
	switch {
	case score >= HighRiskAbove:
		return domain.LevelHighRisk
	case score >= SafeBelow:
		return domain.LevelSuspicious
	default:
		return domain.LevelSafe
	}
}

// confidenceFor grades how much corroborating evidence backs the score: High
// when an external hit confirms it or the model and the indicator density
// point at the same tier, Low when a lone heuristic is all there is, Medium
// otherwise.
func confidenceFor(modelProb, density float64, triggered int, modelLoaded bool, intel domain.ThreatIntelSignal) domain.Confidence {
	if intel.Positive() {
		return domain.ConfidenceHigh
	}
	if modelLoaded {
		if LevelFor(modelProb) == LevelFor(density) {
			return domain.ConfidenceHigh
		}
		return domain.ConfidenceMedium
	}
	if triggered <= 1 {
		return domain.ConfidenceLow
	}
	return domain.ConfidenceMedium
}

// Recommendation texts per tier.
const (
	recommendSafe       = "This URL appears to be safe. Exercise normal caution online."
	recommendSuspicious = "This URL shows some suspicious characteristics. Proceed with caution and verify the site's legitimacy."
	recommendHighRisk   = "This URL exhibits multiple high-risk indicators. Do not visit it and report it to your security team."
)

// Compose assembles the final verdict. Pure: no I/O, no clock, no state.
func Compose(url string, f domain.URLFeatures, indicators []string, score float64, level domain.ThreatLevel, conf domain.Confidence, intel domain.ThreatIntelSignal) domain.ThreatVerdict {
	v := domain.ThreatVerdict{
		URL:         url,
		ThreatScore: score,
		ThreatLevel: level,
		Confidence:  conf,
		Indicators:  indicators,
		Features:    f,
		Intel:       intel,
	}
	switch level {
	case domain.LevelSafe:
		v.Recommendation = recommendSafe
		v.SafeToVisit = true
	case domain.LevelSuspicious:
		v.Recommendation = recommendSuspicious
		v.ActionRequired = true
	default:
		v.Recommendation = recommendHighRisk
		v.ActionRequired = true
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
