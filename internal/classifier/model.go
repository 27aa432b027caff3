package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"earlywarn/internal/domain"
)

// featureOrder is the training-time feature schema, version 1. An artifact
// whose declared feature list differs in any way is rejected and the service
// falls back to heuristic scoring.
var featureOrder = []string{
	"url_length",
	"dot_count",
	"has_ip",
	"has_https",
	"suspicious_keywords",
	"tld_risk_score",
	"subdomain_count",
	"entropy",
}

const schemaVersion = 1

// artifact mirrors the JSON layout of an exported model file.
type artifact struct {
	SchemaVersion int                `json:"schema_version"`
	TrainedAt     string             `json:"trained_at"`
	Features      []string           `json:"features"`
	Intercept     float64            `json:"intercept"`
	Weights       map[string]float64 `json:"weights"`
}

// Model turns a feature vector into a raw threat probability. It is built
// once at startup, immutable afterwards, and safe for unlimited concurrent
// callers. When no artifact is loaded it scores with a deterministic
// weighted-sum heuristic instead.
type Model struct {
	loaded    bool
	trainedAt string
	intercept float64
	weights   []float64 // aligned with featureOrder
}

// Load reads and validates a model artifact. Callers that want the missing-
// artifact case to degrade instead of erroring should use LoadOrFallback.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if a.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("model schema version %d, want %d", a.SchemaVersion, schemaVersion)
	}
	if len(a.Features) != len(featureOrder) {
		return nil, fmt.Errorf("model declares %d features, want %d", len(a.Features), len(featureOrder))
	}
	for i, name := range featureOrder {
		if a.Features[i] != name {
			return nil, fmt.Errorf("model feature %d is %q, want %q", i, a.Features[i], name)
		}
	}
	m := &Model{
		loaded:    true,
		trainedAt: a.TrainedAt,
		intercept: a.Intercept,
		weights:   make([]float64, len(featureOrder)),
	}
	for i, name := range featureOrder {
		w, ok := a.Weights[name]
		if !ok {
			return nil, fmt.Errorf("model missing weight for %q", name)
		}
		m.weights[i] = w
	}
	return m, nil
}

// Fallback returns a model that only scores with the heuristic.
func Fallback() *Model {
	return &Model{}
}

// LoadOrFallback loads the artifact at path, degrading to heuristic scoring
// when the file is absent or unusable. The outcome is logged once here so
// request handling stays quiet about it.
func LoadOrFallback(path string, log *logrus.Logger) *Model {
	m, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("model artifact not found at %s, scoring with heuristic fallback", path)
		} else {
			log.Warnf("model artifact unusable (%v), scoring with heuristic fallback", err)
		}
		return Fallback()
	}
	log.Infof("model artifact loaded from %s (trained %s)", path, m.trainedAt)
	return m
}

// Loaded reports whether a trained artifact backs Predict.
func (m *Model) Loaded() bool { return m.loaded }

// TrainedAt returns the artifact's training timestamp, empty for the
// heuristic fallback.
func (m *Model) TrainedAt() string { return m.trainedAt }

// Predict returns a raw threat probability in [0,1] for the feature vector.
func (m *Model) Predict(f domain.URLFeatures) float64 {
	if !m.loaded {
		return fallbackScore(f)
	}
	z := m.intercept
	for i, v := range vector(f) {
		z += m.weights[i] * v
	}
	return sigmoid(z)
}

// vector flattens features in the training-time order.
func vector(f domain.URLFeatures) []float64 {
	return []float64{
		float64(f.Length),
		float64(f.DotCount),
		boolToFloat(f.HasIPHost),
		boolToFloat(f.UsesHTTPS),
		float64(f.SuspiciousKeywordCount),
		f.TLDRiskScore,
		float64(f.SubdomainCount),
		f.Entropy,
	}
}

// Heuristic weights. Cut-offs are intentionally stricter than the indicator
// thresholds: this path approximates a probability, it does not restate the
// indicator list.
const (
	fbLongURL     = 0.15 // length > 80
	fbManyDots    = 0.10 // dot count > 4
	fbIPHost      = 0.35
	fbNoHTTPS     = 0.15
	fbPerKeyword  = 0.15
	fbRiskyTLD    = 0.30
	fbDeepSubdoms = 0.10 // subdomain count > 3
	fbHighEntropy = 0.15 // entropy > 5.0
	fbYoungDomain = 0.05 // simulated age < 180 days
)

func fallbackScore(f domain.URLFeatures) float64 {
	score := 0.0
	if f.Length > 80 {
		score += fbLongURL
	}
	if f.DotCount > 4 {
		score += fbManyDots
	}
	if f.HasIPHost {
		score += fbIPHost
	}
	if !f.UsesHTTPS {
		score += fbNoHTTPS
	}
	score += fbPerKeyword * float64(f.SuspiciousKeywordCount)
	if f.TLDRiskScore > 0 {
		score += fbRiskyTLD
	}
	if f.SubdomainCount > 3 {
		score += fbDeepSubdoms
	}
	if f.Entropy > 5.0 {
		score += fbHighEntropy
	}
	if f.DomainAgeDays >= 0 && f.DomainAgeDays < 180 {
		score += fbYoungDomain
	}
	return clamp01(score)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
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

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
