package domain

import "time"

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

// ThreatLevel is the discrete risk tier assigned to an analyzed URL.
type ThreatLevel string

const (
	LevelSafe       ThreatLevel = "Safe"
	LevelSuspicious ThreatLevel = "Suspicious"
	LevelHighRisk   ThreatLevel = "High Risk"
)

// Confidence is an ordinal label, not a probability. It tells a reviewer how
// much corroborating evidence backs the score.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// URLFeatures is the fixed-size lexical/structural feature vector computed
// once per analysis. All fields derive purely from the URL string.
type URLFeatures struct {
	Length                 int  `json:"length"`
	DotCount               int  `json:"dotCount"`
	HasIPHost              bool `json:"hasIpHost"`
	SuspiciousKeywordCount int  `json:"suspiciousKeywordCount"`
	// DomainAgeDays is a deterministic pseudo-age hashed from the
	// registrable domain, not a WHOIS lookup. -1 when no registrable
	// domain could be derived.
	DomainAgeDays  int     `json:"domainAgeDays"`
	TLDRiskScore   float64 `json:"tldRiskScore"`
	UsesHTTPS      bool    `json:"usesHttps"`
	SubdomainCount int     `json:"subdomainCount"`
	Entropy        float64 `json:"entropy"`
}

// ThreatIntelSignal carries reputation-vendor verdicts. A nil field means the
// vendor was disabled or the lookup failed; absence never aborts analysis.
type ThreatIntelSignal struct {
	FlaggedBySafeBrowsing *bool `json:"flaggedBySafeBrowsing,omitempty"`
	FlaggedByVirusTotal   *bool `json:"flaggedByVirusTotal,omitempty"`
	VendorHitCount        int   `json:"vendorHitCount"`
}

// Positive reports whether any vendor confirmed the URL as malicious.
func (s ThreatIntelSignal) Positive() bool {
	return (s.FlaggedBySafeBrowsing != nil && *s.FlaggedBySafeBrowsing) ||
		(s.FlaggedByVirusTotal != nil && *s.FlaggedByVirusTotal)
}

// ThreatVerdict is the engine's output, constructed once per analysis and
// immutable afterwards. Ownership transfers to the caller, which decides
// whether to persist it.
type ThreatVerdict struct {
	URL            string            `json:"url"`
	ThreatScore    float64           `json:"threatScore"`
	ThreatLevel    ThreatLevel       `json:"threatLevel"`
	Confidence     Confidence        `json:"confidence"`
	Indicators     []string          `json:"indicators"`
	Recommendation string            `json:"recommendation"`
	ActionRequired bool              `json:"actionRequired"`
	SafeToVisit    bool              `json:"safeToVisit"`
	Features       URLFeatures       `json:"features"`
	Intel          ThreatIntelSignal `json:"intel"`
}

// ScanRecord is a persisted ThreatVerdict. The engine never reads or writes
// these; the HTTP layer and the retention worker own them.
type ScanRecord struct {
	ID        string        `json:"id"`
	UserID    *string       `json:"userId,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	Verdict   ThreatVerdict `json:"verdict"`
}

// DayCount is one bucket of the time-bucketed scan counts.
type DayCount struct {
	Day   string // YYYY-MM-DD, UTC
	Count int64
}

// ScanAnalytics aggregates persisted scans for dashboards.
type ScanAnalytics struct {
	TotalScans    int64
	CountsByLevel map[ThreatLevel]int64
	Daily         []DayCount
}
