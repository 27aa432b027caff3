package intel

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const vtEndpoint = "https://www.virustotal.com/api/v3"

// VirusTotal checks URLs against the VirusTotal v3 API using the URL
// identifier form (unpadded url-safe base64 of the raw URL).
type VirusTotal struct {
	// Endpoint and HTTPClient are overridable for mirrors and tests.
	Endpoint   string
	HTTPClient *http.Client

	apiKey  string
	limiter *rate.Limiter
}

func NewVirusTotal(apiKey string) *VirusTotal {
	return &VirusTotal{
		Endpoint:   vtEndpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		// Public API keys allow four lookups per minute.
		limiter: rate.NewLimiter(rate.Every(15*time.Second), 4),
	}
}

type vtResponse struct {
	Data struct {
		Attributes struct {
			LastAnalysisStats struct {
				Malicious  int `json:"malicious"`
				Suspicious int `json:"suspicious"`
				Harmless   int `json:"harmless"`
				Undetected int `json:"undetected"`
			} `json:"last_analysis_stats"`
		} `json:"attributes"`
	} `json:"data"`
}

// Check returns whether any engine reported the URL malicious and how many
// did. An unknown URL comes back as a non-200 status and surfaces as an
// error, which the caller treats as the unknown signal.
func (c *VirusTotal) Check(ctx context.Context, rawURL string) (bool, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, 0, fmt.Errorf("virustotal rate limit: %w", err)
	}
	id := base64.RawURLEncoding.EncodeToString([]byte(rawURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"/urls/"+id, nil)
	if err != nil {
		return false, 0, err
	}
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, 0, fmt.Errorf("virustotal request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, 0, fmt.Errorf("virustotal status %d", resp.StatusCode)
	}
	var out vtResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, 0, fmt.Errorf("decode virustotal response: %w", err)
	}
	malicious := out.Data.Attributes.LastAnalysisStats.Malicious
	return malicious > 0, malicious, nil
}
