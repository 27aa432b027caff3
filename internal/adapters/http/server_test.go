package httpadapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earlywarn/internal/adapters/sqlite"
	api "earlywarn/internal/api"
	"earlywarn/internal/classifier"
	"earlywarn/internal/intel"
	analysissvc "earlywarn/internal/services/analysis"
	historysvc "earlywarn/internal/services/history"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "scans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	model := classifier.Fallback()
	analyzer := analysissvc.New(model, intel.Disabled{}, log)
	hist := historysvc.New(store)
	srv := New(analyzer, hist, store, Health{ModelLoaded: model.Loaded(), Store: "sqlite"}, 0, log)
	return srv.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestPostAnalyzeReturnsVerdictAndPersists(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/analyze", api.AnalyzeRequest{Url: "https://www.google.com/search?q=weather"})
	require.Equal(t, http.StatusOK, rr.Code)

	var verdict api.ThreatVerdict
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&verdict))
	assert.Equal(t, "https://www.google.com/search?q=weather", verdict.Url)
	assert.Equal(t, api.ThreatLevelSafe, verdict.ThreatLevel)
	assert.True(t, verdict.SafeToVisit)
	assert.False(t, verdict.ActionRequired)

	rr = doJSON(t, h, http.MethodGet, "/scans", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var history api.ScanHistoryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&history))
	require.Len(t, history.Scans, 1)
	assert.Equal(t, verdict.Url, history.Scans[0].Verdict.Url)
	assert.NotEmpty(t, history.Scans[0].Id)
}

func TestPostAnalyzeMissingURL(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/analyze", api.AnalyzeRequest{Url: "   "})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var apiErr api.Error
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&apiErr))
	assert.Equal(t, "url is required", apiErr.Error)
}

func TestPostAnalyzeMalformedBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPostAnalyzeRecordsUserID(t *testing.T) {
	h := newTestHandler(t)

	user := "analyst-3"
	rr := doJSON(t, h, http.MethodPost, "/analyze", api.AnalyzeRequest{Url: "https://example.com", UserId: &user})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/scans", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var history api.ScanHistoryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&history))
	require.Len(t, history.Scans, 1)
	require.NotNil(t, history.Scans[0].UserId)
	assert.Equal(t, user, *history.Scans[0].UserId)
}

func TestPostAnalyzeBatchPreservesOrder(t *testing.T) {
	h := newTestHandler(t)

	urls := []string{
		"https://www.google.com",
		"http://192.168.1.1/payment",
		"https://example.org/docs",
	}
	rr := doJSON(t, h, http.MethodPost, "/analyze/batch", api.BatchAnalyzeRequest{Urls: urls})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.BatchAnalyzeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Results, len(urls))
	for i, u := range urls {
		assert.Equal(t, u, resp.Results[i].Url)
	}

	rr = doJSON(t, h, http.MethodGet, "/scans", nil)
	var history api.ScanHistoryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&history))
	assert.Len(t, history.Scans, len(urls))
}

func TestPostAnalyzeBatchTooLarge(t *testing.T) {
	h := newTestHandler(t)

	urls := make([]string, analysissvc.MaxBatchSize+1)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://example.com/%d", i)
	}
	rr := doJSON(t, h, http.MethodPost, "/analyze/batch", api.BatchAnalyzeRequest{Urls: urls})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestPostAnalyzeBatchEmpty(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/analyze/batch", api.BatchAnalyzeRequest{Urls: nil})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetScansHonorsLimit(t *testing.T) {
	h := newTestHandler(t)

	for i := 0; i < 4; i++ {
		rr := doJSON(t, h, http.MethodPost, "/analyze", api.AnalyzeRequest{Url: fmt.Sprintf("https://example.com/page/%d", i)})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := doJSON(t, h, http.MethodGet, "/scans?limit=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var history api.ScanHistoryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&history))
	assert.Len(t, history.Scans, 2)
}

func TestDeleteScan(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodPost, "/analyze", api.AnalyzeRequest{Url: "https://example.com"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/scans", nil)
	var history api.ScanHistoryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&history))
	require.Len(t, history.Scans, 1)
	id := history.Scans[0].Id

	rr = doJSON(t, h, http.MethodDelete, "/scans/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, "/scans/"+id, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	var apiErr api.Error
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&apiErr))
	assert.Equal(t, "scan not found", apiErr.Error)
}

func TestGetAnalyticsCountsLevels(t *testing.T) {
	h := newTestHandler(t)

	safe := []string{"https://www.google.com", "https://example.org"}
	for _, u := range safe {
		rr := doJSON(t, h, http.MethodPost, "/analyze", api.AnalyzeRequest{Url: u})
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr := doJSON(t, h, http.MethodPost, "/analyze", api.AnalyzeRequest{Url: "http://192.168.1.1/secure-login-verify"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/analytics?days=7", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var analytics api.ScanAnalytics
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&analytics))
	assert.Equal(t, int64(3), analytics.TotalScans)
	assert.Equal(t, int64(2), analytics.CountsByLevel[string(api.ThreatLevelSafe)])
	require.Len(t, analytics.Daily, 1)
	assert.Equal(t, int64(3), analytics.Daily[0].Count)
}

func TestGetHealthz(t *testing.T) {
	h := newTestHandler(t)

	rr := doJSON(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var health api.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.False(t, health.ModelLoaded)
	assert.False(t, health.SafeBrowsingEnabled)
	assert.False(t, health.VirusTotalEnabled)
	assert.Equal(t, "sqlite", health.Store)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
