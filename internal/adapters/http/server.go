package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	api "earlywarn/internal/api"
	"earlywarn/internal/domain"
	"earlywarn/internal/ports"
	analysissvc "earlywarn/internal/services/analysis"
	historysvc "earlywarn/internal/services/history"
)

const defaultAnalyzeTimeout = 15 * time.Second

// Pinger reports storage connectivity for the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health carries the startup facts the /healthz endpoint reports.
type Health struct {
	ModelLoaded         bool
	SafeBrowsingEnabled bool
	VirusTotalEnabled   bool
	Store               string
}

// Server implements the generated StrictServerInterface.
type Server struct {
	analyzer       ports.Analyzer
	history        *historysvc.Service
	pinger         Pinger
	health         Health
	analyzeTimeout time.Duration
	log            *logrus.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(analyzer ports.Analyzer, history *historysvc.Service, pinger Pinger, health Health, analyzeTimeout time.Duration, log *logrus.Logger) *Server {
	if analyzeTimeout <= 0 {
		analyzeTimeout = defaultAnalyzeTimeout
	}
	return &Server{
		analyzer:       analyzer,
		history:        history,
		pinger:         pinger,
		health:         health,
		analyzeTimeout: analyzeTimeout,
		log:            log,
	}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.requestLogger)

	// Generated handler wiring
	handler := api.NewStrictHandler(s, nil)
	api.HandlerFromMux(handler, r)
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  ww.Status(),
			"elapsed": time.Since(start).Round(time.Millisecond).String(),
		}).Info("request")
	})
}

// Strict handler methods

func (s *Server) PostAnalyze(ctx context.Context, req api.PostAnalyzeRequestObject) (api.PostAnalyzeResponseObject, error) {
	if req.Body == nil || strings.TrimSpace(req.Body.Url) == "" {
		return api.PostAnalyze400JSONResponse{Error: "url is required"}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.analyzeTimeout)
	defer cancel()

	verdict, err := s.analyzer.Analyze(ctx, req.Body.Url)
	if err != nil {
		return nil, err
	}
	s.record(ctx, verdict, req.Body.UserId)
	return api.PostAnalyze200JSONResponse(toAPIVerdict(verdict)), nil
}

func (s *Server) PostAnalyzeBatch(ctx context.Context, req api.PostAnalyzeBatchRequestObject) (api.PostAnalyzeBatchResponseObject, error) {
	if req.Body == nil || len(req.Body.Urls) == 0 {
		return api.PostAnalyzeBatch400JSONResponse{Error: "urls is required"}, nil
	}
	verdicts, err := s.analyzer.AnalyzeBatch(ctx, req.Body.Urls)
	if errors.Is(err, analysissvc.ErrBatchTooLarge) {
		return api.PostAnalyzeBatch413JSONResponse{Error: err.Error()}, nil
	}
	if err != nil {
		return nil, err
	}

	results := make([]api.ThreatVerdict, 0, len(verdicts))
	for _, v := range verdicts {
		s.record(ctx, v, req.Body.UserId)
		results = append(results, toAPIVerdict(v))
	}
	return api.PostAnalyzeBatch200JSONResponse(api.BatchAnalyzeResponse{Results: results}), nil
}

func (s *Server) GetScans(ctx context.Context, req api.GetScansRequestObject) (api.GetScansResponseObject, error) {
	limit := 0
	if req.Params.Limit != nil {
		limit = *req.Params.Limit
	}
	records, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	scans := make([]api.ScanRecord, 0, len(records))
	for _, rec := range records {
		scans = append(scans, toAPIRecord(rec))
	}
	return api.GetScans200JSONResponse(api.ScanHistoryResponse{Scans: scans}), nil
}

func (s *Server) DeleteScansScanId(ctx context.Context, req api.DeleteScansScanIdRequestObject) (api.DeleteScansScanIdResponseObject, error) {
	err := s.history.Remove(ctx, req.ScanId)
	if errors.Is(err, ports.ErrNotFound) {
		return api.DeleteScansScanId404JSONResponse{Error: "scan not found"}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.DeleteScansScanId204Response{}, nil
}

func (s *Server) GetAnalytics(ctx context.Context, req api.GetAnalyticsRequestObject) (api.GetAnalyticsResponseObject, error) {
	days := 0
	if req.Params.Days != nil {
		days = *req.Params.Days
	}
	a, err := s.history.Analytics(ctx, days)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(a.CountsByLevel))
	for level, n := range a.CountsByLevel {
		counts[string(level)] = n
	}
	daily := make([]api.DayCount, 0, len(a.Daily))
	for _, dc := range a.Daily {
		daily = append(daily, api.DayCount{Day: dc.Day, Count: dc.Count})
	}
	return api.GetAnalytics200JSONResponse(api.ScanAnalytics{
		TotalScans:    a.TotalScans,
		CountsByLevel: counts,
		Daily:         daily,
	}), nil
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	status := "ok"
	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			s.log.WithError(err).Warn("store ping failed")
			status = "degraded"
		}
	}
	return api.GetHealthz200JSONResponse{
		Status:              status,
		ModelLoaded:         s.health.ModelLoaded,
		SafeBrowsingEnabled: s.health.SafeBrowsingEnabled,
		VirusTotalEnabled:   s.health.VirusTotalEnabled,
		Store:               s.health.Store,
	}, nil
}

// record persists a verdict without failing the request. Analysis
// results are worth returning even when the store is down.
func (s *Server) record(ctx context.Context, v domain.ThreatVerdict, userID *string) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Record(ctx, v, userID); err != nil {
		s.log.WithError(err).Warn("failed to persist scan record")
	}
}

func toAPIVerdict(v domain.ThreatVerdict) api.ThreatVerdict {
	return api.ThreatVerdict{
		Url:            v.URL,
		ThreatScore:    v.ThreatScore,
		ThreatLevel:    api.ThreatLevel(v.ThreatLevel),
		Confidence:     api.Confidence(v.Confidence),
		Indicators:     v.Indicators,
		Recommendation: v.Recommendation,
		ActionRequired: v.ActionRequired,
		SafeToVisit:    v.SafeToVisit,
		Features: api.UrlFeatures{
			Length:                 v.Features.Length,
			DotCount:               v.Features.DotCount,
			HasIpHost:              v.Features.HasIPHost,
			SuspiciousKeywordCount: v.Features.SuspiciousKeywordCount,
			DomainAgeDays:          v.Features.DomainAgeDays,
			TldRiskScore:           v.Features.TLDRiskScore,
			UsesHttps:              v.Features.UsesHTTPS,
			SubdomainCount:         v.Features.SubdomainCount,
			Entropy:                v.Features.Entropy,
		},
		Intel: api.ThreatIntelSignal{
			FlaggedBySafeBrowsing: v.Intel.FlaggedBySafeBrowsing,
			FlaggedByVirusTotal:   v.Intel.FlaggedByVirusTotal,
			VendorHitCount:        v.Intel.VendorHitCount,
		},
	}
}

func toAPIRecord(rec domain.ScanRecord) api.ScanRecord {
	return api.ScanRecord{
		Id:        rec.ID,
		UserId:    rec.UserID,
		CreatedAt: rec.CreatedAt,
		Verdict:   toAPIVerdict(rec.Verdict),
	}
}
