package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	httpadapter "earlywarn/internal/adapters/http"
	pg "earlywarn/internal/adapters/postgres"
	"earlywarn/internal/adapters/sqlite"
	"earlywarn/internal/classifier"
	"earlywarn/internal/config"
	"earlywarn/internal/intel"
	"earlywarn/internal/ports"
	analysissvc "earlywarn/internal/services/analysis"
	historysvc "earlywarn/internal/services/history"
	"earlywarn/internal/workers/retention"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("unknown log level %q, using info", cfg.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage: Postgres when configured, embedded SQLite otherwise.
	var (
		scans  ports.ScanRepository
		pinger httpadapter.Pinger
		store  string
	)
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("postgres connect failed")
		}
		defer db.Close()
		scans, pinger, store = db, db, "postgres"
	} else {
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.WithError(err).Fatal("sqlite open failed")
		}
		defer db.Close()
		scans, pinger, store = db, db, "sqlite"
	}
	log.WithField("store", store).Info("scan store ready")

	model := classifier.LoadOrFallback(cfg.ModelPath, log)

	// Threat intel vendors are enabled by key presence; a missing key
	// just leaves that vendor unknown. Lookups go through Redis when
	// an address is configured.
	var lookups ports.ThreatIntel = intel.Disabled{}
	var sb *intel.SafeBrowsing
	var vt *intel.VirusTotal
	if cfg.SafeBrowsingKey != "" {
		sb = intel.NewSafeBrowsing(cfg.SafeBrowsingKey)
	}
	if cfg.VirusTotalKey != "" {
		vt = intel.NewVirusTotal(cfg.VirusTotalKey)
	}
	if sb != nil || vt != nil {
		lookups = intel.NewMulti(sb, vt, cfg.IntelTimeout, log)
		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			lookups = intel.NewCache(lookups, rdb, cfg.IntelCacheTTL, log)
			log.WithField("addr", cfg.RedisAddr).Info("intel cache enabled")
		}
	}

	analyzer := analysissvc.New(model, lookups, log)
	history := historysvc.New(scans)

	health := httpadapter.Health{
		ModelLoaded:         model.Loaded(),
		SafeBrowsingEnabled: sb != nil,
		VirusTotalEnabled:   vt != nil,
		Store:               store,
	}
	srv := httpadapter.New(analyzer, history, pinger, health, cfg.AnalyzeTimeout, log)

	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	if cfg.RetentionDays > 0 {
		maxAge := time.Duration(cfg.RetentionDays) * 24 * time.Hour
		go retention.Run(ctx, scans, maxAge, cfg.RetentionInterval, log)
		log.WithField("days", cfg.RetentionDays).Info("retention worker started")
	}

	server := &http.Server{Addr: cfg.Addr(), Handler: r}
	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()
	log.WithField("addr", cfg.Addr()).Info("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown incomplete")
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}
}
