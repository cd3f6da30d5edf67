package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"evalhub/internal/domain/adjustment"
	"evalhub/internal/domain/audit"
	"evalhub/internal/domain/campaign"
	"evalhub/internal/domain/directory"
	"evalhub/internal/domain/evaluation"
	"evalhub/internal/domain/monitoring"
	"evalhub/internal/domain/reminder"
	"evalhub/internal/platform/config"
	"evalhub/internal/platform/db"
	"evalhub/internal/platform/jobs"
	"evalhub/internal/platform/metrics"
	"evalhub/internal/transport/http/api"
	authhandler "evalhub/internal/transport/http/handlers/auth"
	evaluationshandler "evalhub/internal/transport/http/handlers/evaluations"
	monitoringhandler "evalhub/internal/transport/http/handlers/monitoring"
	"evalhub/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	evaluations := evaluation.NewService(evaluation.NewStore(pool))
	campaigns := campaign.NewService(campaign.NewStore(pool), nil)
	adjustments := adjustment.NewService(adjustment.NewStore(pool), cfg.AdjustmentBound())
	directorySvc := directory.NewService(directory.NewStore(pool))
	monitoringSvc := monitoring.NewService(evaluations, campaigns, adjustments, directorySvc)
	reminders := reminder.New(cfg.ReminderWebhookURL)
	auditSvc := audit.New(pool)
	collector := metrics.New()

	sweeper := jobs.New(pool, cfg, campaigns, reminders, collector)
	sweeper.Start(ctx)

	weights := evaluation.WeightConfig{
		FirstHalf:  cfg.WeightFirstHalf,
		SecondHalf: cfg.WeightSecondHalf,
		PeerReview: cfg.WeightPeerReview,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret)
		authHandler.RegisterRoutes(r)

		evaluationsHandler := evaluationshandler.NewHandler(evaluations, weights)
		evaluationsHandler.RegisterRoutes(r)

		monitoringHandler := monitoringhandler.NewHandler(
			monitoringSvc, adjustments, reminders, auditSvc, collector,
			middleware.NewIdempotencyStore(pool), cfg.Threshold())
		monitoringHandler.RegisterRoutes(r)
	})

	log.Printf("evalhub server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
