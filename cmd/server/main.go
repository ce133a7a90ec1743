// Server entrypoint. main wires configuration, storage, the entity service,
// and the HTTP router, then runs the server with graceful shutdown.
// Business logic lives in the internal services packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clubraise/internal/audit"
	"clubraise/internal/entity/handler"
	entitymetrics "clubraise/internal/entity/metrics"
	"clubraise/internal/entity/service"
	"clubraise/internal/entity/store"
	jwttoken "clubraise/internal/jwt_token"
	"clubraise/internal/platform/config"
	"clubraise/internal/platform/httpserver"
	"clubraise/internal/platform/logger"
	platformmetrics "clubraise/internal/platform/metrics"
	"clubraise/internal/platform/middleware"
	"clubraise/internal/platform/redis"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	onboardings, entities, cleanup, err := buildStores(cfg, log)
	if err != nil {
		log.Error("storage init failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	publisher, closePublisher := buildAuditPublisher(cfg, log)
	defer closePublisher()

	svc := service.New(onboardings, entities,
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(entitymetrics.New()),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	entityHandler := handler.New(svc, log)
	router := buildRouter(cfg, log, entityHandler, jwttoken.NewJWTServiceAdapter(jwtService))

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting clubraise server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// buildStores selects Postgres when a DSN is configured and falls back to
// the in-memory stores otherwise. When Redis is configured the onboarding
// store is wrapped with the status cache.
func buildStores(cfg config.Server, log *slog.Logger) (store.OnboardingStore, store.EntityStore, func(), error) {
	if cfg.PostgresDSN == "" {
		log.Warn("POSTGRES_DSN not set, using in-memory storage")
		return store.NewInMemoryOnboardingStore(), store.NewInMemoryEntityStore(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	var onboardings store.OnboardingStore = store.NewPostgresOnboardingStore(db)
	entities := store.NewPostgresEntityStore(db)
	cleanup := func() { db.Close() }

	cache, err := redis.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, status cache disabled", "error", err)
	} else if cache != nil {
		onboardings = store.NewCachedOnboardingStore(onboardings, cache.Client, cfg.Redis.StatusTTL, log)
		inner := cleanup
		cleanup = func() {
			cache.Close()
			inner()
		}
	}

	return onboardings, entities, cleanup, nil
}

func buildAuditPublisher(cfg config.Server, log *slog.Logger) (audit.Publisher, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		return audit.NewLogPublisher(log), func() {}
	}
	publisher, err := audit.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	if err != nil {
		log.Warn("kafka unavailable, audit events go to the log only", "error", err)
		return audit.NewLogPublisher(log), func() {}
	}
	return publisher, func() { publisher.Close() }
}

func buildRouter(cfg config.Server, log *slog.Logger, h *handler.Handler, validator middleware.OrgTokenValidator) http.Handler {
	m := platformmetrics.New()

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Latency(m))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	r.Route("/onboarding", func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, log))
		h.Register(r)
	})
	r.Route("/admin/onboarding", func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(cfg.AdminToken, log))
		h.RegisterAdmin(r)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}
