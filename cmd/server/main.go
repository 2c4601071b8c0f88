// Command server runs the ConnectSphere person management API.
//
// Wiring only: configuration, storage, cache, event dispatch and the HTTP
// surface come together here; business logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "connectsphere/internal/http"
	"connectsphere/internal/jwttoken"
	personhandler "connectsphere/internal/person/handler"
	personmetrics "connectsphere/internal/person/metrics"
	personservice "connectsphere/internal/person/service"
	personstore "connectsphere/internal/person/store/person"
	"connectsphere/internal/platform/config"
	"connectsphere/internal/platform/dispatch"
	"connectsphere/internal/platform/httpserver"
	"connectsphere/internal/platform/logger"
	"connectsphere/internal/platform/postgres"
	platformredis "connectsphere/internal/platform/redis"
	refhandler "connectsphere/internal/reference/handler"
	refservice "connectsphere/internal/reference/service"
	refstore "connectsphere/internal/reference/store"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage. Without a database URL the server runs entirely in memory,
	// which keeps local development free of infrastructure.
	var (
		persons personservice.PersonStore
		catalog refstore.Store
		health  func(ctx context.Context) error
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		pgPersons := personstore.NewPostgres(db)
		pgCatalog := refstore.NewPostgres(db)
		if err := refstore.SeedDefaults(ctx, pgCatalog); err != nil {
			return fmt.Errorf("seed reference catalog: %w", err)
		}
		persons = pgPersons
		catalog = pgCatalog
		health = func(ctx context.Context) error { return db.PingContext(ctx) }
		log.Info("using postgres storage")
	} else {
		memPersons := personstore.NewInMemory()
		memCatalog := refstore.NewInMemory()
		if err := refstore.SeedDefaults(ctx, memCatalog); err != nil {
			return fmt.Errorf("seed reference catalog: %w", err)
		}
		persons = memPersons
		catalog = memCatalog
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	// Reference cache. Redis is optional; the catalog falls back to direct
	// store reads when no URL is configured.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		catalog = refstore.NewCached(catalog, redisClient.Client, cfg.ReferenceCacheTTL)
		log.Info("reference cache enabled", "ttl", cfg.ReferenceCacheTTL)
	}

	// Event dispatch. Every event reaches the log; with brokers configured
	// they also go to Kafka, decoupled from request latency by the async
	// dispatcher.
	var dispatcher dispatch.Dispatcher = dispatch.NewLogging(log, nil)
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := dispatch.NewKafka(ctx, dispatch.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, log)
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		defer kafka.Close()

		async := dispatch.NewAsync(dispatch.NewLogging(log, kafka), cfg.DispatchBuffer, log)
		defer async.Close()
		dispatcher = async
		log.Info("kafka event dispatch enabled", "topic", cfg.Kafka.Topic)
	}

	// Services and HTTP surface.
	personSvc := personservice.New(persons, catalog, dispatcher,
		personservice.WithLogger(log),
		personservice.WithMetrics(personmetrics.New()),
	)
	catalogSvc := refservice.New(catalog, log)

	tokens := jwttoken.NewService(cfg.JWTSigningKey, "connectsphere", "connectsphere-api")

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:    log,
		Persons:   personhandler.New(personSvc, log),
		Reference: refhandler.New(catalogSvc, log),
		Validator: jwttoken.NewValidator(tokens),
		Health:    health,
	})

	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting connectsphere", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
