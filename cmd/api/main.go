package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Remoratrader/nutria-app/internal/api"
	"github.com/Remoratrader/nutria-app/internal/auth"
	"github.com/Remoratrader/nutria-app/internal/catalog"
	"github.com/Remoratrader/nutria-app/internal/config"
	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/outbox"
	"github.com/Remoratrader/nutria-app/internal/persistence/postgres"
	"github.com/Remoratrader/nutria-app/internal/persistence/sqlite"
	"github.com/Remoratrader/nutria-app/internal/recipegen"
	"github.com/Remoratrader/nutria-app/internal/telemetry"
	httptransport "github.com/Remoratrader/nutria-app/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, "nutria-api", cfg.OTelEndpoint)
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}

	var (
		repo       domain.Repository
		dispatcher *outbox.Dispatcher
	)
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("failed to migrate postgres: %v", err)
		}
		repo = postgres.NewRepository(pool)

		producer := outbox.NewKafkaProducer(cfg.KafkaBrokers)
		defer producer.Close()
		registry := outbox.NewSchemaRegistryClient(cfg.SchemaRegistryURL)
		dispatcher = outbox.NewDispatcher(pool, producer, registry, cfg.OutboxPollInterval, cfg.OutboxBatchSize,
			outbox.WithRetryBaseDelay(cfg.DLQBaseDelay))
		go dispatcher.Start(ctx)
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open sqlite: %v", err)
		}
		defer store.Close()
		repo = store
		log.Printf("using sqlite store at %s; domain events are not published", cfg.SQLitePath)
	}

	recipes := catalog.New()
	service := domain.NewService(repo, recipes, domain.WithLocation(cfg.Location()))

	// A nil generator makes the generate endpoint answer 503.
	var generator api.RecipeGenerator
	if cfg.GeminiAPIKey != "" {
		model := recipegen.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
		generator = recipegen.NewGenerator(model, recipes)
	} else {
		log.Printf("GEMINI_API_KEY not set; recipe generation disabled")
	}

	apiMux := http.NewServeMux()
	api.NewHandler(service, recipes, generator).RegisterRoutes(apiMux)

	verifier := auth.NewVerifier(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}, auth.PublicPaths)
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	logger := log.New(log.Writer(), "[api] ", log.LstdFlags)
	root := http.NewServeMux()
	root.Handle("/", httptransport.Chain(apiMux,
		httptransport.Recover(logger),
		httptransport.Logging(logger),
		corsMiddleware.Handler,
		verifier.Middleware,
	))

	var metricsSrv *http.Server
	if cfg.MetricsAddress != "" {
		metricsSrv = httptransport.ServeMetrics(cfg.MetricsAddress)
	} else {
		root.Handle("/metrics", promhttp.Handler())
	}

	server := httptransport.NewServer(httptransport.DefaultServerConfig(cfg.HTTPAddress), otelhttp.NewHandler(root, "nutria-api"))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("nutria-api listening on %s (storage=%s)", cfg.HTTPAddress, cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("metrics server shutdown error: %v", err)
		}
	}
	if dispatcher != nil {
		dispatcher.Wait()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("tracer shutdown error: %v", err)
	}
}
