package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Remoratrader/nutria-app/internal/config"
	"github.com/Remoratrader/nutria-app/internal/consumer"
	httptransport "github.com/Remoratrader/nutria-app/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.UsesOutbox() {
		log.Fatalf("consumer requires STORAGE_DRIVER=%s", config.DriverPostgres)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	metrics := httptransport.ServeMetrics(metricsAddress(cfg.MetricsAddress, ":9101"))

	group := consumer.GroupConfig{
		Brokers: cfg.KafkaBrokers,
		GroupID: cfg.ConsumerGroupID,
		Topics:  cfg.ConsumerTopics,
	}
	if err := consumer.RunGroup(ctx, group, consumer.NewEventLogHandler(pool)); err != nil {
		log.Printf("consumer group stopped: %v", err)
	}
	log.Println("consumer shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics server shutdown error: %v", err)
	}
}

func metricsAddress(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}
