package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Remoratrader/nutria-app/internal/config"
	"github.com/Remoratrader/nutria-app/internal/outbox"
	httptransport "github.com/Remoratrader/nutria-app/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.UsesOutbox() {
		log.Fatalf("dlq manager requires STORAGE_DRIVER=%s", config.DriverPostgres)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	addr := cfg.MetricsAddress
	if addr == "" {
		addr = ":9102"
	}
	metrics := httptransport.ServeMetrics(addr)

	manager := outbox.NewDLQManager(pool, cfg.DLQMaxRetries, cfg.DLQBaseDelay)
	log.Printf("dlq manager polling every %s (max retries %d, batch %d)", cfg.DLQPollInterval, cfg.DLQMaxRetries, cfg.DLQBatchSize)
	sweep(ctx, manager, cfg.DLQPollInterval, cfg.DLQBatchSize)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics server shutdown error: %v", err)
	}
}

// sweep replays due dead letters on every tick until ctx is done.
func sweep(ctx context.Context, manager *outbox.DLQManager, every time.Duration, batch int) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("dlq manager shutting down")
			return
		case <-ticker.C:
		}
		requeued, err := manager.RunOnce(ctx, batch)
		switch {
		case err != nil:
			log.Printf("dlq sweep failed: %v", err)
		case requeued > 0:
			log.Printf("requeued %d dead letters", requeued)
		}
	}
}
