package outbox

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// Delivery outcomes.
const (
	outcomeDelivered = "delivered"
	outcomeFailed    = "failed"
)

// Actions taken on dead-lettered events.
const (
	actionParked      = "parked"
	actionRequeued    = "requeued"
	actionRescheduled = "rescheduled"
	actionQuarantined = "quarantined"
)

var (
	deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "outbox",
		Name:      "deliveries_total",
		Help:      "Outbox events handed to Kafka, by topic and outcome.",
	}, []string{"topic", "outcome"})

	batchSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nutria",
		Subsystem: "outbox",
		Name:      "batch_seconds",
		Help:      "Wall time of one non-empty dispatcher batch.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	deadLetters = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "dlq",
		Name:      "actions_total",
		Help:      "Dead-letter transitions, by topic, event type and action.",
	}, []string{"topic", "event_type", "action"})

	deadLetterBacklog = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nutria",
		Subsystem: "dlq",
		Name:      "backlog",
		Help:      "Dead-lettered events that are not quarantined.",
	})
)

func init() {
	prometheus.MustRegister(deliveries, batchSeconds, deadLetters, deadLetterBacklog)
}

func observeBatch(messages []Message, outcome string, started time.Time) {
	for _, msg := range messages {
		deliveries.WithLabelValues(msg.Topic, outcome).Inc()
	}
	batchSeconds.Observe(time.Since(started).Seconds())
}

func observeDeadLetter(topic, eventType, action string) {
	deadLetters.WithLabelValues(topic, eventType, action).Inc()
}

// refreshBacklog is best effort; a failed count leaves the previous value in place.
func refreshBacklog(ctx context.Context, pool *pgxpool.Pool) {
	var n int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox_dlq WHERE quarantined_at IS NULL`).Scan(&n); err == nil {
		deadLetterBacklog.Set(float64(n))
	}
}
