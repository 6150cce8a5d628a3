package consumer

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventLogHandler appends consumed events to meal_plan_event_log.
// Redelivered records are ignored by their (topic, partition, offset) key.
type EventLogHandler struct {
	pool *pgxpool.Pool
}

// NewEventLogHandler constructs a handler backed by the provided pool.
func NewEventLogHandler(pool *pgxpool.Pool) *EventLogHandler {
	return &EventLogHandler{pool: pool}
}

// Handle stores the event payload.
func (h *EventLogHandler) Handle(ctx context.Context, msg Message) error {
	eventTime := msg.Timestamp
	if eventTime.IsZero() {
		eventTime = time.Now().UTC()
	}

	_, err := h.pool.Exec(ctx,
		`INSERT INTO meal_plan_event_log (topic, partition, kafka_offset, event_type, user_id, schema_subject, schema_id, payload, event_time)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
         ON CONFLICT (topic, partition, kafka_offset) DO NOTHING`,
		msg.Topic,
		msg.Partition,
		msg.Offset,
		msg.EventType,
		msg.UserID,
		msg.SchemaSubject,
		msg.SchemaID,
		msg.Payload,
		eventTime,
	)
	return err
}
