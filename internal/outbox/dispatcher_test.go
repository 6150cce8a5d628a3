package outbox

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Remoratrader/nutria-app/internal/events"
)

func TestEncodeWireFormat(t *testing.T) {
	frame := encodeWireFormat(42, []byte(`{"a":1}`))

	require.Equal(t, byte(0), frame[0])
	require.Equal(t, uint32(42), binary.BigEndian.Uint32(frame[1:5]))
	require.Equal(t, `{"a":1}`, string(frame[5:]))
}

func TestBuildRecordSetsHeaders(t *testing.T) {
	at := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	msg := Message{
		EventID:       7,
		UserID:        "user-1",
		EventType:     events.TypeMealLogged,
		Topic:         events.TopicMealPlan,
		SchemaSubject: events.SchemaSubject(events.TopicMealPlan, events.TypeMealLogged),
		PartitionKey:  "user-1",
		Payload:       []byte(`{"entry_id":"c1"}`),
	}

	record := buildRecord(msg, 3, at)

	require.Equal(t, []byte("user-1"), record.Key)
	require.Equal(t, at, record.Time)
	headers := map[string]string{}
	for _, h := range record.Headers {
		headers[h.Key] = string(h.Value)
	}
	require.Equal(t, map[string]string{
		HeaderEventType:     events.TypeMealLogged,
		HeaderUserID:        "user-1",
		HeaderSchemaSubject: "meal_plan_events-meal.logged",
	}, headers)
	require.Equal(t, uint32(3), binary.BigEndian.Uint32(record.Value[1:5]))
}

func TestDeliverGroupsByTopicAndCachesSchemaIDs(t *testing.T) {
	producer := &stubProducer{}
	registry := &stubRegistry{id: 21}
	d := NewDispatcher(nil, producer, registry, time.Second, 10)

	messages := []Message{
		testMessage(1, events.TypeMenuEntryAdded, events.TopicMealPlan),
		testMessage(2, events.TypeProfileTargetsUpdated, events.TopicNutritionProfile),
		testMessage(3, events.TypeMenuEntryAdded, events.TopicMealPlan),
	}
	require.NoError(t, d.deliver(context.Background(), messages))

	require.Len(t, producer.writes, 2)
	require.Equal(t, events.TopicMealPlan, producer.writes[0].topic)
	require.Len(t, producer.writes[0].messages, 2)
	require.Equal(t, events.TopicNutritionProfile, producer.writes[1].topic)
	require.Len(t, registry.calls, 2, "one registry call per subject")

	require.NoError(t, d.deliver(context.Background(), messages[:1]))
	require.Len(t, registry.calls, 2, "cached schema ids are reused across batches")
}

func TestDeliverRejectsUnknownEventType(t *testing.T) {
	producer := &stubProducer{}
	registry := &stubRegistry{id: 1}
	d := NewDispatcher(nil, producer, registry, time.Second, 10)

	err := d.deliver(context.Background(), []Message{testMessage(1, "menu.unknown", events.TopicMealPlan)})
	require.ErrorContains(t, err, "no schema metadata for event_type=menu.unknown")
	require.Empty(t, producer.writes)
	require.Empty(t, registry.calls)
}

func TestDeliverPropagatesFailures(t *testing.T) {
	registryErr := errors.New("registry down")
	d := NewDispatcher(nil, &stubProducer{}, &stubRegistry{err: registryErr}, time.Second, 10)
	require.ErrorIs(t, d.deliver(context.Background(), []Message{testMessage(1, events.TypeMealLogged, events.TopicMealPlan)}), registryErr)

	writeErr := errors.New("kafka write failed")
	d = NewDispatcher(nil, &stubProducer{err: writeErr}, &stubRegistry{id: 1}, time.Second, 10)
	require.ErrorIs(t, d.deliver(context.Background(), []Message{testMessage(1, events.TypeMealLogged, events.TopicMealPlan)}), writeErr)
}

func TestBackoffIsExponentialAndCapped(t *testing.T) {
	m := NewDLQManager(nil, 0, time.Minute)
	require.Equal(t, defaultMaxRetries, m.maxRetries)

	require.Equal(t, time.Minute, m.backoffDelay(1))
	require.Equal(t, 2*time.Minute, m.backoffDelay(2))
	require.Equal(t, 16*time.Minute, m.backoffDelay(5))
	require.Equal(t, time.Hour, m.backoffDelay(7))
	require.Equal(t, time.Hour, m.backoffDelay(60))
	require.Zero(t, backoff(time.Minute, 0))
}

func testMessage(id int64, eventType, topic string) Message {
	return Message{
		EventID:       id,
		UserID:        "user-1",
		AggregateType: "menu_entry",
		AggregateID:   "entry-1",
		EventType:     eventType,
		Topic:         topic,
		SchemaSubject: events.SchemaSubject(topic, eventType),
		PartitionKey:  "user-1",
		Payload:       []byte(`{}`),
	}
}

type stubProducer struct {
	mu     sync.Mutex
	err    error
	writes []writtenBatch
}

type writtenBatch struct {
	topic    string
	messages []kafka.Message
}

func (s *stubProducer) WriteMessages(_ context.Context, topic string, msgs ...kafka.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	copied := make([]kafka.Message, len(msgs))
	copy(copied, msgs)
	s.writes = append(s.writes, writtenBatch{topic: topic, messages: copied})
	return nil
}

type stubRegistry struct {
	mu    sync.Mutex
	id    int
	err   error
	calls []schemaCall
}

type schemaCall struct {
	subject string
	schema  string
}

func (s *stubRegistry) EnsureSchema(_ context.Context, subject string, schema string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, schemaCall{subject: subject, schema: schema})
	if s.err != nil {
		return 0, s.err
	}
	if s.id == 0 {
		s.id = 1
	}
	return s.id, nil
}
