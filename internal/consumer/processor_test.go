package consumer

import (
	"context"
	"encoding/binary"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Remoratrader/nutria-app/internal/events"
	"github.com/Remoratrader/nutria-app/internal/outbox"
)

func framed(schemaID int, payload string) []byte {
	value := make([]byte, 5+len(payload))
	binary.BigEndian.PutUint32(value[1:5], uint32(schemaID))
	copy(value[5:], payload)
	return value
}

func mealLoggedRecord(offset int64, value []byte) kafka.Message {
	return kafka.Message{
		Topic:     events.TopicMealPlan,
		Partition: 0,
		Offset:    offset,
		Time:      time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
		Value:     value,
		Headers: []kafka.Header{
			{Key: outbox.HeaderEventType, Value: []byte(events.TypeMealLogged)},
			{Key: outbox.HeaderUserID, Value: []byte("user-1")},
			{Key: outbox.HeaderSchemaSubject, Value: []byte("meal_plan_events-meal.logged")},
		},
	}
}

func TestProcessorCommitsOnSuccess(t *testing.T) {
	payload := `{"entry_id":"c1","calories":450}`
	reader := &stubReader{messages: []kafka.Message{mealLoggedRecord(10, framed(42, payload))}}
	handler := &stubHandler{}
	before := testutil.ToFloat64(records.WithLabelValues(events.TopicMealPlan, events.TypeMealLogged, resultHandled))

	err := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0))).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
	require.Equal(t, events.TypeMealLogged, handler.last.EventType)
	require.Equal(t, "user-1", handler.last.UserID)
	require.Equal(t, "meal_plan_events-meal.logged", handler.last.SchemaSubject)
	require.Equal(t, 42, handler.last.SchemaID)
	require.Equal(t, int64(10), handler.last.Offset)
	require.JSONEq(t, payload, string(handler.last.Payload))
	require.InDelta(t, before+1, testutil.ToFloat64(records.WithLabelValues(events.TopicMealPlan, events.TypeMealLogged, resultHandled)), 0.0001)
}

func TestProcessorSkipsCommitOnHandlerError(t *testing.T) {
	reader := &stubReader{messages: []kafka.Message{mealLoggedRecord(20, framed(99, `{}`))}}
	handler := &stubHandler{err: errors.New("boom")}
	before := testutil.ToFloat64(records.WithLabelValues(events.TopicMealPlan, events.TypeMealLogged, resultFailed))

	err := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0))).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Zero(t, reader.commitCalls)
	require.InDelta(t, before+1, testutil.ToFloat64(records.WithLabelValues(events.TopicMealPlan, events.TypeMealLogged, resultFailed)), 0.0001)
}

func TestProcessorCommitsMalformedMessages(t *testing.T) {
	noUser := mealLoggedRecord(3, framed(1, `{}`))
	noUser.Headers = noUser.Headers[:1]

	reader := &stubReader{messages: []kafka.Message{
		mealLoggedRecord(1, []byte{0, 0}),
		mealLoggedRecord(2, framed(1, `not-json`)),
		noUser,
	}}
	handler := &stubHandler{}
	before := testutil.ToFloat64(records.WithLabelValues(events.TopicMealPlan, unknownEventType, resultMalformed))

	err := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0))).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Zero(t, handler.calls)
	require.Equal(t, 3, reader.commitCalls)
	require.InDelta(t, before+3, testutil.ToFloat64(records.WithLabelValues(events.TopicMealPlan, unknownEventType, resultMalformed)), 0.0001)
}

func TestProcessorRetriesAfterFetchError(t *testing.T) {
	reader := &stubReader{
		fetchErr: errors.New("broker unavailable"),
		messages: []kafka.Message{mealLoggedRecord(5, framed(1, `{}`))},
	}
	handler := &stubHandler{}

	err := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)), WithFetchBackoff(time.Millisecond)).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, handler.calls)
}

func TestProcessorStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewProcessor(&stubReader{}, &stubHandler{}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHandlerFunc(t *testing.T) {
	var got Message
	h := HandlerFunc(func(_ context.Context, msg Message) error {
		got = msg
		return nil
	})
	require.NoError(t, h.Handle(context.Background(), Message{EventType: events.TypeMenuEntryAdded}))
	require.Equal(t, events.TypeMenuEntryAdded, got.EventType)
}

type stubReader struct {
	messages    []kafka.Message
	fetchErr    error
	index       int
	commitCalls int
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.fetchErr != nil {
		err := r.fetchErr
		r.fetchErr = nil
		return kafka.Message{}, err
	}
	if r.index >= len(r.messages) {
		return kafka.Message{}, context.Canceled
	}
	msg := r.messages[r.index]
	r.index++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	r.commitCalls++
	return nil
}

func (r *stubReader) Close() error { return nil }

type stubHandler struct {
	calls int
	err   error
	last  Message
}

func (h *stubHandler) Handle(_ context.Context, msg Message) error {
	h.calls++
	h.last = msg
	return h.err
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}

func TestRunGroupRequiresTopics(t *testing.T) {
	err := RunGroup(context.Background(), GroupConfig{Brokers: []string{"localhost:9092"}, GroupID: "g"}, &stubHandler{})
	require.Error(t, err)
}
