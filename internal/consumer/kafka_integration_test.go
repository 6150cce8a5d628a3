//go:build integration

package consumer

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkaContainer "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/Remoratrader/nutria-app/internal/events"
	"github.com/Remoratrader/nutria-app/internal/outbox"
)

func TestProducerToProcessorRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	kafkaC, err := kafkaContainer.RunContainer(ctx, testcontainers.WithEnv(map[string]string{
		"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kafkaC.Terminate(context.Background()) })

	brokers, err := kafkaC.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	broker := brokers[0]
	topic := events.TopicMealPlan

	conn, err := kafka.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))

	producer := outbox.NewKafkaProducer([]string{broker})
	defer producer.Close()

	payload := []byte(`{"entry_id":"c1","recipe_id":"r1","calories":450}`)
	value := make([]byte, 5, 5+len(payload))
	binary.BigEndian.PutUint32(value[1:], 7)
	value = append(value, payload...)

	subject := events.SchemaSubject(topic, events.TypeMealLogged)
	err = producer.WriteMessages(ctx, topic, kafka.Message{
		Key:   []byte("user-1"),
		Value: value,
		Headers: []kafka.Header{
			{Key: outbox.HeaderEventType, Value: []byte(events.TypeMealLogged)},
			{Key: outbox.HeaderUserID, Value: []byte("user-1")},
			{Key: outbox.HeaderSchemaSubject, Value: []byte(subject)},
		},
	})
	require.NoError(t, err)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     "nutria-integration",
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	received := make(chan Message, 1)
	proc := NewProcessor(reader, HandlerFunc(func(_ context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	consumerCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		_ = proc.Run(consumerCtx)
	}()

	select {
	case msg := <-received:
		require.Equal(t, events.TypeMealLogged, msg.EventType)
		require.Equal(t, "user-1", msg.UserID)
		require.Equal(t, subject, msg.SchemaSubject)
		require.Equal(t, 7, msg.SchemaID)
		require.JSONEq(t, string(payload), string(msg.Payload))
	case <-time.After(60 * time.Second):
		t.Fatal("message was not consumed")
	}
}
