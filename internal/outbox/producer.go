package outbox

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaProducer publishes outbox records, holding one writer per topic.
type KafkaProducer struct {
	addr         net.Addr
	batchTimeout time.Duration
	writers      sync.Map
}

// ProducerOption configures a KafkaProducer.
type ProducerOption func(*KafkaProducer)

// WithBatchTimeout bounds how long a writer waits to fill a batch. The default is 50ms.
func WithBatchTimeout(d time.Duration) ProducerOption {
	return func(p *KafkaProducer) {
		if d > 0 {
			p.batchTimeout = d
		}
	}
}

// NewKafkaProducer returns a producer for the given brokers. Writers connect on first use.
func NewKafkaProducer(brokers []string, opts ...ProducerOption) *KafkaProducer {
	p := &KafkaProducer{addr: kafka.TCP(brokers...), batchTimeout: 50 * time.Millisecond}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WriteMessages publishes msgs to topic.
func (p *KafkaProducer) WriteMessages(ctx context.Context, topic string, msgs ...kafka.Message) error {
	if w, ok := p.writers.Load(topic); ok {
		return w.(*kafka.Writer).WriteMessages(ctx, msgs...)
	}
	// Records are keyed by user, so hashing keeps each user's events ordered on one partition.
	fresh := &kafka.Writer{
		Addr:         p.addr,
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		BatchTimeout: p.batchTimeout,
	}
	w, loaded := p.writers.LoadOrStore(topic, fresh)
	if loaded {
		_ = fresh.Close()
	}
	return w.(*kafka.Writer).WriteMessages(ctx, msgs...)
}

// Close flushes and closes every writer.
func (p *KafkaProducer) Close() error {
	var err error
	p.writers.Range(func(topic, w any) bool {
		err = errors.Join(err, w.(*kafka.Writer).Close())
		p.writers.Delete(topic)
		return true
	})
	return err
}
