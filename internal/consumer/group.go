package consumer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// GroupConfig describes a consumer group reading several topics.
type GroupConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

func (c GroupConfig) reader(topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:         c.Brokers,
		GroupID:         c.GroupID,
		Topic:           topic,
		MinBytes:        1e3,
		MaxBytes:        10e6,
		CommitInterval:  time.Second,
		RetentionTime:   24 * time.Hour,
		ReadLagInterval: -1,
	})
}

// RunGroup runs one Processor per topic, all sharing handler, until ctx is cancelled.
// Cancellation is a clean stop and yields nil.
func RunGroup(ctx context.Context, cfg GroupConfig, handler Handler) error {
	if len(cfg.Topics) == 0 {
		return errors.New("consumer group has no topics")
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, topic := range cfg.Topics {
		reader := cfg.reader(topic)
		proc := NewProcessor(reader, handler, WithLogger(log.New(log.Writer(), "[consumer "+topic+"] ", log.LstdFlags)))
		g.Go(func() error {
			defer reader.Close()
			log.Printf("consuming %s as %s", topic, cfg.GroupID)
			if err := proc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("topic %s: %w", topic, err)
			}
			return nil
		})
	}
	return g.Wait()
}
