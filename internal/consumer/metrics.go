package consumer

import "github.com/prometheus/client_golang/prometheus"

// Processing results.
const (
	resultHandled   = "handled"
	resultFailed    = "handler_error"
	resultMalformed = "malformed"
)

// unknownEventType labels records rejected before their headers were read.
const unknownEventType = "unknown"

var (
	records = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "consumer",
		Name:      "records_total",
		Help:      "Kafka records seen by the consumer, by topic, event type and result.",
	}, []string{"topic", "event_type", "result"})

	lastHandled = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "nutria",
		Subsystem: "consumer",
		Name:      "last_handled_timestamp_seconds",
		Help:      "Broker timestamp of the newest record handled, per topic.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(records, lastHandled)
}

func observe(topic, eventType, result string) {
	if eventType == "" {
		eventType = unknownEventType
	}
	records.WithLabelValues(topic, eventType, result).Inc()
}

func observeHandled(msg Message) {
	observe(msg.Topic, msg.EventType, resultHandled)
	if !msg.Timestamp.IsZero() {
		lastHandled.WithLabelValues(msg.Topic).Set(float64(msg.Timestamp.Unix()))
	}
}
