package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, DriverSQLite, cfg.StorageDriver)
	require.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	require.Equal(t, []string{"nutrition_profile_events", "meal_plan_events"}, cfg.ConsumerTopics)
	require.Equal(t, 2*time.Second, cfg.OutboxPollInterval)
	require.Equal(t, 5, cfg.DLQMaxRetries)
	require.Equal(t, time.Minute, cfg.DLQBaseDelay)
	require.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	require.Equal(t, time.UTC, cfg.Location())
	require.False(t, cfg.UsesOutbox())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", " Postgres ")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.nutria.dev")
	t.Setenv("APP_TIMEZONE", "America/Sao_Paulo")
	t.Setenv("GEMINI_TIMEOUT", "5s")

	cfg, err := Parse()
	require.NoError(t, err)

	require.Equal(t, DriverPostgres, cfg.StorageDriver)
	require.True(t, cfg.UsesOutbox())
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 500*time.Millisecond, cfg.OutboxPollInterval)
	require.Equal(t, []string{"https://app.nutria.dev"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "America/Sao_Paulo", cfg.Location().String())
	require.Equal(t, 5*time.Second, cfg.GeminiTimeout)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown driver":   {"STORAGE_DRIVER", "mongo"},
		"bad duration":     {"OUTBOX_POLL_INTERVAL", "soon"},
		"zero batch":       {"OUTBOX_BATCH_SIZE", "0"},
		"unknown timezone": {"APP_TIMEZONE", "Mars/Olympus"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Parse()
			require.Error(t, err)
		})
	}
}
