package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("KAFKA_BROKERS", "")
		t.Setenv("KAFKA_TOPIC_TRANSACTIONS", "")
		t.Setenv("AUTH_ENABLED", "")
		t.Setenv("JWT_ACCESS_TTL", "")

		cfg := Load()

		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "financas.transactions", cfg.KafkaTopic)
		assert.False(t, cfg.AuthEnabled)
		assert.False(t, cfg.KafkaEnabled())
		assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
		assert.Equal(t, "financas-api", cfg.JWTIssuer)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("KAFKA_BROKERS", "localhost:9092")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("JWT_ACCESS_TTL", "1h")

		cfg := Load()

		assert.Equal(t, ":9090", cfg.HTTPAddr)
		assert.True(t, cfg.KafkaEnabled())
		assert.True(t, cfg.AuthEnabled)
		assert.Equal(t, time.Hour, cfg.JWTTTL)
	})

	t.Run("bad values fall back", func(t *testing.T) {
		t.Setenv("AUTH_ENABLED", "talvez")
		t.Setenv("JWT_ACCESS_TTL", "muito tempo")

		cfg := Load()

		assert.False(t, cfg.AuthEnabled)
		assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	})
}
