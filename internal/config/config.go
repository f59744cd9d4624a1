package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every knob the service reads from the environment.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	KafkaBrokers string
	KafkaTopic   string

	AuthEnabled bool
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTTTL      time.Duration
}

// Load reads the optional .env file and then the environment.
func Load() Config {
	// .env ausente não é erro
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_TOPIC_TRANSACTIONS", "financas.transactions"),

		AuthEnabled: getBool("AUTH_ENABLED", false),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISS", "financas-api"),
		JWTAudience: os.Getenv("JWT_AUD"),
		JWTTTL:      getDuration("JWT_ACCESS_TTL", 15*time.Minute),
	}
}

// KafkaEnabled reports whether event publishing is configured.
func (c Config) KafkaEnabled() bool { return c.KafkaBrokers != "" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
