package app

import (
	"os"
	"strconv"
	"time"
)

// Config описывает настройки запуска сервиса.
// PostgresDSN пустой — работаем на in-memory хранилище;
// KafkaBrokers пустой — события остаются в outbox без публикации.
type Config struct {
	HTTPAddr     string
	MetricsAddr  string
	PostgresDSN  string
	KafkaBrokers string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
}

// DefaultConfig возвращает базовые адреса и интервалы.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:           ":8080",
		MetricsAddr:        ":9090",
		OutboxPollInterval: time.Second,
		OutboxBatchSize:    50,
	}
}

// LoadConfig читает настройки из окружения поверх дефолтов.
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.HTTPAddr = envOr("ORDERDESK_HTTP_ADDR", cfg.HTTPAddr)
	cfg.MetricsAddr = envOr("ORDERDESK_METRICS_ADDR", cfg.MetricsAddr)
	cfg.PostgresDSN = envOr("ORDERDESK_POSTGRES_DSN", cfg.PostgresDSN)
	cfg.KafkaBrokers = envOr("ORDERDESK_KAFKA_BROKERS", cfg.KafkaBrokers)

	if raw := os.Getenv("ORDERDESK_OUTBOX_POLL_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			cfg.OutboxPollInterval = parsed
		}
	}
	if raw := os.Getenv("ORDERDESK_OUTBOX_BATCH_SIZE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			cfg.OutboxBatchSize = parsed
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
