package app

import (
	"os"
	"time"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес REST API.
	HTTPAddr string
	// MetricsAddr — адрес /metrics и health-проб.
	MetricsAddr string
	// PostgresDSN — строка подключения; пустая строка включает in-memory хранилище.
	PostgresDSN string
	// KafkaBrokers — список брокеров через запятую; пустая строка отключает публикацию событий.
	KafkaBrokers string
	// TokenSecret — секрет подписи bearer-токенов.
	TokenSecret string
	// TokenTTL — срок действия токена.
	TokenTTL time.Duration
}

// DefaultConfig возвращает базовые настройки для локального запуска.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
		TokenTTL:    30 * time.Minute,
	}
}

// LoadConfigFromEnv читает настройки из окружения поверх значений по умолчанию.
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SHOPCART_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SHOPCART_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("SHOPCART_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("SHOPCART_KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = v
	}
	if v := os.Getenv("SHOPCART_TOKEN_SECRET"); v != "" {
		cfg.TokenSecret = v
	}
	if v := os.Getenv("SHOPCART_TOKEN_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > 0 {
			cfg.TokenTTL = ttl
		}
	}

	return cfg
}
