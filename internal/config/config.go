package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Places API Config
	PlacesAPIKey  string        `env:"PLACES_API_KEY"`
	PlacesBaseURL string        `env:"PLACES_BASE_URL"`
	PlacesTimeout time.Duration `env:"PLACES_TIMEOUT" envDefault:"10s"`

	// Recommendation Config
	SearchRadiusMeters      int           `env:"SEARCH_RADIUS_METERS" envDefault:"500"`
	MovementThresholdMeters float64       `env:"MOVEMENT_THRESHOLD_METERS" envDefault:"50"`
	Timezone                string        `env:"TIMEZONE" envDefault:"Local"`
	DetailsCacheTTL         time.Duration `env:"DETAILS_CACHE_TTL" envDefault:"30m"`
	SearchCacheTTL          time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"2m"`
	EventQueueSize          int           `env:"EVENT_QUEUE_SIZE" envDefault:"1024"`
	EventWorkers            int           `env:"EVENT_WORKERS" envDefault:"8"`
	SessionIdleTTL          time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SessionSweepInterval    time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	location *time.Location
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:           getEnvAsInt("REDIS_POOL_SIZE", 10),
		DBMaxConns:              getEnvAsInt("DB_MAX_CONNS", 10),
		WebhookURL:              os.Getenv("WEBHOOK_URL"),
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:          getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:       getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:        getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		PlacesAPIKey:            os.Getenv("PLACES_API_KEY"),
		PlacesBaseURL:           os.Getenv("PLACES_BASE_URL"),
		PlacesTimeout:           getEnvAsDuration("PLACES_TIMEOUT", 10*time.Second),
		SearchRadiusMeters:      getEnvAsInt("SEARCH_RADIUS_METERS", 500),
		MovementThresholdMeters: getEnvAsFloat("MOVEMENT_THRESHOLD_METERS", 50),
		Timezone:                getEnv("TIMEZONE", "Local"),
		DetailsCacheTTL:         getEnvAsDuration("DETAILS_CACHE_TTL", 30*time.Minute),
		SearchCacheTTL:          getEnvAsDuration("SEARCH_CACHE_TTL", 2*time.Minute),
		EventQueueSize:          getEnvAsInt("EVENT_QUEUE_SIZE", 1024),
		EventWorkers:            getEnvAsInt("EVENT_WORKERS", 8),
		SessionIdleTTL:          getEnvAsDuration("SESSION_IDLE_TTL", 30*time.Minute),
		SessionSweepInterval:    getEnvAsDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		StatsTimeWindowMinutes:  getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.MovementThresholdMeters < 0 {
		return nil, fmt.Errorf("MOVEMENT_THRESHOLD_METERS must not be negative")
	}

	if cfg.EventWorkers < 1 {
		return nil, fmt.Errorf("EVENT_WORKERS must be positive")
	}

	if cfg.SearchRadiusMeters <= 0 {
		return nil, fmt.Errorf("SEARCH_RADIUS_METERS must be positive")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

// Location возвращает часовой пояс для определения времени приема пищи.
// Если пояс не загружен, используется локальный.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
