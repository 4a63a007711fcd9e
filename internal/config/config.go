package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	OperatorName string `env:"OPERATOR_NAME" envDefault:"Duty Officer"`
	ModelVersion string `env:"MODEL_VERSION" envDefault:"spread-v2.3"`

	// Начальные данные
	FixturesFile   string `env:"FIXTURES_FILE"`
	RandomSeed     int64  `env:"RANDOM_SEED" envDefault:"0"`
	APIKeyHashCost int    `env:"APIKEY_HASH_COST" envDefault:"10"`

	// Redis Config. Пустой адрес отключает публикацию событий аудита.
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Map Config
	MapWindowWidth  int           `env:"MAP_WINDOW_WIDTH" envDefault:"1440"`
	MapWindowHeight int           `env:"MAP_WINDOW_HEIGHT" envDefault:"900"`
	MapPanelWidth   int           `env:"MAP_PANEL_WIDTH" envDefault:"380"`
	PanelTransition time.Duration `env:"PANEL_TRANSITION" envDefault:"300ms"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		OperatorName:      getEnv("OPERATOR_NAME", "Duty Officer"),
		ModelVersion:      getEnv("MODEL_VERSION", "spread-v2.3"),
		FixturesFile:      os.Getenv("FIXTURES_FILE"),
		RandomSeed:        int64(getEnvAsInt("RANDOM_SEED", 0)),
		APIKeyHashCost:    getEnvAsInt("APIKEY_HASH_COST", 10),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		MapWindowWidth:    getEnvAsInt("MAP_WINDOW_WIDTH", 1440),
		MapWindowHeight:   getEnvAsInt("MAP_WINDOW_HEIGHT", 900),
		MapPanelWidth:     getEnvAsInt("MAP_PANEL_WIDTH", 380),
		PanelTransition:   getEnvAsDuration("PANEL_TRANSITION", 300*time.Millisecond),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых приложение не запустится корректно
func (c *Config) Validate() error {
	if c.OperatorName == "" {
		return fmt.Errorf("OPERATOR_NAME must not be empty")
	}
	if c.MapWindowWidth <= 0 || c.MapWindowHeight <= 0 {
		return fmt.Errorf("map window size must be positive, got %dx%d", c.MapWindowWidth, c.MapWindowHeight)
	}
	if c.MapPanelWidth < 0 || c.MapPanelWidth >= c.MapWindowWidth {
		return fmt.Errorf("MAP_PANEL_WIDTH must be in [0, %d), got %d", c.MapWindowWidth, c.MapPanelWidth)
	}
	if c.PanelTransition < 0 {
		return fmt.Errorf("PANEL_TRANSITION must not be negative")
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1, got %d", c.WebhookMaxRetries)
	}
	return nil
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
