package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port            int           `yaml:"port"`
	MaxPrincipal    float64       `yaml:"max_principal"`
	MaxContribution float64       `yaml:"max_contribution"`
	MaxMonths       int           `yaml:"max_months"`
	MaxRate         float64       `yaml:"max_rate"`
	MaxBalanceCap   float64       `yaml:"max_balance_cap"`
	OTELEndpoint    string        `yaml:"otel_endpoint"`
	OTELServiceName string        `yaml:"otel_service_name"`
	LogLevel        string        `yaml:"log_level"`
	RedisAddr       string        `yaml:"redis_addr"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	MergePositions  bool          `yaml:"merge_positions"`
	RateLimit       int           `yaml:"rate_limit"`
	RateWindow      time.Duration `yaml:"rate_window"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Port:            8000,
		MaxPrincipal:    1e9,
		MaxContribution: 1e8,
		MaxMonths:       600,
		MaxRate:         2.0,
		MaxBalanceCap:   1e12,
		OTELServiceName: "fintech-core",
		LogLevel:        "INFO",
		CacheTTL:        10 * time.Minute,
		RateLimit:       60,
		RateWindow:      time.Minute,
	}
}

// LoadConfig загружает конфигурацию: .env, затем YAML-файл, затем переменные окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := Default()
	if err := cfg.loadFile(getEnvString("CONFIG_FILE", "config.yaml")); err != nil {
		return nil, err
	}

	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.MaxPrincipal = getEnvFloat("MAX_PRINCIPAL", cfg.MaxPrincipal)
	cfg.MaxContribution = getEnvFloat("MAX_CONTRIBUTION", cfg.MaxContribution)
	cfg.MaxMonths = getEnvInt("MAX_MONTHS", cfg.MaxMonths)
	cfg.MaxRate = getEnvFloat("MAX_RATE", cfg.MaxRate)
	cfg.MaxBalanceCap = getEnvFloat("MAX_BALANCE_CAP", cfg.MaxBalanceCap)
	cfg.OTELEndpoint = getEnvString("OTEL_ENDPOINT", cfg.OTELEndpoint)
	cfg.OTELServiceName = getEnvString("OTEL_SERVICE_NAME", cfg.OTELServiceName)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.RedisAddr = getEnvString("REDIS_ADDR", cfg.RedisAddr)
	cfg.CacheTTL = getEnvDuration("CACHE_TTL", cfg.CacheTTL)
	cfg.MergePositions = getEnvBool("MERGE_POSITIONS", cfg.MergePositions)
	cfg.RateLimit = getEnvInt("RATE_LIMIT", cfg.RateLimit)
	cfg.RateWindow = getEnvDuration("RATE_WINDOW", cfg.RateWindow)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// BalanceCap возвращает максимальный баланс для защиты от переполнения
func (c *Config) BalanceCap() float64 {
	return c.MaxBalanceCap
}
