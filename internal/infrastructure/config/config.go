// /internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ============================================
// КОНФИГУРАЦИЯ БАЗЫ ДАННЫХ
// ============================================

// DatabaseConfig - конфигурация базы данных
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Настройки пула соединений
	MaxOpenConns    int
	MaxIdleConns    int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration

	// Настройки миграций
	MigrationsPath    string
	EnableAutoMigrate bool
}

// RedisConfig конфигурация Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// TTL сессии листания списка доходов
	PageSessionTTL time.Duration
	// TTL кэша курса валют
	RateCacheTTL time.Duration
}

// Addr возвращает адрес Redis в формате host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ============================================
// ОСНОВНАЯ КОНФИГУРАЦИЯ ПРИЛОЖЕНИЯ
// ============================================

// Config - основная структура конфигурации
type Config struct {
	// ======================
	// ОСНОВНЫЕ НАСТРОЙКИ
	// ======================
	Environment string
	Version     string

	// ======================
	// БАЗА ДАННЫХ
	// ======================
	Database DatabaseConfig

	// ======================
	// REDIS
	// ======================
	Redis RedisConfig

	// ======================
	// БИРЖА (КУРС ВАЛЮТ)
	// ======================
	Exchange   string // "binance" или "bybit"
	BaseURL    string
	RateSymbol string // пара для курса EUR/USD, по умолчанию EURUSDT

	// ======================
	// TELEGRAM
	// ======================
	Telegram struct {
		BotToken string
		Enabled  bool
	}

	// ======================
	// POLLING КОНФИГУРАЦИЯ
	// ======================
	Polling struct {
		Timeout       int // timeout в секундах
		Limit         int // лимит обновлений
		RetryInterval int // интервал переподключения
	}

	// ======================
	// ЛОГИРОВАНИЕ
	// ======================
	Logging struct {
		Level     string
		File      string
		DebugMode bool
	}
}

// LoadConfig загружает конфигурацию из .env файла
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		fmt.Printf("⚠️  Config file not found, using environment variables\n")
	}

	cfg := &Config{}

	// ======================
	// ОСНОВНЫЕ НАСТРОЙКИ
	// ======================
	cfg.Environment = getEnv("ENVIRONMENT", "production")
	cfg.Version = getEnv("VERSION", "1.0.0")

	// ======================
	// БАЗА ДАННЫХ
	// ======================
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 25)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 10)
	cfg.Database.MaxConnLifetime = getEnvDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute)
	cfg.Database.MaxConnIdleTime = getEnvDuration("DB_MAX_CONN_IDLE_TIME", 10*time.Minute)
	cfg.Database.MigrationsPath = getEnv("DB_MIGRATIONS_PATH", "internal/infrastructure/persistence/postgres/migrations")
	cfg.Database.EnableAutoMigrate = getEnvBool("DB_ENABLE_AUTO_MIGRATE", true)

	// ======================
	// REDIS
	// ======================
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvInt("REDIS_PORT", 6379)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Redis.DialTimeout = getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.Redis.ReadTimeout = getEnvDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.Redis.WriteTimeout = getEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.Redis.PageSessionTTL = getEnvDuration("PAGE_SESSION_TTL", 15*time.Minute)
	cfg.Redis.RateCacheTTL = getEnvDuration("RATE_CACHE_TTL", 5*time.Minute)

	// ======================
	// БИРЖА (КУРС ВАЛЮТ)
	// ======================
	cfg.Exchange = getEnv("EXCHANGE", "binance")
	cfg.BaseURL = getEnv("BASE_URL", "")
	cfg.RateSymbol = getEnv("RATE_SYMBOL", "EURUSDT")

	if cfg.BaseURL == "" {
		switch cfg.Exchange {
		case "bybit":
			cfg.BaseURL = "https://api.bybit.com"
		default:
			cfg.BaseURL = "https://api.binance.com"
		}
	}

	// ======================
	// TELEGRAM
	// ======================
	cfg.Telegram.BotToken = getEnv("TG_API_KEY", "")
	cfg.Telegram.Enabled = getEnvBool("TELEGRAM_ENABLED", true)

	// ======================
	// POLLING КОНФИГУРАЦИЯ
	// ======================
	cfg.Polling.Timeout = getEnvInt("POLLING_TIMEOUT", 30)
	cfg.Polling.Limit = getEnvInt("POLLING_LIMIT", 100)
	cfg.Polling.RetryInterval = getEnvInt("POLLING_RETRY_INTERVAL", 5)

	// ======================
	// ЛОГИРОВАНИЕ
	// ======================
	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")
	cfg.Logging.File = getEnv("LOG_FILE", "logs/revenue_bot.log")
	cfg.Logging.DebugMode = getEnvBool("DEBUG_MODE", false)

	// ======================
	// ВАЛИДАЦИЯ КОНФИГУРАЦИИ
	// ======================
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate проверяет обязательные параметры конфигурации
func (c *Config) validate() error {
	var validationErrors []string

	if c.Telegram.Enabled && c.Telegram.BotToken == "" {
		validationErrors = append(validationErrors, "TG_API_KEY is required")
	}

	if c.Database.User == "" {
		validationErrors = append(validationErrors, "DB_USER is required")
	}
	if c.Database.Name == "" {
		validationErrors = append(validationErrors, "DB_NAME is required")
	}

	if c.Exchange != "binance" && c.Exchange != "bybit" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("unsupported EXCHANGE: %s (use binance or bybit)", c.Exchange))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%s", strings.Join(validationErrors, "; "))
	}

	return nil
}

// ============================================
// ВСПОМОГАТЕЛЬНЫЕ ФУНКЦИИ
// ============================================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
