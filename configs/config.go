package configs

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Fund     FundConfig
	Database DatabaseConfig
	Log      LogConfig
	Telegram TelegramConfig
	Guard    GuardConfig
	Jobs     JobsConfig
	Auth     AuthConfig
}

// ServerConfig holds the two HTTP listener configurations: the dashboard
// view API and the internal ops surface
type ServerConfig struct {
	Port        string
	OpsPort     string
	Env         string
	CORSOrigins []string
}

// FundConfig holds the connection to the fund engine
type FundConfig struct {
	URL            string
	PollInterval   time.Duration
	RequestTimeout time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// TelegramConfig holds the alert channel configuration. Empty values
// silently disable notifications.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// GuardConfig holds the drawdown guard configuration. DrawdownLimit is a
// negative percent; zero disables the guard.
type GuardConfig struct {
	DrawdownLimit float64
}

// JobsConfig holds the cron specs for the background jobs (six-field,
// seconds first) and the history retention window
type JobsConfig struct {
	HistorySampleSpec string
	HistoryRetention  time.Duration
	ArchiveSpec       string
	GuardSpec         string
	DigestSpec        string
}

// AuthConfig holds operator bootstrap configuration. The JWT secret is
// read from the environment by the auth middleware itself.
type AuthConfig struct {
	BootstrapUsername string
	BootstrapPassword string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			OpsPort:     getEnv("OPS_PORT", "8081"),
			Env:         getEnv("GO_ENV", "development"),
			CORSOrigins: getEnvList("CORS_ORIGINS", "*"),
		},
		Fund: FundConfig{
			URL:            getEnv("FUND_ENGINE_URL", "http://localhost:5000"),
			PollInterval:   getEnvDuration("POLL_INTERVAL", 5*time.Second),
			RequestTimeout: getEnvDuration("FUND_REQUEST_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", true),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
		Guard: GuardConfig{
			DrawdownLimit: getEnvFloat("GUARD_DRAWDOWN_LIMIT", 0),
		},
		Jobs: JobsConfig{
			HistorySampleSpec: getEnv("HISTORY_SAMPLE_SPEC", "0 * * * * *"),
			HistoryRetention:  getEnvDuration("HISTORY_RETENTION", 30*24*time.Hour),
			ArchiveSpec:       getEnv("ARCHIVE_SPEC", "*/30 * * * * *"),
			GuardSpec:         getEnv("GUARD_SPEC", "*/30 * * * * *"),
			DigestSpec:        getEnv("DIGEST_SPEC", "0 0 18 * * *"),
		},
		Auth: AuthConfig{
			BootstrapUsername: getEnv("OPERATOR_USERNAME", "operator"),
			BootstrapPassword: getEnv("OPERATOR_PASSWORD", ""),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a Go duration from the environment, falling back
// on parse failure
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvFloat parses a float from the environment, falling back on parse failure
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvBool parses a boolean from the environment, falling back on parse failure
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated environment variable
func getEnvList(key, defaultValue string) []string {
	value := getEnv(key, defaultValue)
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
