package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Settlement SettlementConfig
	SampleData SampleDataConfig
}

// ServerConfig configures the operational HTTP listener (health + metrics)
type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SampleDataConfig controls the development-only database seeder
type SampleDataConfig struct {
	Enabled bool
	Owners  int
}

// SettlementConfig tunes the settlement engine: bounded retry on store
// conflicts, the overdue-sweep cadence, and notification throttling.
type SettlementConfig struct {
	MaxCommitRetries    int
	SweepInterval       time.Duration
	NotifyRatePerSecond int
	NotifyBurst         int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "bancore_user"),
			Password:        getEnv("DB_PASSWORD", "bancore_password"),
			Name:            getEnv("DB_NAME", "bancore_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Settlement: SettlementConfig{
			MaxCommitRetries:    getIntEnv("SETTLEMENT_MAX_COMMIT_RETRIES", 3),
			SweepInterval:       getDurationEnv("SETTLEMENT_SWEEP_INTERVAL", time.Hour),
			NotifyRatePerSecond: getIntEnv("NOTIFY_RATE_PER_SECOND", 10),
			NotifyBurst:         getIntEnv("NOTIFY_BURST", 20),
		},
		SampleData: SampleDataConfig{
			Enabled: getBoolEnv("LOAD_SAMPLE_DATA", false),
			Owners:  getIntEnv("SAMPLE_DATA_OWNERS", 25),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
