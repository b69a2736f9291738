package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Scheduler SchedulerConfig
	Database  DatabaseConfig
	Server    ServerConfig
	Engine    EngineConfig
}

// SchedulerConfig holds the batch export manager configuration
type SchedulerConfig struct {
	MaxConcurrent  int
	PriorityLevels int
	Retry          RetryConfig
	Limits         ResourceLimitsConfig
}

// RetryConfig holds the retry policy for failed export calls
type RetryConfig struct {
	MaxRetries          int
	BaseDelay           time.Duration
	ExponentialBackoff  bool
	RetryableErrorCodes []string
}

// ResourceLimitsConfig holds admission-control and queue ceilings
type ResourceLimitsConfig struct {
	MaxMemoryMB        int
	MaxQueueSize       int
	MaxProcessingTime  time.Duration
	PauseOnLimitBreach bool
}

// DatabaseConfig holds job-history database configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// EngineConfig holds the external export-engine endpoint configuration
type EngineConfig struct {
	URL     string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			MaxConcurrent:  getEnvAsInt("EXPORT_MAX_CONCURRENT", 3),
			PriorityLevels: getEnvAsInt("EXPORT_PRIORITY_LEVELS", 3),
			Retry: RetryConfig{
				MaxRetries:          getEnvAsInt("EXPORT_MAX_RETRIES", 3),
				BaseDelay:           getEnvAsDuration("EXPORT_RETRY_BASE_DELAY", time.Second),
				ExponentialBackoff:  getEnvAsBool("EXPORT_RETRY_EXPONENTIAL", true),
				RetryableErrorCodes: getEnvAsList("EXPORT_RETRYABLE_CODES", []string{"TIMEOUT", "UNAVAILABLE", "RATE_LIMITED"}),
			},
			Limits: ResourceLimitsConfig{
				MaxMemoryMB:        getEnvAsInt("EXPORT_MAX_MEMORY_MB", 512),
				MaxQueueSize:       getEnvAsInt("EXPORT_MAX_QUEUE_SIZE", 100),
				MaxProcessingTime:  getEnvAsDuration("EXPORT_MAX_PROCESSING_TIME", 5*time.Minute),
				PauseOnLimitBreach: getEnvAsBool("EXPORT_PAUSE_ON_LIMIT", true),
			},
		},
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			SQLitePath:       getEnv("SQLITE_PATH", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		Engine: EngineConfig{
			URL:     getEnv("EXPORT_ENGINE_URL", ""),
			Timeout: getEnvAsDuration("EXPORT_ENGINE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Scheduler.MaxConcurrent <= 0 {
		return NewAppError("CONFIG_ERROR", "EXPORT_MAX_CONCURRENT must be positive", ErrInvalidInput)
	}
	if c.Scheduler.PriorityLevels <= 0 {
		return NewAppError("CONFIG_ERROR", "EXPORT_PRIORITY_LEVELS must be positive", ErrInvalidInput)
	}
	if c.Scheduler.Retry.MaxRetries < 0 {
		return NewAppError("CONFIG_ERROR", "EXPORT_MAX_RETRIES must not be negative", ErrInvalidInput)
	}
	if c.Scheduler.Limits.MaxQueueSize <= 0 {
		return NewAppError("CONFIG_ERROR", "EXPORT_MAX_QUEUE_SIZE must be positive", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
