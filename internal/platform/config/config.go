package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	strutil "taskhub/pkg/platform/strings"
)

// Config is the full service configuration, read once in main.
type Config struct {
	Server   Server
	Logging  Logging
	Audit    Audit
	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	// AdminToken guards operational endpoints such as /admin/audit/recent.
	AdminToken string
}

// Logging selects the slog handler.
type Logging struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// Audit configures where admin audit records are written.
type Audit struct {
	// Sinks lists enabled sinks: log, memory, redis, postgres, kafka.
	Sinks []string
	// AsyncBuffer > 0 moves remote sink writes off the request goroutine.
	AsyncBuffer      int
	BreakerThreshold int
	BreakerCooldown  time.Duration
	RecentCapacity   int
	// RecentSource is the store behind /admin/audit/recent: memory or postgres.
	RecentSource string
}

// RedisConfig holds connection settings for the redis stream sink.
type RedisConfig struct {
	URL          string
	Stream       string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig holds the DSN for the postgres sink.
type PostgresConfig struct {
	DSN string
}

// KafkaConfig holds broker settings for the kafka sink.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// HasSink reports whether the named sink is enabled.
func (a Audit) HasSink(name string) bool {
	for _, s := range a.Sinks {
		if s == name {
			return true
		}
	}
	return false
}

// FromEnv builds the configuration from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:            getEnv("TASKHUB_ADDR", ":8080"),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			AdminToken:      os.Getenv("ADMIN_API_TOKEN"),
		},
		Logging: Logging{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Audit: Audit{
			Sinks:            getList("AUDIT_SINKS", []string{"log", "memory"}, strutil.SplitListLower),
			AsyncBuffer:      getInt("AUDIT_ASYNC_BUFFER", 0),
			BreakerThreshold: getInt("AUDIT_BREAKER_THRESHOLD", 5),
			BreakerCooldown:  getDuration("AUDIT_BREAKER_COOLDOWN", 30*time.Second),
			RecentCapacity:   getInt("AUDIT_RECENT_CAPACITY", 1000),
			RecentSource:     strings.ToLower(strings.TrimSpace(getEnv("AUDIT_RECENT_SOURCE", "memory"))),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			Stream:       getEnv("REDIS_AUDIT_STREAM", "admin-audit"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("DATABASE_URL"),
		},
		Kafka: KafkaConfig{
			Brokers: getList("KAFKA_BROKERS", nil, strutil.SplitList),
			Topic:   getEnv("KAFKA_AUDIT_TOPIC", "admin-audit"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
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

func getList(key string, fallback []string, split func(string) []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return split(v)
}
