package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache engine names accepted in CACHE_ENGINE.
const (
	CacheEngineMemory = "memory"
	CacheEngineRedis  = "redis"
)

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Cache     CacheConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

type BackendConfig struct {
	BaseURL    string
	Timeout    time.Duration // per attempt
	MaxRetries int
	RetryDelay time.Duration // backoff unit
	// Shared secret for service tokens; empty disables the Authorization header.
	ServiceSecret   string
	ServiceName     string
	ServiceTokenTTL time.Duration
}

type CacheConfig struct {
	Engine   string // memory or redis
	Segment  string
	AreasTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

// RateLimitConfig throttles account-request submissions per client IP.
type RateLimitConfig struct {
	RequestsPerWindow int
	BurstMultiplier   float64
	Window            time.Duration
	KeyPrefix         string
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	baseURL := getEnv("BACKEND_BASE_URL", "")
	if baseURL == "" {
		return nil, fmt.Errorf("required environment variable BACKEND_BASE_URL is not set")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnv("SERVER_PORT", "3000"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
			AllowedOrigins: getListEnv("ALLOWED_ORIGINS", nil),
			Environment:    getEnv("ENVIRONMENT", "development"),
		},
		Backend: BackendConfig{
			BaseURL:         baseURL,
			Timeout:         getDurationEnv("BACKEND_TIMEOUT", 10*time.Second),
			MaxRetries:      getIntEnv("BACKEND_MAX_RETRIES", 2),
			RetryDelay:      getDurationEnv("BACKEND_RETRY_DELAY", time.Second),
			ServiceSecret:   getEnv("BACKEND_SERVICE_SECRET", ""),
			ServiceName:     getEnv("BACKEND_SERVICE_NAME", "forms-frontend"),
			ServiceTokenTTL: getDurationEnv("BACKEND_SERVICE_TOKEN_TTL", time.Minute),
		},
		Cache: CacheConfig{
			Engine:   strings.ToLower(getEnv("CACHE_ENGINE", CacheEngineMemory)),
			Segment:  getEnv("CACHE_SEGMENT", "areas"),
			AreasTTL: getDurationEnv("CACHE_AREAS_TTL", time.Hour),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			RequestsPerWindow: getIntEnv("RATE_LIMIT_REQUESTS", 10),
			BurstMultiplier:   getFloatEnv("RATE_LIMIT_BURST_MULTIPLIER", 1.0),
			Window:            getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
			KeyPrefix:         getEnv("RATE_LIMIT_KEY_PREFIX", "ratelimit:account-request"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	switch cfg.Cache.Engine {
	case CacheEngineMemory, CacheEngineRedis:
	default:
		return nil, fmt.Errorf("unsupported CACHE_ENGINE %q (want %s or %s)", cfg.Cache.Engine, CacheEngineMemory, CacheEngineRedis)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getDurationEnv accepts Go durations ("1h", "500ms") or a bare number of milliseconds.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
