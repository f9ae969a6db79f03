package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds process configuration read from the environment
type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	AssessmentTTL time.Duration

	JWTSecret           string
	CoordinatorUsername string
	CoordinatorPassword string
	TeamTokenTTL        time.Duration

	CORS CORSConfig
	Log  LogConfig

	// StrategyFile is an optional YAML file of strategy overrides
	StrategyFile string

	DefaultVariant string
}

// CORSConfig holds the values of the CORS response headers
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// Load reads configuration from the environment, applying defaults
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "sarrisk"),

		RedisAddr:     redisAddr(getEnv("REDIS_URI", "localhost:6379")),
		AssessmentTTL: getDuration("ASSESSMENT_TTL", 12*time.Hour),

		JWTSecret:           getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		CoordinatorUsername: getEnv("COORDINATOR_USERNAME", "admin"),
		CoordinatorPassword: getEnv("COORDINATOR_PASSWORD", "password123"),
		TeamTokenTTL:        getDuration("TEAM_TOKEN_TTL", 24*time.Hour),

		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},

		StrategyFile:   os.Getenv("STRATEGY_FILE"),
		DefaultVariant: getEnv("DEFAULT_VARIANT", "en"),
	}
}

// redisAddr strips a redis:// scheme, go-redis Options.Addr wants host:port
func redisAddr(uri string) string {
	return strings.TrimPrefix(uri, "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration accepts Go durations ("90m") or plain seconds
func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
