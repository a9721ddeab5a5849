package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Stripe    StripeConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Booking   BookingConfig
	LogLevel  string
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoConfig struct {
	URI         string
	User        string
	Password    string
	ClusterHost string
	Database    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type StripeConfig struct {
	SecretKey string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type BookingConfig struct {
	LockTTL time.Duration
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://assignment-twelve-1044b.web.app",
	"https://assignment-twelve-1044b.firebaseapp.com",
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Mongo: MongoConfig{
			URI:         getEnv("MONGODB_URI", ""),
			User:        getEnv("DB_USER", ""),
			Password:    getEnv("DB_PASS", ""),
			ClusterHost: getEnv("DB_CLUSTER_HOST", "cluster0.bhgag9l.mongodb.net"),
			Database:    getEnv("MONGODB_DATABASE", "beverlyDB"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("ACCESS_TOKEN_SECRET", ""),
			Expiry: getDurationEnv("ACCESS_TOKEN_EXPIRY", time.Hour),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getListEnv("CORS_ORIGINS", defaultOrigins),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloatEnv("RATE_LIMIT_RPS", 5),
			Burst: getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Booking: BookingConfig{
			LockTTL: getDurationEnv("BOOKING_LOCK_TTL", 5*time.Second),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Validate checks that the externally provided secrets are present. Their
// contents are not inspected.
func (c *Config) Validate() error {
	var errs []error
	if c.Mongo.ConnectionURI() == "" {
		errs = append(errs, errors.New("MONGODB_URI or DB_USER/DB_PASS is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required"))
	}
	if c.Stripe.SecretKey == "" {
		errs = append(errs, errors.New("STRIPE_SECRET_KEY is required"))
	}
	return errors.Join(errs...)
}

// ConnectionURI returns MONGODB_URI when set, otherwise an Atlas SRV URI
// assembled from the credential parts.
func (c *MongoConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	if c.User == "" || c.Password == "" {
		return ""
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.ClusterHost,
	)
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *CORSConfig) Origins() string {
	return strings.Join(c.AllowedOrigins, ",")
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

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
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

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
