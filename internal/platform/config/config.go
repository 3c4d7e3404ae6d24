// Package config loads the process-wide configuration once at startup.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server needs. It is constructed once in
// main and passed down explicitly; nothing reads the environment afterwards,
// so the signing secret and TTL are immutable for the process lifetime.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// JWTSecret signs every issued access token. Rotating it invalidates
	// all outstanding tokens.
	JWTSecret string

	// JWTExpiration is the access token TTL.
	JWTExpiration time.Duration

	// BcryptCost tunes password hashing expense. 0 selects the bcrypt default.
	BcryptCost int

	// HashWorkers bounds concurrent bcrypt computations.
	HashWorkers int

	// AuthRateLimit is the per-client number of auth attempts allowed per
	// minute on the register/login endpoints.
	AuthRateLimit int

	// CacheTTL is how long cached sweet listings stay fresh in Redis.
	CacheTTL time.Duration
}

// Load reads configuration from the environment, after loading a local .env
// file when one exists. It fails when JWT_SECRET is unset: starting without
// a signing secret would make every issued token forgeable.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return &Config{
		Port: getenv("PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisHost:     getenv("REDIS_HOST", "localhost"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:     secret,
		JWTExpiration: getduration("JWT_EXPIRATION", 24*time.Hour),
		BcryptCost:    getint("BCRYPT_COST", 0),
		HashWorkers:   getint("HASH_WORKERS", 8),
		AuthRateLimit: getint("AUTH_RATE_LIMIT", 10),
		CacheTTL:      getduration("CACHE_TTL", 5*time.Minute),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
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

func getduration(key string, fallback time.Duration) time.Duration {
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
