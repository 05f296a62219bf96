package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	ServerPort       string

	// Access and refresh tokens are signed with independent secrets so a
	// leaked access key cannot mint refresh tokens.
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// RedisAddr is optional; rate limiting is disabled when it is empty.
	RedisAddr          string
	RateLimitPerMinute int

	CORSOrigins []string
}

func LoadConfig() Config {
	return Config{
		DatabaseHost:       getEnv("DATABASE_HOST", "db"),
		DatabasePort:       getEnv("DATABASE_PORT", "5432"),
		DatabaseUser:       getEnv("DATABASE_USER", "postgres"),
		DatabasePassword:   getEnv("DATABASE_PASSWORD", "password"),
		DatabaseName:       getEnv("DATABASE_NAME", "treqsy"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		AccessSecret:       getEnv("JWT_ACCESS_SECRET", "access-secret"),
		RefreshSecret:      getEnv("JWT_REFRESH_SECRET", "refresh-secret"),
		AccessTTL:          getEnvDuration("ACCESS_TOKEN_TTL_MINUTES", 60*24*7),
		RefreshTTL:         getEnvDuration("REFRESH_TOKEN_TTL_MINUTES", 60*24*30),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		CORSOrigins:        getEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

func (c Config) PostgresConnStr() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
	)
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getEnvInt(key string, fallback int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func getEnvDuration(key string, fallbackMinutes int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMinutes)) * time.Minute
}

func InitDB(ctx context.Context, cfg Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresConnStr())
	if err != nil {
		panic(fmt.Sprintf("database connection error: %v", err))
	}
	if err = db.PingContext(ctx); err != nil {
		panic(fmt.Sprintf("database ping error: %v", err))
	}
	return db
}
