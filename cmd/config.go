package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	LogLevel          string
	RedisAddress      string
	RedisPassword     string
	RedisDB           int
	OrderLockTTL      time.Duration
	PersistTimeout    time.Duration
	LockSweepSchedule string
}

// LoadConfig reads envFile into the process environment when it exists and
// then resolves every key through viper, falling back to defaults.
// An empty REDIS_ADDRESS keeps order locking in-process.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8082")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "shipment")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ORDER_LOCK_TTL", "30s")
	v.SetDefault("PERSIST_TIMEOUT", "10s")
	v.SetDefault("LOCK_SWEEP_SCHEDULE", "0 * * * * *")

	lockTTL, err := time.ParseDuration(v.GetString("ORDER_LOCK_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ORDER_LOCK_TTL: %w", err)
	}
	persistTimeout, err := time.ParseDuration(v.GetString("PERSIST_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PERSIST_TIMEOUT: %w", err)
	}
	if lockTTL <= persistTimeout {
		return Config{}, fmt.Errorf("ORDER_LOCK_TTL (%s) must exceed PERSIST_TIMEOUT (%s)", lockTTL, persistTimeout)
	}

	return Config{
		HTTPPort:          v.GetString("HTTP_PORT"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		DBName:            v.GetString("DB_NAME"),
		DBSslMode:         v.GetString("DB_SSLMODE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		RedisAddress:      v.GetString("REDIS_ADDRESS"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		OrderLockTTL:      lockTTL,
		PersistTimeout:    persistTimeout,
		LockSweepSchedule: v.GetString("LOCK_SWEEP_SCHEDULE"),
	}, nil
}
