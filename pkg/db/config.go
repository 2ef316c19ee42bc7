package db

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type PostgresConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MaxRetries    int
	RetryInterval time.Duration
}

func LoadPostgresConfig() (PostgresConfig, error) {
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return PostgresConfig{}, errors.Wrap(err, "DB_PORT")
	}
	retries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "10"))
	if err != nil {
		return PostgresConfig{}, errors.Wrap(err, "DB_MAX_RETRIES")
	}

	return PostgresConfig{
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          port,
		User:          getEnv("DB_USER", "postgres"),
		Password:      os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "facility"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		MaxRetries:    retries,
		RetryInterval: 2 * time.Second,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
