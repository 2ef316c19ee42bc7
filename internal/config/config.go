package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type AppConfig struct {
	ServiceName    string
	HTTPAddr       string
	LogLevel       string
	JWTSecret      string
	JWTIssuer      string
	RedisAddr      string
	RedisPass      string
	RedisDB        int
	CouponCacheTTL time.Duration
	RatesFile      string
	JaegerEndpoint string
	CORSOrigins    []string
}

func Load() (AppConfig, error) {
	cfg := AppConfig{
		ServiceName:    getEnv("SERVICE_NAME", "pricing-service"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      os.Getenv("JWT_ISSUER"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		RatesFile:      os.Getenv("RATES_FILE"),
		JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return AppConfig{}, errors.Wrap(err, "REDIS_DB")
	}
	if cfg.CouponCacheTTL, err = time.ParseDuration(getEnv("COUPON_CACHE_TTL", "1m")); err != nil {
		return AppConfig{}, errors.Wrap(err, "COUPON_CACHE_TTL")
	}
	if cfg.JWTSecret == "" {
		return AppConfig{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
