package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"

	"newsflash/internal/adapter/newsapi"
)

type Config struct {
	NewsAPIKey        string
	NewsAPIURL        string
	NewsDomains       []string
	HTTPAddr          string
	HTTPClientTimeout time.Duration
	RateLimit         limiter.Rate
	TrustedProxies    []string
}

// LoadEnv loads a .env file if present; the process environment always wins.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables.")
	}
}

// FromEnv reads the configuration from the environment, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		NewsAPIKey:  os.Getenv("NEWSAPI_KEY"),
		NewsAPIURL:  getenv("NEWSAPI_URL", newsapi.DefaultEndpoint),
		NewsDomains: splitList(getenv("NEWSAPI_DOMAINS", strings.Join(newsapi.DefaultDomains, ","))),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
	}

	// Empty means X-Forwarded-For is ignored and the limiter keys on the peer address.
	cfg.TrustedProxies = splitList(os.Getenv("TRUSTED_PROXIES"))

	if raw := os.Getenv("HTTP_CLIENT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT %q: %w", raw, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT %q: must not be negative", raw)
		}
		cfg.HTTPClientTimeout = d
	}

	rate, err := limiter.NewRateFromFormatted(getenv("RATE_LIMIT", "60-M"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	cfg.RateLimit = rate

	if cfg.NewsAPIKey == "" {
		log.Println("⚠️  NEWSAPI_KEY is not set, upstream requests will be rejected.")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
