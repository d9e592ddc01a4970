package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Log    LogConfig
	Search SearchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// AuthConfig controls the optional bearer-token guard on the API group. An
// empty secret leaves the endpoints open.
type AuthConfig struct {
	AccessSecret string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

// SearchConfig selects the search backend. "index" uses the fuzzy library
// index, "relevance" the in-house scorer; anything else falls back to "index".
type SearchConfig struct {
	Engine string
}

const (
	SearchEngineIndex     = "index"
	SearchEngineRelevance = "relevance"
)

const defaultCacheTTL = 600 * time.Second

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      ttlFromEnv(opt("REDIS_TTL")),
	}

	cfg.Auth = AuthConfig{
		AccessSecret: opt("JWT_ACCESS_SECRET"),
	}

	cfg.Log = LogConfig{
		JSON:  boolFromEnv(opt("LOG_JSON")),
		Debug: boolFromEnv(opt("LOG_DEBUG")),
	}

	cfg.Search = SearchConfig{
		Engine: searchEngineFromEnv(opt("SEARCH_ENGINE")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func ttlFromEnv(raw string) time.Duration {
	if raw == "" {
		return defaultCacheTTL
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(v) * time.Second
}

func searchEngineFromEnv(raw string) string {
	if strings.EqualFold(raw, SearchEngineRelevance) {
		return SearchEngineRelevance
	}
	return SearchEngineIndex
}

func boolFromEnv(raw string) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
