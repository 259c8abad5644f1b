package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Planner   PlannerConfig   `yaml:"planner"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Identity  IdentityConfig  `yaml:"identity"`
	Storage   StorageConfig   `yaml:"storage"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	Retry        RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// PlannerConfig controls plan lifecycle policy.
type PlannerConfig struct {
	RegenCooldown time.Duration `yaml:"regenCooldown"`
	PlanTTL       time.Duration `yaml:"planTtl"`
	TopPopular    int           `yaml:"topPopular"`
}

// OptimizerConfig bounds the quick action effort budget.
type OptimizerConfig struct {
	MinBudget int `yaml:"minBudget"`
	MaxBudget int `yaml:"maxBudget"`
}

// IdentityConfig controls bearer token validation for plan endpoints.
type IdentityConfig struct {
	Enabled bool   `yaml:"enabled"`
	Secret  string `yaml:"secret"`
}

// StorageConfig groups external store settings.
type StorageConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// RedisConfig contains connection information for the trend store.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PLANNER_REGEN_COOLDOWN"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Planner.RegenCooldown = parsed
		}
	}
	if v := os.Getenv("PLANNER_PLAN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Planner.PlanTTL = parsed
		}
	}
	if v := os.Getenv("PLANNER_TOP_POPULAR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Planner.TopPopular = parsed
		}
	}
	if v := os.Getenv("OPTIMIZER_MIN_BUDGET"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Optimizer.MinBudget = parsed
		}
	}
	if v := os.Getenv("OPTIMIZER_MAX_BUDGET"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Optimizer.MaxBudget = parsed
		}
	}
	if v := os.Getenv("IDENTITY_ENABLED"); v != "" {
		cfg.Identity.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("IDENTITY_SECRET"); v != "" {
		cfg.Identity.Secret = v
	}
	if v := os.Getenv("STORAGE_POSTGRES_DSN"); v != "" {
		cfg.Storage.Postgres.DSN = v
	}
	if v := os.Getenv("STORAGE_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("STORAGE_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("STORAGE_REDIS_ENABLED"); v != "" {
		cfg.Storage.Redis.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("STORAGE_REDIS_ADDR"); v != "" {
		cfg.Storage.Redis.Addr = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/plans",
				},
			},
		},
		Planner: PlannerConfig{
			RegenCooldown: 30 * 24 * time.Hour,
			PlanTTL:       365 * 24 * time.Hour,
			TopPopular:    10,
		},
		Optimizer: OptimizerConfig{
			MinBudget: 5,
			MaxBudget: 50,
		},
		Identity: IdentityConfig{
			Enabled: false,
		},
		Storage: StorageConfig{
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
			Redis: RedisConfig{
				Enabled: false,
				Addr:    "",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Planner.RegenCooldown <= 0 {
		return errors.New("planner.regenCooldown must be positive")
	}
	if c.Planner.PlanTTL <= 0 {
		return errors.New("planner.planTtl must be positive")
	}
	if c.Planner.PlanTTL < c.Planner.RegenCooldown {
		return errors.New("planner.planTtl cannot be shorter than planner.regenCooldown")
	}
	if c.Planner.TopPopular < 0 {
		return errors.New("planner.topPopular cannot be negative")
	}
	if c.Optimizer.MinBudget <= 0 {
		return errors.New("optimizer.minBudget must be positive")
	}
	if c.Optimizer.MaxBudget < c.Optimizer.MinBudget {
		return errors.New("optimizer.maxBudget cannot be below optimizer.minBudget")
	}
	if c.Identity.Enabled && strings.TrimSpace(c.Identity.Secret) == "" {
		return errors.New("identity.secret cannot be empty when identity is enabled")
	}
	if c.Storage.Redis.Enabled && strings.TrimSpace(c.Storage.Redis.Addr) == "" {
		return errors.New("storage.redis.addr cannot be empty when redis is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
