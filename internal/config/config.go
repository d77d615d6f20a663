package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names the optional YAML config file.
const ConfigPathEnvVar = "CONFIG_PATH"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Redis     RedisConfig     `koanf:"redis"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Log       LogConfig       `koanf:"log"`
	Web       WebConfig       `koanf:"web"`
}

type ServerConfig struct {
	Host        string `koanf:"host"`
	Port        int    `koanf:"port"`
	Secure      bool   `koanf:"secure"`      // HTTPS-only cookies and HSTS
	Environment string `koanf:"environment"` // "development", "production", "test"
}

// RedisConfig is optional; without redis the rate limiter lets every
// request through.
type RedisConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "json" or "console"
}

type WebConfig struct {
	TemplatesDir string `koanf:"templates_dir"`
	StaticDir    string `koanf:"static_dir"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Secure:      false,
			Environment: "development",
		},
		Redis: RedisConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    6379,
			DB:      0,
		},
		RateLimit: RateLimitConfig{
			Requests: 60,
			Window:   time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Web: WebConfig{
			TemplatesDir: "web/templates",
			StaticDir:    "web/static",
		},
	}
}

// envKeys maps environment variables to config paths. Anything not listed
// is ignored.
var envKeys = map[string]string{
	"server_host":         "server.host",
	"server_port":         "server.port",
	"server_secure":       "server.secure",
	"app_env":             "server.environment",
	"redis_enabled":       "redis.enabled",
	"redis_host":          "redis.host",
	"redis_port":          "redis.port",
	"redis_password":      "redis.password",
	"redis_db":            "redis.db",
	"rate_limit_requests": "ratelimit.requests",
	"rate_limit_window":   "ratelimit.window",
	"log_level":           "log.level",
	"log_format":          "log.format",
	"templates_dir":       "web.templates_dir",
	"static_dir":          "web.static_dir",
}

func envTransform(key string) string {
	return envKeys[strings.ToLower(key)]
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_PATH (if any), then environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	if c.RateLimit.Requests <= 0 {
		errs = append(errs, fmt.Errorf("rate limit requests must be positive, got %d", c.RateLimit.Requests))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("rate limit window must be positive, got %s", c.RateLimit.Window))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log format must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
