package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Listing directory specifics
	Directory DirectoryConfig
	Filter    FilterConfig

	// Inbound protection and observability
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DirectoryConfig points at the remote listing directory service.
type DirectoryConfig struct {
	URL               string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables outbound throttling
	Burst             int
	DetailCacheSize   int
	DetailCacheTTL    time.Duration
}

type FilterConfig struct {
	Debounce time.Duration // 0 refreshes on every change
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// Load loads configuration using Viper.
// A .env file is applied first when present. Config file name: config.yaml,
// searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Directory service
	cfg.Directory.URL = viper.GetString("directory.url")
	if directoryURL := viper.GetString("directory_url"); directoryURL != "" {
		cfg.Directory.URL = directoryURL
	}
	cfg.Directory.URL = strings.TrimRight(strings.TrimSpace(cfg.Directory.URL), "/")
	cfg.Directory.Timeout = viper.GetDuration("directory.timeout")
	cfg.Directory.RequestsPerSecond = viper.GetFloat64("directory.requests_per_second")
	cfg.Directory.Burst = viper.GetInt("directory.burst")
	cfg.Directory.DetailCacheSize = viper.GetInt("directory.detail_cache_size")
	cfg.Directory.DetailCacheTTL = viper.GetDuration("directory.detail_cache_ttl")

	cfg.Filter.Debounce = viper.GetDuration("filter.debounce")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = viper.GetString("metrics.namespace")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("directory.timeout", "10s")
	viper.SetDefault("directory.requests_per_second", 0)
	viper.SetDefault("directory.burst", 1)
	viper.SetDefault("directory.detail_cache_size", 256)
	viper.SetDefault("directory.detail_cache_ttl", "5m")

	viper.SetDefault("filter.debounce", "300ms")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.namespace", "listing_directory")
}

func validate(cfg *Config) error {
	if cfg.Directory.URL == "" {
		return errors.New("directory.url is required (or set DIRECTORY_URL)")
	}
	if !strings.HasPrefix(cfg.Directory.URL, "http://") && !strings.HasPrefix(cfg.Directory.URL, "https://") {
		return fmt.Errorf("directory.url must be an http(s) URL, got %q", cfg.Directory.URL)
	}
	if cfg.Directory.Timeout < 0 {
		return errors.New("directory.timeout must not be negative")
	}
	if cfg.Directory.RequestsPerSecond < 0 {
		return errors.New("directory.requests_per_second must not be negative")
	}
	if cfg.Filter.Debounce < 0 {
		return errors.New("filter.debounce must not be negative")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return errors.New("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
