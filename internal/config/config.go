package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	MetricsPort int `toml:"metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// gemini
	GeminiModel string `toml:"gemini_model"`

	ChatMessagesPerMinLimit int `toml:"chat_messages_per_min_limit"`

	// telemetry
	PrometheusMetricsNamespace string `toml:"prom_metrics_namespace"`
	PrometheusMetricsSubsystem string `toml:"prom_metrics_subsystem"`
	HoneycombTracingEnabled    bool   `toml:"honeycomb_tracing_enabled"`

	SentryEnabled bool `toml:"sentry_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var configToml Toml
	if err := toml.Unmarshal(configBytes, &configToml); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	cfg, err := configToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %q is empty", env)
	}

	return cfg, nil
}
