package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the full server configuration. Values are layered: defaults,
// then an optional YAML file, then an optional TOML file, then environment
// variables.
type Config struct {
	ListenAddr    string `yaml:"listen_addr" toml:"listen_addr" env:"ARCANUM_LISTEN_ADDR"`
	DatabaseURL   string `yaml:"database_url" toml:"database_url" env:"DATABASE_URL"`
	UploadDir     string `yaml:"upload_dir" toml:"upload_dir" env:"ARCANUM_UPLOAD_DIR"`
	MaxUploadSize int64  `yaml:"max_upload_size" toml:"max_upload_size" env:"ARCANUM_MAX_UPLOAD_SIZE"`
	MaxBatchFiles int    `yaml:"max_batch_files" toml:"max_batch_files" env:"ARCANUM_MAX_BATCH_FILES"`
	LogLevel      string `yaml:"log_level" toml:"log_level" env:"ARCANUM_LOG_LEVEL"`
	DailyDrawCron string `yaml:"daily_draw_cron" toml:"daily_draw_cron" env:"ARCANUM_DAILY_DRAW_CRON"`
	DailyDrawDeck string `yaml:"daily_draw_deck" toml:"daily_draw_deck" env:"ARCANUM_DAILY_DRAW_DECK"`
}

const (
	yamlConfigPath = "config/server.yaml"
	tomlConfigPath = "config/server.toml"
)

// LoadConfig builds the configuration from defaults, config files and
// environment overrides.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if err := loadYAMLConfig(cfg); err != nil {
		return nil, err
	}
	if err := loadTOMLConfig(cfg); err != nil {
		return nil, err
	}
	loadEnvConfig(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.ListenAddr = ":8080"
	cfg.UploadDir = "uploads"
	cfg.MaxUploadSize = 5 * 1024 * 1024 // 5MB, matches the client contract
	cfg.MaxBatchFiles = 78              // full deck
	cfg.LogLevel = "info"
	cfg.DailyDrawCron = "0 0 * * *" // midnight
	cfg.DailyDrawDeck = "Rider-Waite Classic"
}

func loadYAMLConfig(cfg *Config) error {
	data, err := os.ReadFile(yamlConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", yamlConfigPath, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", yamlConfigPath, err)
	}
	return nil
}

func loadTOMLConfig(cfg *Config) error {
	data, err := os.ReadFile(tomlConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", tomlConfigPath, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", tomlConfigPath, err)
	}
	return nil
}

func loadEnvConfig(cfg *Config) {
	cfg.ListenAddr = getEnvString("ARCANUM_LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabaseURL = getEnvString("DATABASE_URL", cfg.DatabaseURL)
	cfg.UploadDir = getEnvString("ARCANUM_UPLOAD_DIR", cfg.UploadDir)
	cfg.MaxUploadSize = getEnvInt64("ARCANUM_MAX_UPLOAD_SIZE", cfg.MaxUploadSize)
	cfg.MaxBatchFiles = getEnvInt("ARCANUM_MAX_BATCH_FILES", cfg.MaxBatchFiles)
	cfg.LogLevel = getEnvString("ARCANUM_LOG_LEVEL", cfg.LogLevel)
	cfg.DailyDrawCron = getEnvString("ARCANUM_DAILY_DRAW_CRON", cfg.DailyDrawCron)
	cfg.DailyDrawDeck = getEnvString("ARCANUM_DAILY_DRAW_DECK", cfg.DailyDrawDeck)
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max_upload_size must be positive, got %d", c.MaxUploadSize)
	}
	if c.MaxBatchFiles <= 0 {
		return fmt.Errorf("max_batch_files must be positive, got %d", c.MaxBatchFiles)
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
