package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override,
// e.g. FLASHCARDS_LOGGER_LEVEL=debug.
const EnvPrefix = "FLASHCARDS"

type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Quiz   QuizConfig   `mapstructure:"quiz"`
	Shell  ShellConfig  `mapstructure:"shell"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

type LoggerConfig struct {
	Env   string `mapstructure:"env" validate:"oneof=development production"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type QuizConfig struct {
	// Shuffle draws a random sample of cards. When false the first cards in
	// deck order are used.
	Shuffle bool `mapstructure:"shuffle"`
}

type ShellConfig struct {
	// Prompts is one of auto, always or never. auto shows prompts only when
	// stdin is a terminal.
	Prompts string `mapstructure:"prompts" validate:"oneof=auto always never"`
}

type RedisConfig struct {
	Address   string        `mapstructure:"address" validate:"omitempty,hostname_port"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db" validate:"gte=0"`
	ResultTTL time.Duration `mapstructure:"result_ttl" validate:"gte=0"`
}

// Enabled reports whether a Redis server is configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("quiz.shuffle", true)
	v.SetDefault("shell.prompts", "auto")
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.result_ttl", 24*time.Hour)
}

// LoadConfig reads config.yaml from the working directory or ./configs when
// present, then applies FLASHCARDS_* environment overrides. A .env file is
// loaded into the environment first if one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	return load(v)
}

// load applies defaults and environment overrides to v and validates the result.
func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
