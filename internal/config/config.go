package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Gemini    ModelConfig     `mapstructure:"gemini"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type ModelConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// RateLimitConfig gates the optional in-process call quota on the model
// client. Disabled by default.
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxCalls      int  `mapstructure:"max_calls"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

// LoadConfig reads config.yaml from the working directory, with every key
// overridable through GOALAURA_* environment variables
// (e.g. GOALAURA_GEMINI_API_KEY). The file itself is optional: env alone is
// enough to run.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("GOALAURA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/openai/")
	viper.SetDefault("gemini.model", "gemini-2.5-pro")
	viper.SetDefault("ratelimit.enabled", false)
	viper.SetDefault("ratelimit.max_calls", 2)
	viper.SetDefault("ratelimit.window_seconds", 60)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
