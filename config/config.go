// Package config loads and validates application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the single configuration structure for the whole process.
// It is loaded once at startup and passed by reference into client
// constructors; nothing else reads the environment.
type Config struct {
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Freepik FreepikConfig `mapstructure:"freepik"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

// OpenAIConfig configures the text and image generation clients.
type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// FreepikConfig configures the stock-photo search client. The API key
// is optional: without it the search tier is skipped entirely.
type FreepikConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// ServerConfig configures the HTTP hosting layer.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Port string `mapstructure:"port"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the optional YAML config file at path, then overlays
// environment variables (OPENAI_API_KEY, OPENAI_VERSION, FREEPIK_API_KEY,
// PORT, ...). An empty path skips the file stage.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := v.ReadConfig(strings.NewReader(string(content))); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so env-only keys survive Unmarshal. The model
	// and port aliases are kept from the original deployment environment.
	v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	v.BindEnv("openai.model", "OPENAI_MODEL", "OPENAI_VERSION")
	v.BindEnv("freepik.api_key", "FREEPIK_API_KEY")
	v.BindEnv("server.addr", "SERVER_ADDR")
	v.BindEnv("server.port", "SERVER_PORT", "PORT")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("openai.model", "gpt-4-turbo")
	v.SetDefault("openai.timeout", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks the invariants required before any generation run.
// The OpenAI credential is the only hard requirement; the Freepik key
// is optional by design.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return errors.New("openai api key missing; set OPENAI_API_KEY or openai.api_key")
	}
	if c.OpenAI.Model == "" {
		return errors.New("openai model is required")
	}
	return nil
}

// ListenAddr resolves the bind address for the HTTP server. An explicit
// addr wins; otherwise PORT (hosting platforms inject it); otherwise a
// local default.
func (c *Config) ListenAddr() string {
	if c.Server.Addr != "" {
		return c.Server.Addr
	}
	if c.Server.Port != "" {
		return ":" + c.Server.Port
	}
	return ":8080"
}
