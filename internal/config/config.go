package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Generation struct {
		Provider     string        `mapstructure:"provider"` // "openai", "gemini" or "" (templated only)
		Model        string        `mapstructure:"model"`
		OpenAIAPIKey string        `mapstructure:"openai_api_key"`
		GoogleAPIKey string        `mapstructure:"google_api_key"`
		BaseURL      string        `mapstructure:"base_url"` // override for OpenAI-compatible endpoints
		Timeout      time.Duration `mapstructure:"timeout"`
		MaxRetries   int           `mapstructure:"max_retries"`
		BaseDelay    time.Duration `mapstructure:"base_delay"`
		Temperature  float32       `mapstructure:"temperature"`
		TopP         float32       `mapstructure:"top_p"`
		MaxTokens    int           `mapstructure:"max_tokens"`
	} `mapstructure:"generation"`

	Query struct {
		MaxLength      int `mapstructure:"max_length"`
		DefaultResults int `mapstructure:"default_results"`
	} `mapstructure:"query"`

	RateLimit struct {
		Window      time.Duration `mapstructure:"window"`
		MaxRequests int           `mapstructure:"max_requests"`
	} `mapstructure:"rate_limit"`

	Cache struct {
		Enabled bool          `mapstructure:"enabled"`
		TTL     time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`

	Guardrails struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"guardrails"`

	GitHub struct {
		Enabled bool    `mapstructure:"enabled"`
		Token   string  `mapstructure:"token"`
		RPS     float64 `mapstructure:"rps"`
	} `mapstructure:"github"`
}

// LoadConfig reads config.yaml if present and environment variables, and
// fills in defaults that let the binary run fully offline in templated mode.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	// API keys are usually provided via the conventional env var names.
	viper.BindEnv("generation.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("generation.google_api_key", "GEMINI_API_KEY")
	viper.BindEnv("github.token", "GITHUB_TOKEN")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars are enough.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("generation.provider", "")
	viper.SetDefault("generation.model", "")
	viper.SetDefault("generation.timeout", 30*time.Second)
	viper.SetDefault("generation.max_retries", 3)
	viper.SetDefault("generation.base_delay", time.Second)
	viper.SetDefault("generation.temperature", 0.2)
	viper.SetDefault("generation.top_p", 0.9)
	viper.SetDefault("generation.max_tokens", 1024)

	viper.SetDefault("query.max_length", 4000)
	viper.SetDefault("query.default_results", 5)

	viper.SetDefault("rate_limit.window", time.Minute)
	viper.SetDefault("rate_limit.max_requests", 30)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl", time.Hour)

	viper.SetDefault("guardrails.enabled", true)

	viper.SetDefault("github.enabled", false)
	viper.SetDefault("github.rps", 1.0)
}
