package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	AI         AIConfig         `yaml:"ai"`
	Generation GenerationConfig `yaml:"generation"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type AIConfig struct {
	Text  TextModelConfig  `yaml:"text"`
	Image ImageModelConfig `yaml:"image"`
}

// TextModelConfig points at an OpenAI-compatible chat completion endpoint
type TextModelConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// ImageModelConfig points at a Gemini-style image generation endpoint
type ImageModelConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type GenerationConfig struct {
	// PromptMode selects the composition strategy: "text" renders brand copy
	// as on-image typography, "abstract" produces text-free symbolic assets.
	PromptMode      string        `yaml:"prompt_mode"`
	StaggerInterval time.Duration `yaml:"stagger_interval"`
	MaxAttempts     int           `yaml:"max_attempts"`
	BackoffBase     time.Duration `yaml:"backoff_base"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

type CacheConfig struct {
	AnalysisTTL time.Duration `yaml:"analysis_ttl"`
	Redis       RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults applied when the config file leaves a field unset
const (
	DefaultTextModel       = "gpt-4o-mini"
	DefaultImageModel      = "gemini-2.5-flash-image"
	DefaultImageBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	DefaultPromptMode      = "abstract"
	DefaultStaggerInterval = 500 * time.Millisecond
	DefaultMaxAttempts     = 3
	DefaultBackoffBase     = 2000 * time.Millisecond
	DefaultRequestTimeout  = 5 * time.Minute
	DefaultAnalysisTTL     = 15 * time.Minute
)

// Load reads configuration from a YAML file and applies environment overrides
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AI.Text.Model == "" {
		c.AI.Text.Model = DefaultTextModel
	}
	if c.AI.Image.Model == "" {
		c.AI.Image.Model = DefaultImageModel
	}
	if c.AI.Image.BaseURL == "" {
		c.AI.Image.BaseURL = DefaultImageBaseURL
	}
	if c.Generation.PromptMode == "" {
		c.Generation.PromptMode = DefaultPromptMode
	}
	if c.Generation.StaggerInterval == 0 {
		c.Generation.StaggerInterval = DefaultStaggerInterval
	}
	if c.Generation.MaxAttempts == 0 {
		c.Generation.MaxAttempts = DefaultMaxAttempts
	}
	if c.Generation.BackoffBase == 0 {
		c.Generation.BackoffBase = DefaultBackoffBase
	}
	if c.Generation.RequestTimeout == 0 {
		c.Generation.RequestTimeout = DefaultRequestTimeout
	}
	if c.Cache.AnalysisTTL == 0 {
		c.Cache.AnalysisTTL = DefaultAnalysisTTL
	}
}

func (c *Config) applyEnvOverrides() {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		c.AI.Text.APIKey = apiKey
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		c.AI.Image.APIKey = apiKey
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Cache.Redis.Password = password
	}
}
