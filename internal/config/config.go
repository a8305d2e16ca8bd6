// Package config loads the service configuration from the process environment.
// An optional dotenv file is read first; variables already present in the
// environment always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported summarizer providers.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderOllama = "ollama"
	ProviderNoOp   = "noop"
)

// defaultEnvFile is read when ENV_FILE is not set.
const defaultEnvFile = ".env"

// Config holds the full service configuration.
type Config struct {
	// Version is reported by the health endpoint.
	Version string `env:"VERSION" envDefault:"dev"`

	Server     ServerConfig
	Log        LogConfig
	Summarizer SummarizerConfig
	Tracing    TracingConfig
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr              string        `env:"SERVER_ADDR"         envDefault:":5000"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"5s"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is json or text.
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// TracingConfig toggles the OpenTelemetry SDK tracer provider.
type TracingConfig struct {
	Enabled bool `env:"TRACING_ENABLED" envDefault:"false"`
}

// SummarizerConfig selects and configures the summarization provider.
type SummarizerConfig struct {
	Provider string `env:"SUMMARIZER_PROVIDER" envDefault:"openai"`

	// Timeout bounds a single provider call. Zero disables the timeout.
	Timeout time.Duration `env:"SUMMARIZER_TIMEOUT" envDefault:"60s"`

	// CircuitBreakerEnabled wraps the provider in a circuit breaker.
	CircuitBreakerEnabled bool `env:"SUMMARIZER_CB_ENABLED" envDefault:"true"`

	OpenAI OpenAIConfig
	Claude ClaudeConfig
	Ollama OllamaConfig
}

// OpenAIConfig configures the OpenAI chat completion provider.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL"    envDefault:"gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL"`
}

// ClaudeConfig configures the Anthropic Claude provider.
type ClaudeConfig struct {
	APIKey    string `env:"ANTHROPIC_API_KEY"`
	Model     string `env:"CLAUDE_MODEL"      envDefault:"claude-3-5-haiku-latest"`
	MaxTokens int    `env:"CLAUDE_MAX_TOKENS" envDefault:"256"`
	BaseURL   string `env:"CLAUDE_BASE_URL"`
}

// OllamaConfig configures a local Ollama server.
type OllamaConfig struct {
	Host  string `env:"OLLAMA_HOST"  envDefault:"http://localhost:11434"`
	Model string `env:"OLLAMA_MODEL" envDefault:"llama3.2"`
}

// Load reads the dotenv file named by ENV_FILE (default ".env") if it exists,
// parses the environment into a Config and validates it.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Summarizer.Provider = strings.ToLower(strings.TrimSpace(cfg.Summarizer.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR cannot be empty")
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("READ_HEADER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}
	return c.Summarizer.Validate()
}

// Validate checks the provider selection and the credentials it needs.
func (c *SummarizerConfig) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("SUMMARIZER_TIMEOUT cannot be negative")
	}

	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not found in environment or env file")
		}
		if c.OpenAI.Model == "" {
			return fmt.Errorf("OPENAI_MODEL cannot be empty")
		}
	case ProviderClaude:
		if c.Claude.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY not found in environment or env file")
		}
		if c.Claude.MaxTokens <= 0 {
			return fmt.Errorf("CLAUDE_MAX_TOKENS must be positive, got %d", c.Claude.MaxTokens)
		}
	case ProviderOllama:
		u, err := url.Parse(c.Ollama.Host)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("OLLAMA_HOST must be an absolute URL, got %q", c.Ollama.Host)
		}
		if c.Ollama.Model == "" {
			return fmt.Errorf("OLLAMA_MODEL cannot be empty")
		}
	case ProviderNoOp:
	default:
		return fmt.Errorf("SUMMARIZER_PROVIDER must be one of openai, claude, ollama, noop; got %q", c.Provider)
	}
	return nil
}

// ParseLevel converts a LOG_LEVEL value into a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", level)
	}
}
