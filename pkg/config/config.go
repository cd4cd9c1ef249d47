package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort               = 3001
	DefaultOpenAIModel        = "gpt-4o"
	DefaultOpenAIMaxTokens    = 100
	DefaultOpenAIBaseURL      = "https://api.openai.com/v1"
	DefaultScrapeOwlBaseURL   = "https://api.scrapeowl.com"
	DefaultListingURLTemplate = "https://www.zillow.com/homes/%s_rb/"
	DefaultUpstreamTimeout    = 30 * time.Second
)

type Config struct {
	Env       string          `yaml:"env"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	ScrapeOwl ScrapeOwlConfig `yaml:"scrapeowl"`
	Listing   ListingConfig   `yaml:"listing"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" validate:"gt=0,lte=65535"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// OpenAIConfig holds the completion service settings used by address cleanup.
type OpenAIConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model" validate:"required"`
	MaxTokens int    `yaml:"max_tokens" validate:"gt=0"`
	BaseURL   string `yaml:"base_url" validate:"required,url"`
}

// ScrapeOwlConfig holds the scraping service settings used by the square footage lookup.
type ScrapeOwlConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
}

type ListingConfig struct {
	URLTemplate string `yaml:"url_template" validate:"required,listing_template"`
}

type UpstreamConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Port:            DefaultPort,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "INFO"},
		OpenAI: OpenAIConfig{
			Model:     DefaultOpenAIModel,
			MaxTokens: DefaultOpenAIMaxTokens,
			BaseURL:   DefaultOpenAIBaseURL,
		},
		ScrapeOwl: ScrapeOwlConfig{
			BaseURL: DefaultScrapeOwlBaseURL,
		},
		Listing: ListingConfig{
			URLTemplate: DefaultListingURLTemplate,
		},
		Upstream: UpstreamConfig{
			Timeout: DefaultUpstreamTimeout,
		},
	}
}

// LoadConfig reads the YAML file at path (if present), applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %v", err)
			}
		case os.IsNotExist(err):
			// defaults and environment only
		default:
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Override with environment variables if set
func applyEnv(cfg *Config) error {
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.OpenAI.Model = model
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.OpenAI.BaseURL = baseURL
	}
	if key := os.Getenv("SCRAPEOWL_API_KEY"); key != "" {
		cfg.ScrapeOwl.APIKey = key
	}
	if baseURL := os.Getenv("SCRAPEOWL_BASE_URL"); baseURL != "" {
		cfg.ScrapeOwl.BaseURL = baseURL
	}
	if tpl := os.Getenv("LISTING_URL_TEMPLATE"); tpl != "" {
		cfg.Listing.URLTemplate = tpl
	}
	if timeout := os.Getenv("UPSTREAM_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid UPSTREAM_TIMEOUT value: %v", err)
		}
		cfg.Upstream.Timeout = d
	}
	return nil
}

// Validate checks the struct tags and the listing template placeholder.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("listing_template", validListingTemplate); err != nil {
		return fmt.Errorf("failed to register config validation: %v", err)
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}
	return nil
}

// the listing template takes the encoded address through exactly one %s verb
func validListingTemplate(fl validator.FieldLevel) bool {
	tpl := fl.Field().String()
	return strings.Count(tpl, "%s") == 1 && strings.Count(tpl, "%") == 1
}

// MissingCredentials lists the upstream credentials that are not configured.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.ScrapeOwl.APIKey == "" {
		missing = append(missing, "SCRAPEOWL_API_KEY")
	}
	return missing
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
