// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

const (
	FormatText = "text"
	FormatHTML = "html"

	OutputJSON = "json"
	OutputText = "text"
)

type Config struct {
	Dictionary struct {
		File   string `yaml:"file"`
		URL    string `yaml:"url"`
		Format string `yaml:"format"`
	} `yaml:"dictionary"`

	RateLimit struct {
		RequestsPerSecond int `yaml:"requestsPerSecond"`
		Burst             int `yaml:"burst"`
	} `yaml:"rateLimit"`

	// Concurrency bounds how many shifts are scored in parallel
	Concurrency int `yaml:"concurrency"`

	HTTPClient struct {
		Timeout    int    `yaml:"timeout"`
		MaxRetries int    `yaml:"maxRetries"`
		RetryDelay int    `yaml:"retryDelay"`
		UserAgent  string `yaml:"userAgent"`
	} `yaml:"httpClient"`

	Output struct {
		Format        string `yaml:"format"`
		PrettyPrint   bool   `yaml:"prettyPrint"`
		IncludeScores bool   `yaml:"includeScores"`
		TopCandidates int    `yaml:"topCandidates"`
		ShowProgress  bool   `yaml:"showProgress"`
	} `yaml:"output"`

	Logging struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"logging"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Load reads and parses the configuration at path. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	// Set default values
	setDefaults(&cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.Dictionary.Format == "" {
		cfg.Dictionary.Format = FormatText
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 4
	}
	if cfg.HTTPClient.Timeout == 0 {
		cfg.HTTPClient.Timeout = 30
	}
	if cfg.HTTPClient.MaxRetries == 0 {
		cfg.HTTPClient.MaxRetries = 3
	}
	if cfg.HTTPClient.RetryDelay == 0 {
		cfg.HTTPClient.RetryDelay = 1
	}
	if cfg.HTTPClient.UserAgent == "" {
		cfg.HTTPClient.UserAgent = "shiftcipher/1.0"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputJSON
	}
	if cfg.Output.TopCandidates == 0 {
		cfg.Output.TopCandidates = 5
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dictionary.File != "" && c.Dictionary.URL != "" {
		return fmt.Errorf("dictionary file and url are mutually exclusive")
	}
	if c.Dictionary.Format != FormatText && c.Dictionary.Format != FormatHTML {
		return fmt.Errorf("unknown dictionary format %q", c.Dictionary.Format)
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("requestsPerSecond must be positive")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	if c.HTTPClient.Timeout <= 0 {
		return fmt.Errorf("httpClient timeout must be positive")
	}
	if c.Output.Format != OutputJSON && c.Output.Format != OutputText {
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.TopCandidates < 0 {
		return fmt.Errorf("topCandidates must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %w", err)
	}
	return nil
}
