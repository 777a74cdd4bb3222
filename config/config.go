// Package config provides configuration loading and management for dspvalidate.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete dspvalidate configuration
type Config struct {
	API        APIConfig        `yaml:"api"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
}

// APIConfig configures the connection to the DSP-API server
type APIConfig struct {
	// URL is the API server (default: http://0.0.0.0:3333)
	URL string `yaml:"url"`
	// Timeout bounds every retrieval request
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

// RetryConfig configures retries of retrieval requests. The SHACL
// validation request is never retried.
type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// ValidationConfig configures the validation run
type ValidationConfig struct {
	// Parallel runs the cardinality and content passes concurrently
	Parallel bool `yaml:"parallel"`
	// SHACLTimeout bounds one SHACL validation request
	SHACLTimeout time.Duration `yaml:"shacl_timeout"`
	// SaveGraphs writes every graph of the run next to the input file
	SaveGraphs bool `yaml:"save_graphs"`
	// GraphFormat is turtle or ntriples
	GraphFormat string `yaml:"graph_format"`
}

// OutputConfig configures the user message
type OutputConfig struct {
	// TableThreshold is the number of problems above which they are written
	// to a CSV table instead of being printed
	TableThreshold int `yaml:"table_threshold"`
	// TableDir is where tables are written (empty = next to the input file)
	TableDir string `yaml:"table_dir"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:     "http://0.0.0.0:3333",
			Timeout: 60 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:    3,
				InitialBackoff: time.Second,
				MaxBackoff:     10 * time.Second,
			},
		},
		Validation: ValidationConfig{
			Parallel:     false,
			SHACLTimeout: 5 * time.Minute,
			SaveGraphs:   false,
			GraphFormat:  "turtle",
		},
		Output: OutputConfig{
			TableThreshold: 60,
			TableDir:       "", // Next to the input file
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("api.url is required")
	}
	if u, err := url.Parse(c.API.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.url must be an absolute URL, got %q", c.API.URL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.API.Retry.MaxAttempts < 1 {
		return fmt.Errorf("api.retry.max_attempts must be at least 1")
	}
	if c.API.Retry.MaxBackoff < c.API.Retry.InitialBackoff {
		return fmt.Errorf("api.retry.max_backoff must not be smaller than api.retry.initial_backoff")
	}
	if c.Validation.SHACLTimeout <= 0 {
		return fmt.Errorf("validation.shacl_timeout must be positive")
	}
	switch c.Validation.GraphFormat {
	case "turtle", "ntriples":
	default:
		return fmt.Errorf("validation.graph_format must be turtle or ntriples, got %q", c.Validation.GraphFormat)
	}
	if c.Output.TableThreshold < 1 {
		return fmt.Errorf("output.table_threshold must be at least 1")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// loadLayer reads a YAML file into a zero Config, so that only the keys the
// file sets survive a Merge.
func loadLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var layer Config
	if err := yaml.Unmarshal(data, &layer); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &layer, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values). Booleans can only be switched on by a later layer.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// API
	if other.API.URL != "" {
		c.API.URL = other.API.URL
	}
	if other.API.Timeout != 0 {
		c.API.Timeout = other.API.Timeout
	}
	if other.API.Retry.MaxAttempts != 0 {
		c.API.Retry.MaxAttempts = other.API.Retry.MaxAttempts
	}
	if other.API.Retry.InitialBackoff != 0 {
		c.API.Retry.InitialBackoff = other.API.Retry.InitialBackoff
	}
	if other.API.Retry.MaxBackoff != 0 {
		c.API.Retry.MaxBackoff = other.API.Retry.MaxBackoff
	}

	// Validation
	if other.Validation.Parallel {
		c.Validation.Parallel = true
	}
	if other.Validation.SHACLTimeout != 0 {
		c.Validation.SHACLTimeout = other.Validation.SHACLTimeout
	}
	if other.Validation.SaveGraphs {
		c.Validation.SaveGraphs = true
	}
	if other.Validation.GraphFormat != "" {
		c.Validation.GraphFormat = other.Validation.GraphFormat
	}

	// Output
	if other.Output.TableThreshold != 0 {
		c.Output.TableThreshold = other.Output.TableThreshold
	}
	if other.Output.TableDir != "" {
		c.Output.TableDir = other.Output.TableDir
	}
}
