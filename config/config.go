// Package config provides configuration loading and management for
// Clausegraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Clausegraph configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Server ServerConfig `yaml:"server"`
}

// ParserConfig tunes the clause parsing engine.
type ParserConfig struct {
	// SummaryLength is the summary bound in characters (default: 300)
	SummaryLength int `yaml:"summary_length"`
	// FullTextLimit caps stored clause text in characters (default: 5000)
	FullTextLimit int `yaml:"full_text_limit"`
	// OutputDir is the default artifact directory (default: ./output)
	OutputDir string `yaml:"output_dir"`
}

// ServerConfig configures the stub HTTP service.
type ServerConfig struct {
	// Addr is the listen address (default: :8000)
	Addr string `yaml:"addr"`
	// Document is the input document served in query endpoints
	Document string `yaml:"document"`
	// RedisURL enables the cache connectivity check when set
	RedisURL string `yaml:"redis_url"`
	// ShutdownTimeout is the graceful shutdown bound
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			SummaryLength: 300,
			FullTextLimit: 5000,
			OutputDir:     "./output",
		},
		Server: ServerConfig{
			Addr:            ":8000",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Parser.SummaryLength <= 0 {
		return fmt.Errorf("parser.summary_length must be positive")
	}
	if c.Parser.FullTextLimit <= 0 {
		return fmt.Errorf("parser.full_text_limit must be positive")
	}
	if c.Parser.OutputDir == "" {
		return fmt.Errorf("parser.output_dir is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Parser.SummaryLength != 0 {
		c.Parser.SummaryLength = other.Parser.SummaryLength
	}
	if other.Parser.FullTextLimit != 0 {
		c.Parser.FullTextLimit = other.Parser.FullTextLimit
	}
	if other.Parser.OutputDir != "" {
		c.Parser.OutputDir = other.Parser.OutputDir
	}
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.Document != "" {
		c.Server.Document = other.Server.Document
	}
	if other.Server.RedisURL != "" {
		c.Server.RedisURL = other.Server.RedisURL
	}
	if other.Server.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = other.Server.ShutdownTimeout
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile writes the configuration as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
