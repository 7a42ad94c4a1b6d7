// Package config loads server configuration from YAML or JSON5 files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"go.mau.fi/util/ptr"
	"gopkg.in/yaml.v3"

	"github.com/beeper/file-analysis-mcp/pkg/textstats"
	"github.com/beeper/file-analysis-mcp/pkg/tokens"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis"`
	Files    FilesConfig    `yaml:"files" json:"files"`
}

// ServerConfig identifies the MCP server to clients.
type ServerConfig struct {
	Name         string `yaml:"name" json:"name"`
	Version      string `yaml:"version" json:"version"`
	Instructions string `yaml:"instructions" json:"instructions"`
}

type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// AnalysisConfig controls the text analysis tools.
type AnalysisConfig struct {
	TopWords  int             `yaml:"top_words" json:"top_words"`
	Tokenizer TokenizerConfig `yaml:"tokenizer" json:"tokenizer"`
}

type TokenizerConfig struct {
	Enabled  *bool  `yaml:"enabled" json:"enabled"`
	Encoding string `yaml:"encoding" json:"encoding"`
}

// FilesConfig controls the file tools. An empty Root means the tools read
// anywhere on the local filesystem; zero MaxFileSizeBytes means no cap.
type FilesConfig struct {
	Root             string `yaml:"root" json:"root"`
	MaxFileSizeBytes int64  `yaml:"max_file_size_bytes" json:"max_file_size_bytes"`
}

// TokenizerEnabled reports whether the count_tokens tool should be
// registered. Enabled unless explicitly turned off.
func (c *AnalysisConfig) TokenizerEnabled() bool {
	return c.Tokenizer.Enabled == nil || *c.Tokenizer.Enabled
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:         "file-analysis",
			Version:      "0.1.0",
			Instructions: "Tools for analyzing text files",
		},
		Logging: LoggingConfig{Level: "info"},
		Analysis: AnalysisConfig{
			TopWords: textstats.DefaultTopWords,
			Tokenizer: TokenizerConfig{
				Enabled:  ptr.Ptr(true),
				Encoding: tokens.DefaultEncoding,
			},
		},
	}
}

// Load reads the config file at path over the defaults. An empty path or
// a missing file yields the defaults. The format is chosen by extension:
// .json and .json5 are parsed as JSON5, everything else as YAML.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		if err := json5.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks config invariants.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return errors.New("server.name must not be empty")
	}
	if c.Analysis.TopWords < 0 {
		return fmt.Errorf("analysis.top_words must not be negative (got %d)", c.Analysis.TopWords)
	}
	if c.Files.MaxFileSizeBytes < 0 {
		return fmt.Errorf("files.max_file_size_bytes must not be negative (got %d)", c.Files.MaxFileSizeBytes)
	}
	return nil
}
