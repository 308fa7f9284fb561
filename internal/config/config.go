// Package config loads the settings of the command line tool.
// Precedence: built-in defaults, then the YAML file, then DOCSTASH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/n2code/docstash/internal/document"
	"github.com/n2code/docstash/internal/logging"
)

const EnvPrefix = "DOCSTASH"

// Config is kept flat so every field maps to exactly one DOCSTASH_<KEY> variable.
// Env fields carry no defaults, otherwise unset variables would clobber file values.
type Config struct {
	Extension         string `yaml:"extension" envconfig:"EXTENSION"`
	LocalDocuments    string `yaml:"local_documents" envconfig:"LOCAL_DOCUMENTS"`
	CloudContainer    string `yaml:"cloud_container" envconfig:"CLOUD_CONTAINER"`
	CloudIdentityFile string `yaml:"cloud_identity_file" envconfig:"CLOUD_IDENTITY_FILE"`
	CacheDir          string `yaml:"cache_dir" envconfig:"CACHE_DIR"` //empty: system temp dir
	LogLevel          string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogDevelopment    bool   `yaml:"log_development" envconfig:"LOG_DEV"`
}

func Default() *Config {
	cfg := &Config{
		Extension: string(document.DefaultExtension),
		LogLevel:  "info",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.LocalDocuments = filepath.Join(home, "Documents")
	}
	return cfg
}

// DefaultPath is <user config dir>/docstash/config.yaml, empty if there is no such dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "docstash", "config.yaml")
}

// Load reads the given file or, if path is empty, the optional file at DefaultPath.
// An explicitly given file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := document.ParseExtension(c.Extension); err != nil {
		return fmt.Errorf("invalid extension setting: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ManagedExtension must only be called on a validated config.
func (c *Config) ManagedExtension() document.Extension {
	ext, _ := document.ParseExtension(c.Extension)
	return ext
}

func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Development = c.LogDevelopment
	return cfg
}
