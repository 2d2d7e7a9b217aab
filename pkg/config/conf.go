package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "mch"

	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	EnvPrefix = "MCH_"

	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// Config represents app config object.
type Config struct {
	DataFile string `koanf:"data_file" yaml:"data_file" json:"data_file"`
	Format   string `koanf:"format" yaml:"format" json:"format"`
	LogLevel string `koanf:"log_level" yaml:"log_level" json:"log_level"`
}

// Default returns the config used when nothing else is set.
func Default() *Config {
	return &Config{
		DataFile: "",
		Format:   FormatTable,
		LogLevel: "info",
	}
}

// Load layers the defaults, the yaml file at path (skipped when path is empty
// or the file does not exist) and MCH_* environment variables, in that order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	d := Default()
	k.Set("data_file", d.DataFile)
	k.Set("format", d.Format)
	k.Set("log_level", d.LogLevel)

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults until "config init" writes the file
		case err != nil:
			return nil, fmt.Errorf("config file %s: %w", path, err)
		default:
			if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	// MCH_DATA_FILE -> data_file
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate normalizes the format and rejects unknown ones.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config required")
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "yml" {
		c.Format = FormatYAML
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q, expected one of: %s", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// Save writes c as yaml to path, creating the parent directory when needed.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config file path required")
	}
	if c == nil {
		return errors.New("config required")
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("failed to create dir for %s: %w", path, err)
	}

	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns $HOME/.mch/config.yaml, or a path in the current
// directory when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("."+AppName, configFileName)
	}
	return filepath.Join(home, "."+AppName, configFileName)
}
