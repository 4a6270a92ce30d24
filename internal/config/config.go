// Package config loads settings shared by the tern command line tool and
// language server from tern.toml or tern.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// NoColorEnv disables colored output when set to any non-empty value.
const NoColorEnv = "TERN_NO_COLOR"

// FileNames are the names Discover looks for, in order.
var FileNames = []string{"tern.toml", "tern.yaml", "tern.yml"}

type Config struct {
	// Color enables ANSI colors in diagnostics and token dumps.
	Color bool `toml:"color" yaml:"color"`

	// LogVerbosity is passed to commonlog: 0 logs errors only, each step
	// up adds a level.
	LogVerbosity int `toml:"log_verbosity" yaml:"log_verbosity"`

	// LogFile receives log output; empty means stderr.
	LogFile string `toml:"log_file" yaml:"log_file"`

	// History is the REPL history file; empty disables history.
	History string `toml:"history" yaml:"history"`
}

func Default() *Config {
	cfg := &Config{Color: true}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.History = filepath.Join(home, ".tern_history")
	}
	cfg.applyEnv()
	return cfg
}

// Load reads a configuration file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromString parses content in the given format on top of the defaults.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cfg.LogFile = os.ExpandEnv(cfg.LogFile)
	cfg.History = os.ExpandEnv(cfg.History)
	cfg.applyEnv()
	return cfg, nil
}

// Discover returns the first tern configuration file in dir.
func Discover(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Resolve loads path when given, otherwise the configuration discovered in
// dir, otherwise the defaults.
func Resolve(path, dir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if found, ok := Discover(dir); ok {
		return Load(found)
	}
	return Default(), nil
}

func (c *Config) applyEnv() {
	if os.Getenv(NoColorEnv) != "" {
		c.Color = false
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
