// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultStoreFile is resolved next to the executable.
	DefaultStoreFile = "mdp.bin"
	// DefaultLength is the generated password length.
	DefaultLength = 12
	// MinLength and MaxLength bound a requested password length.
	MinLength = 8
	MaxLength = 32
	// EnvConfig names the config file when --config is not given.
	EnvConfig = "MDP_CONFIG"
)

// Config holds the user settings. Zero values mean "use the default".
type Config struct {
	StoreFile string `yaml:"store_file"`
	Length    int    `yaml:"length"`
	Mask      string `yaml:"mask"`
	Lang      string `yaml:"lang"`
	OpenSSL   string `yaml:"openssl"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		StoreFile: DefaultStoreFile,
		Length:    DefaultLength,
		Mask:      "*",
		OpenSSL:   "openssl",
		LogLevel:  "warn",
	}
}

// Path returns the config file to read: explicit, else $MDP_CONFIG, else
// <UserConfigDir>/mdp/config.yaml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mdp", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error unless
// required is set. Environment variables in the format ${VAR_NAME} are
// expanded.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} with the variable's value, or "" when unset.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.StoreFile == "" {
		c.StoreFile = def.StoreFile
	}
	if c.Length == 0 {
		c.Length = def.Length
	}
	if c.Mask == "" {
		c.Mask = def.Mask
	}
	if c.OpenSSL == "" {
		c.OpenSSL = def.OpenSSL
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate checks the settings and returns the first problem found.
func (c *Config) Validate() error {
	if c.Length < MinLength || c.Length > MaxLength {
		return fmt.Errorf("length must be between %d and %d, got %d", MinLength, MaxLength, c.Length)
	}
	if len(c.Mask) != 1 || c.Mask[0] < 0x20 || c.Mask[0] > 0x7e {
		return fmt.Errorf("mask must be a single printable ASCII character, got %q", c.Mask)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}
