// Package cliconfig holds the osshkey CLI's own defaults: the KDF, cipher,
// and comment it proposes when a command doesn't specify one. None of this
// is part of the openssh-key-v1 wire format; it only shapes what the CLI
// writes the next time it packs a key.
package cliconfig

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-side defaults loaded from an optional YAML file.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultsConfig controls what `osshkey wizard` proposes as its form
// defaults. `osshkey convert` uses only KDFRounds (when --kdf-rounds is
// not given); it keeps the input file's cipher and KDF when no flag
// overrides them and does not use Cipher, KDF, or Comment.
type DefaultsConfig struct {
	// Cipher is the cipher name used to encrypt newly packed keys, e.g. "aes256-ctr".
	Cipher string `yaml:"cipher"`

	// KDF is the KDF name used to derive the cipher key, e.g. "bcrypt" or "none".
	KDF string `yaml:"kdf"`

	// KDFRounds is the bcrypt_pbkdf round count for Defaults.KDF == "bcrypt".
	KDFRounds int `yaml:"kdf_rounds"`

	// Comment is the default key comment recorded in new private-key records.
	Comment string `yaml:"comment"`
}

// LoggingConfig controls the CLI's diaglog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a Config with the CLI's built-in defaults.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Cipher:    "aes256-ctr",
			KDF:       "bcrypt",
			KDFRounds: 16,
			Comment:   "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and parses a configuration file, falling back to Default
// untouched if path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses configuration from YAML bytes, layering it over Default.
func Parse(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// envVarRegex matches ${VAR} or $VAR patterns.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		var name string
		if strings.HasPrefix(match, "${") {
			name = match[2 : len(match)-1]
		} else {
			name = match[1:]
		}
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return match
	})
}

// Validate rejects configs the CLI cannot act on.
func (c *Config) Validate() error {
	if c.Defaults.KDFRounds < 1 {
		return fmt.Errorf("defaults.kdf_rounds must be >= 1, got %d", c.Defaults.KDFRounds)
	}
	if !isValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
	if !isValidLogFormat(c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of text/json, got %q", c.Logging.Format)
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

func isValidLogFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "json":
		return true
	default:
		return false
	}
}
