// Package config loads jsxtrace settings from .jsxtrace/config.yaml with
// environment overrides under the JSXTRACE_ prefix.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the complete jsxtrace configuration.
type Config struct {
	// Format selects the emitter: "yaml" or "json".
	Format string `yaml:"format" mapstructure:"format"`

	Inspect InspectConfig `yaml:"inspect" mapstructure:"inspect"`
	Keys    KeysConfig    `yaml:"keys" mapstructure:"keys"`
	Runner  RunnerConfig  `yaml:"runner" mapstructure:"runner"`
	Encode  EncodeConfig  `yaml:"encode" mapstructure:"encode"`
}

// InspectConfig controls file selection.
type InspectConfig struct {
	SkipTests bool `yaml:"skipTests" mapstructure:"skipTests"`
	Recursive bool `yaml:"recursive" mapstructure:"recursive"`
}

// KeysConfig controls file key derivation.
type KeysConfig struct {
	Obfuscate bool `yaml:"obfuscate" mapstructure:"obfuscate"`
}

// RunnerConfig controls batch analysis.
type RunnerConfig struct {
	// Workers bounds the analysis pool; 0 means one per CPU.
	Workers   int `yaml:"workers" mapstructure:"workers"`
	CacheSize int `yaml:"cacheSize" mapstructure:"cacheSize"`
}

// EncodeConfig controls the attribute payload codec.
type EncodeConfig struct {
	Key string `yaml:"key" mapstructure:"key"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Format: "yaml",
		Inspect: InspectConfig{
			SkipTests: false,
			Recursive: true,
		},
		Keys: KeysConfig{
			Obfuscate: false,
		},
		Runner: RunnerConfig{
			Workers:   0,
			CacheSize: 512,
		},
		Encode: EncodeConfig{
			Key: "",
		},
	}
}

// Load reads configuration from <root>/.jsxtrace/config.yaml. A missing file
// yields the defaults; a malformed one is an error.
func Load(root string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("inspect.skipTests", defaults.Inspect.SkipTests)
	v.SetDefault("inspect.recursive", defaults.Inspect.Recursive)
	v.SetDefault("keys.obfuscate", defaults.Keys.Obfuscate)
	v.SetDefault("runner.workers", defaults.Runner.Workers)
	v.SetDefault("runner.cacheSize", defaults.Runner.CacheSize)
	v.SetDefault("encode.key", defaults.Encode.Key)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(root, ".jsxtrace"))
	v.SetEnvPrefix("JSXTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to <root>/.jsxtrace/config.yaml.
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".jsxtrace")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644)
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	switch c.Format {
	case "yaml", "json":
	default:
		return &Error{Field: "format", Message: "must be yaml or json"}
	}
	if c.Runner.Workers < 0 {
		return &Error{Field: "runner.workers", Message: "must not be negative"}
	}
	if c.Runner.CacheSize < 0 {
		return &Error{Field: "runner.cacheSize", Message: "must not be negative"}
	}
	return nil
}

// Error represents a configuration error.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
