// Package config loads optional defaults for the linesplit commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".linesplit.yaml"

// Config holds the defaults applied when a flag is not set explicitly.
type Config struct {
	TargetSize int    `mapstructure:"target_size"`
	Mode       string `mapstructure:"mode"`
	CreateDirs bool   `mapstructure:"create_dirs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TargetSize: 200,
		Mode:       "copy",
		CreateDirs: true,
	}
}

// Load reads path, or DefaultFileName inside dir when path is empty.
// A missing default file is not an error; a missing explicit file is.
func Load(path, dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultFileName)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.As(err, &notFound) || isNotExist(err)) {
			return decode(v)
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("target_size", d.TargetSize)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("create_dirs", d.CreateDirs)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the commands cannot use.
func (c *Config) Validate() error {
	if c.TargetSize < 1 {
		return fmt.Errorf("target_size must be positive, got %d", c.TargetSize)
	}

	if c.Mode != "copy" && c.Mode != "move" {
		return fmt.Errorf("mode must be \"copy\" or \"move\", got %q", c.Mode)
	}

	return nil
}

// viper returns the raw os error when SetConfigFile points at a missing file.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
