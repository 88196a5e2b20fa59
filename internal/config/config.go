// Package config provides Viper-based configuration loading for the Monty Hall game.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// PacingConfig holds the dramatic delays of a narrated playthrough.
type PacingConfig struct {
	// Enabled turns all delays on or off.
	Enabled bool `mapstructure:"enabled"`
	// Beat is the pause between reveal ellipses and before the switch offer.
	Beat time.Duration `mapstructure:"beat"`
	// Suspense is the pause before the prize drumroll.
	Suspense time.Duration `mapstructure:"suspense"`
	// Drumroll is the pause between prize drumroll ellipses.
	Drumroll time.Duration `mapstructure:"drumroll"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	// DefaultDoor is the first pick used by silent trials.
	DefaultDoor int `mapstructure:"default_door"`
	// Color enables ANSI styling of the narration.
	Color bool `mapstructure:"color"`
	// ScriptPath overrides the embedded narration script when non-empty.
	ScriptPath string       `mapstructure:"script_path"`
	Pacing     PacingConfig `mapstructure:"pacing"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.DefaultDoor < 1 || g.DefaultDoor > 3 {
		errs = append(errs, fmt.Sprintf("game.default_door must be 1-3, got %d", g.DefaultDoor))
	}
	if g.Pacing.Beat < 0 {
		errs = append(errs, "game.pacing.beat must not be negative")
	}
	if g.Pacing.Suspense < 0 {
		errs = append(errs, "game.pacing.suspense must not be negative")
	}
	if g.Pacing.Drumroll < 0 {
		errs = append(errs, "game.pacing.drumroll must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load builds a Config from defaults, the optional YAML file at path, and
// MONTY_-prefixed environment variables, then validates the result.
// An empty path skips the file.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with MONTY_ prefix
	v.SetEnvPrefix("MONTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.default_door", 1)
	v.SetDefault("game.color", true)
	v.SetDefault("game.script_path", "")
	v.SetDefault("game.pacing.enabled", true)
	v.SetDefault("game.pacing.beat", "1s")
	v.SetDefault("game.pacing.suspense", "6s")
	v.SetDefault("game.pacing.drumroll", "1500ms")
}
