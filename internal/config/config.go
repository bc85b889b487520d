// Package config loads cmd/parsec's persistent settings, following the
// same viper + go-homedir wiring deepnoodle-ai-risor's cmd/risor/root.go
// uses for ~/.risor.yaml, adapted to ~/.parsecrc.
package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the settings a .parsecrc file (or environment variables
// prefixed PARSEC_) may override.
type Config struct {
	// DefaultGrammar names the grammar `parsec parse` uses when --grammar
	// is not given ("json" or "expr").
	DefaultGrammar string
	// NoColor disables ANSI output even when stdout is a terminal.
	NoColor bool
	// Verbose raises the diag session's log level to debug.
	Verbose bool
}

// Load reads ~/.parsecrc (YAML, TOML, or JSON — viper's usual autodetect)
// if present, falling back to defaults, and also honors PARSEC_-prefixed
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("parsec")
	v.AutomaticEnv()
	v.SetDefault("default_grammar", "json")
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)

	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("config: resolving home directory: %w", err)
	}
	v.AddConfigPath(home)
	v.SetConfigName(".parsecrc")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading .parsecrc: %w", err)
		}
	}

	return &Config{
		DefaultGrammar: v.GetString("default_grammar"),
		NoColor:        v.GetBool("no_color"),
		Verbose:        v.GetBool("verbose"),
	}, nil
}
