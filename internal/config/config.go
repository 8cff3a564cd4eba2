package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultInputPath is the identifier list read when no input is given.
const DefaultInputPath = "xcode-ui-languages-list.txt"

// Env holds defaults that can be supplied through the environment. Command
// line flags take precedence.
type Env struct {
	Input   string `env:"LANGCAT_INPUT"    envDefault:"xcode-ui-languages-list.txt"`
	Format  string `env:"LANGCAT_FORMAT"   envDefault:"json"`
	Debug   bool   `env:"LANGCAT_DEBUG"`
	LogFile string `env:"LANGCAT_LOG_FILE"`
}

// Load reads Env from the process environment.
func Load() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
