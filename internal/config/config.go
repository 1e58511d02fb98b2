package config

import (
	"github.com/caarlos0/env/v11"

	"dropy/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// defaults. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Program configs.Program  `envPrefix:"PROGRAM_"`
	Ledger  configs.Ledger   `envPrefix:"LEDGER_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
