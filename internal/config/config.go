package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DB_PATH" envDefault:"data/platewise.db"`
	SecretKey    string `env:"SECRET_KEY" envDefault:"change_me_in_production"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`
	Timezone     string `env:"TZ" envDefault:"UTC"`

	// EntriesBackend selects the entry storage adapter: "sqlite" keeps
	// entries in the hosted table, "csv" appends them to a flat file.
	// Accounts always live in the SQLite database.
	EntriesBackend string `env:"ENTRIES_BACKEND" envDefault:"sqlite"`
	CSVPath        string `env:"CSV_PATH" envDefault:"data/food_anxiety_data.csv"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
