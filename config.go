package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is parsed from the environment once at startup. A local .env file
// is honored when present so the launch command stays bare.
type Config struct {
	Addr       string `env:"ADDR" envDefault:":8080"`
	DataFile   string `env:"DATA_FILE" envDefault:"data/data.csv"`
	DBPath     string `env:"DB_PATH" envDefault:":memory:"`
	TopN       int    `env:"TOP_SCORERS_DEFAULT" envDefault:"10"`
	FormWindow int    `env:"FORM_WINDOW" envDefault:"5"`
}

func loadConfig() (Config, error) {
	// Missing .env is fine; the defaults cover local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}
	return cfg, nil
}
