package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// GetConfig loads the optional .env file from the working directory, then
// populates a [Config] from environment variables using the caarlos0/env
// library.
//
// A missing .env file is not an error; a missing DATABASE_URL is.
func GetConfig() (Config, error) {
	// merge a local .env into the process environment when present
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
