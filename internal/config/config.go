// Package config loads runtime configuration from an optional YAML file
// and INVENTORY_-prefixed environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the service's configuration knobs.
type Config struct {
	Addr        string
	Environment string

	// Seed controls the generated store contents. RandomSeed 0 means a
	// time-based, nondeterministic seed.
	ProductCount int
	SalesDays    int
	RandomSeed   int64
}

// Load reads config.yaml from the working directory when present and
// applies environment overrides (e.g. INVENTORY_SERVER_ADDR).
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("environment", "development")
	v.SetDefault("seed.products", 10000)
	v.SetDefault("seed.sales_days", 30)
	v.SetDefault("seed.random_seed", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Addr:         v.GetString("server.addr"),
		Environment:  v.GetString("environment"),
		ProductCount: v.GetInt("seed.products"),
		SalesDays:    v.GetInt("seed.sales_days"),
		RandomSeed:   v.GetInt64("seed.random_seed"),
	}, nil
}
