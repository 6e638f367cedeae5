// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

// Config stores all configuration of the application.
//
// The values are read by viper from an optional app.env file or environment variables.
type Config struct {
	Environment     string `mapstructure:"GO_ENV"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`
	DefaultFormat   string `mapstructure:"DEFAULT_FORMAT"`
	SeedCategories  string `mapstructure:"SEED_CATEGORIES"`
}

// SeedCategory is a category created on an empty ledger at start-up.
type SeedCategory struct {
	Name string
	Type string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("DEFAULT_CURRENCY", currencypkg.Default)
	v.SetDefault("DEFAULT_FORMAT", "csv")
	v.SetDefault("SEED_CATEGORIES", "Salary:income,Restaurant:expense")
}

// Load reads configuration from path/app.env, if it exists, and environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	c.DefaultCurrency = currencypkg.Normalize(c.DefaultCurrency)
	if !currencypkg.IsValidCode(c.DefaultCurrency) {
		return c, fmt.Errorf("invalid DEFAULT_CURRENCY %q", c.DefaultCurrency)
	}

	return c, nil
}

// Seeds parses SeedCategories ("name:type,name:type").
func (c Config) Seeds() ([]SeedCategory, error) {
	var seeds []SeedCategory

	for _, item := range strings.Split(c.SeedCategories, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, typ, ok := strings.Cut(item, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid SEED_CATEGORIES item %q want name:type", item)
		}

		seeds = append(seeds, SeedCategory{Name: strings.TrimSpace(name), Type: strings.TrimSpace(typ)})
	}

	return seeds, nil
}
