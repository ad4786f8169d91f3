package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither the environment nor the config file sets a limit.
const (
	DefaultMaxEmployeeID = 99999
	DefaultMaxUnits      = 1000
)

type Config struct {
	Env    string       `yaml:"env"    env-default:"production"` // Env is the current environment: local, development, production.
	Limits LimitsConfig `yaml:"limits"`                           // Limits holds the bounds of employee record fields.
}

// LimitsConfig struct holds the accepted ranges for integer fields of an employee record.
type LimitsConfig struct {
	MaxEmployeeID int `yaml:"max_employee_id" env-default:"99999"` // MaxEmployeeID is the highest accepted employee ID.
	MaxUnits      int `yaml:"max_units"       env-default:"1000"`  // MaxUnits caps hours worked and projects completed.
}

// MustLoad reads the configuration from PLUTUS_* environment variables and,
// when CONFIG_PATH is set, from the YAML file it names. Environment variables win.
func MustLoad() *Config {
	vpr := viper.New()

	vpr.SetEnvPrefix("plutus")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("limits.max_employee_id", DefaultMaxEmployeeID)
	vpr.SetDefault("limits.max_units", DefaultMaxUnits)

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		Limits: LimitsConfig{
			MaxEmployeeID: vpr.GetInt("limits.max_employee_id"),
			MaxUnits:      vpr.GetInt("limits.max_units"),
		},
	}

	if cfg.Limits.MaxEmployeeID < 1 || cfg.Limits.MaxUnits < 0 {
		panic("invalid limits in configuration")
	}

	return cfg
}
