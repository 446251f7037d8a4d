package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/kbukum/scorepipe/errors"
)

// configSearchPaths are tried in order when no explicit file is given.
var configSearchPaths = []string{
	"./config.yml",
	"./config/config.yml",
	"./cmd/scorepipe/config.yml",
}

// envSearchPaths are tried in order for a .env file.
var envSearchPaths = []string{
	".env",
	"./config/.env",
}

// Load reads configuration from the given YAML file (or the first file found
// in the standard search paths when path is empty), layers .env and
// environment variables on top, applies defaults, and validates the result.
//
// A missing config file is not an error; defaults plus environment
// variables make a complete configuration.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		path = firstExisting(configSearchPaths)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.InvalidInput("config", "failed to read config file "+path).WithCause(err)
		}
	}

	if envFile := firstExisting(envSearchPaths); envFile != "" {
		// Best effort; variables already set in the environment win.
		_ = godotenv.Load(envFile)
	}

	v.SetEnvPrefix("SCOREPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.InvalidInput("config", "failed to unmarshal configuration").WithCause(err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindKeys registers every known key with viper so AutomaticEnv can resolve
// variables even when no config file mentions them.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"name", "environment", "debug",
		"logging.level", "logging.format", "logging.output", "logging.no_color",
		"logging.timestamp", "logging.caller",
		"server.addr", "server.mode", "server.shutdown_timeout",
		"gen.count", "gen.seed", "gen.valid_ratio",
		"metrics.enabled", "metrics.endpoint", "metrics.insecure", "metrics.interval",
	} {
		_ = v.BindEnv(key)
	}
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
