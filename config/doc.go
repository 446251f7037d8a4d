// Package config provides configuration loading and validation for
// scorepipe.
//
// Configuration is layered: a YAML file is the base, a .env file may add
// environment variables, and real environment variables (SCOREPIPE_ prefix,
// underscore-separated paths, e.g. SCOREPIPE_SERVER_ADDR) override both.
//
// # Usage
//
//	cfg, err := config.Load("config.yml")
package config
