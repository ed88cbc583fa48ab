// SPDX-License-Identifier: MIT

// Package config loads process settings from ONEPASS_* environment variables.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/vrischmann/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "ONEPASS"

// Config is the process configuration.
//
//	ONEPASS_LOG_LEVEL     trace|debug|info|warn|error (default info)
//	ONEPASS_LOG_FORMAT    text|json (default text)
//	ONEPASS_SERVER_ADDR   listen address for "serve" (default :8080)
//	ONEPASS_SAMPLE        canned graph used when no selector is given (default 1)
type Config struct {
	Log struct {
		Level  string `envconfig:"default=info"`
		Format string `envconfig:"default=text"`
	}
	Server struct {
		Addr string `envconfig:"default=:8080"`
	}
	Sample int `envconfig:"default=1"`
}

// Load reads the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.InitWithPrefix(&c, Prefix); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}

	return nil
}

// Logger builds the root logger described by c, writing to out.
func (c *Config) Logger(out io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "onepass",
		Level:      hclog.LevelFromString(c.Log.Level),
		JSONFormat: strings.EqualFold(c.Log.Format, "json"),
		Output:     out,
	})
}
