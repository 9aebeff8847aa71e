// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/voterlookup/lib/voterstore"
)

// EnvironmentVariable names the configuration file when --config is
// not given.
const EnvironmentVariable = "VOTER_LOOKUP_CONFIG"

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the voter-lookup configuration.
type Config struct {
	// Endpoint is the voter API URL fetched once at startup.
	// Default: the ward's public endpoint with limit=all.
	Endpoint string `yaml:"endpoint"`

	// Timeout bounds the whole fetch, as a Go duration string.
	// Default: 180s
	Timeout string `yaml:"timeout"`

	// File loads the dataset from a local JSON or JSONC file instead
	// of the network. Takes precedence over Endpoint.
	File string `yaml:"file"`

	// LogOutput is a path for JSON log output. Empty disables file
	// logging.
	LogOutput string `yaml:"log_output"`

	// LogLevel is the minimum level for one-shot stderr logging.
	// Default: warn
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is named.
func Default() *Config {
	return &Config{
		Endpoint: voterstore.DefaultEndpoint,
		Timeout:  voterstore.DefaultTimeout.String(),
		LogLevel: "warn",
	}
}

// Resolve picks the configuration file: explicitPath when non-empty,
// otherwise $VOTER_LOOKUP_CONFIG. With neither set it returns
// [Default]. There is no search for a file in well-known locations.
func Resolve(explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvironmentVariable)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the YAML file at path over [Default]. Keys the
// Config does not know are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// decode merges a YAML document into c. An empty document leaves c
// unchanged.
func (c *Config) decode(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} in the path
// fields so one file works across home directories.
func (c *Config) expandVariables() {
	vars := map[string]string{"HOME": os.Getenv("HOME")}
	c.File = expandVars(c.File, vars)
	c.LogOutput = expandVars(c.LogOutput, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// RequestTimeout returns Timeout parsed. Call after [Config.Validate].
func (c *Config) RequestTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil || timeout <= 0 {
		return voterstore.DefaultTimeout
	}
	return timeout
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.File == "" {
		endpoint, err := url.Parse(c.Endpoint)
		switch {
		case c.Endpoint == "":
			errs = append(errs, fmt.Errorf("endpoint is required when file is not set"))
		case err != nil:
			errs = append(errs, fmt.Errorf("endpoint: %w", err))
		case endpoint.Scheme != "http" && endpoint.Scheme != "https":
			errs = append(errs, fmt.Errorf("endpoint must be an http or https URL, got scheme %q", endpoint.Scheme))
		case endpoint.Host == "":
			errs = append(errs, fmt.Errorf("endpoint %q has no host", c.Endpoint))
		}
	}

	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		errs = append(errs, fmt.Errorf("timeout: %w", err))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}

	if !slices.Contains(LogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v", LogLevels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
