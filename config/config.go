// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/learnfe/learnfe/core/idgen"
	"codeberg.org/learnfe/learnfe/core/siteconfig"
	"codeberg.org/learnfe/learnfe/core/toggles"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host       string `env:"LEARNFE_HOST,overwrite" yaml:"host"`
		Port       string `env:"LEARNFE_PORT,overwrite" yaml:"port"`
		UnixSocket string `env:"LEARNFE_UNIXSOCKET" yaml:"unixSocket"`

		// SiteName is the canonical public name of this deployment. It may
		// carry a port ("courses.example.org:8080") and backs both the
		// request stub and the safe-host fallback.
		SiteName string `env:"LEARNFE_SITE_NAME,overwrite" yaml:"siteName"`

		// AllowedHosts lists the Host header values this deployment
		// trusts. An empty list or a "*" entry means the Host header is
		// never trusted and SiteName is used instead.
		AllowedHosts []string `env:"LEARNFE_ALLOWED_HOSTS,overwrite" yaml:"allowedHosts"`
	} `yaml:"basic"`

	Site struct {
		// OverridesPath points to the per-site overrides JSON document.
		OverridesPath string `env:"LEARNFE_SITE_OVERRIDES,overwrite" yaml:"overridesPath"`
	} `yaml:"site"`

	Feature struct {
		// CaptureCookieSizes is the default for the
		// request_utils.capture_cookie_sizes toggle.
		CaptureCookieSizes bool `env:"LEARNFE_CAPTURE_COOKIE_SIZES,overwrite" yaml:"captureCookieSizes"`
	} `yaml:"feature"`

	Limiter struct {
		Enabled bool    `env:"LEARNFE_LIMITER,overwrite" yaml:"enabled"`
		Rate    float64 `env:"LEARNFE_LIMITER_RATE,overwrite" yaml:"rate"`
		Burst   int     `env:"LEARNFE_LIMITER_BURST,overwrite" yaml:"burst"`
	} `yaml:"limiter"`

	Response struct {
		Compression bool `env:"LEARNFE_COMPRESSION,overwrite" yaml:"compression"`
	} `yaml:"response"`

	Instance struct {
		StartingTime string `yaml:"-"`
		InstanceID   string `yaml:"-"`
	} `yaml:"instance"`

	Development struct {
		InDevelopment bool `env:"LEARNFE_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"LEARNFE_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"LEARNFE_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"LEARNFE_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (LEARNFE_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("LEARNFE_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue
		// Fall back to "./config.yml" when the .yaml default is absent.
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.InstanceID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	if err := siteconfig.Load(cfg.Site.OverridesPath); err != nil {
		return fmt.Errorf("error loading site overrides: %w", err)
	}

	toggles.SetDefaults(cfg.featureDefaults())

	cfg.print()

	return nil
}

// featureDefaults maps fully qualified toggle names to their configured
// defaults.
func (cfg *ServerConfig) featureDefaults() map[string]bool {
	return map[string]bool{
		"request_utils.capture_cookie_sizes": cfg.Feature.CaptureCookieSizes,
	}
}

var staticSkippedPathPrefixes = []string{"/healthz", "/static/"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
