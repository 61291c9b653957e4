// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// validation errors.
var (
	errUnixSocketWithHostPort = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errSiteNameRequired       = errors.New("basic.siteName is required")
	errSiteNameInvalid        = errors.New("basic.siteName is not a valid host[:port]")
	errAllowedHostInvalid     = errors.New("basic.allowedHosts entries must be bare host names")
	errLimiterRateInvalid     = errors.New("limiter.rate must be positive when the limiter is enabled")
	errLimiterBurstInvalid    = errors.New("limiter.burst must be positive when the limiter is enabled")
	errInvalidLogLevel        = errors.New("invalid log.logLevel value")
	errInvalidLogFormat       = errors.New("invalid log.logFormat value")
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	if cfg.Basic.UnixSocket != "" {
		if cfg.Basic.Host != "" || cfg.Basic.Port != "" {
			return errUnixSocketWithHostPort
		}
	} else {
		if cfg.Basic.Host == "" {
			cfg.Basic.Host = "localhost"
			log.Info().
				Str("host", cfg.Basic.Host).
				Msg("Binding to default host")
		}

		if cfg.Basic.Port == "" {
			cfg.Basic.Port = "8470"
			log.Info().
				Str("port", cfg.Basic.Port).
				Msg("Using default port")
		}
	}

	if cfg.Basic.SiteName == "" {
		return errSiteNameRequired
	}

	// SiteName may carry a port, so parse it as a full URL.
	parsed, err := url.Parse("http://" + cfg.Basic.SiteName)
	if err != nil || parsed.Hostname() == "" || parsed.Path != "" {
		return fmt.Errorf("%w: %q", errSiteNameInvalid, cfg.Basic.SiteName)
	}

	for _, host := range cfg.Basic.AllowedHosts {
		if host == "*" {
			continue
		}

		if host == "" || strings.ContainsAny(host, "/ ") || strings.Contains(host, "://") {
			return fmt.Errorf("%w: %q", errAllowedHostInvalid, host)
		}
	}

	if cfg.Limiter.Enabled {
		if cfg.Limiter.Rate <= 0 {
			return errLimiterRateInvalid
		}

		if cfg.Limiter.Burst <= 0 {
			return errLimiterBurstInvalid
		}
	}

	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
