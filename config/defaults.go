// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

const (
	// Default sustained request rate per client network (tokens per second).
	defaultLimiterRate = 2.0
	// Default burst size per client network.
	defaultLimiterBurst = 60
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8470"
	cfg.Basic.SiteName = "localhost:8470"
	cfg.Basic.AllowedHosts = nil

	cfg.Site.OverridesPath = ""

	cfg.Feature.CaptureCookieSizes = false

	cfg.Limiter.Enabled = false
	cfg.Limiter.Rate = defaultLimiterRate
	cfg.Limiter.Burst = defaultLimiterBurst

	cfg.Response.Compression = true

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
