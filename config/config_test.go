// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"testing"
)

/*
TestLoadConfig focuses on verifying main functionality (e.g. fallback when
invalid input), and *shouldn't* need exhaustive scenarios.

t.Setenv forbids t.Parallel, so these cases run sequentially.
*/

// TestLoadConfig is a test function that verifies the behavior of the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string            // Description of the test case
		env     map[string]string // Name of the environment variable and its value
		wantErr bool              // Whether an error is expected
	}{
		{
			name: "Valid configuration",
			env: map[string]string{
				"LEARNFE_HOST":          "localhost",
				"LEARNFE_PORT":          "8470",
				"LEARNFE_SITE_NAME":     "courses.example.org",
				"LEARNFE_ALLOWED_HOSTS": "courses.example.org,preview.example.org",
			},
			wantErr: false,
		},
		{
			name: "Site name with port",
			env: map[string]string{
				"LEARNFE_SITE_NAME": "courses.example.org:8080",
			},
			wantErr: false,
		},
		{
			name: "Invalid site name",
			env: map[string]string{
				"LEARNFE_SITE_NAME": "courses.example.org/lms",
			},
			wantErr: true,
		},
		{
			name: "Invalid allowed host entry",
			env: map[string]string{
				"LEARNFE_ALLOWED_HOSTS": "https://courses.example.org",
			},
			wantErr: true,
		},
		{
			name: "Invalid log level",
			env: map[string]string{
				"LEARNFE_LOG_LEVEL": "verbose",
			},
			wantErr: true,
		},
		{
			name: "Limiter enabled with bad rate",
			env: map[string]string{
				"LEARNFE_LIMITER":      "true",
				"LEARNFE_LIMITER_RATE": "-1",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			config := &ServerConfig{}

			err := config.LoadConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)

				return
			}

			if !tt.wantErr {
				if host, ok := tt.env["LEARNFE_HOST"]; ok && config.Basic.Host != host {
					t.Errorf("LoadConfig() Host = %v, want %v", config.Basic.Host, host)
				}

				if site, ok := tt.env["LEARNFE_SITE_NAME"]; ok && config.Basic.SiteName != site {
					t.Errorf("LoadConfig() SiteName = %v, want %v", config.Basic.SiteName, site)
				}

				if tt.env["LEARNFE_ALLOWED_HOSTS"] == "courses.example.org,preview.example.org" &&
					len(config.Basic.AllowedHosts) != 2 {
					t.Errorf("LoadConfig() AllowedHosts count = %v, want 2", len(config.Basic.AllowedHosts))
				}

				if config.Log.Level == "" {
					t.Error("LoadConfig() Log.Level is empty")
				}
			}
		})
	}
}
