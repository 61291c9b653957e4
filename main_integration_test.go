// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

//go:build integration

/*
To run these tests, specify `-tags=integration` when running `go test`.
*/
package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/learnfe/learnfe/config"
	"codeberg.org/learnfe/learnfe/core/toggles"
	"codeberg.org/learnfe/learnfe/server/router"
)

// newTestServer assembles the full router and middleware chain the way run() does.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	config.Global = config.ServerConfig{}
	config.Global.SetDefaults()
	config.Global.Basic.SiteName = "courses.example.org"
	config.Global.Basic.AllowedHosts = []string{"courses.example.org"}
	config.Global.Feature.CaptureCookieSizes = true

	toggles.SetDefaults(map[string]bool{
		"request_utils.capture_cookie_sizes": true,
	})

	t.Cleanup(func() {
		config.Global = config.ServerConfig{}

		toggles.SetDefaults(nil)
	})

	r := router.NewRouter()
	r.DefineRoutes()
	r.RegisterMiddleware()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func TestCourseRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name               string
		url                string
		expectedStatusCode int
		expectBody         string
	}{
		{
			name:               "Course about page",
			url:                "/courses/course-v1:OpenU+CS101+2026_T1/about",
			expectedStatusCode: http.StatusOK,
			expectBody:         "course-v1:OpenU+CS101+2026_T1",
		},
		{
			name:               "Course detail API",
			url:                "/api/courses/v1/courses/course-v1:OpenU+CS101+2026_T1",
			expectedStatusCode: http.StatusOK,
			expectBody:         "course-v1:OpenU+CS101+2026_T1",
		},
		{
			name:               "Blocks API is not a course route",
			url:                "/api/courses/v1/blocks",
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "Health check",
			url:                "/healthz",
			expectedStatusCode: http.StatusOK,
			expectBody:         `"status"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.url)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatusCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.expectedStatusCode)
			}

			if tt.expectBody != "" {
				body, err := io.ReadAll(resp.Body)
				if err != nil {
					t.Fatal(err)
				}

				if !strings.Contains(string(body), tt.expectBody) {
					t.Errorf("body %q does not contain %q", body, tt.expectBody)
				}
			}

			if got := resp.Header.Get("Learnfe-Version"); got == "" {
				t.Error("Learnfe-Version header missing")
			}
		})
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	srv := newTestServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(srv.URL + "/healthz/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPermanentRedirect {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusPermanentRedirect)
	}

	if got := resp.Header.Get("Location"); got != "/healthz" {
		t.Errorf("Location = %q, want /healthz", got)
	}
}
