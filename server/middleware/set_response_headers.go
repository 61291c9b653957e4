// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"strings"

	"codeberg.org/learnfe/learnfe/config"
)

// baseHeaders defines the default headers to be set in responses.
//
// Learnfe-Version and Learnfe-Revision are added dynamically in SetResponseHeaders.
var baseHeaders = http.Header{
	"Referrer-Policy":         {"no-referrer"},
	"X-Frame-Options":         {"DENY"},
	"X-Content-Type-Options":  {"nosniff"},
	"Content-Security-Policy": {"default-src 'self'; frame-ancestors 'none'"},
}

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	setCacheControl(headers, r.URL.Path)

	headers.Set("Learnfe-Version", config.BuildVersion)
	headers.Set("Learnfe-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}

// setCacheControl sets appropriate cache control headers for static assets.
func setCacheControl(headers http.Header, path string) {
	// Default to only storing in the browser cache and forcing revalidation
	cacheDuration := "private, no-cache"

	// Static assets can be cached for a week
	if strings.HasPrefix(path, "/static/") {
		cacheDuration = "max-age=604800"
	}

	headers.Set("Cache-Control", cacheDuration)
}
