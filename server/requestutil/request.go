// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package requestutil provides small helpers for working with HTTP requests:
resolving the current request (or a stand-in when none exists), safely
determining the request host, and extracting course IDs from URLs.
*/
package requestutil

import (
	"context"
	"net/http"
	"net/url"
	"slices"

	"codeberg.org/learnfe/learnfe/config"
	"codeberg.org/learnfe/learnfe/core/siteconfig"
	"codeberg.org/learnfe/learnfe/server/request_context"
)

// FromContextOrStub returns the current request or a stub request.
//
// If called outside the context of a request, it constructs a fake request
// that can be used to build absolute URIs. This is useful in cases where we
// need to pass in a request object but don't have an active request (for
// example, in tests and background jobs).
func FromContextOrStub(ctx context.Context) *http.Request {
	if rc := request_context.FromContext(ctx); rc.Request != nil {
		return rc.Request
	}

	return Stub()
}

// Stub constructs a synthetic GET "/" request addressed to the configured
// site name.
//
// The configured site name may contain a port, so it is parsed as a full
// URL; a site name that fails to parse falls back to "localhost".
func Stub() *http.Request {
	siteName := config.Global.Basic.SiteName

	parsed, err := url.Parse("http://" + siteName)
	if err != nil || parsed.Hostname() == "" {
		parsed = &url.URL{Scheme: "http", Host: "localhost"}
	}

	r, err := http.NewRequest(http.MethodGet, parsed.Scheme+"://"+parsed.Host+"/", nil)
	if err != nil {
		// Only reachable with a host that survived url.Parse yet breaks
		// http.NewRequest; a bare localhost request always succeeds.
		r, _ = http.NewRequest(http.MethodGet, "http://localhost/", nil)
	}

	r.Host = r.URL.Host
	r.RemoteAddr = "127.0.0.1:0"

	return r
}

// SafeHost gets the host name for this request, as safely as possible.
//
// If the allowed-hosts list is configured and wildcard-free, the request's
// own Host header has already been vetted and is returned. Otherwise the
// per-site "site_domain" override is used, defaulting to the configured
// site name. This ensures we never accept an untrusted Host value.
func SafeHost(r *http.Request) string {
	allowed := config.Global.Basic.AllowedHosts
	if len(allowed) > 0 && !slices.Contains(allowed, "*") {
		return r.Host
	}

	return siteconfig.Value("site_domain", config.Global.Basic.SiteName)
}

// AbsoluteURL builds an absolute URL for path using the request's scheme
// and the safely resolved host.
func AbsoluteURL(r *http.Request, path string) string {
	scheme := "http"

	// Check X-Forwarded-Proto header first
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + SafeHost(r) + path
}
