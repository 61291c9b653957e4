// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package request_context provides per-request state management for HTTP handlers.

This package is separate because Go disallows a cyclic import graph.
*/
package request_context

import (
	"context"
	"net/http"

	"codeberg.org/learnfe/learnfe/core/idgen"
	"codeberg.org/learnfe/learnfe/core/monitor"
)

// RequestContext carries request-scoped data through the middleware chain.
//
// This data survives the entire lifetime of a single HTTP request and is safe
// for concurrent access from multiple goroutines handling the same request.
type RequestContext struct {
	// RequestID is an identifier for tracing requests.
	RequestID string

	// Request is the live request this context belongs to.
	//
	// Code that runs outside the request lifecycle (background jobs,
	// tests) has no RequestContext and therefore no Request; see
	// requestutil.FromContextOrStub for the fallback.
	Request *http.Request

	// Holds any critical error encountered during request processing.
	//
	// Automatically populated by middleware.CatchError when handlers
	// return errors.
	RequestError error

	// HTTP status code to be sent in the response. Defaults to 200 OK.
	StatusCode int
}

// requestContextKeyType defines a unique type for a RequestContext key.
type requestContextKeyType struct{}

// requestContextKey is a unique key used to access RequestContext
// values from a context.Context.
var requestContextKey = requestContextKeyType{}

// WithRequestContext initializes a new request context and attaches it to
// the parent context.
//
// This is called once per request, first in the middleware chain.
func WithRequestContext(ctx context.Context, r *http.Request) context.Context {
	ctx = monitor.WithAttributes(ctx)

	rc := RequestContext{
		RequestID:  idgen.Make(),
		StatusCode: http.StatusOK,
	}

	ctx = context.WithValue(ctx, requestContextKey, &rc)

	// The stored request must carry the final context so that attribute
	// lookups through it see the sink attached above.
	rc.Request = r.WithContext(ctx)

	return ctx
}

// FromContext extracts the RequestContext from a context, always returning
// a valid pointer.
//
// If no context is found, returns a zero-value instance.
func FromContext(ctx context.Context) *RequestContext {
	if v := ctx.Value(requestContextKey); v != nil {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}

	return &RequestContext{StatusCode: http.StatusOK}
}

// FromRequest is a convenience wrapper for extracting RequestContext
// directly from HTTP requests.
//
// Prefer this in handlers that have access to the *http.Request object.
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}
