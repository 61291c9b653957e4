// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"codeberg.org/learnfe/learnfe/server/request_context"
)

// WithRequestContext is a middleware that attaches a RequestContext to each HTTP request.
func WithRequestContext(w http.ResponseWriter, r *http.Request, next http.Handler) {
	ctx := request_context.WithRequestContext(r.Context(), r)

	next.ServeHTTP(w, request_context.FromContext(ctx).Request)
}
