// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/learnfe/learnfe/config"
	"codeberg.org/learnfe/learnfe/core/audit"
	"codeberg.org/learnfe/learnfe/core/monitor"
	"codeberg.org/learnfe/learnfe/server/request_context"
)

// CatchError wraps HTTP handlers that return an error, providing centralized
// error handling, response buffering, and request logging.
//
// The handler's output is buffered using an httptest.ResponseRecorder. If the
// handler returns an error without having written an error status code, or
// wrote a 404, the buffered response is discarded and replaced with a generic
// JSON error body. Otherwise the buffered response is written to the client.
//
// Finally, the completed request (status, duration, monitoring attributes,
// error) is logged via the audit package.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: ctx.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
		}

		_ = span.Begin(r.Context())
		defer span.End()

		recorder := httptest.NewRecorder()

		// Execute the handler, capturing its output and any returned error.
		err := handler(recorder, r)

		ctx.RequestError = err

		switch {
		case (ctx.RequestError != nil && recorder.Code < http.StatusBadRequest) || recorder.Code == http.StatusNotFound:
			// An unhandled error or a 404 occurred. Discard the recorder's
			// contents and render a generic error body.
			if recorder.Code == http.StatusNotFound {
				ctx.StatusCode = http.StatusNotFound
			} else {
				ctx.StatusCode = http.StatusInternalServerError
			}

			writeJSONError(w, ctx.StatusCode)

		default:
			// This is a successful response or a handled error. We trust the recorder's output.
			if recorder.Code == 0 {
				recorder.Code = http.StatusOK
			}

			ctx.StatusCode = recorder.Code

			span.BodySize = recorder.Body.Len()

			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.End()

		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError
		span.Attributes = monitor.FromContext(r.Context()).Snapshot()

		// Log the application response if not excluded.
		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

// errorBody is the generic JSON error response.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errorBody{Error: http.StatusText(statusCode)}); err != nil {
		log.Err(err).Msg("Failed to write error body")
	}
}
