// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package monitor collects named monitoring attributes for a single HTTP
request.

Attributes are free-form name/value pairs (cookie sizes, resolved course
IDs, and so on) that operators query after the fact. They are carried on
the request context, mirrored into the response's Server-Timing metrics,
and flushed into the request's audit log line when the span ends.
*/
package monitor

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"

	servertiming "github.com/mitchellh/go-server-timing"
)

// Attributes is the per-request attribute sink.
//
// The zero value is usable; Set on a sink that was never attached to a
// request records the value but mirrors it nowhere.
type Attributes struct {
	mu     sync.Mutex
	values map[string]any
	metric *servertiming.Metric
}

// New creates an attribute sink for the given request context.
//
// When the Server-Timing middleware is active, attributes are mirrored
// into a single "attributes" metric so they reach the client without
// inflating the metric count.
func New(ctx context.Context) *Attributes {
	attrs := &Attributes{values: make(map[string]any)}

	if timing := servertiming.FromContext(ctx); timing != nil {
		attrs.metric = timing.NewMetric("attributes")
		attrs.metric.Extra = make(map[string]string)
	}

	return attrs
}

// Set records an attribute by name, replacing any previous value.
func (attrs *Attributes) Set(name string, value any) {
	attrs.mu.Lock()
	defer attrs.mu.Unlock()

	if attrs.values == nil {
		attrs.values = make(map[string]any)
	}

	attrs.values[name] = value

	if attrs.metric != nil {
		attrs.metric.Extra[name] = fmt.Sprint(value)
	}
}

// Snapshot returns a copy of all attributes recorded so far.
func (attrs *Attributes) Snapshot() map[string]any {
	attrs.mu.Lock()
	defer attrs.mu.Unlock()

	return maps.Clone(attrs.values)
}

// attributesKeyType defines a unique type for the context key.
type attributesKeyType struct{}

var attributesKey = attributesKeyType{}

// WithAttributes attaches a fresh attribute sink to the parent context.
//
// Called once per request by the request context middleware.
func WithAttributes(ctx context.Context) context.Context {
	return context.WithValue(ctx, attributesKey, New(ctx))
}

// FromContext extracts the attribute sink from a context, always
// returning a valid pointer.
func FromContext(ctx context.Context) *Attributes {
	if v := ctx.Value(attributesKey); v != nil {
		if attrs, ok := v.(*Attributes); ok {
			return attrs
		}
	}

	return &Attributes{}
}

// SetAttribute records a monitoring attribute on the request's sink.
//
// Prefer this in handlers and middleware that have the *http.Request.
func SetAttribute(r *http.Request, name string, value any) {
	FromContext(r.Context()).Set(name, value)
}
