// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package request_context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWithRequestContext(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/courses", nil)
	ctx := WithRequestContext(r.Context(), r)

	rc := FromContext(ctx)
	if rc.RequestID == "" {
		t.Error("RequestID should be populated")
	}

	if rc.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", rc.StatusCode, http.StatusOK)
	}

	if rc.Request == nil {
		t.Fatal("Request should be populated")
	}

	// The stored request must resolve back to the same context entry.
	if FromRequest(rc.Request) != rc {
		t.Error("stored request does not resolve to the same RequestContext")
	}
}

func TestFromContextMissing(t *testing.T) {
	t.Parallel()

	rc := FromContext(context.Background())
	if rc == nil {
		t.Fatal("FromContext should never return nil")
	}

	if rc.Request != nil {
		t.Error("zero-value RequestContext should have no request")
	}

	if rc.StatusCode != http.StatusOK {
		t.Errorf("zero-value StatusCode = %d, want %d", rc.StatusCode, http.StatusOK)
	}
}
