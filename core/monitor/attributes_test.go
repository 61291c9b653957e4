// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package monitor

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestSetAndSnapshot(t *testing.T) {
	t.Parallel()

	ctx := WithAttributes(context.Background())
	attrs := FromContext(ctx)

	attrs.Set("cookies_total_size", 42)
	attrs.Set("cookies.max.name", "session_id")
	attrs.Set("cookies_total_size", 64) // replaces

	snapshot := attrs.Snapshot()

	if got := snapshot["cookies_total_size"]; got != 64 {
		t.Errorf("cookies_total_size = %v, want 64", got)
	}

	if got := snapshot["cookies.max.name"]; got != "session_id" {
		t.Errorf("cookies.max.name = %v, want session_id", got)
	}

	// Snapshot must be a copy, not a live view.
	snapshot["injected"] = true

	if _, ok := attrs.Snapshot()["injected"]; ok {
		t.Error("mutating a snapshot leaked into the sink")
	}
}

func TestFromContextMissing(t *testing.T) {
	t.Parallel()

	attrs := FromContext(context.Background())
	if attrs == nil {
		t.Fatal("FromContext should never return nil")
	}

	// Must not panic even though the sink was never attached.
	attrs.Set("orphan", 1)

	if got := attrs.Snapshot()["orphan"]; got != 1 {
		t.Errorf("orphan = %v, want 1", got)
	}
}

func TestSetAttributeFromRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/courses", nil)
	r = r.WithContext(WithAttributes(r.Context()))

	SetAttribute(r, "course_id", "course-v1:OpenU+CS101+2026_T1")

	got := FromContext(r.Context()).Snapshot()["course_id"]
	if got != "course-v1:OpenU+CS101+2026_T1" {
		t.Errorf("course_id = %v", got)
	}
}
