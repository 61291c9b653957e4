// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"strings"
	"testing"
	"time"
)

func TestMake(t *testing.T) {
	t.Parallel()

	now := time.Now()

	if strings.ReplaceAll(now.Format("15:04:05"), ":", "") != maketime(now) {
		t.Error("time part incorrect")
	}

	if a, b := Make(), Make(); a == b {
		t.Errorf("consecutive IDs should differ, got %q twice", a)
	}
}
