// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package coursekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		serialized string
		wantOrg    string
		wantCourse string
		wantRun    string
		deprecated bool
		wantErr    bool
	}{
		{
			name:       "New-style key",
			serialized: "course-v1:OpenU+CS101+2026_T1",
			wantOrg:    "OpenU",
			wantCourse: "CS101",
			wantRun:    "2026_T1",
		},
		{
			name:       "Old-style key",
			serialized: "OpenU/CS101/2026_T1",
			wantOrg:    "OpenU",
			wantCourse: "CS101",
			wantRun:    "2026_T1",
			deprecated: true,
		},
		{
			name:       "New-style key with dots and dashes",
			serialized: "course-v1:edX+DemoX.1+Demo-Course",
			wantOrg:    "edX",
			wantCourse: "DemoX.1",
			wantRun:    "Demo-Course",
		},
		{
			name:       "Missing run",
			serialized: "course-v1:OpenU+CS101",
			wantErr:    true,
		},
		{
			name:       "Too many segments",
			serialized: "course-v1:OpenU+CS101+2026+extra",
			wantErr:    true,
		},
		{
			name:       "Empty segment",
			serialized: "course-v1:OpenU++2026_T1",
			wantErr:    true,
		},
		{
			name:       "Empty string",
			serialized: "",
			wantErr:    true,
		},
		{
			name:       "Old-style with too few segments",
			serialized: "OpenU/CS101",
			wantErr:    true,
		},
		{
			name:       "Segment with forbidden character",
			serialized: "course-v1:Open U+CS101+2026_T1",
			wantErr:    true,
		},
		{
			name:       "Mixed separators",
			serialized: "course-v1:OpenU+CS101/2026_T1",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, err := Parse(tt.serialized)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidKey)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrg, key.Org)
			assert.Equal(t, tt.wantCourse, key.Course)
			assert.Equal(t, tt.wantRun, key.Run)
			assert.Equal(t, tt.deprecated, key.Deprecated())

			// Both forms must serialize back to their original input.
			assert.Equal(t, tt.serialized, key.String())
		})
	}
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	if !(CourseKey{}).IsZero() {
		t.Error("zero value should report IsZero")
	}

	key, err := Parse("course-v1:OpenU+CS101+2026_T1")
	require.NoError(t, err)

	if key.IsZero() {
		t.Error("parsed key should not report IsZero")
	}
}
