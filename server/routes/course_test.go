// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/learnfe/learnfe/config"
	"codeberg.org/learnfe/learnfe/core/monitor"
	"codeberg.org/learnfe/learnfe/core/siteconfig"
)

// These tests mutate config.Global and are intentionally not parallel.

func TestCourseAboutPage(t *testing.T) {
	config.Global.Basic.SiteName = "courses.example.org"
	config.Global.Basic.AllowedHosts = []string{"courses.example.org"}

	t.Cleanup(func() {
		config.Global = config.ServerConfig{}

		siteconfig.Reset()
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/course-v1:OpenU+CS101+2026_T1/about", nil)
	req.Host = "courses.example.org"
	req = req.WithContext(monitor.WithAttributes(req.Context()))

	rr := httptest.NewRecorder()

	require.NoError(t, CourseAboutPage(rr, req))
	require.Equal(t, http.StatusOK, rr.Code)

	var summary CourseSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))

	assert.Equal(t, "course-v1:OpenU+CS101+2026_T1", summary.CourseID)
	assert.Equal(t, "OpenU", summary.Org)
	assert.Equal(t, "CS101", summary.Course)
	assert.Equal(t, "2026_T1", summary.Run)
	assert.False(t, summary.Deprecated)
	assert.Equal(t, "learnfe", summary.PlatformName)
	assert.Equal(t,
		"http://courses.example.org/courses/course-v1:OpenU+CS101+2026_T1/about",
		summary.AboutURL)

	// The resolved course ID must be recorded for monitoring.
	attrs := monitor.FromContext(req.Context()).Snapshot()
	assert.Equal(t, "course-v1:OpenU+CS101+2026_T1", attrs["course_id"])
}

func TestCourseAboutPageInvalidID(t *testing.T) {
	t.Cleanup(func() { config.Global = config.ServerConfig{} })

	req := httptest.NewRequest(http.MethodGet, "/courses/not-a-key/about", nil)
	rr := httptest.NewRecorder()

	err := CourseAboutPage(rr, req)

	require.ErrorIs(t, err, ErrInvalidCourseID)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCourseDetailAPI(t *testing.T) {
	config.Global.Basic.SiteName = "courses.example.org"

	t.Cleanup(func() { config.Global = config.ServerConfig{} })

	req := httptest.NewRequest(http.MethodGet, "/api/courses/v1/courses/OpenU/CS101/2026_T1", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, CourseDetailAPI(rr, req))

	var summary CourseSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))

	assert.Equal(t, "OpenU/CS101/2026_T1", summary.CourseID)
	assert.True(t, summary.Deprecated)
}

func TestCourseDetailAPINonCourseRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/courses/v1/blocks", nil)
	rr := httptest.NewRecorder()

	err := CourseDetailAPI(rr, req)

	require.ErrorIs(t, err, ErrInvalidCourseID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
