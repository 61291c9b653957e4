// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"codeberg.org/learnfe/learnfe/core/coursekey"
	"codeberg.org/learnfe/learnfe/core/monitor"
	"codeberg.org/learnfe/learnfe/core/siteconfig"
	"codeberg.org/learnfe/learnfe/server/requestutil"
)

var ErrInvalidCourseID = errors.New("invalid course ID")

// CourseSummary is the JSON representation of a course run.
//
//nolint:tagliatelle
type CourseSummary struct {
	CourseID     string `json:"course_id"`
	Org          string `json:"org"`
	Course       string `json:"course"`
	Run          string `json:"run"`
	Deprecated   bool   `json:"deprecated"`
	PlatformName string `json:"platform_name"`
	AboutURL     string `json:"about_url"`
}

// courseFromRequest resolves the course key for the request's own URL and
// records it as a monitoring attribute.
func courseFromRequest(r *http.Request) (coursekey.CourseKey, error) {
	key, ok := requestutil.CourseIDFromURL(r.URL.String())
	if !ok {
		return coursekey.CourseKey{}, fmt.Errorf("%w: %s", ErrInvalidCourseID, r.URL.Path)
	}

	monitor.SetAttribute(r, "course_id", key.String())

	return key, nil
}

func summarize(r *http.Request, key coursekey.CourseKey) CourseSummary {
	return CourseSummary{
		CourseID:     key.String(),
		Org:          key.Org,
		Course:       key.Course,
		Run:          key.Run,
		Deprecated:   key.Deprecated(),
		PlatformName: siteconfig.Value("platform_name", "learnfe"),
		AboutURL:     requestutil.AbsoluteURL(r, "/courses/"+key.String()+"/about"),
	}
}

// CourseAboutPage is the handler for the /courses/{course_id}/about page.
func CourseAboutPage(w http.ResponseWriter, r *http.Request) error {
	key, err := courseFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)

		return err
	}

	return writeJSON(w, summarize(r, key))
}

// CourseDetailAPI is the handler for /api/courses/v1/courses/{course_id}.
func CourseDetailAPI(w http.ResponseWriter, r *http.Request) error {
	key, err := courseFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return err
	}

	return writeJSON(w, summarize(r, key))
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}
