// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requestutil

import (
	"regexp"
	"strings"

	"codeberg.org/learnfe/learnfe/core/coursekey"
)

const coursesSegment = "/courses/"

var (
	// courseIDPattern matches a serialized course ID: three segments
	// joined by "/" or "+", the last one running up to "?" or "/".
	// This accommodates both new-style and old-style keys.
	courseIDPattern = regexp.MustCompile(`^[^/+]+[/+][^/+]+[/+][^/?]+`)

	// versionedAPIPattern matches versioned course-API segments such as
	// "v1/blocks" that sit directly under /courses/ but are not course IDs.
	versionedAPIPattern = regexp.MustCompile(`^v[0-9]+/[^/]+`)
)

// CourseIDFromURL extracts the course ID from the given URL.
//
// The course ID is the first serialized course key following a "/courses/"
// path segment, skipping versioned course-API routes that do not fall
// under v*/courses, such as v1/blocks. The second return value reports
// whether a valid course ID was found.
func CourseIDFromURL(rawurl string) (coursekey.CourseKey, bool) {
	if rawurl == "" {
		return coursekey.CourseKey{}, false
	}

	for offset := 0; ; {
		idx := strings.Index(rawurl[offset:], coursesSegment)
		if idx < 0 {
			return coursekey.CourseKey{}, false
		}

		offset += idx + len(coursesSegment)
		rest := rawurl[offset:]

		// "/courses/v1/..." belongs to the course API, not a course ID,
		// unless a later "/courses/" segment matches.
		if versionedAPIPattern.MatchString(rest) {
			continue
		}

		serialized := courseIDPattern.FindString(rest)
		if serialized == "" {
			continue
		}

		key, err := coursekey.Parse(serialized)
		if err != nil {
			return coursekey.CourseKey{}, false
		}

		return key, true
	}
}
