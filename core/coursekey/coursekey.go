// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package coursekey parses and renders course run identifiers.

Two serialized forms exist on the platform:

  - new-style: "course-v1:ORG+COURSE+RUN"
  - old-style (deprecated): "ORG/COURSE/RUN"

Old-style keys are still accepted because they appear in historical URLs
and third-party deep links, but new code should only ever produce
new-style keys.
*/
package coursekey

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// NewStylePrefix marks serialized new-style course keys.
const NewStylePrefix = "course-v1:"

const keyParts = 3

var ErrInvalidKey = errors.New("invalid course key")

// CourseKey identifies a single run of a course.
type CourseKey struct {
	Org    string
	Course string
	Run    string

	// oldStyle is set for keys parsed from the deprecated ORG/COURSE/RUN
	// form so that String round-trips to the original serialization.
	oldStyle bool
}

// Parse converts a serialized course key into a CourseKey.
//
// It returns ErrInvalidKey (wrapped) for anything that is neither a
// well-formed new-style nor old-style key.
func Parse(serialized string) (CourseKey, error) {
	if rest, ok := strings.CutPrefix(serialized, NewStylePrefix); ok {
		return parseParts(rest, "+", false)
	}

	return parseParts(serialized, "/", true)
}

func parseParts(s, sep string, oldStyle bool) (CourseKey, error) {
	parts := strings.Split(s, sep)
	if len(parts) != keyParts {
		return CourseKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	for _, part := range parts {
		if !validPart(part) {
			return CourseKey{}, fmt.Errorf("%w: bad segment %q", ErrInvalidKey, part)
		}
	}

	return CourseKey{
		Org:      parts[0],
		Course:   parts[1],
		Run:      parts[2],
		oldStyle: oldStyle,
	}, nil
}

// validPart reports whether a key segment contains only characters that
// are unambiguous in both serialized forms.
func validPart(part string) bool {
	if part == "" {
		return false
	}

	for _, r := range part {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
		case strings.ContainsRune("-~.:_", r):
		default:
			return false
		}
	}

	return true
}

// Deprecated reports whether the key was parsed from the old-style form.
func (k CourseKey) Deprecated() bool {
	return k.oldStyle
}

// String serializes the key back into the form it was parsed from.
func (k CourseKey) String() string {
	if k.oldStyle {
		return k.Org + "/" + k.Course + "/" + k.Run
	}

	return NewStylePrefix + k.Org + "+" + k.Course + "+" + k.Run
}

// IsZero reports whether the key is the zero value.
func (k CourseKey) IsZero() bool {
	return k.Org == "" && k.Course == "" && k.Run == ""
}
