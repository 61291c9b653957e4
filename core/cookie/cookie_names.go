// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package defines the cookie names used by this application.
*/
package cookie

type CookieName string

// Cookie names defined as constants.
//
// Names that share a prefix before the first "." or "_" are grouped
// together by the cookie monitoring middleware, so pick prefixes with
// grouping in mind.
const (
	// Authentication and user identity cookies.
	SessionCookie       CookieName = "session_id" // #nosec:G101 - false positive
	CSRFCookie          CookieName = "csrftoken"
	UserInfoCookie      CookieName = "user_info"
	LoggedInCookie      CookieName = "edx.loggedin"
	ExperimentABCookie  CookieName = "exp.bucket"
	ExperimentUIDCookie CookieName = "exp.uid"

	// User preference cookies.
	LanguageCookie   CookieName = "pref.lang"
	TimezoneCookie   CookieName = "pref.tz"
	CourseSortCookie CookieName = "pref.course-sort"
)

// AllCookieNames defines all cookies that can be set by the application.
var AllCookieNames = []CookieName{
	SessionCookie,
	CSRFCookie,
	UserInfoCookie,
	LoggedInCookie,
	ExperimentABCookie,
	ExperimentUIDCookie,
	LanguageCookie,
	TimezoneCookie,
	CourseSortCookie,
}
