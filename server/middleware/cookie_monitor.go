// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/learnfe/learnfe/core/monitor"
	"codeberg.org/learnfe/learnfe/core/toggles"
)

// captureCookieSizes gates cookie-size monitoring at runtime.
var captureCookieSizes = toggles.New("request_utils", "capture_cookie_sizes")

// cookieGroupSeparators split a cookie name into its group prefix and the rest.
const cookieGroupSeparators = "._"

// MonitorCookies emits monitoring attributes for the size and growth of all
// our cookies, to see if we're running into browser limits.
//
// Cookie contents are never logged because that might cause a security
// issue; we just want to see if any cookies are growing out of control.
//
// Attributes that are added by this middleware:
//
//	cookies.<group_prefix>.group.size: The sum of the sizes of all cookies
//	    sharing the prefix. For example the sum of the size of all "exp"
//	    cookies would be the value of the cookies.exp.group.size attribute.
//	cookies.max.name: The name of the largest cookie sent by the client.
//	cookies.max.size: The size of the largest cookie sent by the client.
//	cookies.max.group.name: The name of the largest group of cookies. A
//	    single cookie counts as a group of one for this calculation.
//	cookies.max.group.size: The sum total size of all the cookies in the
//	    largest group.
//	cookies_total_size: The sum total size of all cookies in this request.
//
// Individual per-cookie sizes are deliberately not emitted: an arbitrary
// number of attribute names per request risks crowding out other metrics
// on the collection side.
func MonitorCookies(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if captureCookieSizes.Enabled() {
		recordCookieSizes(r)
	}

	next.ServeHTTP(w, r)
}

func recordCookieSizes(r *http.Request) {
	cookies := r.Cookies()
	if len(cookies) == 0 {
		return
	}

	namesToSize := make(map[string]int, len(cookies))
	groupsToSize := make(map[string]int)

	for _, c := range cookies {
		size := len(c.Value)
		namesToSize[c.Name] = size

		if group := groupName(c.Name); group != "" {
			groupsToSize[group] += size
		}
	}

	maxCookieName, maxCookieSize := maxEntry(namesToSize)
	maxGroupName, maxGroupSize := maxEntry(groupsToSize)

	// If a single cookie is bigger than any group of cookies, the max
	// group attributes reflect that: an individual cookie is treated as a
	// group of one.
	if maxGroupSize < maxCookieSize {
		maxGroupName = maxCookieName
		maxGroupSize = maxCookieSize
	}

	totalSize := 0

	for name, size := range groupsToSize {
		attributeName := "cookies." + name + ".group.size"
		monitor.SetAttribute(r, attributeName, size)
		log.Debug().
			Str("attribute", attributeName).
			Int("size", size).
			Msg("Cookie group size")
	}

	monitor.SetAttribute(r, "cookies.max.name", maxCookieName)
	monitor.SetAttribute(r, "cookies.max.size", maxCookieSize)
	monitor.SetAttribute(r, "cookies.max.group.name", maxGroupName)
	monitor.SetAttribute(r, "cookies.max.group.size", maxGroupSize)

	for _, size := range namesToSize {
		totalSize += size
	}

	monitor.SetAttribute(r, "cookies_total_size", totalSize)
	log.Debug().
		Int("cookies_total_size", totalSize).
		Msg("Total cookie size")
}

// groupName returns the cookie's group prefix: the part of its name before
// the first "." or "_". A name without a separator, or one that starts with
// a separator, belongs to no group.
func groupName(name string) string {
	if i := strings.IndexAny(name, cookieGroupSeparators); i > 0 {
		return name[:i]
	}

	return ""
}

// maxEntry returns the largest entry of sizes, breaking size ties by
// lexicographically smaller name so the result is deterministic across map
// iteration orders. An empty map yields ("", 0).
func maxEntry(sizes map[string]int) (string, int) {
	maxName, maxSize := "", 0

	for name, size := range sizes {
		if size > maxSize || (size == maxSize && (maxName == "" || name < maxName)) {
			maxName, maxSize = name, size
		}
	}

	return maxName, maxSize
}
