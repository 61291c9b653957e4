// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/learnfe/learnfe/server/middleware"
	"codeberg.org/learnfe/learnfe/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
//
// It returns a *Router without middleware.
func (router *Router) DefineRoutes() {
	// Health routes
	router.HandleFunc("GET /healthz", middleware.CatchError(routes.HealthCheck))

	// Course pages. Old-style course IDs contain slashes, so the course_id
	// segment cannot be a single ServeMux wildcard; the handlers extract
	// the ID from the full URL instead.
	router.HandleFunc("GET /courses/", middleware.CatchError(routes.CourseAboutPage))

	// Course API routes
	router.HandleFunc("GET /api/courses/v1/courses/", middleware.CatchError(routes.CourseDetailAPI))
}
