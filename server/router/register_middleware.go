package router

import (
	"codeberg.org/learnfe/learnfe/config"
	"codeberg.org/learnfe/learnfe/server/middleware"
)

func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)       // handle trailing slashes
	router.Use(middleware.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders) // all pages need this
	router.Use(middleware.MonitorCookies)     // cookie size monitoring

	if config.Global.Limiter.Enabled {
		router.Use(middleware.RateLimit)
	}
}
