// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/learnfe/learnfe/config"
)

const (
	// limiterExpiry is how long to keep idle per-client limiters in memory.
	limiterExpiry = time.Hour

	// cleanupInterval is the interval between limiter cleanup runs.
	cleanupInterval = 5 * time.Minute
)

// clientLimiter holds a rate limiter and additional metadata for one client address.
type clientLimiter struct {
	limiter *rate.Limiter

	mu         sync.Mutex
	lastAccess time.Time
}

var (
	clientLimiters sync.Map // In-memory storage for rate limiters, keyed by client address.
	cleanupOnce    sync.Once
)

// RateLimit applies a token-bucket rate limit per client address.
//
// Requests over the limit are rejected with 429 Too Many Requests.
func RateLimit(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if !config.Global.Limiter.Enabled {
		next.ServeHTTP(w, r)

		return
	}

	cleanupOnce.Do(func() { go cleanupLoop() })

	client := getOrCreateLimiter(clientKey(r))

	client.mu.Lock()
	client.lastAccess = time.Now()
	allowed := client.limiter.Allow()
	client.mu.Unlock()

	if !allowed {
		log.Debug().
			Str("client", clientKey(r)).
			Str("url", r.URL.String()).
			Msg("Request rate limited")

		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)

		return
	}

	next.ServeHTTP(w, r)
}

// clientKey derives the limiter key from the request's remote address.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func getOrCreateLimiter(key string) *clientLimiter {
	if value, ok := clientLimiters.Load(key); ok {
		if client, ok := value.(*clientLimiter); ok {
			return client
		}
	}

	client := &clientLimiter{
		limiter:    rate.NewLimiter(rate.Limit(config.Global.Limiter.Rate), config.Global.Limiter.Burst),
		lastAccess: time.Now(),
	}

	actual, _ := clientLimiters.LoadOrStore(key, client)

	return actual.(*clientLimiter)
}

// cleanupLoop periodically drops limiters that have been idle past expiry.
func cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-limiterExpiry)

		clientLimiters.Range(func(key, value any) bool {
			client, ok := value.(*clientLimiter)
			if !ok {
				clientLimiters.Delete(key)

				return true
			}

			client.mu.Lock()
			idle := client.lastAccess.Before(cutoff)
			client.mu.Unlock()

			if idle {
				clientLimiters.Delete(key)
			}

			return true
		})
	}
}
