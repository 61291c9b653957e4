// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package siteconfig exposes per-site configuration overrides.

Deployments that serve several domains from one instance ship a JSON
document with per-site values (site_domain, platform_name, feature
toggles). The document is loaded once at startup and queried with gjson
paths; a missing document simply means every lookup falls back.
*/
package siteconfig

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

var errNotJSON = errors.New("document is not valid JSON")

var (
	mu  sync.RWMutex
	doc []byte
)

// Load reads the site-overrides document from path.
//
// An empty path or a missing file is not an error: lookups will return
// their fallbacks.
func Load(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info().
			Str("path", path).
			Msg("No site-overrides file found, skipping")

		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read site overrides %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("site overrides %s: %w", path, errNotJSON)
	}

	mu.Lock()
	doc = data
	mu.Unlock()

	log.Info().
		Str("path", path).
		Msg("Successfully loaded site overrides")

	return nil
}

// Value returns the string override at the given gjson path, or fallback
// when the path is absent.
func Value(path, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if result := gjson.GetBytes(doc, path); result.Exists() {
		return result.String()
	}

	return fallback
}

// Bool returns the boolean override at the given gjson path.
//
// The second return value reports whether an override exists at all,
// letting callers distinguish "set to false" from "unset".
func Bool(path string) (value, ok bool) {
	mu.RLock()
	defer mu.RUnlock()

	result := gjson.GetBytes(doc, path)

	return result.Bool(), result.Exists()
}

// Reset clears any loaded document. For tests.
func Reset() {
	mu.Lock()
	doc = nil
	mu.Unlock()
}

// SetDocument replaces the loaded document. For tests.
func SetDocument(data []byte) {
	mu.Lock()
	doc = data
	mu.Unlock()
}
