// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package toggles provides named runtime feature flags.

A flag lives in a namespace ("request_utils") and has a short name
("capture_cookie_sizes"). Its value is resolved per lookup:

 1. a per-site override under "features" in the site-overrides document,
 2. the default registered from the server configuration,
 3. false.

Flags are cheap value types; declare them as package vars next to the
code they gate.
*/
package toggles

import (
	"strings"
	"sync"

	"codeberg.org/learnfe/learnfe/core/siteconfig"
)

var (
	defaultsMu sync.RWMutex
	defaults   = map[string]bool{}
)

// Flag is a named boolean toggle.
type Flag struct {
	Namespace string
	Name      string
}

// New declares a flag in the given namespace.
func New(namespace, name string) Flag {
	return Flag{Namespace: namespace, Name: name}
}

// Key returns the fully qualified flag name, e.g.
// "request_utils.capture_cookie_sizes".
func (f Flag) Key() string {
	return f.Namespace + "." + f.Name
}

// Enabled resolves the flag's current value.
func (f Flag) Enabled() bool {
	if value, ok := siteconfig.Bool(overridePath(f.Key())); ok {
		return value
	}

	defaultsMu.RLock()
	defer defaultsMu.RUnlock()

	return defaults[f.Key()]
}

// overridePath builds the gjson path for a flag key, escaping the dots
// that are part of the key itself.
func overridePath(key string) string {
	return "features." + strings.ReplaceAll(key, ".", `\.`)
}

// SetDefaults replaces the registered flag defaults.
//
// Called once from config loading; keys are fully qualified flag names.
func SetDefaults(flags map[string]bool) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	defaults = make(map[string]bool, len(flags))
	for key, value := range flags {
		defaults[key] = value
	}
}
