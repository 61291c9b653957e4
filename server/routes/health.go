// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/learnfe/learnfe/config"
)

// HealthCheck is the handler for /healthz.
func HealthCheck(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, map[string]string{
		"status":  "ok",
		"version": config.BuildVersion,
		"started": config.Global.Instance.StartingTime,
	})
}
