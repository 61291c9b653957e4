// Copyright 2026, the learnfe contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

const entropyBytes = 4

// Make makes a short request ID with a 6 byte timestamp and 4 bytes of entropy.
func Make() string {
	var entropy [entropyBytes]byte

	_, _ = rand.Read(entropy[:])

	return maketime(time.Now()) + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}
