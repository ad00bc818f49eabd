// Short-ID generation for items and claims.
package jsonstore

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// ID prefixes and the 4-digit space short IDs draw from.
const (
	itemIDPrefix  = "ITEM-"
	claimIDPrefix = "CLM-"

	shortIDMin = 1000
	shortIDMax = 9999

	// maxIDAttempts bounds the collision-retry loop before falling back
	// to the wider UUID-derived space.
	maxIDAttempts = 16
)

// newShortID generates an ID of the form <prefix><4 digits>, retrying while
// taken reports a collision. After maxIDAttempts the 9000-value space is
// considered too crowded and a UUID-derived 8-hex-digit suffix is used
// instead, so a duplicate ID can never be handed out.
func newShortID(prefix string, taken func(string) bool) string {
	for range maxIDAttempts {
		id := fmt.Sprintf("%s%04d", prefix, rand.IntN(shortIDMax-shortIDMin+1)+shortIDMin)
		if !taken(id) {
			return id
		}
	}
	return prefix + wideIDSuffix()
}

// wideIDSuffix returns an 8-hex-digit suffix drawn from a UUID. The 32-bit
// space makes a further collision negligible for a single-process registry.
func wideIDSuffix() string {
	u := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(u[:8])
}
