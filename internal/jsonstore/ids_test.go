package jsonstore

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var shortIDPattern = regexp.MustCompile(`^ITEM-\d{4}$`)

func TestNewShortIDFormat(t *testing.T) {
	id := newShortID(itemIDPrefix, func(string) bool { return false })
	assert.Regexp(t, shortIDPattern, id)
}

func TestNewShortIDRetriesOnCollision(t *testing.T) {
	// First call claims an ID; the second must avoid it.
	first := newShortID(claimIDPrefix, func(string) bool { return false })
	taken := map[string]bool{first: true}

	second := newShortID(claimIDPrefix, func(id string) bool { return taken[id] })
	assert.NotEqual(t, first, second)
}

func TestNewShortIDWideFallback(t *testing.T) {
	// Every 4-digit ID is reported taken, forcing the wide fallback.
	id := newShortID(itemIDPrefix, func(id string) bool {
		return shortIDPattern.MatchString(id)
	})

	assert.Regexp(t, `^ITEM-[0-9A-F]{8}$`, id)
}
