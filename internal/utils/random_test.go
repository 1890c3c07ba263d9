package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomString(t *testing.T) {
	s := RandomString(ShortNameLength)
	assert.Len(t, s, ShortNameLength)

	for _, r := range s {
		assert.Contains(t, alphanumeric, string(r))
	}
}

func TestRandomStringDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := RandomString(ShortNameLength)
		assert.False(t, seen[s], "duplicate random string %q", s)
		seen[s] = true
	}
}
