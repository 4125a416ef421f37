package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingRef(t *testing.T) {
	ref, err := NewBookingRef("HTC")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, "HTC-"))

	suffix := strings.TrimPrefix(ref, "HTC-")
	assert.Len(t, suffix, 6)
	for _, r := range suffix {
		assert.Contains(t, refAlphabet, string(r))
	}
}

func TestNewBookingRefUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := NewBookingRef("HRC")
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate ref %s", ref)
		seen[ref] = true
	}
}
