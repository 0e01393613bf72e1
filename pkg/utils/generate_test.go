package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePNR(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pnr, err := GeneratePNR()
		require.NoError(t, err)
		assert.Regexp(t, pattern, pnr)
		seen[pnr] = true
	}
	// 100 draws from a 36^6 space should not all collide.
	assert.Greater(t, len(seen), 90)
}

func TestGenerateToken(t *testing.T) {
	first, err := GenerateToken()
	require.NoError(t, err)
	second, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, first)
	assert.NotEqual(t, first, second)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
