package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4) // minimum cost keeps the test fast
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "S3cret"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "anything"))
}

func TestBurnPassword(t *testing.T) {
	// Must never panic or leak a result, whatever the input.
	BurnPassword("")
	BurnPassword("password")
	BurnPassword("some long password that nobody would ever guess 1234567890")
}
