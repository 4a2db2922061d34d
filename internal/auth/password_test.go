package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	// bcrypt salts, so hashing the same input twice must differ
	hash2, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("testpassword123")
	assert.NoError(t, err)

	assert.True(t, CheckPassword("testpassword123", hash))
	assert.False(t, CheckPassword("testpassword124", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("testpassword123", "not-a-bcrypt-hash"))
}
