package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.GenerateAccessToken(42, "test@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "test@example.com", claims.Subject)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.GenerateAccessToken(1, "test@example.com")
	assert.NoError(t, err)

	// Flip a character in the signature segment
	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	other := NewJWTService("another-secret", 30*time.Minute)

	token, err := svc.GenerateAccessToken(1, "test@example.com")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateAccessToken(1, "test@example.com")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	tokenID, token, err := svc.GenerateRefreshToken(7, "test@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)

	// Access tokens carry no JTI
	access, err := svc.GenerateAccessToken(7, "test@example.com")
	assert.NoError(t, err)
	_, err = svc.ExtractTokenID(access)
	assert.Error(t, err)
}
