package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := GetAdminAuthService()

	hash, err := svc.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, svc.VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, svc.VerifyPassword(hash, "wrong password"))
	assert.False(t, svc.VerifyPassword("not-a-bcrypt-hash", "correct horse battery staple"))
}

func TestValidatePassword(t *testing.T) {
	svc := GetAdminAuthService()

	assert.False(t, svc.ValidatePassword(""))
	assert.False(t, svc.ValidatePassword("short"))
	assert.False(t, svc.ValidatePassword("1234567"))
	assert.True(t, svc.ValidatePassword("12345678"))
	assert.True(t, svc.ValidatePassword("a much longer passphrase"))
}

func TestGenerateInviteToken(t *testing.T) {
	svc := GetAdminAuthService()

	first, err := svc.GenerateInviteToken()
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := svc.GenerateInviteToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	svc := GetAdminAuthService()

	token, err := svc.GenerateInviteToken()
	require.NoError(t, err)

	hash := svc.HashToken(token)
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, svc.HashToken(token))
	assert.NotEqual(t, token, hash)
}

func TestInviteExpiration(t *testing.T) {
	svc := GetAdminAuthService()

	expiresAt := svc.GetInviteTokenExpiration()
	assert.True(t, expiresAt.After(time.Now().Add(47*time.Hour)))
	assert.True(t, expiresAt.Before(time.Now().Add(49*time.Hour)))

	assert.False(t, svc.IsInviteExpired(time.Now().Add(time.Hour)))
	assert.True(t, svc.IsInviteExpired(time.Now().Add(-time.Minute)))
}
