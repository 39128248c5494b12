package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	require.NoError(t, InitJWTService("test-secret"))
	return GetJWTService()
}

func TestGenerateAndVerifyAdminJWT(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAdminJWT("0198a6b0-0000-7000-8000-000000000001", "chef@savoria.example")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0198a6b0-0000-7000-8000-000000000001", claims.AdminID)
	assert.Equal(t, "chef@savoria.example", claims.Email)
	assert.Equal(t, "savoria-admin", claims.Issuer)
}

func TestGenerateAdminJWTRejectsEmptyFields(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.GenerateAdminJWT("", "chef@savoria.example")
	assert.Error(t, err)

	_, err = svc.GenerateAdminJWT("some-id", "")
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.VerifyAdminJWT("not.a.token")
	assert.Error(t, err)

	_, err = svc.VerifyAdminJWT("")
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsWrongSecret(t *testing.T) {
	require.NoError(t, InitJWTService("secret-one"))
	token, err := GetJWTService().GenerateAdminJWT("some-id", "chef@savoria.example")
	require.NoError(t, err)

	require.NoError(t, InitJWTService("secret-two"))
	_, err = GetJWTService().VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestInitJWTServiceRejectsEmptySecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
}
