package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret1"))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "ana@minimarket.mx", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ana@minimarket.mx", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "minimarket-admin", claims.Issuer)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken(1, "ana@minimarket.mx", "employee")
	require.NoError(t, err)

	_, err = ValidateToken(token[:len(token)-2] + "xx")
	assert.Error(t, err)
}
