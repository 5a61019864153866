package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	perms := []string{"create-sell", "refund-sell"}

	token, err := GenerateAccessToken(userID, "sales@example.com", "Sales One", "salesman", perms)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "sales@example.com", claims.Email)
	assert.Equal(t, "salesman", claims.Role)
	assert.Equal(t, perms, claims.Permissions)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateRefreshToken(userID, "a@b.c", "A", "admin", nil)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

// A refresh token must not validate as an access token: the secrets differ.
func TestSecretsAreNotInterchangeable(t *testing.T) {
	token, err := GenerateRefreshToken(uuid.New(), "a@b.c", "A", "admin", nil)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
