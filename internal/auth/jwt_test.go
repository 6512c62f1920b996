package auth

import (
	"testing"

	"github.com/befit/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &model.User{
		ID:    "7a9d2c1e-0000-4000-8000-000000000001",
		Email: "lifter@example.com",
		Name:  "Lifter",
	}

	token, err := GenerateAccessToken(user, "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "befit", claims.Issuer)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	user := &model.User{ID: "7a9d2c1e-0000-4000-8000-000000000001"}

	token, err := GenerateAccessToken(user, "secret-a")
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "secret-b")
	assert.Error(t, err)
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestGenerateRefreshToken(t *testing.T) {
	a, err := GenerateRefreshToken()
	require.NoError(t, err)
	b, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
