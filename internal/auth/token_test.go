package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_UserRoundTrip(t *testing.T) {
	manager := NewTokenManager("user-secret", "admin-secret")

	token, err := manager.IssueUser("9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyUser(token)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", claims.Phone)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenManager_AdminRoundTrip(t *testing.T) {
	manager := NewTokenManager("user-secret", "admin-secret")

	token, err := manager.IssueAdmin("7a2f9c44-1111-2222-3333-444455556666", "shopadmin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyAdmin(token)
	require.NoError(t, err)
	assert.Equal(t, "shopadmin", claims.Username)
	assert.Equal(t, "7a2f9c44-1111-2222-3333-444455556666", claims.ID)
}

func TestTokenManager_SchemesAreIndependent(t *testing.T) {
	manager := NewTokenManager("user-secret", "admin-secret")

	userToken, err := manager.IssueUser("9876543210")
	require.NoError(t, err)

	adminToken, err := manager.IssueAdmin("id-1", "shopadmin")
	require.NoError(t, err)

	// A user token must never pass admin verification, and vice versa.
	_, err = manager.VerifyAdmin(userToken)
	assert.Error(t, err)

	_, err = manager.VerifyUser(adminToken)
	assert.Error(t, err)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("user-secret", "admin-secret")
	verifier := NewTokenManager("other-secret", "admin-secret")

	token, err := issuer.IssueUser("9876543210")
	require.NoError(t, err)

	_, err = verifier.VerifyUser(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := NewTokenManager("user-secret", "admin-secret")

	_, err := manager.VerifyUser("not-a-token")
	assert.Error(t, err)

	_, err = manager.VerifyAdmin("")
	assert.Error(t, err)
}
