package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/netgenix/printshop-api/internal/auth"
	"github.com/netgenix/printshop-api/internal/config"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *auth.JWTValidator {
	return auth.NewJWTValidator(&config.AuthConfig{
		JWTSecret: "test-secret-at-least-32-characters-long",
		Issuer:    "printshop-api",
	})
}

func TestJWTValidator_RoundTrip(t *testing.T) {
	v := newValidator()
	userID := uuid.New()

	token, err := v.IssueToken(userID, "Grace Mwansa", "grace@netgenix.co.zm", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	user, err := v.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "Grace Mwansa", user.DisplayName)
	assert.Equal(t, "grace@netgenix.co.zm", user.Email)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
}

func TestJWTValidator_UnknownRoleDefaultsToStaff(t *testing.T) {
	v := newValidator()

	token, err := v.IssueToken(uuid.New(), "Someone", "someone@netgenix.co.zm", domain.UserRoleType("owner"), time.Hour)
	require.NoError(t, err)

	user, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.False(t, user.IsAdmin())
}

func TestJWTValidator_ExpiredToken(t *testing.T) {
	v := newValidator()

	token, err := v.IssueToken(uuid.New(), "Grace", "grace@netgenix.co.zm", domain.RoleStaff, -time.Minute)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_WrongSecret(t *testing.T) {
	v := newValidator()
	other := auth.NewJWTValidator(&config.AuthConfig{
		JWTSecret: "a-completely-different-signing-secret!!",
		Issuer:    "printshop-api",
	})

	token, err := other.IssueToken(uuid.New(), "Grace", "grace@netgenix.co.zm", domain.RoleStaff, time.Hour)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_WrongIssuer(t *testing.T) {
	v := newValidator()
	other := auth.NewJWTValidator(&config.AuthConfig{
		JWTSecret: "test-secret-at-least-32-characters-long",
		Issuer:    "someone-else",
	})

	token, err := other.IssueToken(uuid.New(), "Grace", "grace@netgenix.co.zm", domain.RoleStaff, time.Hour)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_Garbage(t *testing.T) {
	v := newValidator()
	_, err := v.ValidateToken("not-a-token")
	assert.Error(t, err)
}
