package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityTableCoversEveryRole(t *testing.T) {
	roles := []Role{RoleClient, RoleMaster, RoleSalon, RoleAdmin}
	for _, role := range roles {
		_, ok := capabilities[role]
		assert.True(t, ok, "role %s missing from capability table", role)
	}
}

func TestCan(t *testing.T) {
	assert.True(t, Can(RoleSalon, ActionInviteMasters))
	assert.True(t, Can(RoleSalon, ActionManagePhotos))
	assert.False(t, Can(RoleSalon, ActionApplyVacancies))

	assert.True(t, Can(RoleMaster, ActionApplyVacancies))
	assert.False(t, Can(RoleMaster, ActionPostVacancies))

	assert.False(t, Can(RoleClient, ActionManagePhotos))

	// Admin holds everything
	for _, actions := range capabilities {
		for _, a := range actions {
			assert.True(t, Can(RoleAdmin, a), "admin should hold %s", a)
		}
	}
}

func TestCanUnknownRole(t *testing.T) {
	assert.False(t, Can(Role("superuser"), ActionModerate))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleClient))
	assert.NoError(t, ValidateRole(RoleAdmin))
	assert.Error(t, ValidateRole(Role("owner")))
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-password")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, err := tm.Generate("user-1", RoleMaster)
	assert.NoError(t, err)

	claims, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, RoleMaster, claims.Role)
}

func TestTokenParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	_, err := tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
