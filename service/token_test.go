package service_test

import (
	"testing"
	"time"

	"treqsy/models"
	"treqsy/service"

	"github.com/stretchr/testify/require"
)

func newTestTokenManager() service.TokenManager {
	return service.NewTokenManager(
		"access-secret",
		"refresh-secret",
		time.Hour,
		24*time.Hour,
	)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tests := []struct {
		name   string
		userID int
		role   models.Role
		typ    service.TokenType
	}{
		{
			name:   "access token round trip",
			userID: 7,
			role:   models.RoleHost,
			typ:    service.TokenAccess,
		},
		{
			name:   "refresh token round trip",
			userID: 42,
			role:   models.RoleMasterAdmin,
			typ:    service.TokenRefresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newTestTokenManager()
			token, err := tm.Issue(tt.userID, tt.role, tt.typ)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			identity, err := tm.Verify(token, tt.typ)
			require.NoError(t, err)
			require.Equal(t, tt.userID, identity.UserID)
			require.Equal(t, tt.role, identity.Role)
		})
	}
}

func TestTokenManager_Verify_TypeMismatch(t *testing.T) {
	tm := newTestTokenManager()

	access, err := tm.Issue(1, models.RoleUser, service.TokenAccess)
	require.NoError(t, err)
	refresh, err := tm.Issue(1, models.RoleUser, service.TokenRefresh)
	require.NoError(t, err)

	_, err = tm.Verify(access, service.TokenRefresh)
	require.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = tm.Verify(refresh, service.TokenAccess)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	tm := service.NewTokenManager(
		"access-secret",
		"refresh-secret",
		-time.Minute,
		-time.Minute,
	)
	token, err := tm.Issue(3, models.RoleUser, service.TokenAccess)
	require.NoError(t, err)

	_, err = tm.Verify(token, service.TokenAccess)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenManager_Verify_Tampered(t *testing.T) {
	tm := newTestTokenManager()
	token, err := tm.Issue(3, models.RoleUser, service.TokenAccess)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.Verify(tampered, service.TokenAccess)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	tm := newTestTokenManager()
	other := service.NewTokenManager(
		"different-access",
		"different-refresh",
		time.Hour,
		24*time.Hour,
	)

	token, err := tm.Issue(3, models.RoleAdmin, service.TokenAccess)
	require.NoError(t, err)

	_, err = other.Verify(token, service.TokenAccess)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthorize(t *testing.T) {
	allRoles := []models.Role{
		models.RoleUser,
		models.RoleHost,
		models.RoleAdmin,
		models.RoleMasterAdmin,
	}

	for _, have := range allRoles {
		for _, want := range allRoles {
			identity := service.Identity{UserID: 1, Role: have}
			got, err := service.Authorize(identity, want)
			if have == want {
				require.NoError(t, err)
				require.Equal(t, identity, got)
			} else {
				require.ErrorIs(t, err, service.ErrForbidden)
			}
		}
	}
}

func TestAuthorize_MultipleRoles(t *testing.T) {
	identity := service.Identity{UserID: 5, Role: models.RoleAdmin}

	got, err := service.Authorize(identity, models.RoleAdmin, models.RoleMasterAdmin)
	require.NoError(t, err)
	require.Equal(t, identity, got)

	_, err = service.Authorize(
		service.Identity{UserID: 6, Role: models.RoleHost},
		models.RoleAdmin, models.RoleMasterAdmin,
	)
	require.ErrorIs(t, err, service.ErrForbidden)
}
