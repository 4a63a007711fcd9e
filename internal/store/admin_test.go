package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wildfire_console/internal/models"
)

func TestAddUser_Success(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddUser("Ana Flores", "ana.flores@example.org", models.RoleViewer)

	require.NoError(t, err)
	users := s.Users()
	assert.Equal(t, id, users[0].ID)
	assert.Equal(t, models.UserActive, users[0].Status)
	assert.Equal(t, models.RoleViewer, users[0].Role)
	assert.Equal(t, "User added", s.AuditLog(1)[0].Action)
}

func TestAddUser_Errors(t *testing.T) {
	s := newTestStore(t)
	n := len(s.Users())

	_, err := s.AddUser("Dup", "DANA.WHITFIELD@example.org", models.RoleAnalyst)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.AddUser("", "someone@example.org", models.RoleAnalyst)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.AddUser("Someone", "someone@example.org", "superuser")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Len(t, s.Users(), n)
}

func TestToggleUserStatus(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.ToggleUserStatus("user-004"))
	for _, u := range s.Users() {
		if u.ID == "user-004" {
			assert.Equal(t, models.UserActive, u.Status)
		}
	}
	entry := s.AuditLog(1)[0]
	assert.Equal(t, "User status changed", entry.Action)
	assert.Equal(t, "active", entry.Detail)

	assert.ErrorIs(t, s.ToggleUserStatus("user-404"), ErrNotFound)
}

func TestGenerateAPIKey_SecretReturnedOnce(t *testing.T) {
	// Подготовка
	s := newTestStore(t)

	// Действие
	key, secret, err := s.GenerateAPIKey("Dispatch integration")

	// Проверки
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(secret, "wfk_"))
	assert.Equal(t, secret[:10], key.Prefix)
	assert.Equal(t, models.APIKeyActive, key.Status)
	assert.Equal(t, "Test Operator", key.CreatedBy)
	assert.Nil(t, key.SecretHash)

	keys := s.APIKeys()
	assert.Equal(t, key.ID, keys[0].ID)
	for _, k := range keys {
		assert.Nil(t, k.SecretHash)
	}

	assert.True(t, s.VerifyAPIKey(key.ID, secret))
	assert.False(t, s.VerifyAPIKey(key.ID, secret+"x"))
	assert.Equal(t, "API key generated", s.AuditLog(1)[0].Action)
}

func TestVerifyAPIKey_UnknownOrSeededKey(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.VerifyAPIKey("key-missing", "wfk_anything"))
	// У ключей из начальных данных нет хеша секрета
	assert.False(t, s.VerifyAPIKey("key-001", ""))
}

func TestGenerateAPIKey_BlankLabel(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.GenerateAPIKey("  ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRevokeAPIKey_OneWay(t *testing.T) {
	s := newTestStore(t)
	key, secret, err := s.GenerateAPIKey("temp")
	require.NoError(t, err)

	require.NoError(t, s.RevokeAPIKey(key.ID))

	assert.False(t, s.VerifyAPIKey(key.ID, secret))
	revoked := s.APIKeys()[0]
	assert.Equal(t, models.APIKeyRevoked, revoked.Status)
	assert.NotNil(t, revoked.RevokedAt)
	assert.Equal(t, "API key revoked", s.AuditLog(1)[0].Action)

	assert.ErrorIs(t, s.RevokeAPIKey(key.ID), ErrInvalidTransition)
	assert.ErrorIs(t, s.RevokeAPIKey("key-404"), ErrNotFound)
}

func TestSetRetentionDays_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "ниже минимума", in: 0, want: 1},
		{name: "отрицательное", in: -30, want: 1},
		{name: "выше максимума", in: 1000, want: 365},
		{name: "в диапазоне", in: 30, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)

			got, err := s.SetRetentionDays(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.DataRetentionDays)
			assert.Equal(t, tt.want, s.Settings().DataRetentionDays)
			assert.Equal(t, "Retention updated", s.AuditLog(1)[0].Action)
		})
	}
}

func TestToggleNotifications(t *testing.T) {
	s := newTestStore(t)
	before := s.Settings().NotificationsEnabled

	got, err := s.ToggleNotifications()

	require.NoError(t, err)
	assert.Equal(t, !before, got.NotificationsEnabled)
	assert.Equal(t, "Notifications toggled", s.AuditLog(1)[0].Action)
}

func TestSetDefaultRegion(t *testing.T) {
	s := newTestStore(t)

	got, err := s.SetDefaultRegion("Santa Ynez")
	require.NoError(t, err)
	assert.Equal(t, "Santa Ynez", got.DefaultRegion)

	_, err = s.SetDefaultRegion(" ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "Santa Ynez", s.Settings().DefaultRegion)
}
