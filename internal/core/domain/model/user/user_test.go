package user_test

import (
	"testing"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for s, expected := range map[string]user.Role{
		"admin":     user.Admin,
		"courier":   user.Courier,
		"warehouse": user.Warehouse,
	} {
		role, err := user.ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, expected, role)
		assert.Equal(t, s, role.String())
	}

	_, err := user.ParseRole("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, user.Admin.Validate())
	require.Error(t, user.UnknownRole.Validate())
	require.Error(t, user.Role(9).Validate())
}

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Dave", "dave@example.com", "$2a$10$hash", user.Courier)

		require.NoError(t, err)
		assert.Equal(t, "Dave", u.Name())
		assert.Equal(t, "dave@example.com", u.Email())
		assert.True(t, u.IsCourier())
		assert.False(t, u.IsAdmin())
	})

	t.Run("invalid_email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Dave", "not-an-email", "$2a$10$hash", user.Courier)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "dave@example.com", "$2a$10$hash", user.Courier)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = user.NewUser(kernel.NewUUID(), "Dave", "dave@example.com", "", user.Courier)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Dave", "dave@example.com", "$2a$10$hash", user.UnknownRole)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Dave", "dave@example.com", "$2a$10$hash", user.Courier)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(user.Admin))
	assert.True(t, u.IsAdmin())

	require.Error(t, u.ChangeRole(user.UnknownRole))
	assert.True(t, u.IsAdmin())
}
