package actor_test

import (
	"testing"

	"fleetledger/internal/core/domain/model/actor"
	"fleetledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	require.NoError(t, actor.RoleOperator.Validate())
	require.NoError(t, actor.RoleAdmin.Validate())

	err := actor.RoleUnknown.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.Error(t, actor.Role(42).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Operator", actor.RoleOperator.String())
	assert.Equal(t, "Admin", actor.RoleAdmin.String())
	assert.Equal(t, "Unknown", actor.RoleUnknown.String())
	assert.Equal(t, "Unknown", actor.Role(42).String())
}

func TestNewActor(t *testing.T) {
	t.Run("valid_role", func(t *testing.T) {
		a, err := actor.NewActor(actor.RoleOperator, actor.PermManageOrders)

		require.NoError(t, err)
		assert.Equal(t, actor.RoleOperator, a.Role())
		require.NoError(t, a.Validate())
	})

	t.Run("invalid_role", func(t *testing.T) {
		_, err := actor.NewActor(actor.RoleUnknown, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActor_Can(t *testing.T) {
	t.Run("operator_holds_only_granted_permissions", func(t *testing.T) {
		a, err := actor.NewActor(actor.RoleOperator, actor.PermManageOrders)
		require.NoError(t, err)

		assert.True(t, a.Can(actor.PermManageOrders))
		assert.False(t, a.Can(actor.PermDeleteOrders))
		assert.False(t, a.Can(actor.PermManageLedger))
		assert.False(t, a.IsAdmin())
	})

	t.Run("admin_implicitly_holds_every_permission", func(t *testing.T) {
		a, err := actor.NewActor(actor.RoleAdmin, 0)
		require.NoError(t, err)

		assert.True(t, a.Can(actor.PermManageOrders))
		assert.True(t, a.Can(actor.PermDeleteOrders))
		assert.True(t, a.Can(actor.PermManageLedger))
		assert.True(t, a.IsAdmin())
	})

	t.Run("combined_permissions", func(t *testing.T) {
		a, err := actor.NewActor(actor.RoleOperator, actor.PermManageOrders|actor.PermDeleteOrders)
		require.NoError(t, err)

		assert.True(t, a.Can(actor.PermManageOrders))
		assert.True(t, a.Can(actor.PermDeleteOrders))
		assert.False(t, a.Can(actor.PermManageLedger))
	})
}

func TestActor_ZeroValueFailsValidation(t *testing.T) {
	var a actor.Actor

	require.Error(t, a.Validate())
}

func TestRoleFromString(t *testing.T) {
	role, err := actor.RoleFromString("Operator")
	require.NoError(t, err)
	assert.Equal(t, actor.RoleOperator, role)

	role, err = actor.RoleFromString("Admin")
	require.NoError(t, err)
	assert.Equal(t, actor.RoleAdmin, role)

	_, err = actor.RoleFromString("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = actor.RoleFromString("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPermissionFromString(t *testing.T) {
	tests := map[string]actor.Permission{
		"ManageOrders": actor.PermManageOrders,
		"DeleteOrders": actor.PermDeleteOrders,
		"ManageLedger": actor.PermManageLedger,
	}
	for name, want := range tests {
		p, err := actor.PermissionFromString(name)
		require.NoError(t, err)
		assert.Equal(t, want, p)
	}

	_, err := actor.PermissionFromString("ManageEverything")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
