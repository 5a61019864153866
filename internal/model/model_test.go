package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("s3cret-pass"))

	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUserPermissions(t *testing.T) {
	user := User{Permissions: []Permission{
		{Code: PermCreateSell, Name: "Create Sell"},
		{Code: PermRefundSell, Name: "Refund Sell"},
	}}

	assert.True(t, user.HasPermission(PermCreateSell))
	assert.False(t, user.HasPermission(PermCreatePurchase))
	assert.Equal(t, []string{PermCreateSell, PermRefundSell}, user.GetPermissionCodes())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleSuperAdmin))
	assert.True(t, ValidRole(RoleSalesman))
	assert.False(t, ValidRole(Role("janitor")))
}

func TestStockNeedsReorder(t *testing.T) {
	assert.True(t, (&Stock{Quantity: 5, AlertQuantity: 10}).NeedsReorder())
	assert.True(t, (&Stock{Quantity: 10, AlertQuantity: 10}).NeedsReorder())
	assert.False(t, (&Stock{Quantity: 11, AlertQuantity: 10}).NeedsReorder())
	// zero threshold means alerts are off
	assert.False(t, (&Stock{Quantity: 0, AlertQuantity: 0}).NeedsReorder())
}

func TestUserToResponseHidesPassword(t *testing.T) {
	user := User{Email: "a@b.c", Name: "A", Role: RoleAdmin, Status: StatusActive}
	require.NoError(t, user.SetPassword("whatever"))

	resp := user.ToResponse()
	assert.Equal(t, "a@b.c", resp.Email)
	assert.Equal(t, RoleAdmin, resp.Role)
}
