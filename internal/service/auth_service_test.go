package service

import (
	"testing"

	"go-pharma-pos/internal/model"
	"go-pharma-pos/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestGuardAdminTarget(t *testing.T) {
	// super admin can touch anyone
	assert.NoError(t, guardAdminTarget(model.RoleSuperAdmin, model.RoleSuperAdmin))
	assert.NoError(t, guardAdminTarget(model.RoleSuperAdmin, model.RoleAdmin))

	// admin can manage everyone below admin
	assert.NoError(t, guardAdminTarget(model.RoleAdmin, model.RoleSalesman))
	assert.NoError(t, guardAdminTarget(model.RoleAdmin, model.RoleAccountAdmin))
	assert.NoError(t, guardAdminTarget(model.RoleAdmin, model.RoleGeneralUser))

	// but not peers or above
	err := guardAdminTarget(model.RoleAdmin, model.RoleAdmin)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	err = guardAdminTarget(model.RoleAdmin, model.RoleSuperAdmin)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestPaymentMethodOrCash(t *testing.T) {
	assert.Equal(t, model.PaymentMethodCash, paymentMethodOrCash(""))
	assert.Equal(t, model.PaymentMethodBkash, paymentMethodOrCash(model.PaymentMethodBkash))
}
