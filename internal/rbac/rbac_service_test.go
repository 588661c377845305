package rbac

import (
	"testing"

	"go-payroll/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRBACService_AdminFullAccess(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)

	for _, action := range []string{"read", "create", "update", "delete"} {
		allowed, err := service.Enforce(EnforceRequest{
			Role:     domain.RoleAdmin,
			Resource: "payslip",
			Action:   action,
		})
		assert.NoError(t, err)
		assert.True(t, allowed, "admin should be allowed to %s", action)
	}
}

func TestRBACService_HRCannotDelete(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)

	allowed, err := service.Enforce(EnforceRequest{
		Role:     domain.RoleHR,
		Resource: "employee",
		Action:   "delete",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_HRReadAndWrite(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)

	for _, action := range []string{"read", "create", "update"} {
		allowed, err := service.Enforce(EnforceRequest{
			Role:     domain.RoleHR,
			Resource: "addition",
			Action:   action,
		})
		assert.NoError(t, err)
		assert.True(t, allowed, "hr should be allowed to %s", action)
	}
}

func TestRBACService_UnknownRoleDenied(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)

	allowed, err := service.Enforce(EnforceRequest{
		Role:     "INTERN",
		Resource: "payslip",
		Action:   "read",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)
}
