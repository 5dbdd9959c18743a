package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RolePatient, ParseRole("patient"))
	assert.Equal(t, RolePatient, ParseRole(""), "unknown roles degrade to patient")
	assert.Equal(t, RolePatient, ParseRole("superuser"))
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageRoster())
	assert.True(t, RoleAdmin.CanManageCatalog())
	assert.True(t, RoleAdmin.CanPromoteUsers())
	assert.True(t, RoleAdmin.CanViewAllUsers())

	assert.False(t, RolePatient.CanManageRoster())
	assert.False(t, RolePatient.CanManageCatalog())
	assert.False(t, RolePatient.CanPromoteUsers())
	assert.False(t, RolePatient.CanViewAllUsers())
}
