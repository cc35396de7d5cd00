package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/core/domain/entities/user"
)

func TestUser_SetPassword(t *testing.T) {
	u := user.New("owner@acme.test")
	require.NoError(t, u.SetPassword("correct horse battery"))

	assert.NotEmpty(t, u.PasswordHash())
	assert.NotEqual(t, "correct horse battery", u.PasswordHash())
	assert.True(t, u.CheckPassword("correct horse battery"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUser_CheckPassword_NoHash(t *testing.T) {
	u := user.New("owner@acme.test")
	assert.False(t, u.CheckPassword(""))
	assert.False(t, u.CheckPassword("anything"))
}

func TestUser_Defaults(t *testing.T) {
	u := user.New("visitor@acme.test")
	assert.Equal(t, user.RoleCustomer, u.Role())
	assert.NotZero(t, u.ID())
	assert.False(t, u.CreatedAt().IsZero())
}
