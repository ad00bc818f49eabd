package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "user passes through", role: RoleUser, want: RoleUser},
		{name: "admin passes through", role: RoleAdmin, want: RoleAdmin},
		{name: "unknown role coerced", role: "superuser", want: RoleUser},
		{name: "empty role coerced", role: "", want: RoleUser},
		{name: "case sensitive", role: "Admin", want: RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.role))
		})
	}
}

func TestAccountIsAdmin(t *testing.T) {
	admin := &Account{ID: 1, Role: RoleAdmin}
	user := &Account{ID: 2, Role: RoleUser}

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}
