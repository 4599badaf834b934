package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUser(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		u := User{}
		assert.Equal(t, "users", u.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		u := User{}
		assert.NoError(t, u.BeforeCreate(nil))
		assert.NotEqual(t, uuid.Nil, u.ID)

		existingID := uuid.New()
		u2 := User{ID: existingID}
		assert.NoError(t, u2.BeforeCreate(nil))
		assert.Equal(t, existingID, u2.ID)
	})

	t.Run("SetPassword and CheckPassword", func(t *testing.T) {
		u := User{}

		err := u.SetPassword("short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
		assert.Empty(t, u.PasswordHash)

		err = u.SetPassword("correct-horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, u.PasswordHash)
		assert.NotEqual(t, "correct-horse", u.PasswordHash)

		assert.True(t, u.CheckPassword("correct-horse"))
		assert.False(t, u.CheckPassword("wrong-horse"))
		assert.False(t, u.CheckPassword(""))
	})

	t.Run("Roles", func(t *testing.T) {
		admin := User{Role: RoleAdmin}
		member := User{Role: RoleMember}
		viewer := User{Role: RoleViewer}

		assert.True(t, admin.IsAdmin())
		assert.False(t, member.IsAdmin())

		assert.True(t, admin.CanStake())
		assert.True(t, member.CanStake())
		assert.False(t, viewer.CanStake())

		assert.True(t, ValidRole(RoleAdmin))
		assert.True(t, ValidRole(RoleViewer))
		assert.False(t, ValidRole(Role("superuser")))
	})

	t.Run("CanAfford", func(t *testing.T) {
		u := User{PointsBalance: decimal.NewFromInt(100)}

		assert.True(t, u.CanAfford(decimal.NewFromInt(100)))
		assert.True(t, u.CanAfford(decimal.NewFromInt(40)))
		assert.False(t, u.CanAfford(decimal.RequireFromString("100.01")))
	})

	t.Run("Validate", func(t *testing.T) {
		valid := User{
			Username:      "alice",
			PasswordHash:  "$2a$10$abcdefghijklmnopqrstuv",
			Role:          RoleMember,
			PointsBalance: decimal.NewFromInt(100),
		}
		assert.NoError(t, valid.Validate())

		tests := []struct {
			name   string
			modify func(*User)
			err    error
		}{
			{"Short username", func(u *User) { u.Username = "ab" }, ErrInvalidUsername},
			{"Empty username", func(u *User) { u.Username = "" }, ErrInvalidUsername},
			{"Missing password hash", func(u *User) { u.PasswordHash = "" }, ErrInvalidPassword},
			{"Unknown role", func(u *User) { u.Role = "superuser" }, ErrInvalidRole},
			{"Negative balance", func(u *User) { u.PointsBalance = decimal.NewFromInt(-1) }, ErrNegativeBalance},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				user := valid
				tt.modify(&user)
				assert.Equal(t, tt.err, user.Validate())
			})
		}
	})
}
