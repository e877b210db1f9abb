package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	user := NewUser("frank", "frank@example.com", "hunter2", "12061")

	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "hunter2", user.Password, "stored password must be a hash")

	assert.NoError(t, user.CheckPassword("hunter2"))
	assert.Error(t, user.CheckPassword("hunter3"))
}

func TestCheckPasswordMalformedHashFailsClosed(t *testing.T) {
	user := NewUser("frank", "frank@example.com", "hunter2", "")
	user.Password = "not-a-bcrypt-hash"

	assert.Error(t, user.CheckPassword("hunter2"))
}

func TestNewValidatedUserRejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name string
		user *User
	}{
		{"empty username", NewUser("", "a@b.c", "pw", "")},
		{"empty email", NewUser("frank", "", "pw", "")},
		{"empty password", NewUser("frank", "a@b.c", "", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidatedUser(tt.user)
			assert.Error(t, err)
		})
	}
}

func TestZipCodeIsOptional(t *testing.T) {
	user := NewUser("frank", "frank@example.com", "pw", "")
	_, err := NewValidatedUser(user)
	assert.NoError(t, err)
}
