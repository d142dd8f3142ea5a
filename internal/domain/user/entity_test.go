//go:build unit

package user_test

import (
	"testing"

	"voting-platform/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("builds an active local voter", func(t *testing.T) {
		name, err := user.NewName("Ada Lovelace")
		require.NoError(t, err)
		email, err := user.NewEmail("ada@example.com")
		require.NoError(t, err)

		u := user.NewUser(name, email, "hashed_password", user.ProviderLocal, user.RoleVoter, nil)
		require.NotNil(t, u)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Ada Lovelace", u.Name())
		assert.Equal(t, "ada@example.com", u.Email().Value())
		assert.Equal(t, user.ProviderLocal, u.AuthProvider())
		assert.Equal(t, user.RoleVoter, u.Role())
		assert.False(t, u.HasVoted())
		assert.True(t, u.IsActive())
		assert.False(t, u.IsAdmin())
		assert.Nil(t, u.LinkedinURL())
	})

	t.Run("admin role is recognized", func(t *testing.T) {
		name, _ := user.NewName("Admin")
		email, _ := user.NewEmail("admin@example.com")

		u := user.NewUser(name, email, "hashed_password", user.ProviderLocal, user.RoleAdmin, nil)

		assert.True(t, u.IsAdmin())
	})
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "valid@example.com"},
		{name: "empty email", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "not-an-email", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "user@", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, email.Value())
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "minimum length ok", input: "12345678"},
		{name: "below minimum", input: "1234567", errIs: user.ErrPasswordTooWeak},
		{name: "empty", input: "", errIs: user.ErrPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewPassword(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain name", input: "Ada", want: "Ada"},
		{name: "trims whitespace", input: "  Ada  ", want: "Ada"},
		{name: "empty", input: "", errIs: user.ErrEmptyName},
		{name: "whitespace only", input: "   ", errIs: user.ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := user.NewName(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, n.Value())
			}
		})
	}
}

func TestNewRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "voter", input: "voter", want: user.RoleVoter},
		{name: "admin", input: "admin", want: user.RoleAdmin},
		{name: "unknown role", input: "superuser", errIs: user.ErrInvalidRole},
		{name: "empty", input: "", errIs: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := user.NewRole(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, role)
			}
		})
	}
}

func TestNewAuthProvider(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  user.AuthProvider
		errIs error
	}{
		{name: "local", input: "local", want: user.ProviderLocal},
		{name: "google", input: "google", want: user.ProviderGoogle},
		{name: "linkedin", input: "linkedin", want: user.ProviderLinkedin},
		{name: "unknown provider", input: "github", errIs: user.ErrInvalidAuthProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := user.NewAuthProvider(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, provider)
			}
		})
	}
}
