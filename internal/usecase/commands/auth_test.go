//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"voting-platform/internal/domain/user"
	"voting-platform/internal/infra"
	"voting-platform/internal/pkg/jwt"
	"voting-platform/internal/pkg/password"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.String(1), args.Error(2)
}

func testJWTService() *jwt.Service {
	return jwt.NewService("test-secret-key-for-unit-tests", time.Hour)
}

func validSignupParams() SignupParams {
	return SignupParams{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "password123",
	}
}

func TestSignup(t *testing.T) {
	t.Run("success: creates a local voter", func(t *testing.T) {
		params := validSignupParams()
		view := &queries.AuthorizedUserView{
			ID:           uuid.New(),
			Name:         params.Name,
			Email:        params.Email,
			AuthProvider: "local",
			Role:         "voter",
			IsActive:     true,
		}

		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Email().Value() == params.Email &&
				u.AuthProvider() == user.ProviderLocal &&
				u.Role() == user.RoleVoter
		})).Return(nil)
		repo.On("FindByEmail", mock.Anything, params.Email).Return(view, "hash", nil)

		cmds := NewAuthCommands(repo, testJWTService())

		got, err := cmds.Signup(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, view, got)
		repo.AssertExpectations(t)
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(infra.WrapRepoErr("duplicate email", nil, infra.KindConflict))

		cmds := NewAuthCommands(repo, testJWTService())

		_, err := cmds.Signup(context.Background(), validSignupParams())

		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})

	t.Run("error: invalid input", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*SignupParams)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(p *SignupParams) { p.Name = "" },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "malformed email",
				mutate: func(p *SignupParams) { p.Email = "not-an-email" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "weak password",
				mutate: func(p *SignupParams) { p.Password = "short" },
				errIs:  user.ErrPasswordTooWeak,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockUserRepository)
				cmds := NewAuthCommands(repo, testJWTService())

				params := validSignupParams()
				tt.mutate(&params)

				_, err := cmds.Signup(context.Background(), params)

				assert.ErrorIs(t, err, tt.errIs)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	plain := "password123"
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)

	activeView := &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		AuthProvider: "local",
		Role:         "voter",
		IsActive:     true,
	}

	t.Run("success: returns token and view", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, activeView.Email).Return(activeView, hash, nil)

		svc := testJWTService()
		cmds := NewAuthCommands(repo, svc)

		token, view, err := cmds.Login(context.Background(), activeView.Email, plain)

		require.NoError(t, err)
		assert.Equal(t, activeView, view)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, activeView.ID, claims.UserID)
		assert.Equal(t, "voter", claims.Role)
	})

	t.Run("error: unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		cmds := NewAuthCommands(repo, testJWTService())

		_, _, err := cmds.Login(context.Background(), "nobody@example.com", plain)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, activeView.Email).Return(activeView, hash, nil)

		cmds := NewAuthCommands(repo, testJWTService())

		_, _, err := cmds.Login(context.Background(), activeView.Email, "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("error: inactive account", func(t *testing.T) {
		inactive := *activeView
		inactive.IsActive = false

		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, activeView.Email).Return(&inactive, hash, nil)

		cmds := NewAuthCommands(repo, testJWTService())

		_, _, err := cmds.Login(context.Background(), activeView.Email, plain)

		assert.ErrorIs(t, err, ErrUserInactive)
	})
}
