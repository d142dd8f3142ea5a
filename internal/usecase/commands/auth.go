package commands

import (
	"context"

	"voting-platform/internal/domain/user"
	"voting-platform/internal/infra"
	"voting-platform/internal/pkg/errs"
	"voting-platform/internal/pkg/jwt"
	"voting-platform/internal/pkg/password"
	"voting-platform/internal/usecase/queries"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid email or password")
	ErrUserInactive           = errs.New("user account is inactive")
	ErrTokenGeneration        = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type SignupParams struct {
	Name        string
	Email       string
	Password    string
	LinkedinURL *string
}

type AuthCommands interface {
	Signup(ctx context.Context, params SignupParams) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup registers a local account. OAuth accounts are provisioned by the
// OAuth callback flow and carry their provider label; local signups are
// always "local" voters.
func (a *authCommandsImpl) Signup(ctx context.Context, params SignupParams) (*queries.AuthorizedUserView, error) {
	name, err := user.NewName(params.Name)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}

	pass, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := user.NewUser(name, email, hash, user.ProviderLocal, user.RoleVoter, params.LinkedinURL)
	if err := a.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, _, err := a.userRepo.FindByEmail(ctx, email.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedUserView, error) {
	view, hash, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}
