//go:build unit || e2e

package builder

import (
	reqdto "voting-platform/internal/handler/dto/request"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
	Role     string
	HasVoted bool
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Name:     "Test Voter",
		Email:    "voter@example.com",
		Password: "password123",
		Role:     "voter",
		HasVoted: false,
		IsActive: true,
	}
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = "admin"
	return b
}

func (b *UserBuilder) Voted() *UserBuilder {
	b.HasVoted = true
	return b
}

func (b *UserBuilder) BuildSignupRequestDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		AuthProvider: "local",
		Role:         b.Role,
		HasVoted:     b.HasVoted,
		IsActive:     b.IsActive,
	}
}
