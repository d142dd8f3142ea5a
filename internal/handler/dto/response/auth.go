package response

import (
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	LinkedinURL  *string   `json:"linkedin_url,omitempty"`
	AuthProvider string    `json:"auth_provider"`
	Role         string    `json:"role"`
	HasVoted     bool      `json:"has_voted"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		LinkedinURL:  view.LinkedinURL,
		AuthProvider: view.AuthProvider,
		Role:         view.Role,
		HasVoted:     view.HasVoted,
	}
}
