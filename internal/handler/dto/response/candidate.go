package response

import (
	"time"

	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

// CandidateResponse carries no vote counts: the public candidate list must
// stay count-free while voting is open.
type CandidateResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	LinkedinURL string    `json:"linkedin_url"`
	TeamID      int32     `json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCandidateView(view *queries.CandidateView) *CandidateResponse {
	return &CandidateResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		LinkedinURL: view.LinkedinURL,
		TeamID:      view.TeamID,
		CreatedAt:   view.CreatedAt,
	}
}

func FromCandidateViews(views []*queries.CandidateView) []*CandidateResponse {
	result := make([]*CandidateResponse, len(views))
	for i, view := range views {
		result[i] = FromCandidateView(view)
	}
	return result
}
