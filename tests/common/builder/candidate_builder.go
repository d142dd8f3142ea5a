//go:build unit || e2e

package builder

import (
	"time"

	reqdto "voting-platform/internal/handler/dto/request"
	"voting-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type CandidateBuilder struct {
	ID          uuid.UUID
	Name        string
	Description *string
	LinkedinURL string
	TeamID      int32
}

func NewCandidateBuilder() *CandidateBuilder {
	desc := "Builds the data platform"
	return &CandidateBuilder{
		ID:          uuid.New(),
		Name:        "Grace Hopper",
		Description: &desc,
		LinkedinURL: "https://linkedin.com/in/grace-hopper",
		TeamID:      1,
	}
}

func (b *CandidateBuilder) WithID(id uuid.UUID) *CandidateBuilder {
	b.ID = id
	return b
}

func (b *CandidateBuilder) WithName(name string) *CandidateBuilder {
	b.Name = name
	return b
}

func (b *CandidateBuilder) WithTeamID(teamID int32) *CandidateBuilder {
	b.TeamID = teamID
	return b
}

func (b *CandidateBuilder) BuildCreateRequestDTO() reqdto.CreateCandidateRequest {
	return reqdto.CreateCandidateRequest{
		Name:        b.Name,
		Description: b.Description,
		LinkedinURL: b.LinkedinURL,
		TeamID:      b.TeamID,
	}
}

func (b *CandidateBuilder) BuildView() *queries.CandidateView {
	return &queries.CandidateView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		LinkedinURL: b.LinkedinURL,
		TeamID:      b.TeamID,
		CreatedAt:   time.Now().UTC(),
	}
}
